package repositories

import (
	"context"
)

func (repo *ComplianceDbRepository) Liveness(ctx context.Context, exec Executor) error {
	_, err := exec.Exec(ctx, "SELECT 1")
	return err
}
