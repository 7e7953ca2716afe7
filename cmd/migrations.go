package cmd

import (
	"context"
	"fmt"

	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/utils"
)

func RunMigrations() error {
	pgConfig := pgConfigFromEnv()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := repositories.RunMigrations(pgConfig, logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
