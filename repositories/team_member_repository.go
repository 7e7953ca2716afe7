package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
	"github.com/meridiancruises/compliance-backend/repositories/dbmodels"
)

// RosterChannel is the Postgres notification channel carrying profiles table
// changes for the team roster feed.
const RosterChannel = "team_roster_events"

func (repo *ComplianceDbRepository) GetTeamMemberById(ctx context.Context, exec Executor,
	memberId string,
) (models.TeamMember, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTeamMemberColumn...).
			From(dbmodels.TABLE_PROFILES).
			Where(squirrel.Eq{"id": memberId}),
		dbmodels.AdaptTeamMember)
}

func (repo *ComplianceDbRepository) GetTeamMemberByEmail(ctx context.Context, exec Executor,
	email string,
) (models.TeamMember, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTeamMemberColumn...).
			From(dbmodels.TABLE_PROFILES).
			Where(squirrel.Eq{"email": email}),
		dbmodels.AdaptTeamMember)
}

func (repo *ComplianceDbRepository) ListTeamMembers(ctx context.Context, exec Executor,
) ([]models.TeamMember, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTeamMemberColumn...).
			From(dbmodels.TABLE_PROFILES).
			OrderBy("last_name", "first_name"),
		dbmodels.AdaptTeamMember)
}

func (repo *ComplianceDbRepository) UpdateTeamMember(ctx context.Context, exec Executor,
	attrs models.UpdateTeamMemberAttributes,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PROFILES).
		Set("first_name", attrs.FirstName).
		Set("last_name", attrs.LastName).
		Set("phone", attrs.Phone).
		Set("roles", pure_utils.Map(attrs.Roles, func(r models.Role) string {
			return string(r)
		})).
		Where(squirrel.Eq{"id": attrs.Id})

	if attrs.IsAdmin != nil {
		query = query.Set("is_admin", *attrs.IsAdmin)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *ComplianceDbRepository) UpdateTeamMemberPasswordHash(ctx context.Context, exec Executor,
	memberId string, passwordHash string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_PROFILES).
			Set("password_hash", passwordHash).
			Where(squirrel.Eq{"id": memberId}),
	)
}

func (repo *ComplianceDbRepository) UpdateTeamMemberAvatar(ctx context.Context, exec Executor,
	memberId string, avatarPath *string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_PROFILES).
			Set("avatar_path", avatarPath).
			Where(squirrel.Eq{"id": memberId}),
	)
}

// NotifyRosterChanged publishes a change notification on the roster channel.
// Sent inside the same transaction as the change, the notification is only
// delivered on commit.
func (repo *ComplianceDbRepository) NotifyRosterChanged(ctx context.Context, exec Executor,
	memberId string, operation string,
) error {
	payload := fmt.Sprintf(`{"member_id":%q,"operation":%q}`, memberId, operation)
	_, err := exec.Exec(ctx, "SELECT pg_notify($1, $2)", RosterChannel, payload)
	return err
}
