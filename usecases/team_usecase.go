package usecases

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
	"github.com/meridiancruises/compliance-backend/usecases/security"
)

type TeamRepository interface {
	GetTeamMemberById(ctx context.Context, exec repositories.Executor,
		memberId string) (models.TeamMember, error)
	ListTeamMembers(ctx context.Context, exec repositories.Executor) ([]models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, exec repositories.Executor,
		attrs models.UpdateTeamMemberAttributes) error
	UpdateTeamMemberPasswordHash(ctx context.Context, exec repositories.Executor,
		memberId string, passwordHash string) error
	UpdateTeamMemberAvatar(ctx context.Context, exec repositories.Executor,
		memberId string, avatarPath *string) error
	NotifyRosterChanged(ctx context.Context, exec repositories.Executor,
		memberId string, operation string) error
}

type rosterSubscriber interface {
	Subscribe(ctx context.Context) chan models.RosterEvent
}

type TeamUsecase struct {
	enforceSecurity    security.EnforceSecurityTeam
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	repository         TeamRepository
	blobRepository     repositories.BlobRepository
	rosterListener     rosterSubscriber
	avatarsBucketUrl   string
	credentials        models.Credentials
}

func (uc *TeamUsecase) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	if err := uc.enforceSecurity.ReadTeam(); err != nil {
		return nil, err
	}
	return uc.repository.ListTeamMembers(ctx, uc.executorFactory.NewExecutor())
}

func (uc *TeamUsecase) GetTeamMember(ctx context.Context, memberId string) (models.TeamMember, error) {
	if err := uc.enforceSecurity.ReadTeam(); err != nil {
		return models.TeamMember{}, err
	}
	return uc.repository.GetTeamMemberById(ctx, uc.executorFactory.NewExecutor(), memberId)
}

// UpdateTeamMember edits a profile. Role and admin flag changes are only
// applied for callers with team management rights; members editing
// themselves keep their existing roles.
func (uc *TeamUsecase) UpdateTeamMember(ctx context.Context, attrs models.UpdateTeamMemberAttributes,
) (models.TeamMember, error) {
	if err := uc.enforceSecurity.UpdateTeamMember(attrs.Id); err != nil {
		return models.TeamMember{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.TeamMember, error) {
			member, err := uc.repository.GetTeamMemberById(ctx, tx, attrs.Id)
			if err != nil {
				return models.TeamMember{}, err
			}

			if uc.enforceSecurity.ManageTeam() != nil {
				attrs.Roles = member.Roles
				attrs.IsAdmin = nil
			}
			if len(attrs.Roles) == 0 {
				return models.TeamMember{}, errors.Wrap(models.BadParameterError,
					"a team member must have at least one role")
			}

			if err := uc.repository.UpdateTeamMember(ctx, tx, attrs); err != nil {
				return models.TeamMember{}, err
			}
			if err := uc.repository.NotifyRosterChanged(ctx, tx, attrs.Id, "UPDATE"); err != nil {
				return models.TeamMember{}, err
			}

			return uc.repository.GetTeamMemberById(ctx, tx, attrs.Id)
		})
}

// ChangePassword verifies the current password before storing the new hash.
func (uc *TeamUsecase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	memberId := uc.credentials.ActorIdentity.MemberId

	member, err := uc.repository.GetTeamMemberById(ctx, uc.executorFactory.NewExecutor(), memberId)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(member.PasswordHash), []byte(currentPassword)); err != nil {
		return models.ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return errors.Wrap(models.BadParameterError,
			"password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return uc.repository.UpdateTeamMemberPasswordHash(ctx, tx, memberId, string(hash))
	})
}

// UploadAvatar stores the image in the avatars bucket and points the profile
// at it.
func (uc *TeamUsecase) UploadAvatar(ctx context.Context, memberId string,
	fileHeader multipart.FileHeader,
) (models.TeamMember, error) {
	if err := uc.enforceSecurity.UpdateTeamMember(memberId); err != nil {
		return models.TeamMember{}, err
	}

	avatarPath := fmt.Sprintf("%s/%s", memberId, fileHeader.Filename)
	writer, err := uc.blobRepository.OpenStream(ctx, uc.avatarsBucketUrl, avatarPath)
	if err != nil {
		return models.TeamMember{}, err
	}
	defer writer.Close()

	file, err := fileHeader.Open()
	if err != nil {
		return models.TeamMember{}, errors.Wrap(models.BadParameterError, err.Error())
	}
	defer file.Close()

	if _, err := io.Copy(writer, file); err != nil {
		return models.TeamMember{}, err
	}
	if err := writer.Close(); err != nil {
		return models.TeamMember{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.TeamMember, error) {
			if err := uc.repository.UpdateTeamMemberAvatar(ctx, tx, memberId, &avatarPath); err != nil {
				return models.TeamMember{}, err
			}
			if err := uc.repository.NotifyRosterChanged(ctx, tx, memberId, "UPDATE"); err != nil {
				return models.TeamMember{}, err
			}
			return uc.repository.GetTeamMemberById(ctx, tx, memberId)
		})
}

func (uc *TeamUsecase) GetAvatarUrl(ctx context.Context, memberId string) (string, error) {
	if err := uc.enforceSecurity.ReadTeam(); err != nil {
		return "", err
	}

	member, err := uc.repository.GetTeamMemberById(ctx, uc.executorFactory.NewExecutor(), memberId)
	if err != nil {
		return "", err
	}
	if member.AvatarPath == nil {
		return "", errors.Wrapf(models.NotFoundError, "member %s has no avatar", memberId)
	}
	return uc.blobRepository.GenerateSignedUrl(ctx, uc.avatarsBucketUrl, *member.AvatarPath)
}

// RosterEvents subscribes to the roster change feed. The channel closes when
// the context is done.
func (uc *TeamUsecase) RosterEvents(ctx context.Context) (chan models.RosterEvent, error) {
	if err := uc.enforceSecurity.ReadTeam(); err != nil {
		return nil, err
	}
	return uc.rosterListener.Subscribe(ctx), nil
}
