package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
)

type tokenMemberRepository interface {
	GetTeamMemberByEmail(ctx context.Context, exec repositories.Executor,
		email string) (models.TeamMember, error)
}

type TokenUsecase struct {
	jwtRepository       *repositories.JwtRepository
	memberRepository    tokenMemberRepository
	executorFactory     executor_factory.ExecutorFactory
	tokenLifetimeMinute int
}

// NewToken exchanges an email and password for a signed token carrying the
// member's credentials. Unknown emails and wrong passwords are deliberately
// indistinguishable to the caller.
func (uc *TokenUsecase) NewToken(ctx context.Context, email, password string,
) (string, time.Time, error) {
	member, err := uc.memberRepository.GetTeamMemberByEmail(
		ctx, uc.executorFactory.NewExecutor(), email)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return "", time.Time{}, models.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, models.ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(time.Duration(uc.tokenLifetimeMinute) * time.Minute)
	token, err := uc.jwtRepository.EncodeToken(expirationTime, member.IntoCredentials())
	return token, expirationTime, err
}

// Validate implements the token validator consumed by the authentication
// middleware.
func (uc *TokenUsecase) Validate(ctx context.Context, token string) (models.Credentials, error) {
	if token == "" {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError,
			"access token is missing")
	}
	return uc.jwtRepository.ValidateToken(token)
}
