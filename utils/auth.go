package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/models"
)

type validator interface {
	Validate(ctx context.Context, token string) (models.Credentials, error)
}

type Authentication struct {
	Validator validator
}

func NewAuthentication(validator validator) Authentication {
	return Authentication{
		Validator: validator,
	}
}

func (a *Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(fmt.Errorf("could not parse authorization header: %w", err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	credentials, err := a.Validator.Validate(ctx, token)
	if err != nil {
		_ = c.Error(fmt.Errorf("validator.Validate error: %w", err))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	newContext := StoreCredentialsInContext(ctx, credentials)
	if credentials.ActorIdentity.Email != "" {
		logger := LoggerFromContext(newContext).
			With(slog.String("email", credentials.ActorIdentity.Email))
		newContext = StoreLoggerInContext(newContext, logger)
	}
	c.Request = c.Request.WithContext(newContext)
	c.Next()
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", fmt.Errorf("malformed token: %w", models.UnAuthorizedError)
	}
	return authHeader[1], nil
}
