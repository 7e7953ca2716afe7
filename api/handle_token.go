package api

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/usecases"
)

type TokenBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func handlePostToken(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body TokenBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewTokenUsecase()
		accessToken, expirationTime, err := usecase.NewToken(ctx, body.Email, body.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
				return
			}
			presentError(ctx, c, err)
			return
		}

		c.JSON(http.StatusOK, token{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresAt:   expirationTime,
		})
	}
}
