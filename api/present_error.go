package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

// presentError maps domain sentinel errors to http status codes. Returns true
// when it wrote a response, so handlers can bail out with a one-liner.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
			"details": errors.FlattenDetails(err),
		})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": err.Error(),
		})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{
			"message": err.Error(),
			"details": errors.FlattenDetails(err),
		})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{
			"message": err.Error(),
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{
			"message": err.Error(),
		})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "an unexpected error occurred",
		})
	}
	return true
}
