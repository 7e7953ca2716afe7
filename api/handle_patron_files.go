package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/dto"
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/usecases"
)

func handlePostPatronFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input PatronUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var form FileForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		file, err := usecase.UploadPatronFile(ctx, models.CreatePatronFileInput{
			PatronId:    input.PatronId,
			File:        *form.File,
			Description: form.Description,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"file": dto.AdaptPatronFileDto(file)})
	}
}

func handleDownloadPatronFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input FileUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		url, err := usecase.GetPatronFileUrl(ctx, input.FileId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func handleDeletePatronFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input FileUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		if presentError(ctx, c, usecase.DeletePatronFile(ctx, input.FileId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
