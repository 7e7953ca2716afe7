package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/dto"
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/usecases"
)

type FileForm struct {
	File        *multipart.FileHeader `form:"file" binding:"required"`
	Description *string               `form:"description"`
}

type FileUriInput struct {
	FileId string `uri:"file_id" binding:"required,uuid"`
}

func handlePostCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		var form FileForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUsecase()
		file, err := usecase.UploadCaseFile(ctx, models.CreateCaseFileInput{
			Ref:         ref,
			File:        *form.File,
			Description: form.Description,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"file": dto.AdaptCaseFileDto(file)})
	}
}

func handleDownloadCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input FileUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUsecase()
		url, err := usecase.GetCaseFileUrl(ctx, input.FileId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func handleDeleteCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input FileUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUsecase()
		if presentError(ctx, c, usecase.DeleteCaseFile(ctx, input.FileId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleExportCaseFilesZip(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUsecase()
		reader, archiveName, err := usecase.ExportCaseFilesZip(ctx, ref)
		if presentError(ctx, c, err) {
			return
		}
		defer reader.Close()

		headers := map[string]string{
			"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, archiveName),
		}
		c.DataFromReader(http.StatusOK, -1, "application/zip", reader, headers)
	}
}
