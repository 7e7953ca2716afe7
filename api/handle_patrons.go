package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/dto"
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
	"github.com/meridiancruises/compliance-backend/usecases"
)

type PatronUriInput struct {
	PatronId string `uri:"patron_id" binding:"required,uuid"`
}

func handleListPatrons(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		filters := models.PatronFilters{
			Name: c.Query("name"),
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		patrons, err := usecase.ListPatrons(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}

		out := pure_utils.Map(patrons, dto.AdaptPatronDto)
		if out == nil {
			out = []dto.APIPatron{}
		}
		c.JSON(http.StatusOK, gin.H{"patrons": out})
	}
}

func handlePostPatron(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.PatronBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		patron, err := usecase.CreatePatron(ctx, models.CreatePatronAttributes{
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			DateOfBirth:  body.DateOfBirth,
			Email:        body.Email,
			Phone:        body.Phone,
			Address:      body.Address,
			GovernmentId: body.GovernmentId,
			Ssn:          body.Ssn,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"patron": dto.AdaptPatronDto(patron)})
	}
}

func handleGetPatron(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input PatronUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		patron, err := usecase.GetPatron(ctx, input.PatronId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"patron": dto.AdaptPatronDto(patron)})
	}
}

func handlePatchPatron(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input PatronUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.PatronBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPatronUsecase()
		patron, err := usecase.UpdatePatron(ctx, models.UpdatePatronAttributes{
			Id:           input.PatronId,
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			DateOfBirth:  body.DateOfBirth,
			Email:        body.Email,
			Phone:        body.Phone,
			Address:      body.Address,
			GovernmentId: body.GovernmentId,
			Ssn:          body.Ssn,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"patron": dto.AdaptPatronDto(patron)})
	}
}
