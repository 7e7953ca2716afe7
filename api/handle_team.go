package api

import (
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/dto"
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
	"github.com/meridiancruises/compliance-backend/usecases"
)

type MemberUriInput struct {
	MemberId string `uri:"member_id" binding:"required,uuid"`
}

func handleListTeamMembers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		members, err := usecase.ListTeamMembers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		out := pure_utils.Map(members, dto.AdaptTeamMemberDto)
		if out == nil {
			out = []dto.APITeamMember{}
		}
		c.JSON(http.StatusOK, gin.H{"members": out})
	}
}

func handleGetTeamMember(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input MemberUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		member, err := usecase.GetTeamMember(ctx, input.MemberId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"member": dto.AdaptTeamMemberDto(member)})
	}
}

func handlePatchTeamMember(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input MemberUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateTeamMemberBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		roles, err := models.ValidateRoles(body.Roles)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		member, err := usecase.UpdateTeamMember(ctx, models.UpdateTeamMemberAttributes{
			Id:        input.MemberId,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Phone:     body.Phone,
			Roles:     roles,
			IsAdmin:   body.IsAdmin,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"member": dto.AdaptTeamMemberDto(member)})
	}
}

type ChangePasswordBody struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func handleChangePassword(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input MemberUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		creds := usecasesWithCreds(ctx, uc).Credentials
		if creds.ActorIdentity.MemberId != input.MemberId {
			presentError(ctx, c, errors.Wrap(models.ForbiddenError,
				"a member can only change their own password"))
			return
		}

		var body ChangePasswordBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		if presentError(ctx, c, usecase.ChangePassword(ctx, body.CurrentPassword, body.NewPassword)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handlePostAvatar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input MemberUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var form FileForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		member, err := usecase.UploadAvatar(ctx, input.MemberId, *form.File)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"member": dto.AdaptTeamMemberDto(member)})
	}
}

func handleGetAvatar(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input MemberUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		url, err := usecase.GetAvatarUrl(ctx, input.MemberId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// handleTeamRosterEvents streams roster changes as server-sent events until
// the client disconnects.
func handleTeamRosterEvents(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewTeamUsecase()
		events, err := usecase.RosterEvents(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Stream(func(w io.Writer) bool {
			select {
			case event, ok := <-events:
				if !ok {
					return false
				}
				c.SSEvent("roster", dto.AdaptRosterEventDto(event))
				return true
			case <-ctx.Done():
				return false
			}
		})
	}
}
