package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/dto"
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
	"github.com/meridiancruises/compliance-backend/usecases"
)

type CaseUriInput struct {
	Kind string `uri:"case_kind" binding:"required"`
	Id   string `uri:"case_id" binding:"required,uuid"`
}

func caseRefFromUri(c *gin.Context) (models.CaseRef, error) {
	var input CaseUriInput
	if err := c.ShouldBindUri(&input); err != nil {
		return models.CaseRef{}, models.BadParameterError
	}
	kind, err := models.CaseKindFromString(input.Kind)
	if err != nil {
		return models.CaseRef{}, err
	}
	return models.CaseRef{Id: input.Id, Kind: kind}, nil
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.CaseFiltersQuery
		if err := c.ShouldBind(&query); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := dto.AdaptCaseFilters(query)
		if presentError(ctx, c, err) {
			return
		}
		sorting, err := dto.AdaptCaseSorting(query)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseQueryUsecase()
		listing, err := usecase.ListCases(ctx, filters, sorting)
		if presentError(ctx, c, err) {
			return
		}

		out := dto.CaseListingDto{
			Cases:    pure_utils.Map(listing.Cases, dto.AdaptCaseDto),
			PsaCases: pure_utils.Map(listing.PsaCases, dto.AdaptCaseDto),
		}
		if out.Cases == nil {
			out.Cases = []dto.APICase{}
		}
		if out.PsaCases == nil {
			out.PsaCases = []dto.APICase{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseQueryUsecase()
		kase, err := usecase.GetCase(ctx, ref)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(kase)})
	}
}

func handleCaseArchive(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.CaseFiltersQuery
		if err := c.ShouldBind(&query); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := dto.AdaptCaseFilters(query)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseQueryUsecase()
		buckets, err := usecase.ArchiveView(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}

		out := pure_utils.Map(buckets, dto.AdaptArchiveBucketDto)
		if out == nil {
			out = []dto.ArchiveBucketDto{}
		}
		c.JSON(http.StatusOK, gin.H{"months": out})
	}
}

type AssignCaseBody struct {
	AssigneeId string `json:"assignee_id" binding:"required,uuid"`
}

func handleAssignCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		var body AssignCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseWorkflowUsecase()
		kase, err := usecase.AssignCase(ctx, models.AssignCaseAttributes{
			Ref:        ref,
			AssigneeId: body.AssigneeId,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(kase)})
	}
}

func handleUnassignCase(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.UnassignCase(ctx.Request.Context(), ref)
	})
}

func handleStartReview(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.StartReview(ctx.Request.Context(), ref)
	})
}

func handleReturnCase(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.ReturnCase(ctx.Request.Context(), ref)
	})
}

func handleWithdrawCase(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.WithdrawCase(ctx.Request.Context(), ref)
	})
}

func handleApproveCase(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.ApproveCase(ctx.Request.Context(), ref)
	})
}

func handleRejectCase(uc usecases.Usecases) func(c *gin.Context) {
	return caseTransitionHandler(uc, func(ctx *gin.Context, usecase usecases.CaseWorkflowUsecase,
		ref models.CaseRef,
	) (models.Case, error) {
		return usecase.RejectCase(ctx.Request.Context(), ref)
	})
}

func caseTransitionHandler(uc usecases.Usecases,
	transition func(c *gin.Context, usecase usecases.CaseWorkflowUsecase, ref models.CaseRef) (models.Case, error),
) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseWorkflowUsecase()
		kase, err := transition(c, usecase, ref)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(kase)})
	}
}

type SubmitCaseBody struct {
	ApproverId     string `json:"approver_id" binding:"required,uuid"`
	Recommendation string `json:"recommendation" binding:"required"`
}

func handleSubmitCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref, err := caseRefFromUri(c)
		if presentError(ctx, c, err) {
			return
		}

		var body SubmitCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseWorkflowUsecase()
		kase, report, err := usecase.SubmitCase(ctx, models.SubmitCaseAttributes{
			Ref:            ref,
			ApproverId:     body.ApproverId,
			Recommendation: body.Recommendation,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case":         dto.AdaptCaseDto(kase),
			"file_archive": dto.AdaptFileArchiveReportDto(report),
		})
	}
}

type BulkCasesBody struct {
	Cases []dto.CaseRefDto `json:"cases" binding:"required,min=1,dive"`
}

func (b BulkCasesBody) refs() ([]models.CaseRef, error) {
	refs := make([]models.CaseRef, len(b.Cases))
	for i, item := range b.Cases {
		kind, err := models.CaseKindFromString(item.Kind)
		if err != nil {
			return nil, err
		}
		refs[i] = models.CaseRef{Id: item.Id, Kind: kind}
	}
	return refs, nil
}

type BulkAssignBody struct {
	BulkCasesBody
	AssigneeId string `json:"assignee_id" binding:"required,uuid"`
}

func handleBulkAssignCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body BulkAssignBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		refs, err := body.refs()
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseWorkflowUsecase()
		result := usecase.BulkAssign(ctx, refs, body.AssigneeId)

		c.JSON(http.StatusOK, dto.AdaptBatchResultDto(result))
	}
}

type BulkSubmitBody struct {
	BulkCasesBody
	ApproverId     string `json:"approver_id" binding:"required,uuid"`
	Recommendation string `json:"recommendation" binding:"required"`
}

func handleBulkSubmitCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body BulkSubmitBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		refs, err := body.refs()
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseWorkflowUsecase()
		result := usecase.BulkSubmit(ctx, refs, body.ApproverId, body.Recommendation)

		c.JSON(http.StatusOK, dto.AdaptBatchResultDto(result))
	}
}
