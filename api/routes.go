package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/meridiancruises/compliance-backend/usecases"
	"github.com/meridiancruises/compliance-backend/utils"
)

const maxFileSize = 30 * 1024 * 1024 // 30MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.POST("/token", handlePostToken(uc))

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.GET("/cases", handleListCases(uc))
	router.GET("/cases/archive", handleCaseArchive(uc))
	router.POST("/cases/bulk-assign", handleBulkAssignCases(uc))
	router.POST("/cases/bulk-submit", handleBulkSubmitCases(uc))
	router.GET("/cases/:case_kind/:case_id", handleGetCase(uc))
	router.POST("/cases/:case_kind/:case_id/assign", handleAssignCase(uc))
	router.POST("/cases/:case_kind/:case_id/unassign", handleUnassignCase(uc))
	router.POST("/cases/:case_kind/:case_id/review", handleStartReview(uc))
	router.POST("/cases/:case_kind/:case_id/return", handleReturnCase(uc))
	router.POST("/cases/:case_kind/:case_id/submit", handleSubmitCase(uc))
	router.POST("/cases/:case_kind/:case_id/approve", handleApproveCase(uc))
	router.POST("/cases/:case_kind/:case_id/reject", handleRejectCase(uc))
	router.POST("/cases/:case_kind/:case_id/withdraw", handleWithdrawCase(uc))

	router.POST("/cases/:case_kind/:case_id/files",
		limits.RequestSizeLimiter(maxFileSize),
		timeoutMiddleware(conf.DefaultTimeout),
		handlePostCaseFile(uc))
	router.GET("/cases/:case_kind/:case_id/files/:file_id", handleDownloadCaseFile(uc))
	router.DELETE("/cases/:case_kind/:case_id/files/:file_id", handleDeleteCaseFile(uc))
	router.GET("/cases/:case_kind/:case_id/zip", handleExportCaseFilesZip(uc))

	router.GET("/patrons", handleListPatrons(uc))
	router.POST("/patrons", handlePostPatron(uc))
	router.GET("/patrons/:patron_id", handleGetPatron(uc))
	router.PATCH("/patrons/:patron_id", handlePatchPatron(uc))
	router.POST("/patrons/:patron_id/files",
		limits.RequestSizeLimiter(maxFileSize),
		timeoutMiddleware(conf.DefaultTimeout),
		handlePostPatronFile(uc))
	router.GET("/patrons/:patron_id/files/:file_id", handleDownloadPatronFile(uc))
	router.DELETE("/patrons/:patron_id/files/:file_id", handleDeletePatronFile(uc))

	router.GET("/team", handleListTeamMembers(uc))
	router.GET("/team/events", handleTeamRosterEvents(uc))
	router.GET("/team/:member_id", handleGetTeamMember(uc))
	router.PATCH("/team/:member_id", handlePatchTeamMember(uc))
	router.POST("/team/:member_id/password", handleChangePassword(uc))
	router.POST("/team/:member_id/avatar",
		limits.RequestSizeLimiter(maxFileSize),
		handlePostAvatar(uc))
	router.GET("/team/:member_id/avatar", handleGetAvatar(uc))
}
