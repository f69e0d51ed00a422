package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the application ledger routes, including the per-job,
// per-recruiter and per-candidate listings.
func RegisterApplicationRoutes(rg *gin.RouterGroup, appHandler handlers.ApplicationHandlerInterface) {
	apps := rg.Group("/applications")
	{
		apps.POST("", appHandler.Apply)
		apps.GET("/:id", appHandler.GetApplicationByID)
		apps.PATCH("/:id/status", appHandler.SetStatus)
		apps.POST("/:id/shortlist", appHandler.Shortlist)
		apps.POST("/:id/reject", appHandler.Reject)
		apps.POST("/:id/approval", appHandler.SetApproval)
	}

	rg.GET("/jobs/:id/applications", appHandler.ListJobApplications)
	rg.GET("/recruiters/:id/applications", appHandler.ListRecruiterApplications)
	rg.GET("/candidates/:id/applications", appHandler.ListCandidateApplications)
}
