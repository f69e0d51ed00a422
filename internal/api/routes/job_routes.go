package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListActiveJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.DELETE("/:id", jobHandler.DeleteJob) // ?actor_id=
	}

	rg.GET("/recruiters/:id/jobs", jobHandler.ListRecruiterJobs)
}
