package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterInterviewRoutes(rg *gin.RouterGroup, ivHandler handlers.InterviewHandlerInterface) {
	interviews := rg.Group("/interviews")
	{
		interviews.POST("", ivHandler.ScheduleInterview)
		interviews.GET("", ivHandler.ListInterviews) // ?user_id=&role=
	}
}
