package routes

import (
	"log"

	"naukri-api/internal/api/handlers"
	"naukri-api/internal/app"
	"naukri-api/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group("/api/v1")

	userHandler := handlers.NewUserHandler(app.Identity, app.Validator)
	jobHandler := handlers.NewJobHandler(app.Jobs, app.Validator)
	appHandler := handlers.NewApplicationHandler(app.Applications, app.Validator)
	msgHandler := handlers.NewMessageHandler(app.Messages, app.Validator)
	ivHandler := handlers.NewInterviewHandler(app.Interviews, app.Validator)
	adminHandler := handlers.NewAdminHandler(app.Identity, app.Admin, app.Validator)

	RegisterUserRoutes(apiV1, userHandler)
	RegisterJobRoutes(apiV1, jobHandler)
	RegisterApplicationRoutes(apiV1, appHandler)
	RegisterMessageRoutes(apiV1, msgHandler)
	RegisterInterviewRoutes(apiV1, ivHandler)
	RegisterAdminRoutes(apiV1, adminHandler)

	router.GET("/health", handlers.HealthCheck(app.Config.Storage.Driver))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
