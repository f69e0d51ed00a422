package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the auth and user profile routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface) {
	users := rg.Group("/users")
	{
		users.GET("/:id", userHandler.GetUserByID)
		users.PATCH("/:id", userHandler.UpdateProfile)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
	}
}
