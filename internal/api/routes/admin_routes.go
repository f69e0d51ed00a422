package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the admin-only routes. The acting admin is named in each request.
func RegisterAdminRoutes(rg *gin.RouterGroup, adminHandler handlers.AdminHandlerInterface) {
	admin := rg.Group("/admin")
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.POST("/ban", adminHandler.BanUser)
		admin.PATCH("/users", adminHandler.UpdateUser)
	}
}
