package routes

import (
	"naukri-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(rg *gin.RouterGroup, msgHandler handlers.MessageHandlerInterface) {
	messages := rg.Group("/messages")
	{
		messages.POST("", msgHandler.SendMessage)
		messages.GET("", msgHandler.ListMessages) // ?user_id=&peer_id=
	}
}
