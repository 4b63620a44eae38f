package routes

import (
	"ikhaya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
