package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/slot")
	{
		api.POST("/spin", h.Spin)
		api.POST("/reset", h.Reset)
		api.GET("/balance", h.Balance)
	}
}
