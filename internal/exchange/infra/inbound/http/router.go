package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterExchangeRoutes(r *gin.Engine, handler *ExchangeHandler) {
	exchange := r.Group("/exchange")
	{
		exchange.POST("/messages", handler.PublishMessage)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
