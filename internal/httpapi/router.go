package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenhu/chat-service/internal/chat"
	"github.com/kaiwenhu/chat-service/internal/httpapi/handlers"
	"github.com/kaiwenhu/chat-service/internal/httpapi/middleware"
)

func NewRouter(svc *chat.Service) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	h := handlers.NewHandler(svc)

	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.POST("/chat", h.Chat)
	r.DELETE("/chat/:session_id", h.ClearChat)

	return r
}
