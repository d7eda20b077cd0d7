package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultSessionID = "default"

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Chat stores the user message, replays the session history to the completion
// provider, stores the reply, and returns it.
func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "message is required"})
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	reply, err := h.ChatSvc.Respond(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		log.Printf("[Chat] respond failed session_id=%s err=%v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":   reply,
		"session_id": sessionID,
	})
}

// ClearChat deletes all stored turns for a session. Unknown sessions clear to
// the same result, so this always acknowledges with 200.
func (h *Handler) ClearChat(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.ChatSvc.ClearHistory(c.Request.Context(), sessionID); err != nil {
		log.Printf("[ClearChat] clear failed session_id=%s err=%v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "History cleared",
		"session_id": sessionID,
	})
}
