package handlers

import (
	"github.com/kaiwenhu/chat-service/internal/chat"
)

type Handler struct {
	ChatSvc *chat.Service
}

func NewHandler(svc *chat.Service) *Handler {
	return &Handler{ChatSvc: svc}
}
