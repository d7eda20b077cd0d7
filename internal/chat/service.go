package chat

import (
	"context"

	"github.com/kaiwenhu/chat-service/internal/ai"
)

// SystemPrompt steers every completion call. It is prepended at request-build
// time and never written to the store.
const SystemPrompt = "You are a helpful AI assistant. " +
	"You can communicate in English. " +
	"Give short, clear, and helpful answers."

type Service struct {
	repo     *Repo
	provider ai.Provider
}

func NewService(repo *Repo, provider ai.Provider) *Service {
	return &Service{repo: repo, provider: provider}
}

// Respond turns one inbound user message into one assistant reply.
//
// The user turn is stored before the provider call, so a provider failure
// leaves a user turn with no matching assistant turn. That asymmetry is
// intentional: the two writes are not transactional with each other, and a
// retried request simply appends another user turn.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (string, error) {
	userMsg := &Message{
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   message,
	}
	if err := s.repo.InsertMessage(ctx, userMsg); err != nil {
		return "", err
	}

	// Full history replay, including the turn just written. No windowing or
	// token trimming; every call sends the whole conversation.
	history, err := s.repo.History(ctx, sessionID)
	if err != nil {
		return "", err
	}

	providerMsgs := make([]ai.Message, 0, len(history)+1)
	providerMsgs = append(providerMsgs, ai.Message{Role: RoleSystem, Content: SystemPrompt})
	for _, m := range history {
		providerMsgs = append(providerMsgs, ai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.provider.Chat(ctx, providerMsgs)
	if err != nil {
		return "", err
	}

	assistantMsg := &Message{
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   reply,
	}
	if err := s.repo.InsertMessage(ctx, assistantMsg); err != nil {
		return "", err
	}

	return reply, nil
}

// ClearHistory removes every stored turn of a session.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}
