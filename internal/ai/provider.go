package ai

import "context"

// Message is one turn in the payload sent to a completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider issues one blocking chat-completion call and returns the reply
// text of the first candidate.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
