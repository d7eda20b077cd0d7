package ai

import (
	"context"
	"testing"
)

type stubProvider struct{}

func (stubProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "stub", nil
}

func TestRegistry_GetRegistered(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func() (Provider, error) {
		return stubProvider{}, nil
	})

	p, err := r.Get("stub")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatalf("expected provider")
	}
}

func TestRegistry_NameIsNormalized(t *testing.T) {
	r := NewRegistry()
	r.Register("  OpenAI ", func() (Provider, error) {
		return stubProvider{}, nil
	})

	if _, err := r.Get("openai"); err != nil {
		t.Fatalf("expected normalized lookup to succeed: %v", err)
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Get("nope"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
