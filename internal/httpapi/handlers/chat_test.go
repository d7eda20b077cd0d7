package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaiwenhu/chat-service/internal/ai"
	"github.com/kaiwenhu/chat-service/internal/chat"
	"github.com/kaiwenhu/chat-service/internal/httpapi"
)

type echoProvider struct{}

func (echoProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	return "echo: " + messages[len(messages)-1].Content, nil
}

type downProvider struct{}

func (downProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	_ = messages
	return "", errors.New("upstream unavailable")
}

func newTestServer(t *testing.T, provider ai.Provider) (*gin.Engine, *chat.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(gormsqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := chat.NewRepo(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := chat.NewService(repo, provider)
	return httpapi.NewRouter(svc), repo
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t, echoProvider{})

	w, body := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestChat_RoundTrip(t *testing.T) {
	r, repo := newTestServer(t, echoProvider{})

	w, body := doJSON(t, r, http.MethodPost, "/chat", `{"message":"Hello","session_id":"s1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if body["response"] != "echo: Hello" {
		t.Fatalf("unexpected response: %v", body["response"])
	}
	if body["session_id"] != "s1" {
		t.Fatalf("unexpected session_id: %v", body["session_id"])
	}

	msgs, err := repo.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 stored turns, got %d", len(msgs))
	}
}

func TestChat_MissingMessageIs422AndWritesNothing(t *testing.T) {
	r, repo := newTestServer(t, echoProvider{})

	w, _ := doJSON(t, r, http.MethodPost, "/chat", `{}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	msgs, err := repo.History(context.Background(), "default")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no stored turns, got %d", len(msgs))
	}
}

func TestChat_DefaultsSessionID(t *testing.T) {
	r, repo := newTestServer(t, echoProvider{})

	w, body := doJSON(t, r, http.MethodPost, "/chat", `{"message":"Test"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["session_id"] != "default" {
		t.Fatalf("expected default session_id, got %v", body["session_id"])
	}

	msgs, err := repo.History(context.Background(), "default")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected turns under session \"default\", got %d", len(msgs))
	}
	if msgs[0].Content != "Test" {
		t.Fatalf("unexpected stored user turn: %q", msgs[0].Content)
	}
}

func TestChat_ProviderFailureIsServerError(t *testing.T) {
	r, repo := newTestServer(t, downProvider{})

	w, _ := doJSON(t, r, http.MethodPost, "/chat", `{"message":"Hello","session_id":"s1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	// user turn stays recorded even though the call failed
	msgs, err := repo.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Role != chat.RoleUser {
		t.Fatalf("expected a single dangling user turn, got %d msgs", len(msgs))
	}
}

func TestClearChat_UnknownSessionStillAcks(t *testing.T) {
	r, _ := newTestServer(t, echoProvider{})

	w, body := doJSON(t, r, http.MethodDelete, "/chat/never-seen", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "History cleared" {
		t.Fatalf("unexpected ack message: %v", body["message"])
	}
	if body["session_id"] != "never-seen" {
		t.Fatalf("unexpected session_id: %v", body["session_id"])
	}
}

func TestClearChat_EmptiesHistory(t *testing.T) {
	r, repo := newTestServer(t, echoProvider{})

	if w, _ := doJSON(t, r, http.MethodPost, "/chat", `{"message":"Hello","session_id":"s1"}`); w.Code != http.StatusOK {
		t.Fatalf("seed chat failed: %d", w.Code)
	}

	w, _ := doJSON(t, r, http.MethodDelete, "/chat/s1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs, err := repo.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected cleared history, got %d msgs", len(msgs))
	}
}

func TestIndex_ServesPage(t *testing.T) {
	r, _ := newTestServer(t, echoProvider{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
}
