package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaiwenhu/chat-service/internal/ai"
	"github.com/kaiwenhu/chat-service/internal/chat"
	"github.com/kaiwenhu/chat-service/internal/config"
	"github.com/kaiwenhu/chat-service/internal/db"
	"github.com/kaiwenhu/chat-service/internal/httpapi"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	repo := chat.NewRepo(gdb)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	reg := ai.NewRegistry()
	reg.Register("openai", func() (ai.Provider, error) {
		return ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ModelName), nil
	})
	reg.Register("ollama", func() (ai.Provider, error) {
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	})

	provider, err := reg.Get(cfg.AIProvider)
	if err != nil {
		log.Fatalf("ai provider: %v", err)
	}

	svc := chat.NewService(repo, provider)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(svc),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server started, addr=%s provider=%s model=%s", cfg.HTTPAddr, cfg.AIProvider, cfg.ModelName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
