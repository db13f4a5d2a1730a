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

	"github.com/joho/godotenv"

	"github.com/polemic-ai/polemic/internal/analysis/topic"
	"github.com/polemic-ai/polemic/internal/config"
	"github.com/polemic-ai/polemic/internal/handler"
	"github.com/polemic-ai/polemic/internal/model/personality"
	debateService "github.com/polemic-ai/polemic/internal/service/debate"
	"github.com/polemic-ai/polemic/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	catalog := personality.NewCatalog()
	if _, err := catalog.Get(cfg.Debate.DefaultPersonality); err != nil {
		log.Fatalf("DEFAULT_PERSONALITY %q is not a builtin personality", cfg.Debate.DefaultPersonality)
	}

	classifier := topic.NewClassifier(cfg.Debate.DefaultPersonality)
	conversations := store.NewMemory(cfg.Debate.SessionCapacity)
	debateSvc := debateService.NewService(conversations, classifier, catalog, cfg.Debate.MaxExchanges)

	log.Printf("debate engine ready: %d personalities, %d-exchange window, %d-session capacity",
		len(catalog.List()), cfg.Debate.MaxExchanges, cfg.Debate.SessionCapacity)

	router := handler.NewRouter(debateSvc, catalog, cfg.Server.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Polemic backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
