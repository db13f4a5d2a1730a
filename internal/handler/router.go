package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/polemic-ai/polemic/internal/handler/chat"
	"github.com/polemic-ai/polemic/internal/handler/stream"
	middlewarePkg "github.com/polemic-ai/polemic/internal/middleware"
	"github.com/polemic-ai/polemic/internal/model/personality"
	debateService "github.com/polemic-ai/polemic/internal/service/debate"
	"github.com/polemic-ai/polemic/pkg/utils"
)

// NewRouter wires HTTP routes to the debate engine.
func NewRouter(debateSvc *debateService.Service, catalog *personality.Catalog, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	chatHandler := chat.New(debateSvc, catalog)
	wsHandler := chat.NewWebSocketHandler(debateSvc)
	streamHandler := stream.New(debateSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/stream/{conversationID}", func(w http.ResponseWriter, r *http.Request) {
			conversationID := chi.URLParam(r, "conversationID")
			message := r.URL.Query().Get("message")

			if err := chat.ValidateMessage(message); err != nil {
				utils.RespondError(w, http.StatusBadRequest, err.Error())
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, conversationID, message); err != nil {
				log.Printf("[sse] stream for conversation=%s failed: %v", conversationID, err)
			}
		})
	})

	return r
}
