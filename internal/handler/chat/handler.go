package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/polemic-ai/polemic/internal/model/personality"
	debateService "github.com/polemic-ai/polemic/internal/service/debate"
	"github.com/polemic-ai/polemic/pkg/utils"
)

// Message bounds enforced before anything reaches the engine.
const (
	minMessageLen = 5
	maxMessageLen = 2000
)

// Handler serves the debate REST surface.
type Handler struct {
	debateSvc *debateService.Service
	catalog   *personality.Catalog
}

// New creates the chat handler.
func New(debateSvc *debateService.Service, catalog *personality.Catalog) *Handler {
	return &Handler{
		debateSvc: debateSvc,
		catalog:   catalog,
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/personalities", h.handleListPersonalities)
}

type chatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

// handleChat runs one debate turn: a null/empty conversationId starts a
// conversation, a known id continues it.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := ValidateMessage(payload.Message); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.ConversationID != "" {
		if _, err := uuid.Parse(payload.ConversationID); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "conversationId must be a valid UUID")
			return
		}
	}

	result, err := h.debateSvc.Chat(r.Context(), payload.ConversationID, payload.Message)
	if err != nil {
		if errors.Is(err, debateService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "conversation not found")
			return
		}
		log.Printf("[chat] turn failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate response")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// handleListPersonalities exposes the catalog for frontends.
func (h *Handler) handleListPersonalities(w http.ResponseWriter, _ *http.Request) {
	type personalityView struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Style string `json:"style"`
	}

	strategies := h.catalog.List()
	views := make([]personalityView, 0, len(strategies))
	for _, s := range strategies {
		views = append(views, personalityView{ID: s.ID(), Name: s.Name(), Style: s.Style()})
	}
	utils.RespondJSON(w, http.StatusOK, views)
}

// ValidateMessage enforces the 5-2000 character contract shared by the REST,
// SSE and websocket entry points. Bounds count characters, not bytes, so
// multibyte text is measured the way users read it.
func ValidateMessage(message string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(message))
	if length < minMessageLen {
		return fmt.Errorf("message too short (min %d characters)", minMessageLen)
	}
	if length > maxMessageLen {
		return fmt.Errorf("message too long (max %d characters)", maxMessageLen)
	}
	return nil
}
