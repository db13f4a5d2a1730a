// Package stream serves a debate turn over Server-Sent Events, delivering
// the rebuttal in word chunks so frontends can render it progressively.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	debateService "github.com/polemic-ai/polemic/internal/service/debate"
	"github.com/polemic-ai/polemic/pkg/utils"
)

// chunkWords is how many words go out per delta event.
const chunkWords = 6

// Handler streams rebuttals for existing conversations.
type Handler struct {
	debateSvc *debateService.Service
}

// New creates the stream handler.
func New(debateSvc *debateService.Service) *Handler {
	return &Handler{debateSvc: debateSvc}
}

// StreamResponse is one SSE frame.
type StreamResponse struct {
	Event          string `json:"event"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HandleStreamRequest runs one continuation turn and streams the rebuttal.
// The turn is computed before any event goes out, so an error never leaves a
// half-delivered rebuttal behind.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, conversationID, message string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	result, err := h.debateSvc.ContinueSession(ctx, conversationID, message)
	if err != nil {
		if errors.Is(err, debateService.ErrSessionNotFound) {
			h.send(w, flusher, StreamResponse{Event: "error", Error: "conversation not found"})
		} else {
			h.send(w, flusher, StreamResponse{Event: "error", Error: "failed to generate response"})
		}
		return err
	}

	rebuttal := lastBotMessage(result)

	h.send(w, flusher, StreamResponse{Event: "start", ConversationID: result.ConversationID})

	words := strings.Fields(rebuttal)
	for i := 0; i < len(words); i += chunkWords {
		end := i + chunkWords
		if end > len(words) {
			end = len(words)
		}
		h.send(w, flusher, StreamResponse{
			Event:          "delta",
			ConversationID: result.ConversationID,
			Content:        strings.Join(words[i:end], " "),
		})
	}

	h.send(w, flusher, StreamResponse{
		Event:          "message",
		ConversationID: result.ConversationID,
		Content:        rebuttal,
	})
	h.send(w, flusher, StreamResponse{
		Event:          "end",
		ConversationID: result.ConversationID,
		Finished:       true,
	})
	return nil
}

func (h *Handler) send(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

func lastBotMessage(result debateService.ChatResult) string {
	for i := len(result.Exchange) - 1; i >= 0; i-- {
		if result.Exchange[i].Role == "bot" {
			return result.Exchange[i].Message
		}
	}
	return ""
}
