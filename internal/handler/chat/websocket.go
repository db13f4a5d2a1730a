package chat

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	debateService "github.com/polemic-ai/polemic/internal/service/debate"
)

// WebSocketHandler carries a debate over a duplex connection: one inbound
// frame per user message, one outbound frame per exchange.
type WebSocketHandler struct {
	debateSvc *debateService.Service
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler creates the websocket debate handler.
func NewWebSocketHandler(debateSvc *debateService.Service) *WebSocketHandler {
	return &WebSocketHandler{
		debateSvc: debateSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/debate", h.handleWebSocket)
}

type inboundFrame struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

type outboundFrame struct {
	Type           string                   `json:"type"`
	ConversationID string                   `json:"conversationId,omitempty"`
	Exchange       []debateService.TurnView `json:"exchange,omitempty"`
	Error          string                   `json:"error,omitempty"`
	Timestamp      int64                    `json:"timestamp"`
}

// handleWebSocket upgrades the connection and serves turns until the client
// goes away. A bad frame produces an error frame; the connection stays open.
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		if err := ValidateMessage(frame.Message); err != nil {
			h.writeFrame(conn, errorFrame(err.Error()))
			continue
		}

		result, err := h.debateSvc.Chat(r.Context(), frame.ConversationID, frame.Message)
		if err != nil {
			if errors.Is(err, debateService.ErrSessionNotFound) {
				h.writeFrame(conn, errorFrame("conversation not found"))
				continue
			}
			log.Printf("[ws] turn failed: %v", err)
			h.writeFrame(conn, errorFrame("failed to generate response"))
			continue
		}

		h.writeFrame(conn, outboundFrame{
			Type:           "exchange",
			ConversationID: result.ConversationID,
			Exchange:       result.Exchange,
			Timestamp:      time.Now().UnixMilli(),
		})
	}
}

func (h *WebSocketHandler) writeFrame(conn *websocket.Conn, frame outboundFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}

func errorFrame(message string) outboundFrame {
	return outboundFrame{Type: "error", Error: message, Timestamp: time.Now().UnixMilli()}
}
