package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/polemic-ai/polemic/internal/analysis/topic"
	"github.com/polemic-ai/polemic/internal/model/personality"
	debateService "github.com/polemic-ai/polemic/internal/service/debate"
	"github.com/polemic-ai/polemic/internal/store"
)

func setup() (*Handler, *debateService.Service) {
	svc := debateService.NewService(store.NewMemory(store.DefaultCapacity), topic.NewClassifier(""), personality.NewCatalog(), 5)
	return New(svc), svc
}

func TestStreamDeliversRebuttalChunks(t *testing.T) {
	handler, svc := setup()
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "I believe climate change is a serious threat")
	if err != nil {
		t.Fatalf("StartSession err: %v", err)
	}

	resp := httptest.NewRecorder()
	err = handler.HandleStreamRequest(ctx, resp, started.ConversationID, "But what about the scientific consensus?")
	if err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"event":"start"`) {
		t.Fatalf("missing start event: %s", body)
	}
	if !strings.Contains(body, `"event":"delta"`) {
		t.Fatalf("missing delta events: %s", body)
	}
	if !strings.Contains(body, `"event":"end"`) || !strings.Contains(body, `"finished":true`) {
		t.Fatalf("missing end event: %s", body)
	}
	if got := resp.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type: %s", got)
	}
}

func TestStreamUnknownConversation(t *testing.T) {
	handler, _ := setup()

	resp := httptest.NewRecorder()
	err := handler.HandleStreamRequest(context.Background(), resp, "missing-id", "But why would you say that?")
	if err == nil {
		t.Fatal("expected an error for an unknown conversation")
	}
	if !strings.Contains(resp.Body.String(), `"event":"error"`) {
		t.Fatalf("missing error event: %s", resp.Body.String())
	}
}
