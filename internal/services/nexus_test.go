package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/nexusos/backend/internal/config"
	"github.com/nexusos/backend/pkg/logger"
)

type fakeMessageCreator struct {
	calls      int
	lastParams anthropic.MessageNewParams
	response   *anthropic.Message
	err        error
}

func (f *fakeMessageCreator) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	f.calls++
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func textMessage(text string) *anthropic.Message {
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: text},
		},
	}
}

func newTestService(fake *fakeMessageCreator) *NexusService {
	return &NexusService{
		messages:  fake,
		model:     "test-model",
		maxTokens: 512,
		timeout:   time.Second,
	}
}

func TestNexus_OfflineWithoutAPIKey(t *testing.T) {
	logger.Init()

	svc := NewNexusService(config.AIConfig{APIKey: "", Model: "test-model", MaxTokens: 512, Timeout: time.Second})
	if svc.Configured() {
		t.Fatal("expected service without API key to report unconfigured")
	}

	got := svc.Complete(context.Background(), "hello", Snapshot{})
	if got != OfflineMessage {
		t.Fatalf("expected offline message, got %q", got)
	}
}

func TestNexus_ReturnsCompletionText(t *testing.T) {
	logger.Init()
	fake := &fakeMessageCreator{response: textMessage("All systems nominal.")}
	svc := newTestService(fake)

	got := svc.Complete(context.Background(), "status?", Snapshot{})
	if got != "All systems nominal." {
		t.Fatalf("expected completion text, got %q", got)
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", fake.calls)
	}
	if fake.lastParams.MaxTokens != 512 {
		t.Fatalf("expected bounded max tokens 512, got %d", fake.lastParams.MaxTokens)
	}
}

func TestNexus_SwallowsUpstreamErrors(t *testing.T) {
	logger.Init()
	fake := &fakeMessageCreator{err: errors.New("rate limited")}
	svc := newTestService(fake)

	got := svc.Complete(context.Background(), "status?", Snapshot{})
	if got != DegradedMessage {
		t.Fatalf("expected degraded message, got %q", got)
	}
}

func TestNexus_DegradesOnEmptyResponse(t *testing.T) {
	logger.Init()
	fake := &fakeMessageCreator{response: &anthropic.Message{}}
	svc := newTestService(fake)

	if got := svc.Complete(context.Background(), "status?", Snapshot{}); got != DegradedMessage {
		t.Fatalf("expected degraded message on empty content, got %q", got)
	}
}

func TestNexus_IncludesSnapshotInPrompt(t *testing.T) {
	logger.Init()
	fake := &fakeMessageCreator{response: textMessage("ok")}
	svc := newTestService(fake)

	snapshot := Snapshot{Tasks: []TaskDigest{{Title: "ship it", Status: "todo"}}}
	svc.Complete(context.Background(), "what should I do?", snapshot)

	if len(fake.lastParams.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(fake.lastParams.Messages))
	}
	turn := fake.lastParams.Messages[0].Content[0].OfText.Text
	if !strings.Contains(turn, "ship it") {
		t.Fatalf("expected snapshot content in the user turn, got %q", turn)
	}
	if !strings.Contains(turn, "what should I do?") {
		t.Fatalf("expected the user prompt in the user turn, got %q", turn)
	}
}

func TestNexus_BriefingUsesSmallerBudget(t *testing.T) {
	logger.Init()
	fake := &fakeMessageCreator{response: textMessage("Two sentences.")}
	svc := newTestService(fake)

	got := svc.Briefing(context.Background(), Snapshot{})
	if got != "Two sentences." {
		t.Fatalf("expected briefing text, got %q", got)
	}
	if fake.lastParams.MaxTokens != briefingMaxTokens {
		t.Fatalf("expected briefing max tokens %d, got %d", briefingMaxTokens, fake.lastParams.MaxTokens)
	}
}
