package services

import (
	"context"
	"fmt"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/nexusos/backend/internal/config"
	"github.com/nexusos/backend/pkg/logger"
)

const (
	// OfflineMessage is returned without any network call when no API key
	// is configured.
	OfflineMessage = "NEXUS Core is offline. API key missing or invalid."
	// DegradedMessage replaces any upstream failure; completion errors never
	// reach the HTTP layer.
	DegradedMessage = "Neural link failed. Unable to process request."

	briefingMaxTokens = 256
)

const systemPrompt = `You are NEXUS, an advanced AI Personal Operating System.
Your tone is concise, professional, and slightly futuristic (like JARVIS or FRIDAY).
You do not apologize. You provide direct, actionable insights.
User Context: The user is the System Administrator.`

const briefingPrompt = "Give me a short, 2-sentence status report on the system based on the context provided."

type messageCreator interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// NexusService is the completion bridge: one bounded request per call, no
// retries, no streaming, fail-soft on every path.
type NexusService struct {
	messages  messageCreator
	model     string
	maxTokens int64
	timeout   time.Duration
}

func NewNexusService(cfg config.AIConfig) *NexusService {
	svc := &NexusService{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
	if cfg.APIKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
		svc.messages = &client.Messages
	}
	return svc
}

func (n *NexusService) Configured() bool {
	return n.messages != nil
}

// Complete forwards the user prompt plus the serialized snapshot and returns
// the model's text, or a fixed fallback string.
func (n *NexusService) Complete(ctx context.Context, prompt string, snapshot Snapshot) string {
	return n.complete(ctx, prompt, snapshot, n.maxTokens)
}

// Briefing produces the short daily status report.
func (n *NexusService) Briefing(ctx context.Context, snapshot Snapshot) string {
	return n.complete(ctx, briefingPrompt, snapshot, briefingMaxTokens)
}

func (n *NexusService) complete(ctx context.Context, prompt string, snapshot Snapshot, maxTokens int64) string {
	if n.messages == nil {
		return OfflineMessage
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	msg, err := n.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(n.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserTurn(prompt, snapshot))),
		},
	})
	if err != nil {
		logger.Error("nexus_completion_failed", err, map[string]interface{}{
			"model": n.model,
		})
		return DegradedMessage
	}
	if len(msg.Content) == 0 {
		logger.Warn("nexus_empty_response", map[string]interface{}{
			"model": n.model,
		})
		return DegradedMessage
	}

	return msg.Content[0].Text
}

func buildUserTurn(prompt string, snapshot Snapshot) string {
	if snapshot.Empty() {
		return prompt
	}
	return fmt.Sprintf("System context:\n%s\n\n%s", snapshot.JSON(), prompt)
}
