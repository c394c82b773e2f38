// Package ai provides the optional LLM layer. It only rephrases insights the
// rule engine already produced; it is never a source of truth and the server
// runs fully without it.
package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	mwerrors "github.com/mindwell/mindwell/internal/errors"
	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/store"
)

// Summarizer turns a list of derived insights into a short narrative.
type Summarizer interface {
	Summarize(ctx context.Context, style store.CommunicationStyle, insights []*store.Insight) (string, error)
}

type llmSummarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer creates an LLM-backed summarizer from the profile, or nil if
// AI is not enabled.
func NewSummarizer(p *profile.Profile) Summarizer {
	if !p.IsAIEnabled() {
		return nil
	}
	config := openai.DefaultConfig(p.AIAPIKey)
	config.BaseURL = p.AIBaseURL
	return &llmSummarizer{
		client: openai.NewClientWithConfig(config),
		model:  p.AIModel,
	}
}

const systemPrompt = "You are a wellness companion. Rewrite the given observations " +
	"as one short, warm paragraph addressed to the user. Do not add new claims, " +
	"diagnoses or advice beyond what the observations state."

func (s *llmSummarizer) Summarize(ctx context.Context, style store.CommunicationStyle, insights []*store.Insight) (string, error) {
	if len(insights) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("Communication style: ")
	b.WriteString(string(style))
	b.WriteString("\nObservations:\n")
	for _, ins := range insights {
		b.WriteString("- (")
		b.WriteString(string(ins.Kind))
		b.WriteString(") ")
		b.WriteString(ins.Content)
		b.WriteByte('\n')
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		MaxTokens:   256,
		Temperature: 0.4,
	})
	if err != nil {
		return "", mwerrors.Wrap(mwerrors.ErrCodeLLMUnavailable, "insight summarization failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", mwerrors.New(mwerrors.ErrCodeLLMUnavailable, "empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
