package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/pvollmer/origo/internal/model"
)

// OpenAIProvider speaks the OpenAI chat API. With a custom base URL it also
// serves any compatible endpoint, such as a local Ollama server.
type OpenAIProvider struct {
	client *openai.Client
	cfg    model.LLMConfig
	name   string
}

// NewOpenAIProvider creates a provider against api.openai.com or, when
// cfg.BaseURL is set, a compatible endpoint.
func NewOpenAIProvider(cfg model.LLMConfig, name string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %q", name)
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		name:   name,
	}, nil
}

func (p *OpenAIProvider) Name() string { return p.name }

// IsAvailable probes the endpoint with a lightweight model listing.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	if _, err := p.client.ListModels(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s API check failed: %v\n", p.name, err)
		return false
	}
	return true
}

// Narrate generates the prose narrative for a report.
func (p *OpenAIProvider) Narrate(ctx context.Context, report *model.AnalysisReport) (*model.Narrative, error) {
	chatModel := p.cfg.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	maxTokens := p.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 800
	}
	timeout := time.Duration(p.cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize statistical findings faithfully and never invent figures.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(report),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", p.name)
	}

	return &model.Narrative{
		Provider: p.name,
		Model:    chatModel,
		Text:     strings.TrimSpace(resp.Choices[0].Message.Content),
	}, nil
}
