package llm

import (
	"fmt"
	"os"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// NewProvider builds the configured provider. An empty provider name means
// narration is disabled and yields (nil, nil).
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		return NewOpenAIProvider(cfg, "openai")

	case "ollama":
		// Ollama exposes an OpenAI-compatible API and ignores the key.
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:11434/v1"
		}
		if cfg.APIKey == "" {
			cfg.APIKey = "ollama"
		}
		return NewOpenAIProvider(cfg, "ollama")

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", cfg.Provider)
	}
}
