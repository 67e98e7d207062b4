package assist

import (
	"context"
	"fmt"
	"strings"

	"resumeapi/internal/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewCompleter builds the completer named by cfg.Provider. An empty provider yields
// a nil completer, which a Bridge treats as disabled. The returned close func is never nil.
func NewCompleter(ctx context.Context, cfg config.AssistConfig) (Completer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "":
		return nil, noop, nil
	case ProviderOpenAI:
		c, err := NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model, nil)
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil
	case ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, noop, err
		}
		return c, c.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown assist provider %q", cfg.Provider)
	}
}
