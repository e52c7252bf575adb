// Package langchain adapts langchaingo chat models to domain.ModelClient so
// the gateway can run against OpenAI-compatible or Ollama backends.
package langchain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pathpilot/internal/config"
	"pathpilot/internal/domain"
	"pathpilot/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// caller is the subset of a langchaingo model the client needs.
type caller interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Client wraps a langchaingo model. Replies are returned as single-part
// envelopes so handlers see the same shape as the Gemini pass-through.
type Client struct {
	llm      caller
	provider string
	model    string
	// initErr is returned from every Generate call when the model could not
	// be built at startup.
	initErr error
}

// NewClient builds a client for the openai or ollama provider. Construction
// never fails; a missing credential surfaces on each Generate call instead.
func NewClient(cfg config.ModelConfig) *Client {
	c := &Client{provider: cfg.Provider, model: cfg.Name}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			c.initErr = domain.NewConfigurationError("MODEL_API_KEY is not configured")
			return c
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Name != "" {
			opts = append(opts, openai.WithModel(cfg.Name))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			c.initErr = domain.NewConfigurationError(fmt.Sprintf("failed to create openai client: %v", err))
			return c
		}
		c.llm = llm
	case config.ProviderOllama:
		opts := []ollama.Option{ollama.WithModel(cfg.Name)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			c.initErr = domain.NewConfigurationError(fmt.Sprintf("failed to create ollama client: %v", err))
			return c
		}
		c.llm = llm
	default:
		c.initErr = domain.NewConfigurationError(fmt.Sprintf("unsupported model provider %q", cfg.Provider))
	}
	return c
}

func newWithCaller(llm caller, provider, model string) *Client {
	return &Client{llm: llm, provider: provider, model: model}
}

func (c *Client) Provider() string {
	return c.provider
}

// Generate sends prompt to the model and wraps the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (*domain.Envelope, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}

	text, err := c.llm.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		if isRateLimited(err) {
			logger.Get().Warn("Model quota exhausted", zap.String("provider", c.provider), zap.String("model", c.model))
			return nil, domain.ErrQuotaExceeded
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &domain.UpstreamError{Body: "model request timed out"}
		}
		return nil, &domain.UpstreamError{Body: err.Error()}
	}
	return domain.NewEnvelope(text), nil
}

// isRateLimited recognizes the 429 family from langchaingo error text; the
// library does not expose the response status.
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota")
}

var _ domain.ModelClient = (*Client)(nil)
