package langchain

import (
	"context"
	"errors"
	"testing"

	"pathpilot/internal/config"
	"pathpilot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type MockCaller struct {
	mock.Mock
}

func (m *MockCaller) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success wraps text in an envelope", func(t *testing.T) {
		llm := new(MockCaller)
		llm.On("Call", ctx, "hello").Return(`{"ok":true}`, nil).Once()

		env, err := newWithCaller(llm, config.ProviderOllama, "llama3").Generate(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, env.Candidates, 1)
		assert.Equal(t, `{"ok":true}`, env.Text())
		llm.AssertExpectations(t)
	})

	t.Run("rate limit maps to quota exceeded", func(t *testing.T) {
		llm := new(MockCaller)
		llm.On("Call", ctx, "p").Return("", errors.New("API returned unexpected status code: 429: Rate limit reached")).Once()

		_, err := newWithCaller(llm, config.ProviderOpenAI, "gpt").Generate(ctx, "p")
		assert.True(t, domain.IsQuotaExceeded(err))
	})

	t.Run("other failures are upstream errors", func(t *testing.T) {
		llm := new(MockCaller)
		llm.On("Call", ctx, "p").Return("", errors.New("connection refused")).Once()

		_, err := newWithCaller(llm, config.ProviderOllama, "llama3").Generate(ctx, "p")
		require.Error(t, err)
		assert.False(t, domain.IsQuotaExceeded(err))
		assert.Equal(t, domain.CodeUpstream, domain.CodeOf(err))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestNewClient(t *testing.T) {
	t.Run("openai without key fails on use", func(t *testing.T) {
		c := NewClient(config.ModelConfig{Provider: config.ProviderOpenAI, Name: "gpt-4o-mini"})
		assert.Equal(t, config.ProviderOpenAI, c.Provider())

		_, err := c.Generate(context.Background(), "p")
		require.Error(t, err)
		assert.Equal(t, domain.CodeConfiguration, domain.CodeOf(err))
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := NewClient(config.ModelConfig{Provider: "bard"}).Generate(context.Background(), "p")
		assert.Equal(t, domain.CodeConfiguration, domain.CodeOf(err))
	})

	t.Run("ollama builds without credentials", func(t *testing.T) {
		c := NewClient(config.ModelConfig{Provider: config.ProviderOllama, Name: "llama3", BaseURL: "http://localhost:11434"})
		assert.NoError(t, c.initErr)
		assert.NotNil(t, c.llm)
	})
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(errors.New("status 429")))
	assert.True(t, isRateLimited(errors.New("You exceeded your current quota")))
	assert.True(t, isRateLimited(errors.New("Rate Limit hit")))
	assert.False(t, isRateLimited(errors.New("bad gateway")))
}
