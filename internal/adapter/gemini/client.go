// Package gemini calls the Generative Language generateContent endpoint and
// forwards its response envelope untouched.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pathpilot/internal/domain"
	"pathpilot/internal/logger"

	"go.uber.org/zap"
)

const providerName = "gemini"

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 4096

// Client is a single-shot generateContent client. It performs no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// NewClient creates a Client. An empty apiKey is accepted; every call then
// fails with a configuration error.
func NewClient(baseURL, model, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []domain.Part `json:"parts"`
}

func (c *Client) Provider() string {
	return providerName
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

// Generate sends prompt and returns the raw response envelope.
func (c *Client) Generate(ctx context.Context, prompt string) (*domain.Envelope, error) {
	if c.apiKey == "" {
		return nil, domain.NewConfigurationError("GEMINI_API_KEY is not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []domain.Part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to encode model request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewInternalError("failed to build model request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the key; report only the underlying cause.
		cause := err
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			cause = urlErr.Err
		}
		return nil, &domain.UpstreamError{Body: cause.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("failed to read response: %v", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		logger.Get().Warn("Model quota exhausted", zap.String("model", c.model))
		return nil, domain.ErrQuotaExceeded
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), maxErrorBody)}
	}

	env, err := domain.ParseEnvelope(respBody)
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: err.Error()}
	}
	logger.Get().Debug("Model response received", zap.String("model", c.model), zap.Int("bytes", len(respBody)))
	return env, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ domain.ModelClient = (*Client)(nil)
