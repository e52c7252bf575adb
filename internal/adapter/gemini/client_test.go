package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pathpilot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveResponse = `{"candidates":[{"content":{"parts":[{"text":"[{\"title\":\"Nurse\"}]"}],"role":"model"},"finishReason":"STOP"}],"usageMetadata":{"totalTokenCount":42}}`

func TestClient_Generate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(liveResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1beta/", "gemini-test", "k-123", srv.Client())
	env, err := c.Generate(context.Background(), "list careers")
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "k-123", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "list careers", gotBody.Contents[0].Parts[0].Text)

	assert.Equal(t, `[{"title":"Nurse"}]`, env.Text())
	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, liveResponse, string(out), "live envelope must pass through verbatim")
}

func TestClient_Generate_QuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "k", nil).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, domain.IsQuotaExceeded(err))
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"API key not valid"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "k", nil).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.False(t, domain.IsQuotaExceeded(err))

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "API key not valid")
	assert.Equal(t, domain.CodeUpstream, domain.CodeOf(err))
}

func TestClient_Generate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "k", nil).Generate(context.Background(), "p")
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusOK, upstream.StatusCode)
}

func TestClient_Generate_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "m", "secret-key", nil).Generate(context.Background(), "p")
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Zero(t, upstream.StatusCode)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestClient_Generate_MissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	_, err := NewClient(srv.URL, "m", "", nil).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, domain.CodeConfiguration, domain.CodeOf(err))
	assert.False(t, called, "no request may be sent without a credential")
}

func TestClient_Provider(t *testing.T) {
	assert.Equal(t, "gemini", NewClient("", "", "", nil).Provider())
}
