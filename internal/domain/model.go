package domain

import "context"

// ModelClient sends one prompt to the generative model.
//
// Implementations return ErrQuotaExceeded (possibly wrapped) on HTTP 429,
// a configuration DomainError when the credential is missing, and an
// *UpstreamError for every other failure. They never retry.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (*Envelope, error)
	// Provider names the backend for logs and metrics.
	Provider() string
}
