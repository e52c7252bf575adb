package domain

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wrapper returned by every model-backed endpoint, whether the
// payload came from the live model or from the fallback catalog:
//
//	{"candidates":[{"content":{"parts":[{"text":"<json>"}]}}]}
//
// An envelope decoded from a live response keeps the original bytes and
// re-encodes to exactly those bytes, so extra upstream fields survive.
type Envelope struct {
	Candidates []Candidate `json:"candidates"`

	raw json.RawMessage
}

type Candidate struct {
	Content Content `json:"content"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type Part struct {
	Text string `json:"text"`
}

type plainEnvelope Envelope

// NewEnvelope wraps text in the single-candidate, single-part shape.
func NewEnvelope(text string) *Envelope {
	return &Envelope{
		Candidates: []Candidate{{
			Content: Content{
				Parts: []Part{{Text: text}},
				Role:  "model",
			},
		}},
	}
}

// NewJSONEnvelope encodes payload as JSON and wraps it as envelope text.
func NewJSONEnvelope(payload interface{}) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope payload: %w", err)
	}
	return NewEnvelope(string(data)), nil
}

// ParseEnvelope decodes a raw model response, retaining the raw bytes for
// pass-through.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var plain plainEnvelope
	if err := json.Unmarshal(body, &plain); err != nil {
		return nil, fmt.Errorf("failed to decode model envelope: %w", err)
	}
	env := Envelope(plain)
	env.raw = append(json.RawMessage(nil), body...)
	return &env, nil
}

// MarshalJSON implements json.Marshaler.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(plainEnvelope(e))
}

// Text returns the first part of the first candidate, or "" when absent.
// No schema validation is applied to the text.
func (e *Envelope) Text() string {
	if e == nil || len(e.Candidates) == 0 || len(e.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return e.Candidates[0].Content.Parts[0].Text
}

// DecodeText unmarshals the embedded JSON text into v.
func (e *Envelope) DecodeText(v interface{}) error {
	text := e.Text()
	if text == "" {
		return fmt.Errorf("envelope carries no text")
	}
	return json.Unmarshal([]byte(text), v)
}
