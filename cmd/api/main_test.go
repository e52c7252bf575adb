package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"pathpilot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFallbackCommand_Quiz(t *testing.T) {
	out, err := runCLI(t, "fallback", "quiz", "--num-questions", "2", "--topic", "Design")
	require.NoError(t, err)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	var quiz domain.Quiz
	require.NoError(t, env.DecodeText(&quiz))
	assert.Len(t, quiz.Questions, 2)
	assert.Equal(t, "Design Career Quiz", quiz.Title)
}

func TestFallbackCommand_Trending(t *testing.T) {
	out, err := runCLI(t, "fallback", "trending")
	require.NoError(t, err)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	var careers []domain.Career
	require.NoError(t, env.DecodeText(&careers))
	assert.NotEmpty(t, careers)
}

func TestFallbackCommand_UnknownKind(t *testing.T) {
	_, err := runCLI(t, "fallback", "horoscope")
	assert.ErrorContains(t, err, "unknown fallback kind")
}
