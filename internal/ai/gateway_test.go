package ai

import (
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestResolveModelKnownIdentifiers(t *testing.T) {
	cases := map[string]ModelSelector{
		"claude-sonnet-4": {ProviderAnthropic, "claude-4-sonnet-20250514"},
		"gpt-5":           {ProviderOpenAI, "gpt-5"},
		"gpt-5-mini":      {ProviderOpenAI, "gpt-5-mini"},
		"gemini-2.5-pro":  {ProviderGemini, "gemini-2.5-pro"},
	}
	for id, want := range cases {
		assert.Equal(t, want, ResolveModel(id), "identifier %q", id)
	}
}

func TestResolveModelUnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "gpt-3.5-turbo", "claude-opus-9", "not-a-model"} {
		assert.Equal(t, defaultSelector, ResolveModel(id), "identifier %q", id)
	}
}

func TestNewConversationHandle(t *testing.T) {
	a := NewConversationHandle("gen")
	b := NewConversationHandle("gen")

	assert.True(t, strings.HasPrefix(a, "gen_"))
	assert.NotEqual(t, a, b, "handles must be fresh per invocation")
}

func TestGatewayErrorTemporary(t *testing.T) {
	temporary := []error{
		errors.New("429 rate limit exceeded"),
		errors.New("503 service unavailable"),
		errors.New("request timeout"),
		errors.New("read tcp: connection reset by peer"),
		&openai.APIError{HTTPStatusCode: 500},
		&openai.APIError{HTTPStatusCode: 429},
	}
	for _, err := range temporary {
		ge := &GatewayError{Provider: ProviderOpenAI, Err: err}
		assert.True(t, ge.Temporary(), "expected temporary: %v", err)
	}

	permanent := []error{
		errors.New("401 invalid api key"),
		&openai.APIError{HTTPStatusCode: 400},
	}
	for _, err := range permanent {
		ge := &GatewayError{Provider: ProviderOpenAI, Err: err}
		assert.False(t, ge.Temporary(), "expected permanent: %v", err)
	}
}

func TestGatewayErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	ge := &GatewayError{Provider: ProviderGemini, Err: inner}

	assert.ErrorIs(t, ge, inner)
	assert.Contains(t, ge.Error(), "gemini")
}
