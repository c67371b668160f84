package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"codeweaver_server/internal/metrics"
)

// Provider identifies a model provider family.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// ModelSelector is a resolved (provider, model name) pair. It is constructed
// once per request and never mutated.
type ModelSelector struct {
	Provider  Provider
	ModelName string
}

// modelTable maps the public model identifiers to provider/model pairs.
// Unrecognized identifiers resolve to defaultSelector.
var modelTable = map[string]ModelSelector{
	"claude-sonnet-4": {ProviderAnthropic, "claude-4-sonnet-20250514"},
	"gpt-5":           {ProviderOpenAI, "gpt-5"},
	"gpt-5-mini":      {ProviderOpenAI, "gpt-5-mini"},
	"gemini-2.5-pro":  {ProviderGemini, "gemini-2.5-pro"},
}

var defaultSelector = ModelSelector{ProviderAnthropic, "claude-4-sonnet-20250514"}

// ResolveModel maps a public model identifier to its provider/model pair.
func ResolveModel(id string) ModelSelector {
	if sel, ok := modelTable[id]; ok {
		return sel
	}
	return defaultSelector
}

// NewConversationHandle returns a fresh opaque conversation scope. Agent
// roles derive their own handle by suffixing (e.g. handle + "_planner") so
// roles never share conversation state.
func NewConversationHandle(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.New().String(), "-", "")[:16])
}

// GatewayError wraps any provider, network, auth, or timeout failure during
// a model exchange. The gateway never retries; callers treat any GatewayError
// as "fall through to fallback".
type GatewayError struct {
	Provider Provider
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway (%s): %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Temporary reports whether the underlying failure looks transient (rate
// limit, 5xx, timeout). Used for logging and metrics only, never to retry.
func (e *GatewayError) Temporary() bool {
	if e.Err == nil {
		return false
	}
	msg := strings.ToLower(e.Err.Error())
	if strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "500 internal server error") ||
		strings.Contains(msg, "502 bad gateway") ||
		strings.Contains(msg, "503 service unavailable") ||
		strings.Contains(msg, "504 gateway timeout") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset by peer") ||
		strings.Contains(msg, "context deadline exceeded") {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(e.Err, &apiErr) {
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// Attachment is a binary payload returned by a multimodal exchange.
type Attachment struct {
	MimeType string
	Data     []byte
}

// Exchanger is the model gateway boundary: one role directive plus one user
// turn in, the provider's raw text out. Agent roles depend on this interface
// so tests can substitute a mock.
type Exchanger interface {
	Exchange(ctx context.Context, handle, directive, userText string, sel ModelSelector) (string, error)
	ExchangeMultimodal(ctx context.Context, handle, directive, userText string, sel ModelSelector, modalities []string) (string, []Attachment, error)
}

// GatewayConfig carries per-provider credentials and endpoints. Anthropic and
// Gemini are reached through their OpenAI-compatible endpoints, which keeps
// the directive/turn exchange provider-agnostic at this boundary.
type GatewayConfig struct {
	OpenAIKey        string
	AnthropicKey     string
	AnthropicBaseURL string // default https://api.anthropic.com/v1
	GeminiKey        string
	GeminiBaseURL    string // default https://generativelanguage.googleapis.com/v1beta/openai
}

// Gateway is the concrete Exchanger backed by go-openai clients, one per
// provider family. Constructed once in main and injected; it holds no other
// state between calls.
type Gateway struct {
	clients map[Provider]*openai.Client
	limiter *rate.Limiter
}

// provider call ceiling: 10 req/s with burst capacity of 5
const (
	gatewayRateLimit = 10
	gatewayRateBurst = 5
)

func NewGateway(cfg GatewayConfig) *Gateway {
	clients := map[Provider]*openai.Client{
		ProviderOpenAI: openai.NewClient(cfg.OpenAIKey),
	}

	anthropicBase := cfg.AnthropicBaseURL
	if anthropicBase == "" {
		anthropicBase = "https://api.anthropic.com/v1"
	}
	anthropicCfg := openai.DefaultConfig(cfg.AnthropicKey)
	anthropicCfg.BaseURL = anthropicBase
	clients[ProviderAnthropic] = openai.NewClientWithConfig(anthropicCfg)

	geminiBase := cfg.GeminiBaseURL
	if geminiBase == "" {
		geminiBase = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	geminiCfg := openai.DefaultConfig(cfg.GeminiKey)
	geminiCfg.BaseURL = geminiBase
	clients[ProviderGemini] = openai.NewClientWithConfig(geminiCfg)

	return &Gateway{
		clients: clients,
		limiter: rate.NewLimiter(gatewayRateLimit, gatewayRateBurst),
	}
}

// exchangeError wraps a provider failure and records it before handing it to
// the caller.
func exchangeError(provider Provider, err error) *GatewayError {
	ge := &GatewayError{Provider: provider, Err: err}
	metrics.GatewayErrorsTotal.WithLabelValues(string(provider), strconv.FormatBool(ge.Temporary())).Inc()
	return ge
}

func (g *Gateway) clientFor(sel ModelSelector) *openai.Client {
	if c, ok := g.clients[sel.Provider]; ok {
		return c
	}
	return g.clients[defaultSelector.Provider]
}

// Exchange sends one user turn under the given conversation handle and role
// directive and returns the provider's raw text verbatim.
func (g *Gateway) Exchange(ctx context.Context, handle, directive, userText string, sel ModelSelector) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", exchangeError(sel.Provider, err)
	}

	resp, err := g.clientFor(sel).CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: sel.ModelName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: directive},
				{Role: openai.ChatMessageRoleUser, Content: userText},
			},
			Temperature: 0.3,
			User:        handle,
		},
	)
	if err != nil {
		return "", exchangeError(sel.Provider, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", exchangeError(sel.Provider, errors.New("provider returned empty response"))
	}

	return resp.Choices[0].Message.Content, nil
}

// ExchangeMultimodal behaves like Exchange but additionally requests the given
// modalities and returns any binary payloads alongside the text. When "image"
// is requested the image endpoint of the selected provider is used.
func (g *Gateway) ExchangeMultimodal(ctx context.Context, handle, directive, userText string, sel ModelSelector, modalities []string) (string, []Attachment, error) {
	wantsImage := false
	for _, m := range modalities {
		if m == "image" {
			wantsImage = true
		}
	}
	if !wantsImage {
		text, err := g.Exchange(ctx, handle, directive, userText, sel)
		return text, nil, err
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", nil, exchangeError(sel.Provider, err)
	}

	resp, err := g.clientFor(sel).CreateImage(ctx, openai.ImageRequest{
		Model:          sel.ModelName,
		Prompt:         userText,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		User:           handle,
	})
	if err != nil {
		return "", nil, exchangeError(sel.Provider, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", nil, exchangeError(sel.Provider, errors.New("provider returned no image data"))
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return "", nil, exchangeError(sel.Provider, fmt.Errorf("decoding image payload: %w", err))
	}

	return "", []Attachment{{MimeType: "image/png", Data: raw}}, nil
}
