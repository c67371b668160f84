package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIntentParsesModelOutput(t *testing.T) {
	gw := &mockExchanger{
		exchangeFunc: func(_ context.Context, handle, _, _ string, _ ModelSelector) (string, error) {
			assert.Contains(t, handle, "_intent")
			return "```json\n" + `{
  "application_type": "video_platform",
  "reference_site": "youtube",
  "key_components": ["navbar", "video_grid"],
  "visual_style": "dark",
  "layout_pattern": "grid",
  "primary_features": ["search", "responsive"]
}` + "\n```", nil
		},
	}
	g := NewGenerator(gw)

	intent, degraded := g.AnalyzeIntent(context.Background(), "a site like youtube", defaultSelector, "h")

	require.NotNil(t, intent)
	assert.False(t, degraded)
	assert.Equal(t, "video_platform", intent.ApplicationType)
	assert.Equal(t, "youtube", intent.ReferenceSite)
	assert.Equal(t, []string{"navbar", "video_grid"}, intent.KeyComponents)
}

func TestAnalyzeIntentMalformedJSONUsesDefault(t *testing.T) {
	gw := &mockExchanger{
		exchangeFunc: func(_ context.Context, _, _, _ string, _ ModelSelector) (string, error) {
			return "I think you want a video site! Here's my analysis...", nil
		},
	}
	g := NewGenerator(gw)

	intent, degraded := g.AnalyzeIntent(context.Background(), "whatever", defaultSelector, "h")

	assert.True(t, degraded)
	assert.Equal(t, DefaultIntent(), intent)
}

func TestAnalyzeIntentMissingKeysUsesDefault(t *testing.T) {
	gw := &mockExchanger{
		exchangeFunc: func(_ context.Context, _, _, _ string, _ ModelSelector) (string, error) {
			return `{"visual_style": "dark"}`, nil
		},
	}
	g := NewGenerator(gw)

	intent, degraded := g.AnalyzeIntent(context.Background(), "whatever", defaultSelector, "h")

	assert.True(t, degraded)
	assert.Equal(t, "landing_page", intent.ApplicationType)
	assert.Equal(t, "custom", intent.ReferenceSite)
}

func TestAnalyzeIntentGatewayFailureUsesDefault(t *testing.T) {
	g := NewGenerator(failingExchanger())

	intent, degraded := g.AnalyzeIntent(context.Background(), "whatever", defaultSelector, "h")

	assert.True(t, degraded)
	assert.Equal(t, DefaultIntent(), intent)
}
