package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// happyExchanger answers every role with minimal but valid output.
func happyExchanger() *mockExchanger {
	return &mockExchanger{
		exchangeFunc: func(_ context.Context, handle, _, _ string, _ ModelSelector) (string, error) {
			switch {
			case strings.Contains(handle, "_intent"):
				return `{"application_type": "landing_page", "reference_site": "custom", "key_components": ["hero"], "visual_style": "modern", "layout_pattern": "single_page", "primary_features": ["responsive"]}`, nil
			case strings.Contains(handle, "_planner"):
				return `{"pages": ["Home"], "sections": {"Home": ["Hero"]}, "style": {"theme": "modern", "colors": {"primary": "#fff", "secondary": "#000"}, "typography": "sans"}, "features": ["responsive"]}`, nil
			case strings.Contains(handle, "_coder"):
				return frontendResponse(padHTML(skeletonHTML), "body { margin: 0; }", "console.log('ok');"), nil
			case strings.Contains(handle, "_backend"):
				return "SERVER:\n```python\nfrom fastapi import FastAPI\napp = FastAPI()\n```\n\nREQUIREMENTS:\n```txt\nfastapi==0.110.0\n```", nil
			default:
				return "ok", nil
			}
		},
	}
}

func TestAssembleProjectHappyPath(t *testing.T) {
	g := NewGenerator(happyExchanger())

	result := g.AssembleProject(context.Background(), "build me a simple landing page", defaultSelector, "react")

	require.NotNil(t, result)
	require.NotEmpty(t, result.Files)

	var names []string
	for _, f := range result.Files {
		names = append(names, f.Filename)
	}

	// The four guaranteed files, in that relative order.
	idx := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}
	for _, name := range []string{"index.html", "styles.css", "app.js", "package.json"} {
		require.NotEqual(t, -1, idx(name), "missing %s in %v", name, names)
	}
	assert.Less(t, idx("index.html"), idx("styles.css"))
	assert.Less(t, idx("styles.css"), idx("app.js"))
	assert.Less(t, idx("app.js"), idx("package.json"))

	assert.NotNil(t, result.Intent)
	assert.Equal(t, "landing_page", result.Intent.ApplicationType)
	assert.Contains(t, result.Backend.ServerSource, "FastAPI")
	assert.Contains(t, result.Readme, "build me a simple landing page")
}

func TestAssembleProjectGatewayDownReturnsFullFallback(t *testing.T) {
	g := NewGenerator(failingExchanger())
	prompt := "a recipe sharing site"

	result := g.AssembleProject(context.Background(), prompt, defaultSelector, "react")

	require.NotNil(t, result)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.DegradationReason)

	fallback := FallbackFor("video_platform")
	assert.Equal(t, fallback.HTML, result.HTML)
	assert.Equal(t, fallback.CSS, result.CSS)
	assert.Equal(t, fallback.JS, result.JS)
	assert.Empty(t, result.Backend.ServerSource)
	assert.Empty(t, result.Backend.DependencyManifest)
	assert.Contains(t, result.Readme, prompt)
	require.NotEmpty(t, result.Files)
	assert.Equal(t, "package.json", result.Files[len(result.Files)-1].Filename)
}

func TestAssembleProjectNeverFails(t *testing.T) {
	panicky := &mockExchanger{
		exchangeFunc: func(_ context.Context, _, _, _ string, _ ModelSelector) (string, error) {
			panic("unexpected provider state")
		},
	}

	for _, prompt := range []string{"", "build me a simple landing page", "%%%###"} {
		result := NewGenerator(panicky).AssembleProject(context.Background(), prompt, defaultSelector, "react")

		require.NotNil(t, result, "prompt %q", prompt)
		assert.NotEmpty(t, result.Files, "prompt %q", prompt)
		assert.True(t, result.Degraded)
	}
}

func TestAssembleProjectPackageManifestAlwaysAppended(t *testing.T) {
	g := NewGenerator(failingExchanger())

	result := g.AssembleProject(context.Background(), "x", defaultSelector, "react")

	found := false
	for _, f := range result.Files {
		if f.Filename == "package.json" {
			found = true
			assert.NotEmpty(t, f.Content)
			assert.Equal(t, "json", f.FileType)
		}
	}
	assert.True(t, found)
}

func TestGenerateWebsiteSinglePass(t *testing.T) {
	g := NewGenerator(happyExchanger())

	result := g.GenerateWebsite(context.Background(), "a portfolio", defaultSelector, "react")

	require.NotNil(t, result)
	require.NotNil(t, result.Plan)
	assert.Equal(t, []string{"Home"}, result.Plan.Pages)
	assert.Contains(t, result.HTML, "<h1>hi</h1>")
	require.NotEmpty(t, result.Files)
	assert.Equal(t, "index.html", result.Files[0].Filename)
}

func TestGenerateWebsiteGatewayDownReturnsFullFallback(t *testing.T) {
	g := NewGenerator(failingExchanger())

	result := g.GenerateWebsite(context.Background(), "a portfolio", defaultSelector, "react")

	require.NotNil(t, result)
	assert.True(t, result.Degraded)
	assert.Equal(t, FallbackFor("video_platform").HTML, result.HTML)
}
