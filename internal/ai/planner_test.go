package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSiteParsesModelOutput(t *testing.T) {
	gw := &mockExchanger{
		exchangeFunc: func(_ context.Context, handle, _, _ string, _ ModelSelector) (string, error) {
			assert.Contains(t, handle, "_planner")
			return "```json\n" + `{
  "pages": ["Home", "About"],
  "sections": {"Home": ["Hero", "Features"], "About": ["Story"]},
  "style": {"theme": "minimal", "colors": {"primary": "#111111", "secondary": "#eeeeee"}, "typography": "Georgia, serif"},
  "features": ["responsive", "forms"]
}` + "\n```", nil
		},
	}
	g := NewGenerator(gw)

	plan, degraded := g.PlanSite(context.Background(), "a portfolio", defaultSelector, "h")

	require.NotNil(t, plan)
	assert.False(t, degraded)
	assert.Equal(t, []string{"Home", "About"}, plan.Pages)
	assert.Equal(t, []string{"Hero", "Features"}, plan.Sections["Home"])
	assert.Equal(t, "minimal", plan.Style.Theme)
}

func TestPlanSiteMalformedJSONUsesDefault(t *testing.T) {
	gw := &mockExchanger{
		exchangeFunc: func(_ context.Context, _, _, _ string, _ ModelSelector) (string, error) {
			return "not json at all", nil
		},
	}
	g := NewGenerator(gw)

	plan, degraded := g.PlanSite(context.Background(), "anything", defaultSelector, "h")

	assert.True(t, degraded)
	assert.Equal(t, DefaultPlan(), plan)
	assert.Equal(t, []string{"Home"}, plan.Pages)
	assert.Len(t, plan.Sections["Home"], 4)
	assert.Equal(t, []string{"responsive"}, plan.Features)
}

func TestPlanSiteGatewayFailureUsesDefault(t *testing.T) {
	g := NewGenerator(failingExchanger())

	plan, degraded := g.PlanSite(context.Background(), "anything", defaultSelector, "h")

	assert.True(t, degraded)
	assert.Equal(t, DefaultPlan(), plan)
}
