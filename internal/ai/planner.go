package ai

import (
	"context"
	"encoding/json"
	"log"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
)

// DefaultPlan is the fixed site plan substituted when the planning agent's
// output cannot be parsed: a single Home page with four generic sections and
// a two-color palette.
func DefaultPlan() *types.SitePlan {
	return &types.SitePlan{
		Pages: []string{"Home"},
		Sections: map[string][]string{
			"Home": {"Hero", "Features", "About", "Contact"},
		},
		Style: types.PlanStyle{
			Theme:      "modern",
			Colors:     map[string]string{"primary": "#3b82f6", "secondary": "#8b5cf6"},
			Typography: "Inter, sans-serif",
		},
		Features: []string{"responsive"},
	}
}

// PlanSite turns a free-text request into a structured site plan for the
// single-pass generation path. Same substitution-on-failure discipline as
// AnalyzeIntent.
func (g *Generator) PlanSite(ctx context.Context, request string, sel ModelSelector, handle string) (*types.SitePlan, bool) {
	raw, err := g.gateway.Exchange(ctx, handle+"_planner", prompts.GetPlannerDirective(), prompts.GetPlannerUserPrompt(request), sel)
	if err != nil {
		log.Printf("WARN: planning exchange failed, using default plan: %v", err)
		return DefaultPlan(), true
	}

	var plan types.SitePlan
	if err := json.Unmarshal([]byte(ExtractJSONPayload(raw)), &plan); err != nil {
		log.Printf("WARN: planning output not parseable, using default plan: %v", err)
		return DefaultPlan(), true
	}
	if len(plan.Pages) == 0 {
		log.Printf("WARN: planning output has no pages, using default plan")
		return DefaultPlan(), true
	}

	return &plan, false
}
