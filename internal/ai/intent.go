package ai

import (
	"context"
	"encoding/json"
	"log"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
)

// DefaultIntent is the fixed descriptor substituted whenever the intent
// analyzer's output cannot be parsed. The frontend generator must always see
// a usable descriptor.
func DefaultIntent() *types.IntentDescriptor {
	return &types.IntentDescriptor{
		ApplicationType: "landing_page",
		ReferenceSite:   "custom",
		KeyComponents:   []string{"navbar", "hero", "features", "footer"},
		VisualStyle:     "modern",
		LayoutPattern:   "single_page",
		PrimaryFeatures: []string{"responsive"},
	}
}

// AnalyzeIntent classifies a free-text request into an IntentDescriptor.
// Any gateway failure or parse failure degrades silently to the default
// descriptor; the returned flag reports whether that substitution happened.
func (g *Generator) AnalyzeIntent(ctx context.Context, request string, sel ModelSelector, handle string) (*types.IntentDescriptor, bool) {
	raw, err := g.gateway.Exchange(ctx, handle+"_intent", prompts.GetIntentDirective(), request, sel)
	if err != nil {
		log.Printf("WARN: intent analysis exchange failed, using default descriptor: %v", err)
		return DefaultIntent(), true
	}

	var intent types.IntentDescriptor
	if err := json.Unmarshal([]byte(ExtractJSONPayload(raw)), &intent); err != nil {
		log.Printf("WARN: intent analysis output not parseable, using default descriptor: %v", err)
		return DefaultIntent(), true
	}
	if intent.ApplicationType == "" || intent.ReferenceSite == "" {
		log.Printf("WARN: intent analysis output missing required keys, using default descriptor")
		return DefaultIntent(), true
	}

	return &intent, false
}
