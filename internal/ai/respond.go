package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
)

// imagePlaceholderURL is returned whenever image generation fails.
const imagePlaceholderURL = "https://via.placeholder.com/800x600?text=Image+Generation+Placeholder"

// GenerateResponse is the single-turn conversational path under the Code
// Weaver persona. Unlike the project pipeline, failure here surfaces as a
// friendly apologetic message embedding the error description, never as an
// error to the caller.
func (g *Generator) GenerateResponse(ctx context.Context, prompt, modelID, sessionID string) *types.ChatResult {
	sel := ResolveModel(modelID)

	content, err := g.gateway.Exchange(ctx, sessionID, prompts.GetChatDirective(), prompt, sel)
	if err != nil {
		log.Printf("WARN: chat response generation failed: %v", err)
		return &types.ChatResult{
			Content: fmt.Sprintf("I apologize, but I encountered an error: %s. Please try again.", err.Error()),
		}
	}

	return &types.ChatResult{Content: content}
}

// GenerateImage runs a multimodal exchange and returns the image as a data
// URI. Any failure returns the fixed placeholder URL instead.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) string {
	handle := NewConversationHandle("img")
	sel := ModelSelector{Provider: ProviderGemini, ModelName: "gemini-2.5-flash-image-preview"}

	_, images, err := g.gateway.ExchangeMultimodal(ctx, handle, prompts.GetImageDirective(),
		fmt.Sprintf("Create an image: %s", prompt), sel, []string{"image", "text"})
	if err != nil {
		log.Printf("WARN: image generation failed, using placeholder: %v", err)
		return imagePlaceholderURL
	}
	if len(images) == 0 {
		log.Printf("WARN: image generation returned no attachments, using placeholder")
		return imagePlaceholderURL
	}

	return fmt.Sprintf("data:%s;base64,%s", images[0].MimeType, base64.StdEncoding.EncodeToString(images[0].Data))
}
