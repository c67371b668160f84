package ai

import (
	"context"
	"log"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
)

// defaultRequirements is the fixed minimal pinned-dependency list substituted
// when the model omits the manifest block.
const defaultRequirements = `fastapi==0.110.0
uvicorn==0.29.0
pydantic==2.6.4
`

// GenerateBackend asks the model for a server implementation and its
// dependency manifest. Backend output is best-effort: presence is the only
// validation, a missing manifest gets the default pinned list. A gateway
// failure is returned to the assembler.
func (g *Generator) GenerateBackend(ctx context.Context, request string, sel ModelSelector, handle string) (types.BackendArtifactSet, error) {
	raw, err := g.gateway.Exchange(ctx, handle+"_backend", prompts.GetBackendDirective(), prompts.GetBackendUserPrompt(request), sel)
	if err != nil {
		return types.BackendArtifactSet{}, err
	}

	server := ExtractCodeBlock(raw, "python")
	manifest := ExtractCodeBlock(raw, "txt")
	if manifest == "" {
		log.Printf("WARN: backend response missing requirements block, using default pinned list")
		manifest = defaultRequirements
	}

	return types.BackendArtifactSet{ServerSource: server, DependencyManifest: manifest}, nil
}
