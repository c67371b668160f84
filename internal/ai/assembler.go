package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
	"codeweaver_server/internal/utils"
)

// Conventional filenames of the emitted manifest, in insertion order.
const (
	fileHTML     = "index.html"
	fileCSS      = "styles.css"
	fileJS       = "app.js"
	fileServer   = "server.py"
	fileManifest = "requirements.txt"
	fileReadme   = "README.md"
	filePackage  = "package.json"
)

// AssembleProject runs the full contextual pipeline: intent analysis →
// intent-aware frontend generation → backend generation → docs → package
// manifest → file manifest. It never fails: any role error or panic is
// converted into the full fallback project, so the caller always receives a
// usable, renderable result.
func (g *Generator) AssembleProject(ctx context.Context, request string, sel ModelSelector, framework string) (result *types.ProjectResult) {
	projectID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: assembly panicked for project %s: %v", projectID, r)
			result = g.fullFallbackResult(projectID, request, fmt.Sprintf("assembly failure: %v", r))
		}
	}()

	handle := NewConversationHandle("gen")
	log.Printf("Assembling project %s (model %s/%s)", projectID, sel.Provider, sel.ModelName)

	intent, intentDegraded := g.AnalyzeIntent(ctx, request, sel, handle)

	artifacts, frontendDegraded, err := g.GenerateFrontend(ctx, request, intent, sel, handle)
	if err != nil {
		log.Printf("WARN: frontend generation failed for project %s, returning full fallback: %v", projectID, err)
		return g.fullFallbackResult(projectID, request, "frontend generation failed: "+err.Error())
	}

	backend, err := g.GenerateBackend(ctx, request, sel, handle)
	if err != nil {
		log.Printf("WARN: backend generation failed for project %s, returning full fallback: %v", projectID, err)
		return g.fullFallbackResult(projectID, request, "backend generation failed: "+err.Error())
	}

	readme := buildReadme(request, framework)
	pkg := packageManifest()

	result = &types.ProjectResult{
		ProjectID:       projectID,
		HTML:            artifacts.HTML,
		CSS:             artifacts.CSS,
		JS:              artifacts.JS,
		Backend:         backend,
		Readme:          readme,
		PackageManifest: pkg,
		Intent:          intent,
	}
	result.Files = buildFileManifest(result)

	switch {
	case intentDegraded && frontendDegraded:
		result.Degraded = true
		result.DegradationReason = "default intent descriptor and frontend quality substitution"
	case intentDegraded:
		result.Degraded = true
		result.DegradationReason = "default intent descriptor substituted"
	case frontendDegraded:
		result.Degraded = true
		result.DegradationReason = "frontend quality substitution applied"
	}

	log.Printf("Assembled project %s: %d files, degraded=%v", projectID, len(result.Files), result.Degraded)
	return result
}

// GenerateWebsite is the simpler single-pass path: plan the site, then drive
// one code generation exchange with the serialized plan. Same never-fails
// guarantee as AssembleProject.
func (g *Generator) GenerateWebsite(ctx context.Context, request string, sel ModelSelector, framework string) (result *types.ProjectResult) {
	projectID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: single-pass generation panicked for project %s: %v", projectID, r)
			result = g.fullFallbackResult(projectID, request, fmt.Sprintf("assembly failure: %v", r))
		}
	}()

	handle := NewConversationHandle("gen")
	plan, planDegraded := g.PlanSite(ctx, request, sel, handle)

	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		planJSON = []byte("{}")
	}

	raw, err := g.gateway.Exchange(ctx, handle+"_coder", prompts.GetCodegenDirective(framework), prompts.GetCodegenUserPrompt(string(planJSON)), sel)
	if err != nil {
		log.Printf("WARN: code generation failed for project %s, returning full fallback: %v", projectID, err)
		return g.fullFallbackResult(projectID, request, "code generation failed: "+err.Error())
	}

	degraded := planDegraded
	html := ExtractCodeBlock(raw, "html")
	if html == "" {
		html = ExtractHTMLDocument(raw)
	}
	if html == "" {
		html = "<html><body><h1>Website</h1></body></html>"
		degraded = true
	}

	result = &types.ProjectResult{
		ProjectID:       projectID,
		HTML:            html,
		CSS:             ExtractCodeBlock(raw, "css"),
		JS:              ExtractCodeBlock(raw, "javascript"),
		Readme:          buildReadme(request, framework),
		PackageManifest: packageManifest(),
		Plan:            plan,
	}
	result.Files = buildFileManifest(result)
	if degraded {
		result.Degraded = true
		result.DegradationReason = "plan or markup substitution applied"
	}

	return result
}

// fullFallbackResult is the last line of defense: the video-platform
// fallback templates, an empty backend, and a minimal README carrying the
// original request.
func (g *Generator) fullFallbackResult(projectID, request, reason string) *types.ProjectResult {
	artifacts := FallbackFor("video_platform")
	result := &types.ProjectResult{
		ProjectID:         projectID,
		HTML:              artifacts.HTML,
		CSS:               artifacts.CSS,
		JS:                artifacts.JS,
		Readme:            buildFallbackReadme(request),
		PackageManifest:   packageManifest(),
		Degraded:          true,
		DegradationReason: reason,
	}
	result.Files = buildFileManifest(result)
	return result
}

// buildFileManifest compacts the result into the ordered file list. A file
// is appended only when its content is non-empty, except the package
// manifest which is always appended.
func buildFileManifest(r *types.ProjectResult) []types.ProjectFile {
	var files []types.ProjectFile
	add := func(name, content, description string, always bool) {
		if content == "" && !always {
			return
		}
		files = append(files, types.ProjectFile{
			Filename:    name,
			Content:     content,
			FileType:    utils.DetermineFileType(name),
			Description: description,
		})
	}

	add(fileHTML, r.HTML, "Main page markup", false)
	add(fileCSS, r.CSS, "Stylesheet", false)
	add(fileJS, r.JS, "Client-side behavior", false)
	add(fileServer, r.Backend.ServerSource, "Backend API server", false)
	add(fileManifest, r.Backend.DependencyManifest, "Backend dependency manifest", false)
	add(fileReadme, r.Readme, "Project documentation", false)
	add(filePackage, r.PackageManifest, "Package manifest", true)
	return files
}

// buildReadme is the documentation stub: a fixed template embedding the
// original request.
func buildReadme(request, framework string) string {
	return fmt.Sprintf(`# Generated Website

Generated from the request:

> %s

## Structure

- index.html - main page markup
- styles.css - stylesheet
- app.js - client-side behavior
- server.py / requirements.txt - optional backend API (when generated)

## Running

Open index.html in a browser. For the backend (if present):

    pip install -r requirements.txt
    uvicorn server:app --reload

Framework target: %s
`, request, framework)
}

func buildFallbackReadme(request string) string {
	return fmt.Sprintf(`# Generated Website

Generated from the request:

> %s

The model was unavailable, so this project was assembled from the built-in
template library. Open index.html in a browser.
`, request)
}

// packageManifest is the fixed minimal package descriptor appended to every
// project.
func packageManifest() string {
	return `{
  "name": "generated-website",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "start": "npx serve ."
  }
}
`
}
