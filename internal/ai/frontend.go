package ai

import (
	"context"
	"log"
	"strings"

	"codeweaver_server/internal/ai/prompts"
	"codeweaver_server/internal/types"
)

// Quality gates for model-produced artifacts. HTML below the minimum is
// unusable and replaced wholesale by a fallback template; short CSS is kept
// but prefixed with a deterministic enhancement block.
const (
	minHTMLLength = 500
	minCSSLength  = 300
)

// referenceNotes holds the style/layout notes keyed by the intent's
// reference site. Plain data, no behavior variation beyond text
// substitution.
var referenceNotes = map[string]string{
	"youtube": `Dark theme (#0f0f0f background, #ffffff text). Top navbar with logo, centered search bar and avatar. Collapsible left sidebar with navigation links. Main area is a responsive thumbnail grid of video cards with title, channel and view count under each thumbnail.`,
	"netflix": `Near-black theme (#141414) with bold red (#e50914) accents. Full-bleed hero banner with title and play/info buttons. Horizontally scrolling rows of poster cards grouped by category, cards scale up slightly on hover.`,
	"airbnb":  `Light, airy theme with white background and coral (#ff385c) accents. Prominent rounded search bar in the header. Card grid of listings with large photos, ratings and prices. Generous whitespace and soft shadows.`,
	"spotify": `Very dark theme (#121212) with green (#1db954) accents. Fixed left sidebar for navigation and playlists. Card grids with rounded artwork. Sticky bottom player bar with playback controls and a progress slider.`,
}

const genericReferenceNote = `Clean modern design with a clear visual hierarchy, a sticky top navbar, a strong hero section, consistent spacing on an 8px grid, and a restrained two-color palette with one accent color.`

// componentInstructions maps recognized component names to one-line build
// instructions. Unrecognized names contribute nothing to the checklist.
var componentInstructions = map[string]string{
	"navbar":       "- Sticky top navigation bar with logo, links and a primary call-to-action button.",
	"hero":         "- Hero section with headline, supporting copy and a prominent call-to-action.",
	"search_bar":   "- Centered search input with a submit button, wired to filter the visible content.",
	"video_grid":   "- Responsive grid of video cards: thumbnail, duration badge, title, channel, view count.",
	"sidebar":      "- Collapsible left sidebar with grouped navigation links and icons.",
	"card_grid":    "- Responsive card grid with image, title, short description and hover elevation.",
	"carousel":     "- Horizontally scrolling carousel row with previous/next controls.",
	"footer":       "- Footer with link columns, social icons and a copyright line.",
	"pricing":      "- Three-tier pricing table with a highlighted recommended plan.",
	"testimonials": "- Testimonial section with quotes, names and avatars.",
	"contact_form": "- Contact form with name, email and message fields plus client-side validation.",
	"gallery":      "- Masonry-style image gallery with a lightbox on click.",
	"features":     "- Feature highlights section with icon, title and blurb per feature.",
	"player":       "- Media player area with play/pause, progress bar and volume controls.",
}

func referenceNotesFor(site string) string {
	if note, ok := referenceNotes[site]; ok {
		return note
	}
	return genericReferenceNote
}

// componentChecklist concatenates the build instructions for the recognized
// components only, preserving the descriptor's ordering.
func componentChecklist(components []string) string {
	var lines []string
	for _, c := range components {
		if instr, ok := componentInstructions[c]; ok {
			lines = append(lines, instr)
		}
	}
	if len(lines) == 0 {
		return componentInstructions["hero"]
	}
	return strings.Join(lines, "\n")
}

// GenerateFrontend asks the model for the three frontend artifacts using a
// directive tailored to the intent descriptor, then validates and repairs
// them. A gateway failure is returned to the assembler; every other problem
// degrades in place (fallback substitution or CSS enhancement). The flag
// reports whether any degradation happened.
func (g *Generator) GenerateFrontend(ctx context.Context, request string, intent *types.IntentDescriptor, sel ModelSelector, handle string) (types.GeneratedArtifactSet, bool, error) {
	directive := prompts.GetFrontendDirective(
		referenceNotesFor(intent.ReferenceSite),
		componentChecklist(intent.KeyComponents),
	)

	raw, err := g.gateway.Exchange(ctx, handle+"_coder", directive, request, sel)
	if err != nil {
		return types.GeneratedArtifactSet{}, true, err
	}

	html := ExtractCodeBlock(raw, "html")
	if html == "" {
		// Some models answer with a bare document instead of a fence.
		html = ExtractHTMLDocument(raw)
	}
	css := ExtractCodeBlock(raw, "css")
	js := ExtractCodeBlock(raw, "javascript")

	degraded := false

	if len(html) < minHTMLLength {
		log.Printf("WARN: generated HTML below %d chars (%d), substituting %q fallback template", minHTMLLength, len(html), intent.ApplicationType)
		return FallbackFor(intent.ApplicationType), true, nil
	}

	html = repairHTMLStructure(html)

	if len(css) < minCSSLength {
		log.Printf("WARN: generated CSS below %d chars (%d), prefixing %q enhancement block", minCSSLength, len(css), intent.ApplicationType)
		css = cssEnhancementFor(intent.ApplicationType) + "\n" + css
		degraded = true
	}

	return types.GeneratedArtifactSet{HTML: html, CSS: css, JS: js}, degraded, nil
}

// repairHTMLStructure deterministically fixes the two structural omissions
// models make most often: a missing stylesheet link and a missing script
// tag. Applied only to non-empty HTML.
func repairHTMLStructure(html string) string {
	if !strings.Contains(html, "stylesheet") && strings.Contains(html, "</head>") {
		html = strings.Replace(html, "</head>", `    <link rel="stylesheet" href="styles.css">
</head>`, 1)
	}
	if !strings.Contains(html, "<script") && strings.Contains(html, "</body>") {
		html = strings.Replace(html, "</body>", `    <script src="app.js"></script>
</body>`, 1)
	}
	return html
}

// cssEnhancementFor returns the deterministic style skeleton prepended to
// undersized CSS, chosen by application type.
func cssEnhancementFor(applicationType string) string {
	if applicationType == "video_platform" {
		return videoPlatformCSSEnhancement
	}
	return genericCSSEnhancement
}

const videoPlatformCSSEnhancement = `/* video platform base styles */
:root {
  --bg: #0f0f0f;
  --surface: #1f1f1f;
  --text: #f1f1f1;
  --muted: #aaaaaa;
  --accent: #ff0033;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { background: var(--bg); color: var(--text); font-family: "Roboto", Arial, sans-serif; }
.topbar { display: flex; align-items: center; gap: 16px; padding: 8px 16px; background: var(--surface); position: sticky; top: 0; z-index: 10; }
.video-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 16px; padding: 24px; }
.video-card { background: var(--surface); border-radius: 12px; overflow: hidden; cursor: pointer; }
.video-card img { width: 100%; aspect-ratio: 16 / 9; object-fit: cover; display: block; }
.video-card .meta { padding: 12px; }
.video-card .meta .title { font-weight: 500; }
.video-card .meta .channel { color: var(--muted); font-size: 14px; margin-top: 4px; }
`

const genericCSSEnhancement = `/* dark modern base styles */
:root {
  --bg: #0b1220;
  --surface: #111a2e;
  --text: #e5e7eb;
  --muted: #94a3b8;
  --accent: #3b82f6;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { background: var(--bg); color: var(--text); font-family: "Inter", system-ui, sans-serif; line-height: 1.6; }
.container { max-width: 1100px; margin: 0 auto; padding: 0 24px; }
.hero { padding: 96px 0; text-align: center; }
.hero h1 { font-size: 48px; letter-spacing: -0.02em; }
.hero p { color: var(--muted); margin-top: 16px; }
.btn { display: inline-block; background: var(--accent); color: #fff; padding: 12px 28px; border-radius: 8px; text-decoration: none; margin-top: 32px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 24px; padding: 48px 0; }
.card { background: var(--surface); border-radius: 12px; padding: 24px; }
`
