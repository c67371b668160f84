package types

// GeneratedFile represents the structure expected from the LLM for each file.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "html", "css", "json"
	Content  string `json:"content"`
}

// IntentDescriptor is the structured classification of a free-text request.
// It is always non-nil by the time the frontend generator runs; parse
// failures substitute DefaultIntent.
type IntentDescriptor struct {
	ApplicationType string   `json:"application_type"`
	ReferenceSite   string   `json:"reference_site"`
	KeyComponents   []string `json:"key_components"`
	VisualStyle     string   `json:"visual_style"`
	LayoutPattern   string   `json:"layout_pattern"`
	PrimaryFeatures []string `json:"primary_features"`
}

// SitePlan is the structured plan produced by the planning agent for the
// simpler single-pass generation path.
type SitePlan struct {
	Pages    []string            `json:"pages"`
	Sections map[string][]string `json:"sections"`
	Style    PlanStyle           `json:"style"`
	Features []string            `json:"features"`
}

type PlanStyle struct {
	Theme      string            `json:"theme"`
	Colors     map[string]string `json:"colors"`
	Typography string            `json:"typography"`
}

// GeneratedArtifactSet holds the three frontend artifacts. Fields default to
// empty strings, never to a null-ish sentinel, when extraction misses.
type GeneratedArtifactSet struct {
	HTML string `json:"html_content"`
	CSS  string `json:"css_content"`
	JS   string `json:"js_content"`
}

// BackendArtifactSet holds the generated server source and its dependency
// manifest.
type BackendArtifactSet struct {
	ServerSource       string `json:"server_source"`
	DependencyManifest string `json:"dependency_manifest"`
}

// ProjectFile is one row of the final file manifest.
type ProjectFile struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	FileType    string `json:"file_type"`
	Description string `json:"description"`
}

// ProjectResult aggregates everything a generation run produced. Construction
// never fails: failure degrades the content of the result, not its presence.
type ProjectResult struct {
	ProjectID         string             `json:"project_id"`
	HTML              string             `json:"html_content"`
	CSS               string             `json:"css_content"`
	JS                string             `json:"js_content"`
	Backend           BackendArtifactSet `json:"backend"`
	Readme            string             `json:"readme"`
	PackageManifest   string             `json:"package_manifest"`
	Intent            *IntentDescriptor  `json:"intent,omitempty"`
	Plan              *SitePlan          `json:"plan,omitempty"`
	Files             []ProjectFile      `json:"files"`
	Degraded          bool               `json:"degraded"`
	DegradationReason string             `json:"degradation_reason,omitempty"`
}

// ChatResult is the single-turn conversational response shape.
type ChatResult struct {
	Content     string    `json:"content"`
	WebsiteData *SitePlan `json:"website_data"`
	ImageURLs   []string  `json:"image_urls"`
}
