package project

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"codeweaver_server/internal/types"
)

// Exporter writes a generated project's file manifest to disk, one subtree
// per project ID. Export is best-effort from the pipeline's point of view:
// the generation result stands on its own whether or not the export worked.
type Exporter struct {
	baseDir string
}

func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// Export writes every manifest file under baseDir/projectID and returns the
// project directory. Subdirectories embedded in filenames are created as
// needed.
func (e *Exporter) Export(result *types.ProjectResult) (string, error) {
	projectDir := filepath.Join(e.baseDir, result.ProjectID)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return "", fmt.Errorf("creating project dir: %w", err)
	}

	written := 0
	for _, f := range result.Files {
		path := filepath.Join(projectDir, f.Filename)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Printf("WARN: failed to create directory for %s: %v", f.Filename, err)
			continue
		}
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			log.Printf("WARN: failed to write %s: %v", path, err)
			continue
		}
		written++
	}

	log.Printf("Exported project %s: %d/%d files written to %s", result.ProjectID, written, len(result.Files), projectDir)
	if written != len(result.Files) {
		return projectDir, fmt.Errorf("wrote %d of %d files", written, len(result.Files))
	}
	return projectDir, nil
}
