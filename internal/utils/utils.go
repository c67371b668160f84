package utils

import (
	"path/filepath"
	"strings"
)

// DetermineFileType infers the manifest file-type token from a filename.
func DetermineFileType(filename string) string {
	lower := strings.ToLower(filename)
	switch filepath.Ext(lower) {
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".js":
		return "javascript"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".txt":
		return "text"
	case ".py":
		return "python"
	case ".yaml", ".yml":
		return "yaml"
	case ".svg":
		return "svg"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "image"
	default:
		base := filepath.Base(lower)
		if strings.Contains(base, "dockerfile") {
			return "dockerfile"
		}
		if strings.Contains(base, "package.json") || strings.Contains(base, "tsconfig.json") {
			return "json"
		}
		return "unknown"
	}
}
