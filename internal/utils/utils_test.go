package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineFileType(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"index.html", "html"},
		{"styles.css", "css"},
		{"app.js", "javascript"},
		{"package.json", "json"},
		{"README.md", "markdown"},
		{"requirements.txt", "text"},
		{"server.py", "python"},
		{"config.yaml", "yaml"},
		{"config.yml", "yaml"},
		{"logo.svg", "svg"},
		{"photo.JPG", "image"},
		{"hero.webp", "image"},
		{"Dockerfile", "dockerfile"},
		{"Dockerfile.prod", "dockerfile"},
		{"assets/css/theme.css", "css"},
		{"Makefile", "unknown"},
		{"", "unknown"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetermineFileType(tc.filename), tc.filename)
	}
}
