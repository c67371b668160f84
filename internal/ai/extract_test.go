package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodeBlockRoundTrip(t *testing.T) {
	payloads := []string{
		"<h1>hi</h1>",
		"body { color: red; }",
		"console.log(1);\nconsole.log(2);",
	}
	for _, p := range payloads {
		text := "```html\n" + p + "\n```"
		assert.Equal(t, p, ExtractCodeBlock(text, "html"))
	}
}

func TestExtractCodeBlockMissingLabel(t *testing.T) {
	assert.Empty(t, ExtractCodeBlock("no fences here at all", "html"))
	assert.Empty(t, ExtractCodeBlock("```css\nbody{}\n```", "html"))
	assert.Empty(t, ExtractCodeBlock("", "css"))
}

func TestExtractCodeBlockTakesFirstOccurrence(t *testing.T) {
	text := "intro\n```css\nfirst\n```\nmiddle\n```css\nsecond\n```"
	assert.Equal(t, "first", ExtractCodeBlock(text, "css"))
}

func TestExtractCodeBlockUnclosedFence(t *testing.T) {
	assert.Equal(t, "body{}", ExtractCodeBlock("```css\nbody{}", "css"))
}

func TestExtractHTMLDocument(t *testing.T) {
	doc := "<!DOCTYPE html>\n<html><body>hi</body></html>"
	assert.Equal(t, doc, ExtractHTMLDocument("Here you go:\n"+doc+"\nHope that helps!"))
}

func TestExtractHTMLDocumentSecondaryMarker(t *testing.T) {
	doc := "<html><body>hi</body></html>"
	assert.Equal(t, doc, ExtractHTMLDocument("sure:\n"+doc))
}

func TestExtractHTMLDocumentNoMarker(t *testing.T) {
	assert.Empty(t, ExtractHTMLDocument("just words, no markup"))
	assert.Empty(t, ExtractHTMLDocument(""))
}

func TestExtractHTMLDocumentMissingClosingTag(t *testing.T) {
	got := ExtractHTMLDocument("<!DOCTYPE html>\n<html><body>truncated")
	assert.Equal(t, "<!DOCTYPE html>\n<html><body>truncated", got)
}

func TestExtractJSONPayloadPrefersJSONFence(t *testing.T) {
	text := "```json\n{\"a\":1}\n```\n```css\nbody{}\n```"
	assert.Equal(t, `{"a":1}`, ExtractJSONPayload(text))
}

func TestExtractJSONPayloadAnyFence(t *testing.T) {
	text := "result:\n```\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, ExtractJSONPayload(text))
}

func TestExtractJSONPayloadWholeText(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSONPayload(` {"a":1} `))
}
