package ai

import "strings"

// Free-form model text parsing. Every function here is pure, never panics,
// and resolves any irregularity to "nothing found" (empty string), pushing
// the decision to the caller.

const fence = "```"

// ExtractCodeBlock returns the payload of the first fenced block labeled with
// the given language (case-sensitive, e.g. "html", "css", "javascript"),
// trimmed of surrounding whitespace. Returns "" when no such fence exists;
// the caller supplies its own default.
func ExtractCodeBlock(text, label string) string {
	marker := fence + label
	idx := strings.Index(text, marker)
	if idx == -1 {
		return ""
	}
	rest := text[idx+len(marker):]
	end := strings.Index(rest, fence)
	if end == -1 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// ExtractHTMLDocument scans raw text for a document start marker ("<!DOCTYPE"
// preferred, "<html" as secondary) through the closing </html> tag,
// inclusive. Used when fence extraction came up empty but the model answered
// with a bare document. Returns "" when no start marker is found.
func ExtractHTMLDocument(text string) string {
	start := strings.Index(text, "<!DOCTYPE")
	if start == -1 {
		start = strings.Index(text, "<html")
	}
	if start == -1 {
		return ""
	}

	const closing = "</html>"
	end := strings.Index(text[start:], closing)
	if end == -1 {
		// Document start with no closing tag: take the rest of the text.
		return strings.TrimSpace(text[start:])
	}
	return strings.TrimSpace(text[start : start+end+len(closing)])
}

// ExtractJSONPayload pulls the JSON payload out of a model response: content
// of a ```json fence if present, else the first fenced block of any label,
// else the whole text. The result is not validated here; unmarshalling
// decides.
func ExtractJSONPayload(text string) string {
	if block := ExtractCodeBlock(text, "json"); block != "" {
		return block
	}
	if idx := strings.Index(text, fence); idx != -1 {
		rest := text[idx+len(fence):]
		// Skip a bare language label on the opening line, if any.
		if nl := strings.Index(rest, "\n"); nl != -1 && !strings.ContainsAny(rest[:nl], "{[") {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, fence); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}
