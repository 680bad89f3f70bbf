package analysis

import (
	"encoding/json"
	"strings"

	"github.com/doclens/doclens/docerrors"
)

// ExtractFence returns the body of the first fenced block opened by
// "```<tag>". With an empty tag it matches the first anonymous fence.
// The second return reports whether such a fence was found.
func ExtractFence(text, tag string) (string, bool) {
	open := "```" + tag
	start := strings.Index(text, open)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(open):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// ExtractJSON pulls the JSON payload out of free-form model output.
// Models often wrap JSON in a code fence; a ```json fence is preferred,
// then any fence, then the raw text. The selected text must decode, or
// the extraction fails as an analysis error.
func ExtractJSON(text string, v any) error {
	payload, ok := ExtractFence(text, "json")
	if !ok {
		payload, ok = ExtractFence(text, "")
	}
	if !ok {
		payload = strings.TrimSpace(text)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &docerrors.AnalysisError{
			Operation: "extract-json",
			Message:   "model output did not contain a parseable JSON document",
			Cause:     err,
		}
	}
	return nil
}

// extractDiagram pulls mermaid syntax out of model output, preferring a
// ```mermaid fence, then any fence, then the raw text.
func extractDiagram(text string) string {
	if body, ok := ExtractFence(text, "mermaid"); ok {
		return body
	}
	if body, ok := ExtractFence(text, ""); ok {
		return body
	}
	return strings.TrimSpace(text)
}
