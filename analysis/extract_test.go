package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens/docerrors"
)

func TestExtractFence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		tag   string
		want  string
		found bool
	}{
		{
			name:  "json fence",
			text:  "Here you go:\n```json\n{\"a\": 1}\n```\nDone.",
			tag:   "json",
			want:  `{"a": 1}`,
			found: true,
		},
		{
			name:  "mermaid fence",
			text:  "```mermaid\ngraph TD\n    A --> B\n```",
			tag:   "mermaid",
			want:  "graph TD\n    A --> B",
			found: true,
		},
		{
			name:  "anonymous fence",
			text:  "before ```\ncontent\n``` after",
			tag:   "",
			want:  "content",
			found: true,
		},
		{
			name:  "no fence",
			text:  "plain text",
			tag:   "json",
			found: false,
		},
		{
			name:  "unclosed fence",
			text:  "```json\n{\"a\": 1}",
			tag:   "json",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractFence(tt.text, tt.tag)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{
			name: "json fence preferred",
			text: "Sure!\n```json\n{\"title\": \"fenced\"}\n```",
			want: map[string]any{"title": "fenced"},
		},
		{
			name: "anonymous fence fallback",
			text: "```\n{\"title\": \"anon\"}\n```",
			want: map[string]any{"title": "anon"},
		},
		{
			name: "raw text fallback",
			text: `  {"title": "raw"}  `,
			want: map[string]any{"title": "raw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]any
			require.NoError(t, ExtractJSON(tt.text, &out))
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExtractJSONFailure(t *testing.T) {
	var out map[string]any

	err := ExtractJSON("the model rambled with no JSON at all", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrAnalysisFailed)

	// A fence was found but its content is not valid JSON.
	err = ExtractJSON("```json\nnot json\n```", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrAnalysisFailed)
}

func TestExtractDiagram(t *testing.T) {
	assert.Equal(t, "graph TD\n    A --> B",
		extractDiagram("```mermaid\ngraph TD\n    A --> B\n```"))
	assert.Equal(t, "graph LR\n    X --> Y",
		extractDiagram("graph LR\n    X --> Y"))
}
