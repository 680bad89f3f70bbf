package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/markdown"
	"github.com/doclens/doclens/normalizer"
)

// fakeClient records the last prompt and plays back a canned response.
type fakeClient struct {
	lastPrompt    string
	lastMaxTokens int
	response      string
	err           error
}

func (f *fakeClient) Complete(_ context.Context, req Request) (string, error) {
	f.lastPrompt = req.Prompt
	f.lastMaxTokens = req.MaxTokens
	return f.response, f.err
}

func TestAnalyzeDocumentation(t *testing.T) {
	client := &fakeClient{
		response: "```json\n{\"title\": \"Guide\", \"summary\": \"A guide.\", \"concepts\": [\"http\"]}\n```",
	}
	analyzer := NewAnalyzer(client)

	doc := markdown.Split("# Guide\n\nIntro text.\n\n## Setup\n\nInstall it.")
	out, err := analyzer.AnalyzeDocumentation(context.Background(), doc, DocMeta{DocType: "readme"})
	require.NoError(t, err)
	assert.Equal(t, "Guide", out["title"])
	assert.Equal(t, []any{"http"}, out["concepts"])

	assert.Contains(t, client.lastPrompt, "Document Title: Guide")
	assert.Contains(t, client.lastPrompt, "Type: readme")
	assert.Contains(t, client.lastPrompt, "## Setup\nInstall it.")
	assert.Equal(t, 4096, client.lastMaxTokens)
}

func TestAnalyzeDocumentationTitleFallback(t *testing.T) {
	client := &fakeClient{response: `{"title": "x"}`}
	analyzer := NewAnalyzer(client)

	doc := markdown.Split("plain text with no headings")
	_, err := analyzer.AnalyzeDocumentation(context.Background(), doc, DocMeta{})
	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "Document Title: Documentation")

	_, err = analyzer.AnalyzeDocumentation(context.Background(), doc, DocMeta{Title: "Override"})
	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "Document Title: Override")
}

func TestAnalyzeDocumentationBadModelOutput(t *testing.T) {
	client := &fakeClient{response: "I could not produce JSON, sorry."}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.AnalyzeDocumentation(context.Background(), markdown.Split("# T"), DocMeta{})
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrAnalysisFailed)
}

func TestAnalyzeAPI(t *testing.T) {
	client := &fakeClient{response: `{"summary": "Pet store API.", "use_cases": ["inventory"]}`}
	analyzer := NewAnalyzer(client)

	doc, err := normalizer.Normalize([]byte(`{
  "openapi": "3.0.0",
  "info": {"title": "Petstore", "version": "1.0.7"},
  "paths": {"/pets": {"get": {"summary": "List pets"}}},
  "components": {"securitySchemes": {"bearer": {"type": "http", "scheme": "bearer"}}}
}`))
	require.NoError(t, err)

	out, err := analyzer.AnalyzeAPI(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "Pet store API.", out["summary"])

	assert.Contains(t, client.lastPrompt, "API: Petstore (version 1.0.7)")
	assert.Contains(t, client.lastPrompt, "- GET /pets: List pets")
	assert.Contains(t, client.lastPrompt, "Authentication: http")
}

func TestExplainConcept(t *testing.T) {
	client := &fakeClient{response: "A goroutine is a lightweight thread."}
	analyzer := NewAnalyzer(client)

	text, err := analyzer.ExplainConcept(context.Background(), "goroutines", "some context", "")
	require.NoError(t, err)
	assert.Equal(t, "A goroutine is a lightweight thread.", text)
	assert.Contains(t, client.lastPrompt, "for a beginner level learner")
	assert.Contains(t, client.lastPrompt, "Concept: goroutines")
	assert.Equal(t, 1024, client.lastMaxTokens)
}

func TestExplainConceptContextTruncated(t *testing.T) {
	client := &fakeClient{response: "ok"}
	analyzer := NewAnalyzer(client)

	long := make([]byte, conceptContextLimit*2)
	for i := range long {
		long[i] = 'x'
	}
	_, err := analyzer.ExplainConcept(context.Background(), "c", string(long), "advanced")
	require.NoError(t, err)
	assert.Less(t, len(client.lastPrompt), conceptContextLimit+500)
}

func TestGenerateConceptDiagram(t *testing.T) {
	client := &fakeClient{response: "```mermaid\ngraph TD\n    A --> B\n```"}
	analyzer := NewAnalyzer(client)

	diagram, err := analyzer.GenerateConceptDiagram(context.Background(), "request flow", "ctx")
	require.NoError(t, err)
	assert.Equal(t, "graph TD\n    A --> B", diagram)
}

func TestGenerateConceptExample(t *testing.T) {
	client := &fakeClient{response: `{"code": "print(1)", "explanation": "prints 1", "input": "", "output": "1"}`}
	analyzer := NewAnalyzer(client)

	out, err := analyzer.GenerateConceptExample(context.Background(), "printing", "")
	require.NoError(t, err)
	assert.Equal(t, "print(1)", out["code"])
	assert.Contains(t, client.lastPrompt, "Language: python")
}

func TestGenerateQuiz(t *testing.T) {
	client := &fakeClient{
		response: `[{"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "correct": 1, "explanation": "math"}]`,
	}
	analyzer := NewAnalyzer(client)

	questions, err := analyzer.GenerateQuiz(context.Background(), "arithmetic content", 0)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is 2+2?", questions[0]["question"])
	// Zero count falls back to the default of five.
	assert.Contains(t, client.lastPrompt, "Create 5 multiple choice questions")
}

func TestAnalyzerPropagatesClientError(t *testing.T) {
	client := &fakeClient{err: &docerrors.AnalysisError{Operation: "complete", Message: "boom"}}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.AnalyzeDocumentation(context.Background(), markdown.Split("# T"), DocMeta{})
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrAnalysisFailed)
}
