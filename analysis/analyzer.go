package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/doclens/doclens/markdown"
	"github.com/doclens/doclens/normalizer"
)

// Context truncation limits, in characters. Long documents are clipped
// rather than rejected.
const (
	docContextLimit     = 15000
	conceptContextLimit = 3000
	diagramContextLimit = 2000
)

// DocMeta carries caller-supplied document attributes that feed the
// analysis prompt.
type DocMeta struct {
	// Title overrides the title extracted from the document.
	Title string
	// DocType hints at the documentation genre, e.g. "readme".
	DocType string
}

// Analyzer runs documentation and API analysis through a completion
// client.
type Analyzer struct {
	client Client
	logger normalizer.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the analyzer's logger. The default is a no-op.
func WithLogger(logger normalizer.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer builds an Analyzer around the given completion client.
func NewAnalyzer(client Client, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		client: client,
		logger: normalizer.NopLogger{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeDocumentation extracts concepts, examples, and a learning
// structure from a parsed markdown document. The decoded model output is
// returned as-is; its expected shape includes title, summary, concepts,
// sections, examples, suggested_features, and learning_path.
func (a *Analyzer) AnalyzeDocumentation(ctx context.Context, doc *markdown.Document, meta DocMeta) (map[string]any, error) {
	title := meta.Title
	if title == "" {
		title = doc.Metadata.Title
	}
	if title == "" {
		title = "Documentation"
	}
	docType := meta.DocType
	if docType == "" {
		docType = "readme"
	}

	var sections strings.Builder
	for i, s := range doc.Sections {
		if i > 0 {
			sections.WriteString("\n\n")
		}
		fmt.Fprintf(&sections, "%s %s\n%s", strings.Repeat("#", s.Level), s.Title, s.Content)
	}

	prompt := fmt.Sprintf(`You are analyzing technical documentation to create an interactive learning experience.

Document Title: %s
Type: %s

Content:
%s

Your task:
1. Identify the main concepts/topics covered
2. Extract code examples with explanations
3. Identify patterns or recurring themes
4. Create a summary suitable for learners
5. Suggest what interactive features would help understanding

Return a JSON object with this structure:
{
    "title": "string",
    "summary": "string (2-3 sentences)",
    "concepts": ["array of key concepts"],
    "sections": [
        {
            "title": "string",
            "description": "string",
            "key_points": ["array"],
            "difficulty": "beginner|intermediate|advanced"
        }
    ],
    "examples": [
        {
            "title": "string",
            "code": "string",
            "language": "string",
            "explanation": "string",
            "concepts": ["related concepts"]
        }
    ],
    "suggested_features": ["interactive playground", "step-by-step tutorial", etc],
    "learning_path": ["ordered list of what to learn first"]
}

Be thorough but concise. Focus on creating an excellent learning experience.`,
		title, docType, truncate(sections.String(), docContextLimit))

	a.logger.Debug("analyzing documentation", "title", title, "sections", len(doc.Sections))
	text, err := a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 4096})
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := ExtractJSON(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeAPI produces learner-oriented insights for a normalized API
// specification: use cases, a quickstart narrative, and integration
// recommendations.
func (a *Analyzer) AnalyzeAPI(ctx context.Context, doc *normalizer.Document) (map[string]any, error) {
	var endpoints strings.Builder
	for _, ep := range doc.Endpoints {
		fmt.Fprintf(&endpoints, "- %s %s: %s\n", strings.ToUpper(ep.Method), ep.Path, ep.Summary)
	}
	auth := make([]string, 0, len(doc.Authentication))
	for _, scheme := range doc.Authentication {
		auth = append(auth, scheme.Type)
	}

	prompt := fmt.Sprintf(`You are analyzing an API specification to help developers learn and integrate it.

API: %s (version %s)
Description: %s
Authentication: %s
Endpoints (%d total):
%s

Your task:
1. Summarize what this API is for
2. Identify the most important endpoints to start with
3. Describe common integration patterns
4. Note anything unusual about authentication or usage

Return a JSON object with this structure:
{
    "summary": "string (2-3 sentences)",
    "use_cases": ["array of typical use cases"],
    "quickstart": ["ordered steps to make a first successful call"],
    "key_endpoints": ["METHOD /path entries worth learning first"],
    "integration_notes": ["array of practical integration advice"]
}`,
		doc.Info.Title, doc.Info.Version,
		truncate(doc.Info.Description, conceptContextLimit),
		strings.Join(auth, ", "),
		doc.EndpointCount,
		truncate(endpoints.String(), docContextLimit))

	a.logger.Debug("analyzing api specification", "title", doc.Info.Title, "endpoints", doc.EndpointCount)
	text, err := a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 4096})
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := ExtractJSON(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExplainConcept generates a free-text explanation of a concept for the
// given learner level.
func (a *Analyzer) ExplainConcept(ctx context.Context, concept, docContext, level string) (string, error) {
	if level == "" {
		level = "beginner"
	}
	prompt := fmt.Sprintf(`Explain this concept clearly for a %s level learner:

Concept: %s

Context:
%s

Provide:
1. Clear definition
2. Why it matters
3. How it works
4. Common use cases
5. Simple analogy

Keep it conversational and practical.`,
		level, concept, truncate(docContext, conceptContextLimit))

	return a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 1024})
}

// GenerateConceptDiagram asks the model for a mermaid diagram visualizing
// a concept, and strips any surrounding code fence from the answer.
func (a *Analyzer) GenerateConceptDiagram(ctx context.Context, concept, docContext string) (string, error) {
	prompt := fmt.Sprintf(`Create a Mermaid diagram to visualize this concept:

Concept: %s

Context:
%s

Choose the most appropriate diagram type (flowchart, sequence, class, state, etc.)
Return ONLY the Mermaid syntax, no explanation.

Example format:
`+"```mermaid"+`
graph TD
    A[Start] --> B[Process]
    B --> C[End]
`+"```"+`

Generate the diagram:`,
		concept, truncate(docContext, diagramContextLimit))

	text, err := a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 1024})
	if err != nil {
		return "", err
	}
	return extractDiagram(text), nil
}

// GenerateConceptExample asks the model for a short executable code
// example demonstrating a concept. The decoded shape includes code,
// explanation, input, and output.
func (a *Analyzer) GenerateConceptExample(ctx context.Context, concept, language string) (map[string]any, error) {
	if language == "" {
		language = "python"
	}
	prompt := fmt.Sprintf(`Generate a clear, executable code example demonstrating: %s

Language: %s

Requirements:
1. Include helpful comments
2. Show input/output
3. Demonstrate the concept clearly
4. Keep it under 30 lines

Return JSON:
{
    "code": "the code",
    "explanation": "what it does",
    "input": "example input",
    "output": "expected output"
}`, concept, language)

	text, err := a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 1024})
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := ExtractJSON(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateQuiz produces multiple choice questions from content. Each
// entry carries question, options, correct index, and explanation.
func (a *Analyzer) GenerateQuiz(ctx context.Context, content string, count int) ([]map[string]any, error) {
	if count <= 0 {
		count = 5
	}
	prompt := fmt.Sprintf(`Create %d multiple choice questions from this content:

%s

Return JSON array:
[
    {
        "question": "string",
        "options": ["A", "B", "C", "D"],
        "correct": 0,
        "explanation": "why this is correct"
    }
]

Make questions test understanding, not just memorization.`,
		count, truncate(content, conceptContextLimit))

	text, err := a.client.Complete(ctx, Request{Prompt: prompt, MaxTokens: 2048})
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := ExtractJSON(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
