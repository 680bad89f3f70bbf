package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type explainConceptInput struct {
	Concept string `json:"concept"           jsonschema:"The concept to explain"`
	Context string `json:"context,omitempty" jsonschema:"Documentation excerpt giving the concept context"`
	Level   string `json:"level,omitempty"   jsonschema:"Audience level: beginner, intermediate, or advanced"`
}

type explainConceptOutput struct {
	Explanation string `json:"explanation"`
}

func handleExplainConcept(ctx context.Context, _ *mcp.CallToolRequest, input explainConceptInput) (*mcp.CallToolResult, explainConceptOutput, error) {
	if input.Concept == "" {
		return textError("concept is required"), explainConceptOutput{}, nil
	}
	analyzer, err := newAnalyzer()
	if err != nil {
		return errResult(err), explainConceptOutput{}, nil
	}
	if analyzer == nil {
		return textError("explain_concept requires an Anthropic API key; set ANTHROPIC_API_KEY"), explainConceptOutput{}, nil
	}
	text, err := analyzer.ExplainConcept(ctx, input.Concept, input.Context, input.Level)
	if err != nil {
		return errResult(fmt.Errorf("explanation failed: %w", err)), explainConceptOutput{}, nil
	}
	return nil, explainConceptOutput{Explanation: text}, nil
}

type conceptQuizInput struct {
	Content string `json:"content"         jsonschema:"Documentation content to quiz on"`
	Count   int    `json:"count,omitempty" jsonschema:"Number of questions (default from DOCLENS_QUIZ_COUNT)"`
}

type conceptQuizOutput struct {
	Questions []map[string]any `json:"questions"`
}

func handleConceptQuiz(ctx context.Context, _ *mcp.CallToolRequest, input conceptQuizInput) (*mcp.CallToolResult, conceptQuizOutput, error) {
	if input.Content == "" {
		return textError("content is required"), conceptQuizOutput{}, nil
	}
	analyzer, err := newAnalyzer()
	if err != nil {
		return errResult(err), conceptQuizOutput{}, nil
	}
	if analyzer == nil {
		return textError("concept_quiz requires an Anthropic API key; set ANTHROPIC_API_KEY"), conceptQuizOutput{}, nil
	}
	count := input.Count
	if count <= 0 {
		count = cfg.QuizCount
	}
	questions, err := analyzer.GenerateQuiz(ctx, input.Content, count)
	if err != nil {
		return errResult(fmt.Errorf("quiz generation failed: %w", err)), conceptQuizOutput{}, nil
	}
	return nil, conceptQuizOutput{Questions: questions}, nil
}
