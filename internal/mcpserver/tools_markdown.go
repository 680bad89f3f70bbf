package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens/analysis"
	"github.com/doclens/doclens/internal/fetch"
	"github.com/doclens/doclens/markdown"
)

type analyzeMarkdownInput struct {
	Content  string `json:"content,omitempty"  jsonschema:"Inline markdown content"`
	URL      string `json:"url,omitempty"      jsonschema:"URL to fetch documentation from"`
	DocType  string `json:"doc_type,omitempty" jsonschema:"Documentation genre hint, e.g. readme"`
	Title    string `json:"title,omitempty"    jsonschema:"Document title override"`
	Insights bool   `json:"insights,omitempty" jsonschema:"Also run LLM analysis (requires ANTHROPIC_API_KEY)"`
}

type markdownHeading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

type analyzeMarkdownOutput struct {
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	SectionCount int               `json:"section_count"`
	CodeBlocks   int               `json:"code_blocks"`
	Headings     []markdownHeading `json:"headings,omitempty"`
	Insights     map[string]any    `json:"insights,omitempty"`
}

func handleAnalyzeMarkdown(ctx context.Context, _ *mcp.CallToolRequest, input analyzeMarkdownInput) (*mcp.CallToolResult, analyzeMarkdownOutput, error) {
	if (input.Content == "") == (input.URL == "") {
		return textError("exactly one of content or url must be provided"), analyzeMarkdownOutput{}, nil
	}

	content := input.Content
	if input.URL != "" {
		fetched, err := fetch.New().Fetch(ctx, input.URL)
		if err != nil {
			return errResult(err), analyzeMarkdownOutput{}, nil
		}
		content = fetched
	}

	doc := markdown.Split(content)
	output := analyzeMarkdownOutput{
		Title:        doc.Metadata.Title,
		Description:  doc.Metadata.Description,
		SectionCount: len(doc.Sections),
		CodeBlocks:   len(doc.CodeBlocks),
	}
	for _, h := range doc.Headings {
		output.Headings = append(output.Headings, markdownHeading{Level: h.Level, Text: h.Text, Slug: h.Slug})
	}

	if input.Insights {
		analyzer, err := newAnalyzer()
		if err != nil {
			return errResult(err), analyzeMarkdownOutput{}, nil
		}
		if analyzer == nil {
			return textError("insights require an Anthropic API key; set ANTHROPIC_API_KEY"), analyzeMarkdownOutput{}, nil
		}
		insights, err := analyzer.AnalyzeDocumentation(ctx, doc, analysis.DocMeta{
			Title:   input.Title,
			DocType: input.DocType,
		})
		if err != nil {
			return errResult(fmt.Errorf("analysis failed: %w", err)), analyzeMarkdownOutput{}, nil
		}
		output.Insights = insights
	}
	return nil, output, nil
}
