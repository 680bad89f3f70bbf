// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes doclens capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens"
	"github.com/doclens/doclens/analysis"
)

const serverInstructions = `doclens MCP server — parses OpenAPI/Swagger specifications, splits markdown documentation, and generates SDK snippets and diagrams.

Configuration: All defaults are configurable via DOCLENS_* environment variables set in your MCP client config.

Key settings:
- ANTHROPIC_API_KEY — enables the LLM-backed analysis in analyze_markdown and parse_spec
- DOCLENS_MODEL — override the default model
- DOCLENS_SDK_LANGUAGE (default: python) — default language for sdk_example
- DOCLENS_QUIZ_COUNT (default: 5) — default question count for quiz generation

Tools that call the model fail with a clear message when no API key is configured; the purely structural tools always work.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "doclens", Version: doclens.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_spec",
		Description: "Parse an OpenAPI 3.x or Swagger 2.0 specification into a dialect-neutral summary: title, version, endpoint count, servers, authentication schemes, and tags. Accepts inline content, a file path, or a URL. Use full=true to receive the complete normalized document including per-endpoint parameters and responses.",
	}, handleParseSpec)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_markdown",
		Description: "Split markdown documentation into sections, headings, and code blocks. Accepts inline content or a URL. With an API key configured and insights=true, also runs LLM analysis to extract concepts, examples, and a learning path.",
	}, handleAnalyzeMarkdown)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sdk_example",
		Description: "Generate a ready-to-run SDK request snippet for an endpoint. Supported languages: curl, python, javascript, ruby, php, go, java. The default language is configurable via DOCLENS_SDK_LANGUAGE.",
	}, handleSDKExample)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "flow_diagram",
		Description: "Build a mermaid graph TD flowchart from an ordered list of step labels. Purely local; no model call.",
	}, handleFlowDiagram)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain_concept",
		Description: "Explain a technical concept from documentation at a chosen audience level (beginner, intermediate, advanced). Requires an API key.",
	}, handleExplainConcept)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "concept_quiz",
		Description: "Generate multiple-choice quiz questions from documentation content. The question count defaults to DOCLENS_QUIZ_COUNT. Requires an API key.",
	}, handleConceptQuiz)
}

// newAnalyzer builds the LLM analyzer from the environment, or returns
// nil when no API key is configured.
func newAnalyzer() (*analysis.Analyzer, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, nil
	}
	opts := []analysis.ClientOption{
		analysis.WithUserAgent(doclens.UserAgent()),
	}
	if cfg.Model != "" {
		opts = append(opts, analysis.WithModel(cfg.Model))
	}
	client, err := analysis.NewAnthropicClient(cfg.AnthropicAPIKey, opts...)
	if err != nil {
		return nil, err
	}
	return analysis.NewAnalyzer(client), nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// textError creates an MCP error result from a plain message.
func textError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
