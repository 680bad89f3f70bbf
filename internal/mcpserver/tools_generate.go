package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens/generator"
)

type sdkExampleInput struct {
	Path          string `json:"path"                    jsonschema:"Endpoint path, e.g. /pets/{id}"`
	Method        string `json:"method"                  jsonschema:"HTTP method, e.g. get"`
	Language      string `json:"language,omitempty"      jsonschema:"Snippet language: curl, python, javascript, ruby, php, go, or java"`
	BaseURL       string `json:"base_url,omitempty"      jsonschema:"API base URL; a placeholder is used when omitted"`
	Authenticated bool   `json:"authenticated,omitempty" jsonschema:"Include a bearer token header"`
	HasBody       bool   `json:"has_body,omitempty"      jsonschema:"Endpoint accepts a JSON request body"`
}

type sdkExampleOutput struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

func handleSDKExample(_ context.Context, _ *mcp.CallToolRequest, input sdkExampleInput) (*mcp.CallToolResult, sdkExampleOutput, error) {
	if input.Path == "" || input.Method == "" {
		return textError("path and method are required"), sdkExampleOutput{}, nil
	}
	language := input.Language
	if language == "" {
		language = cfg.SDKLanguage
	}
	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = "https://api.example.com"
	}

	code, err := generator.SDKSnippet(generator.EndpointInput{
		Path:          input.Path,
		Method:        input.Method,
		BaseURL:       baseURL,
		Authenticated: input.Authenticated,
		HasBody:       input.HasBody,
	}, language)
	if err != nil {
		return errResult(err), sdkExampleOutput{}, nil
	}
	return nil, sdkExampleOutput{Language: language, Code: code}, nil
}

type flowDiagramInput struct {
	Steps []string `json:"steps" jsonschema:"Ordered step labels for the flowchart"`
}

type flowDiagramOutput struct {
	Diagram string `json:"diagram"`
	Type    string `json:"type"`
}

func handleFlowDiagram(_ context.Context, _ *mcp.CallToolRequest, input flowDiagramInput) (*mcp.CallToolResult, flowDiagramOutput, error) {
	if len(input.Steps) == 0 {
		return textError("at least one step is required"), flowDiagramOutput{}, nil
	}
	return nil, flowDiagramOutput{
		Diagram: generator.FlowDiagram(input.Steps),
		Type:    "mermaid",
	}, nil
}
