package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens/internal/fetch"
	"github.com/doclens/doclens/normalizer"
)

// specInput represents the three ways a specification can be provided to
// a tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a specification file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a specification from"`
	Content string `json:"content,omitempty" jsonschema:"Inline specification content (JSON or YAML)"`
}

// resolve loads the specification bytes from whichever source is set.
func (in specInput) resolve(ctx context.Context) ([]byte, error) {
	set := 0
	if in.File != "" {
		set++
	}
	if in.URL != "" {
		set++
	}
	if in.Content != "" {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided")
	}

	switch {
	case in.File != "":
		data, err := os.ReadFile(in.File)
		if err != nil {
			return nil, fmt.Errorf("reading spec file: %w", err)
		}
		return data, nil
	case in.URL != "":
		content, err := fetch.New().Fetch(ctx, in.URL)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	default:
		return []byte(in.Content), nil
	}
}

type parseSpecInput struct {
	Spec specInput `json:"spec"           jsonschema:"The specification document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the complete normalized document instead of a summary"`
}

type specServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type specAuth struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type parseSpecOutput struct {
	Dialect       string       `json:"dialect"`
	Version       string       `json:"version"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	EndpointCount int          `json:"endpoint_count"`
	Servers       []specServer `json:"servers,omitempty"`
	Auth          []specAuth   `json:"authentication,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	FullDocument  string       `json:"full_document,omitempty"`
}

func handleParseSpec(ctx context.Context, _ *mcp.CallToolRequest, input parseSpecInput) (*mcp.CallToolResult, parseSpecOutput, error) {
	data, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), parseSpecOutput{}, nil
	}

	doc, err := normalizer.Normalize(data)
	if err != nil {
		return errResult(err), parseSpecOutput{}, nil
	}

	output := parseSpecOutput{
		Dialect:       doc.Dialect.String(),
		Version:       doc.Version,
		Title:         doc.Info.Title,
		Description:   doc.Info.Description,
		EndpointCount: doc.EndpointCount,
	}
	for _, srv := range doc.Servers {
		output.Servers = append(output.Servers, specServer{URL: srv.URL, Description: srv.Description})
	}
	for _, scheme := range doc.Authentication {
		output.Auth = append(output.Auth, specAuth{Name: scheme.Name, Type: scheme.Type})
	}
	for _, tag := range doc.Tags {
		output.Tags = append(output.Tags, tag.Name)
	}

	if input.Full {
		full, err := json.Marshal(doc)
		if err != nil {
			return errResult(err), parseSpecOutput{}, nil
		}
		output.FullDocument = string(full)
	}
	return nil, output, nil
}
