// Package commands implements the CLI sub-commands for the doclens binary.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/doclens/doclens/internal/fetch"
)

// Output format constants supported by the structured commands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the pseudo-path that instructs a command to read
// its input from standard input.
const StdinFilePath = "-"

// ValidateOutputFormat checks that the given format is one we can emit.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (must be one of: text, json, yaml)", format)
	}
}

// OutputStructured marshals data in the requested structured format and
// writes it to stdout.
func OutputStructured(data any, format string) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON output: %w", err)
		}
		fmt.Println(string(out))
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML output: %w", err)
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("format %q is not a structured output format", format)
	}
	return nil
}

// readInput resolves a command argument into raw content. The argument
// may be StdinFilePath, an http(s) URL, or a filesystem path.
func readInput(ctx context.Context, arg string) ([]byte, error) {
	switch {
	case arg == StdinFilePath:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
		content, err := fetch.New().Fetch(ctx, arg)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", arg, err)
		}
		return data, nil
	}
}
