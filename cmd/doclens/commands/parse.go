package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/doclens/doclens/normalizer"
)

// Parse implements the 'parse' command which normalizes an OpenAPI 3.x
// or Swagger 2.0 specification into the common document model.
func Parse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var (
		format     = fs.String("format", FormatText, "output format: text, json, or yaml")
		noExamples = fs.Bool("no-examples", false, "skip synthesizing request examples")
	)
	fs.Usage = func() {
		fmt.Println(`Usage: doclens parse [flags] <file|url|->

Normalizes an OpenAPI 3.x or Swagger 2.0 specification (JSON or YAML)
into a dialect-independent document and prints it.

Arguments:
  <file|url|->   path to a spec file, an http(s) URL, or '-' for stdin

Flags:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one specification argument, got %d", fs.NArg())
	}
	if err := ValidateOutputFormat(*format); err != nil {
		return err
	}

	data, err := readInput(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	opts := []normalizer.NormalizeOption{normalizer.WithData(data)}
	if *noExamples {
		opts = append(opts, normalizer.WithoutExamples())
	}
	doc, err := normalizer.NormalizeWithOptions(opts...)
	if err != nil {
		return err
	}

	if *format == FormatText {
		printDocumentSummary(doc)
		return nil
	}
	return OutputStructured(doc, *format)
}

func printDocumentSummary(doc *normalizer.Document) {
	fmt.Printf("Dialect:   %s\n", doc.Dialect)
	fmt.Printf("Title:     %s\n", doc.Info.Title)
	fmt.Printf("Version:   %s\n", doc.Info.Version)
	if doc.Info.Description != "" {
		fmt.Printf("About:     %s\n", firstLine(doc.Info.Description))
	}
	if len(doc.Servers) > 0 {
		fmt.Println("Servers:")
		for _, srv := range doc.Servers {
			fmt.Printf("  %s\n", srv.URL)
		}
	}
	if len(doc.Authentication) > 0 {
		fmt.Println("Authentication:")
		for _, scheme := range doc.Authentication {
			fmt.Printf("  %s (%s)\n", scheme.Name, scheme.Type)
		}
	}
	fmt.Printf("Endpoints: %d\n", doc.EndpointCount)
	for _, ep := range doc.Endpoints {
		line := fmt.Sprintf("  %-7s %s", strings.ToUpper(ep.Method), ep.Path)
		if ep.Summary != "" {
			line += "  " + ep.Summary
		}
		if ep.Deprecated {
			line += "  [deprecated]"
		}
		fmt.Println(line)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
