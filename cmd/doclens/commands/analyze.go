package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doclens/doclens/analysis"
	"github.com/doclens/doclens/markdown"
)

// Analyze implements the 'analyze' command which splits a markdown
// document into sections, code blocks, and metadata. With an Anthropic
// API key configured and --insights set it also asks the LLM for a
// structured summary of the documentation.
func Analyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var (
		format   = fs.String("format", FormatText, "output format: text, json, or yaml")
		docType  = fs.String("type", "documentation", "document type hint passed to the LLM")
		title    = fs.String("title", "", "document title override (defaults to the first heading)")
		insights = fs.Bool("insights", false, "request LLM insights (requires ANTHROPIC_API_KEY)")
	)
	fs.Usage = func() {
		fmt.Println(`Usage: doclens analyze [flags] <file|url|->

Splits markdown documentation into sections, code blocks, headings, and
metadata. With --insights and ANTHROPIC_API_KEY set, adds an LLM
analysis of the content.

Arguments:
  <file|url|->   path to a markdown file, an http(s) URL, or '-' for stdin

Flags:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one document argument, got %d", fs.NArg())
	}
	if err := ValidateOutputFormat(*format); err != nil {
		return err
	}

	ctx := context.Background()
	data, err := readInput(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	doc := markdown.Split(string(data))
	result := map[string]any{
		"metadata":    doc.Metadata,
		"sections":    doc.Sections,
		"code_blocks": doc.CodeBlocks,
		"headings":    doc.Headings,
	}

	if *insights {
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("--insights requires the ANTHROPIC_API_KEY environment variable")
		}
		client, err := analysis.NewAnthropicClient(apiKey)
		if err != nil {
			return err
		}
		meta := analysis.DocMeta{Title: *title, DocType: *docType}
		if meta.Title == "" {
			meta.Title = doc.Metadata.Title
		}
		llm, err := analysis.NewAnalyzer(client).AnalyzeDocumentation(ctx, doc, meta)
		if err != nil {
			return err
		}
		result["ai_insights"] = llm
	}

	if *format == FormatText {
		printMarkdownSummary(doc, result["ai_insights"])
		return nil
	}
	return OutputStructured(result, *format)
}

func printMarkdownSummary(doc *markdown.Document, insights any) {
	fmt.Printf("Title:       %s\n", doc.Metadata.Title)
	if doc.Metadata.Description != "" {
		fmt.Printf("Description: %s\n", firstLine(doc.Metadata.Description))
	}
	fmt.Printf("Lines:       %d\n", doc.Metadata.LineCount)
	fmt.Printf("Sections:    %d\n", len(doc.Sections))
	for _, sec := range doc.Sections {
		fmt.Printf("  %s# %s\n", indentFor(sec.Level), sec.Title)
	}
	if len(doc.CodeBlocks) > 0 {
		fmt.Printf("Code blocks: %d\n", len(doc.CodeBlocks))
		langs := map[string]int{}
		for _, cb := range doc.CodeBlocks {
			langs[cb.Language]++
		}
		for lang, n := range langs {
			fmt.Printf("  %s: %d\n", lang, n)
		}
	}
	if insights != nil {
		fmt.Println("AI insights:")
		if m, ok := insights.(map[string]any); ok {
			if summary, ok := m["summary"].(string); ok {
				fmt.Printf("  %s\n", summary)
			}
		}
	}
}

func indentFor(level int) string {
	if level <= 1 {
		return ""
	}
	out := ""
	for i := 1; i < level; i++ {
		out += "  "
	}
	return out
}
