// Package doclens turns technical documentation into structured, analyzable data.
//
// doclens ingests markdown documentation and OpenAPI/Swagger API specifications,
// extracts a structured representation of their content, and optionally enriches
// that representation with insights from a large-language-model.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - normalizer: Normalize OpenAPI 3.x and Swagger 2.0 specifications into one unified model
//   - markdown: Split markdown documentation into sections, headings, and code blocks
//   - analysis: Send extracted structures to an LLM and decode the structured response
//   - generator: Render SDK snippets, diagrams, and playground scaffolding from extracted data
//   - jsonval: A tagged-variant JSON value tree with order-preserving objects
//
// Two server surfaces wrap the library: an HTTP API (doclens serve) and an
// MCP stdio server (doclens mcp).
//
// # Quick Start
//
// Normalize an API specification:
//
//	import (
//		"github.com/doclens/doclens/jsonval"
//		"github.com/doclens/doclens/normalizer"
//	)
//
//	val, err := jsonval.Decode(specBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := normalizer.Normalize(val)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s endpoints: %d\n", doc.Info.Title, doc.EndpointCount)
//
// Split markdown documentation:
//
//	import "github.com/doclens/doclens/markdown"
//
//	parsed := markdown.Split(readme)
//	fmt.Printf("title: %s, sections: %d\n", parsed.Metadata.Title, len(parsed.Sections))
//
// # Error Handling
//
// All failure classes are defined in the docerrors package and support
// errors.Is / errors.As for programmatic handling.
package doclens
