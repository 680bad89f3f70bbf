package main

import (
	"fmt"
	"os"

	"github.com/doclens/doclens"
	"github.com/doclens/doclens/cmd/doclens/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("doclens v%s\n", doclens.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := commands.Parse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "analyze":
		if err := commands.Analyze(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sdk":
		if err := commands.SDK(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := commands.Serve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.MCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`doclens - turn API specs and documentation into structured, learnable content

Usage:
  doclens <command> [flags] [arguments]

Commands:
  parse      Normalize an OpenAPI/Swagger specification
  analyze    Split markdown documentation into structure (optionally with LLM insights)
  sdk        Generate an SDK request snippet for an endpoint
  serve      Run the HTTP API server
  mcp        Run the MCP server over stdio
  version    Print version information
  help       Show this help message

Run 'doclens <command> --help' for command-specific flags.`)
}
