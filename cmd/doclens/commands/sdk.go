package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/doclens/doclens/generator"
)

// SDK implements the 'sdk' command which prints an SDK request snippet
// for a single endpoint in the requested language.
func SDK(args []string) error {
	fs := flag.NewFlagSet("sdk", flag.ExitOnError)
	var (
		language = fs.String("language", "python", "snippet language: "+strings.Join(generator.SupportedLanguages, ", "))
		baseURL  = fs.String("base-url", "", "base URL for the request (defaults to a placeholder)")
		summary  = fs.String("summary", "", "endpoint summary used in snippet comments")
		auth     = fs.Bool("auth", false, "include a bearer token header")
		body     = fs.Bool("body", false, "include a JSON request body on mutating methods")
	)
	fs.Usage = func() {
		fmt.Println(`Usage: doclens sdk [flags] <method> <path>

Prints a ready-to-run request snippet for the given endpoint.

Arguments:
  <method>   HTTP method, e.g. GET or post
  <path>     endpoint path, e.g. /users/{id}

Flags:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <method> and <path> arguments, got %d", fs.NArg())
	}

	if *baseURL == "" {
		*baseURL = "https://api.example.com"
	}
	input := generator.EndpointInput{
		Method:        fs.Arg(0),
		Path:          fs.Arg(1),
		Summary:       *summary,
		BaseURL:       *baseURL,
		Authenticated: *auth,
		HasBody:       *body,
	}
	snippet, err := generator.SDKSnippet(input, *language)
	if err != nil {
		return err
	}
	fmt.Println(snippet)
	return nil
}
