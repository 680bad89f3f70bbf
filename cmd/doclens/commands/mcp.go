package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/doclens/doclens/internal/mcpserver"
)

// MCP implements the 'mcp' command which runs the MCP server over
// stdio until the client disconnects or the process is interrupted.
func MCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: doclens mcp

Runs the doclens MCP server on stdin/stdout. Configuration is read from
the environment (ANTHROPIC_API_KEY, DOCLENS_MODEL, DOCLENS_SDK_LANGUAGE,
DOCLENS_QUIZ_COUNT).`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp takes no arguments, got %d", fs.NArg())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
