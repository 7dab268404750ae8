package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/erraggy/specdiff/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: specdiff mcp\n\n")
		Writef(output, "Start an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "The server exposes parse, diff, and summary as MCP tools. Defaults are\n")
		Writef(output, "configurable via SPECDIFF_* environment variables in your MCP client\n")
		Writef(output, "config; run your client against the specdiff binary with this command.\n\n")
		Writef(output, "Example client config:\n")
		Writef(output, "  {\"mcpServers\": {\"specdiff\": {\"command\": \"specdiff\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it serves until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return mcpserver.Run(ctx)
}
