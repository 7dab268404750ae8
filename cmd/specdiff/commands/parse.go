package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/loader"
	"github.com/erraggy/specdiff/normalizer"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format string
	Quiet  bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format for the canonical model: json or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the model, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the model, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: specdiff parse [flags] <file|url>\n\n")
		Writef(output, "Normalize an OpenAPI 3.x or Swagger 2.0 document into the canonical model.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  specdiff parse openapi.yaml\n")
		Writef(output, "  specdiff parse --format yaml swagger.json\n")
		Writef(output, "  specdiff parse -q https://example.com/api/openapi.yaml | jq '.actions'\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Diagnostics go to stderr; the canonical model goes to stdout\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Normalization successful\n")
		Writef(output, "  1    Loading, validation, or extraction failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or URL")
	}

	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	specPath := fs.Arg(0)

	doc, err := loader.Load(specPath)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	api, err := normalizer.New().Normalize(doc.Root)
	if err != nil {
		return fmt.Errorf("normalizing document: %w", err)
	}

	// Diagnostics go to stderr to keep stdout clean for the model output.
	if !flags.Quiet {
		Writef(os.Stderr, "API Description Normalizer\n")
		Writef(os.Stderr, "==========================\n\n")
		Writef(os.Stderr, "specdiff version: %s\n", specdiff.Version())
		Writef(os.Stderr, "Specification: %s\n", specPath)
		Writef(os.Stderr, "Source Format: %s\n", doc.SourceFormat)
		Writef(os.Stderr, "Source Size: %d bytes\n", doc.SourceSize)
		Writef(os.Stderr, "Load Time: %v\n\n", doc.LoadTime)
		Writef(os.Stderr, "Title: %s\n", api.Name)
		Writef(os.Stderr, "Version: %s\n", api.Version)
		Writef(os.Stderr, "Base URL: %s\n", api.BaseURL)
		Writef(os.Stderr, "Auth: %s\n", api.Auth.Type)
		Writef(os.Stderr, "Endpoints: %d\n\n", len(api.Actions))

		if len(api.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(api.Warnings))
			for _, warning := range api.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	return OutputStructured(os.Stdout, api, flags.Format)
}
