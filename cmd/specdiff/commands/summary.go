package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/summary"
)

// SummaryFlags contains flags for the summary command
type SummaryFlags struct {
	Format string
}

// SetupSummaryFlags creates and configures a FlagSet for the summary command.
// Returns the FlagSet and a SummaryFlags struct with bound flag variables.
func SetupSummaryFlags() (*flag.FlagSet, *SummaryFlags) {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	flags := &SummaryFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: specdiff summary [flags] <file|url>\n\n")
		Writef(output, "Summarize an API description: endpoint counts, tags, auth, and warnings.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  specdiff summary openapi.yaml\n")
		Writef(output, "  specdiff summary --format json swagger.json | jq '.endpointsByMethod'\n")
		Writef(output, "  specdiff summary https://example.com/api/openapi.yaml\n")
	}

	return fs, flags
}

// HandleSummary executes the summary command
func HandleSummary(args []string) error {
	fs, flags := SetupSummaryFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("summary command requires exactly one file path or URL")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	api, err := loadModel(specPath)
	if err != nil {
		return fmt.Errorf("normalizing %s: %w", specPath, err)
	}
	s := summary.Build(api)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(os.Stdout, s, flags.Format)
	}

	Writef(os.Stdout, "API Description Summary\n")
	Writef(os.Stdout, "=======================\n\n")
	Writef(os.Stdout, "specdiff version: %s\n", specdiff.Version())
	Writef(os.Stdout, "Specification: %s\n\n", specPath)
	Writef(os.Stdout, "Title: %s\n", s.Title)
	Writef(os.Stdout, "Version: %s\n", s.Version)
	Writef(os.Stdout, "Base URL: %s\n", s.BaseURL)
	Writef(os.Stdout, "Auth: %s\n", s.AuthType)
	Writef(os.Stdout, "Endpoints: %d\n", s.EndpointCount)

	methods := make([]string, 0, len(s.EndpointsByMethod))
	for method := range s.EndpointsByMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		Writef(os.Stdout, "  %s: %d\n", method, s.EndpointsByMethod[method])
	}

	if len(s.Tags) > 0 {
		Writef(os.Stdout, "Tags: %v\n", s.Tags)
	}
	if s.Deprecated > 0 {
		Writef(os.Stdout, "Deprecated: %d\n", s.Deprecated)
	}

	if len(s.Warnings) > 0 {
		Writef(os.Stdout, "\nWarnings (%d):\n", len(s.Warnings))
		for _, warning := range s.Warnings {
			Writef(os.Stdout, "  - %s\n", warning)
		}
	}

	return nil
}
