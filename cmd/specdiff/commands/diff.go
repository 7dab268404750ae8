package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/loader"
	"github.com/erraggy/specdiff/normalizer"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	BreakingOnly bool
	Format       string
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.BoolVar(&flags.BreakingOnly, "breaking-only", false, "only show breaking changes")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: specdiff diff [flags] <old> <new>\n\n")
		Writef(output, "Compare two API description files or URLs and report classified changes.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nChange Classification:\n")
		Writef(output, "  Breaking:     removed endpoints, new required parameters, removed\n")
		Writef(output, "                parameters, parameter type changes, new required body\n")
		Writef(output, "                fields, removed response fields\n")
		Writef(output, "  Non-breaking: added endpoints, new optional parameters, description\n")
		Writef(output, "                changes\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  specdiff diff api-v1.yaml api-v2.yaml\n")
		Writef(output, "  specdiff diff --breaking-only api-v1.yaml api-v2.yaml\n")
		Writef(output, "  specdiff diff --format json old.yaml new.yaml | jq '.breakingCount'\n")
		Writef(output, "  specdiff diff https://example.com/api/v1.yaml https://example.com/api/v2.yaml\n")
		Writef(output, "\nExit Status:\n")
		Writef(output, "  0    No breaking changes found\n")
		Writef(output, "  1    Breaking changes found, or comparison failed\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Cross-dialect comparison (Swagger 2.0 vs OpenAPI 3.x) is supported;\n")
		Writef(output, "    both sides normalize to the same canonical model first\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths or URLs")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	oldPath := fs.Arg(0)
	newPath := fs.Arg(1)

	oldAPI, err := loadModel(oldPath)
	if err != nil {
		return fmt.Errorf("normalizing %s: %w", oldPath, err)
	}
	newAPI, err := loadModel(newPath)
	if err != nil {
		return fmt.Errorf("normalizing %s: %w", newPath, err)
	}

	result := differ.Diff(oldAPI.Actions, newAPI.Actions)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(os.Stdout, result, flags.Format); err != nil {
			return err
		}
		if result.HasBreakingChanges() {
			os.Exit(1)
		}
		return nil
	}

	Writef(os.Stdout, "API Description Diff\n")
	Writef(os.Stdout, "====================\n\n")
	Writef(os.Stdout, "specdiff version: %s\n", specdiff.Version())
	Writef(os.Stdout, "Old: %s (%s %s)\n", oldPath, oldAPI.Name, oldAPI.Version)
	Writef(os.Stdout, "New: %s (%s %s)\n\n", newPath, newAPI.Name, newAPI.Version)

	if len(result.Changes) == 0 {
		Writef(os.Stdout, "✓ No differences found\n")
		return nil
	}

	shown := 0
	for _, change := range result.Changes {
		if flags.BreakingOnly && change.Type != differ.ChangeTypeBreaking {
			continue
		}
		Writef(os.Stdout, "  %s\n", change.String())
		shown++
	}
	if shown > 0 {
		Writef(os.Stdout, "\n")
	}

	Writef(os.Stdout, "Summary:\n")
	Writef(os.Stdout, "  Total changes: %d\n", len(result.Changes))
	if result.HasBreakingChanges() {
		Writef(os.Stdout, "  ⚠️  Breaking changes: %d\n", result.BreakingCount)
	} else {
		Writef(os.Stdout, "  ✓ Breaking changes: 0\n")
	}
	Writef(os.Stdout, "  Non-breaking changes: %d\n", result.NonBreakingCount)

	if result.HasBreakingChanges() {
		os.Exit(1)
	}
	return nil
}

// loadModel acquires and normalizes one document.
func loadModel(pathOrURL string) (*normalizer.CanonicalAPI, error) {
	doc, err := loader.Load(pathOrURL)
	if err != nil {
		return nil, err
	}
	return normalizer.New().Normalize(doc.Root)
}
