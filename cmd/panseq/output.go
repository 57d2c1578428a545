package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/form"
)

// Output flags, shared by every command that produces a request.
var (
	outFormat string
	outPath   string
)

// writeOutput writes sub in the chosen --format to --out or stdout.
func writeOutput(sub form.Submission) error {
	if outPath == "" {
		return commands.WriteSubmission(os.Stdout, sub, outFormat)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := commands.WriteSubmission(f, sub, outFormat); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s request to %s\n", sub.Mode, outPath)
	return nil
}
