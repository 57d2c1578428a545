package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/panseq-form/cmd/panseq/tui"
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Open the form and print the request on submit",
	Long:  "Open the submission form. Move genomes between lists, pick a tab, and press Ctrl+S. The assembled request is printed to stdout, or written to --out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadForm()
		if err != nil {
			return err
		}
		session, err := commands.NewSession(cfg)
		if err != nil {
			return err
		}

		sub, err := tui.Run(session)
		if err != nil {
			return err
		}
		if sub == nil {
			fmt.Fprintln(os.Stderr, "Cancelled, nothing submitted.")
			return nil
		}
		return writeOutput(*sub)
	},
}
