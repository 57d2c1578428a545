package main

import (
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/spf13/cobra"
)

var assembleTab int

var assembleCmd = &cobra.Command{
	Use:   "assemble [list=id,id ...]",
	Short: "Assemble a request without the interactive form",
	Long:  "Move the named ids into each list's target, in argument order, and print the request for --tab (0=pan, 1=novel, 2=loci).",
	Example: `  panseq assemble --tab 1 query=NC_000913.3,NC_002695.2 query-novel=NC_003197.2
  panseq assemble reference=NC_000913.3 --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		picks, err := commands.ParsePicks(args)
		if err != nil {
			return err
		}
		cfg, err := loadForm()
		if err != nil {
			return err
		}
		sub, err := commands.Assemble(cfg, commands.AssembleOptions{Tab: assembleTab, Picks: picks})
		if err != nil {
			return err
		}
		return writeOutput(sub)
	},
}

func init() {
	assembleCmd.Flags().IntVar(&assembleTab, "tab", 0, "active tab index")
}
