package main

import (
	"fmt"

	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/spf13/cobra"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the lists of the form definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadForm()
		if err != nil {
			return err
		}
		session, err := commands.NewSession(cfg)
		if err != nil {
			return err
		}

		for _, l := range session.Lists() {
			fmt.Printf("%s (%s)\n", l.Title, l.Name)
			for _, it := range l.Source {
				fmt.Printf("    %-14s %s\n", it.ID, it.Label)
			}
			for _, it := range l.Target {
				fmt.Printf("  ✓ %-14s %s\n", it.ID, it.Label)
			}
			fmt.Println()
		}

		fmt.Println("TABS")
		for i, t := range session.Tabs {
			fmt.Printf("  %d %s: %v\n", i, t.Title, t.Lists)
		}
		return nil
	},
}
