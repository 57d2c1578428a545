package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/form"
	"github.com/ruminaider/panseq-form/internal/transfer"
	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Fill the form with simple prompts",
	Long:  "Ask for the run mode, then for the genomes of each list on that tab, and print the assembled request. Genomes already in a target stay there.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadForm()
		if err != nil {
			return err
		}
		session, err := commands.NewSession(cfg)
		if err != nil {
			return err
		}

		tab, err := promptTab(session)
		if err != nil {
			return err
		}

		var picks []commands.Pick
		for _, name := range session.Tabs[tab].Lists {
			p, err := session.Registry.Lookup(name)
			if err != nil {
				return err
			}
			ids, err := promptList(session.Titles[name], p)
			if err != nil {
				return err
			}
			if len(ids) > 0 {
				picks = append(picks, commands.Pick{List: name, IDs: ids})
			}
		}

		if err := commands.ApplyPicks(session.Registry, picks); err != nil {
			return err
		}
		sub, err := session.Submit(tab)
		if err != nil {
			return err
		}
		return writeOutput(sub)
	},
}

// promptTab asks which tab, and so which run mode, the request is for.
func promptTab(s *commands.Session) (int, error) {
	if len(s.Tabs) == 1 {
		return 0, nil
	}
	modes := form.Modes()
	options := make([]huh.Option[int], 0, len(s.Tabs))
	for i, t := range s.Tabs {
		label := t.Title
		if i < len(modes) {
			label = fmt.Sprintf("%s (%s)", t.Title, modes[i])
		}
		options = append(options, huh.NewOption(label, i))
	}
	var tab int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which analysis?").
				Options(options...).
				Value(&tab),
		),
	).Run()
	return tab, err
}

// promptList asks for the genomes to add to one list's target.
func promptList(title string, p *transfer.Pair) ([]string, error) {
	avail := p.Visible(transfer.Source)
	if len(avail) == 0 {
		fmt.Printf("%s: nothing left to add.\n", title)
		return nil, nil
	}
	options := make([]huh.Option[string], 0, len(avail))
	for _, it := range avail {
		options = append(options, huh.NewOption(it.Display(), it.ID))
	}

	var selected []string
	desc := "Space to toggle, Enter to confirm"
	if n := p.Len(transfer.Target); n > 0 {
		desc = fmt.Sprintf("%d already selected. %s", n, desc)
	}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description(desc).
				Options(options...).
				Value(&selected),
		),
	).Run()
	if err != nil {
		return nil, err
	}
	return selected, nil
}
