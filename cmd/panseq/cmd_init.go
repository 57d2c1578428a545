package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default form definition",
	Long:  "Write the default form definition to the --form path so it can be edited. Asks before replacing an existing file unless --force is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := commands.Init(formPath, initForce)
		if errors.Is(err, commands.ErrFormExists) {
			var replace bool
			perr := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s already exists. Replace it?", formPath)).
						Value(&replace),
				),
			).Run()
			if perr != nil {
				return perr
			}
			if !replace {
				fmt.Println("Kept the existing form definition.")
				return nil
			}
			err = commands.Init(formPath, true)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", formPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing form definition without asking")
}
