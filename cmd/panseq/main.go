package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/config"
	"github.com/ruminaider/panseq-form/internal/logging"
	"github.com/ruminaider/panseq-form/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	formPath string
	debug    bool
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "panseq",
	Short: "Pick genomes and assemble a panseq analysis request",
	Long:  "panseq presents the analysis submission form in the terminal. Genomes are moved from each source list into its target list, and on submit the targets and the active tab are assembled into the request fields querySelected, referenceSelected and runMode.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closeFn, err := logging.Setup(debug, paths.DebugLog())
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		closeLog = closeFn
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog == nil {
			return nil
		}
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the form
		return submitCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("panseq %s\n", version)
	},
}

// loadForm reads the form definition selected by --form.
func loadForm() (config.Config, error) {
	return commands.LoadForm(formPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formPath, "form", paths.FormFile(), "form definition file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to "+paths.DebugLog())
	rootCmd.PersistentFlags().StringVar(&outFormat, "format", commands.FormatForm, "output format: form or yaml")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write the request to a file instead of stdout")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
