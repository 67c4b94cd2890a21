// Package cli wires configuration, logging and the collaborators together
// and exposes them as cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

type options struct {
	cfgFile string
	debug   bool
	baseURL string
}

// NewRootCommand builds the chemvista command tree. Without a subcommand
// it starts the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "chemvista",
		Short: "Periodic table and compound search in the terminal",
		Long: `ChemVista shows the periodic table of elements and searches compounds
as you type. Suggestions come from the ChemVista search endpoint; pages
open in a pager or in the browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file path (default <user config dir>/chemvista/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "search service base URL, overrides the config file")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newElementCmd(opts),
		newCompoundCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// ExitOnError prints err and exits non-zero
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of chemvista",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chemvista %s\n", Version)
		},
	}
}
