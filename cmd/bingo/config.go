package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the board would use, after applying the
search order: --config, $XDG_CONFIG_HOME/tui-bingo/bingo.yaml,
./configs/bingo.yaml, built-in defaults.

Examples:
  bingo config
  bingo config --defaults > ~/.config/tui-bingo/bingo.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented default file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
