// bingo is an interactive bingo board for the terminal.
//
// Usage:
//
//	bingo                    - Play (same as bingo play)
//	bingo play               - Play on a fresh board
//	bingo serve              - Start SSH server, one board per session
//	bingo history            - Show recorded bingos
//	bingo card --png <file>  - Export a shuffled card as PNG
//	bingo config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Confetti frame rate (default: 60)
//	--seed <value>   - RNG seed for reproducible shuffles
//	--db <path>      - Win history database (default: $XDG_DATA_HOME/tui-bingo/history.db)
//	--config <path>  - Config YAML (default: $XDG_CONFIG_HOME/tui-bingo/bingo.yaml)
//	--log <path>     - Debug log file for play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Bingo - mark five lines in your terminal",
	Long: `Bingo is a 5x5 board of numbered tiles under the letters B I N G O.
Click tiles (or move with the arrows and press space) to mark them.
Completed rows and columns strike the letters out; five lines set off confetti.

Available commands:
  play     - Play on a fresh board (default)
  serve    - Start SSH server for remote play
  history  - View recorded bingos
  card     - Export a printable card
  config   - Print the effective configuration

Examples:
  bingo
  bingo play --seed 42
  bingo serve --ssh :2222
  bingo card --png card.png`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Confetti frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to win history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the board configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
