package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/platform/tui"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on a fresh board",
	Long: `Start a board with tiles 1..25 in order. Press r or click Randomize to shuffle.

Controls:
  Mouse click      - Mark/unmark a tile, or press Randomize
  Arrows/hjkl      - Move the cursor
  Space/Enter      - Mark/unmark the tile under the cursor
  R                - Randomize the board
  C                - Copy the board to the clipboard
  Ctrl+S           - Save a text screenshot
  ?                - More keys
  Q/Ctrl+C         - Quit

Examples:
  bingo play
  bingo play --seed 42
  bingo play --log bingo.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	boardCfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The TUI owns stdout, so logging goes to a file or nowhere
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "bingo",
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open win history: %v\n", err)
		// Continue without storage - the board still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: boardCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:     store,
		Logger:    logger,
		Clipboard: tui.SystemClipboard,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
