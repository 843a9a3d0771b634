package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bingo/internal/platform/tui"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded bingos",
	Long: `Browse every board that reached five lines.

Opens an interactive table when stdout is a terminal; use --plain to print
the latest wins instead.

Examples:
  bingo history
  bingo history --plain --limit 20`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Wins to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening win history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	wins, err := store.RecentWins(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving wins: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Bingos")
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No bingos recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bingo play' and complete five lines!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "#", "Time", "Lines", "Marks", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "-", "----", "-----", "-----", "------", "----")

	for i, w := range wins {
		fmt.Printf("  %-4d  %-8s  %-5d  %-5d  %-12s  %s\n",
			i+1, w.Duration.Round(100*time.Millisecond), w.Lines, w.Marks, w.Player,
			w.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d  Fastest: %s\n", stats.Count, stats.Fastest.Round(100*time.Millisecond))
	}
}
