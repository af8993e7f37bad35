package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

var (
	flagScoresCharacter string
	flagScoresLimit     int
	flagScoresStats     bool
	flagScoresBrowse    bool
	flagScoresClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, optionally for one character.

Examples:
  dino scores
  dino scores --character cactus
  dino scores --limit 25
  dino scores --stats
  dino scores --browse
  dino scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresCharacter, "character", "", "Only show runs of this character")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-character statistics instead")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run and the best score")
}

func runScores(_ *cobra.Command, _ []string) {
	character := ""
	if flagScoresCharacter != "" {
		a, ok := dino.ParseArchetype(flagScoresCharacter)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", flagScoresCharacter)
			fmt.Fprintln(os.Stderr, "Run 'dino characters' to see available characters.")
			os.Exit(1)
		}
		character = a.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := clearScores(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresStats {
		printStats(store)
		return
	}

	if flagScoresBrowse {
		rt := runtimeConfig()
		if err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	if err := listScores(os.Stdout, store, character, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// listScores prints the ranked runs of character ("" for all) followed by
// the best saved run and, when it is higher, the recorded best score.
func listScores(w io.Writer, store *storage.Store, character string, limit int) error {
	scores, err := store.TopScores(character, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "All characters"
	if character != "" {
		title = dino.SelectArchetype(character).Title()
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dino play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Character", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %s\n", "----", "-----", "---------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, entry.Character, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	high, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best: %d\n", high)
	// The best writer also records runs that ended by quitting mid-game.
	if record, err := store.ReadBestScore(); err == nil && record > high {
		fmt.Fprintf(w, "Record: %d\n", record)
	}
	return nil
}

// clearScores wipes the leaderboard and reports how many runs were removed.
func clearScores(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	removed := 0
	for _, st := range stats {
		removed += st.GamesCount
	}
	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs and the best score.\n", removed)
	return nil
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Character", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "---------", "-----", "----", "-------", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n",
			s.Character, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
