// dino is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	dino play [character]    - Play a run (picker when no character is given)
//	dino menu                - Picker, game and scoreboard in a loop
//	dino characters          - List playable characters
//	dino scores              - Show high scores
//	dino serve               - Start SSH server for remote play
//	dino web                 - Serve the leaderboard over HTTP
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--db <path>            - Set database path (default: ~/.dino/scores.db)
//	--config <path>        - Load a custom runner config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
//	--sound                - Play sound cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump and duck through the desert in your terminal",
	Long: `Dino Runner is an endless runner for the terminal. Pick a character,
jump over cacti, duck under pterodactyls and chase the high score.

Available commands:
  play        - Play a run directly
  menu        - Interactive character picker
  characters  - Show all playable characters
  scores      - View high scores
  serve       - Start SSH server for remote play
  web         - Serve the leaderboard as JSON over HTTP

Examples:
  dino play
  dino play cactus --difficulty hard
  dino menu --sound
  dino scores --character pterodactyl
  dino serve --ssh :2222
  dino web --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
