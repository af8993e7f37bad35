package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the character picker",
	Long: `Start in interactive menu mode.

Type a character name (or use Up/Down to cycle) and press Enter to run.
After a game over, press B to come back and pick again.

Controls:
  Up/Down     - Cycle characters
  Right       - Complete the typed name
  Enter       - Start the run
  Tab         - Scoreboard
  Esc/Ctrl+C  - Quit

Examples:
  dino menu
  dino menu --fps 60
  dino menu --db ./scores.db --sound`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runInteractive(nil)
	},
}
