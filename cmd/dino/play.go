package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

var playCmd = &cobra.Command{
	Use:   "play [character]",
	Short: "Play a run",
	Long: `Start a run with the given character. Without a character the picker
is shown first. Unknown names fall back to the dino.

Controls:
  Space/Up/W  - Jump
  Down/S      - Duck
  P/Esc       - Pause
  R/Enter     - Play again (after game over)
  B           - Back to characters (after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Start slow, speed up every 100 points
  normal - Default start speed, speed up every 100 points
  hard   - Start fast, speed up every 100 points
  fixed  - No speed up

Examples:
  dino play
  dino play cactus
  dino play pterodactyl --difficulty hard
  dino play --config ./my-dino.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runInteractive(nil)
		return
	}

	archetype, ok := dino.ParseArchetype(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown character %q, playing as %s\n", args[0], dino.ArchetypeDino)
		archetype = dino.ArchetypeDino
	}
	runInteractive(&archetype)
}
