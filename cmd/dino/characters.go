package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List playable characters",
	Long:  `Shows every character that can be passed to 'dino play'.`,
	Args:  cobra.NoArgs,
	Run:   runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	fmt.Println("Characters:")
	fmt.Println()

	fmt.Printf("  %-12s  %-12s  %s\n", "Name", "Title", "Notes")
	fmt.Printf("  %-12s  %-12s  %s\n", "----", "-----", "-----")
	for _, a := range dino.Archetypes() {
		traits := a.Traits()
		notes := "animated"
		switch {
		case traits.SinglePose:
			notes = "single pose"
		case traits.Mirrored:
			notes = "animated, faces backwards"
		}
		fmt.Printf("  %-12s  %-12s  %s\n", a.String(), a.Title(), notes)
	}

	fmt.Println()
	fmt.Println("Run 'dino play <name>' to play.")
}
