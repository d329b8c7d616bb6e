package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available players",
	Long:  `Shows a list of all players registered with auto2048.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	players := registry.List()

	if len(players) == 0 {
		fmt.Println("No players available.")
		return
	}

	fmt.Println("Available players:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range players {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range players {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'auto2048 play <id>' to watch a player.")
}
