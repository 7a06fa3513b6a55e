package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parallax-runner/internal/registry"
)

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List all environment presets",
	Long:  `Shows the parallax environment presets that can be selected with --env.`,
	Run:   runEnvs,
}

func runEnvs(_ *cobra.Command, _ []string) {
	envs := registry.List()

	if len(envs) == 0 {
		fmt.Println("No environments available.")
		return
	}

	fmt.Println("Available environments:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range envs {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Layers", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, e := range envs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, e.ID, e.Layers, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --env <id>' to run through it.")
}
