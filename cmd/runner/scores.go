package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/platform/tui"
	"github.com/vovakirdan/parallax-runner/internal/registry"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [env]",
	Short: "Show the longest runs",
	Long: `Display the ten longest runs, for one environment or for all of them.

Examples:
  runner scores
  runner scores forest
  runner scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs per environment")
}

func runScores(_ *cobra.Command, args []string) {
	env := ""
	if len(args) == 1 {
		env = args[0]
	}

	if env != "" && env != game.CustomEnvironment && !registry.Exists(env) {
		fmt.Fprintf(os.Stderr, "Error: unknown environment %q\n", env)
		fmt.Fprintln(os.Stderr, "Run 'runner envs' to see available environments.")
		os.Exit(1)
	}

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunScores(store, env, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(env, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	title := "all environments"
	if env != "" {
		title = env
	}
	fmt.Printf("Longest Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first one!")
		return
	}

	tick := core.RuntimeConfig{TickRate: flagFPS}.TickDuration()
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "Rank", "Distance", "Time", "Env", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "----", "--------", "----", "---", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10.0f  %-8s  %-10s  %s\n",
			i+1, r.Distance, fmt.Sprintf("%.1fs", tick.Seconds()*float64(r.Ticks)),
			r.Environment, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllStats()
	if err != nil {
		return
	}
	fmt.Println()
	for _, e := range tui.ScoreEnvironments(store) {
		s, ok := stats[e]
		if !ok || (env != "" && e != env) {
			continue
		}
		fmt.Printf("%s: %d runs, best %.0f, average %.0f\n", e, s.Runs, s.BestDistance, s.AvgDistance)
	}
}
