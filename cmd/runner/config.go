package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/game"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration as YAML. Save it to
~/.runner/configs/runner.yaml or ./configs/runner.yaml to customise the game.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config validate ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		_, _ = os.Stdout.Write(config.DefaultYAML())
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		if err := game.ValidateEnvironment(cfg); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
