package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.arcade/configs/tetris.yaml or ./configs/tetris.yaml and edit
it to change the defaults, or pass a file with --config.

Examples:
  tetris config > ~/.arcade/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultTetrisYAML())
		return err
	},
}
