package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective constants table",
	Long: `Prints the constants table as YAML after applying --config and --preset.
The output can be saved to ~/.arcade/configs/flappy.yaml and edited.

Examples:
  flappy config
  flappy config --preset drift
  flappy config --defaults > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, _, err := loadFlappyConfig()
	if err != nil {
		return err
	}
	data, err := config.MarshalFlappy(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
