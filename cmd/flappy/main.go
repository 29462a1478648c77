// flappy is a terminal Flappy Bird with local play, an SSH server and
// persistent high scores.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy menu              - Pick a variant interactively
//	flappy serve             - Start SSH server for remote play
//	flappy scores [variant]  - Show high scores for a variant
//	flappy presets           - List the variant presets
//	flappy config            - Print the effective constants table
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible pipe layouts
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--config <path>   - Load a custom constants table
//	--preset <name>   - Apply a variant preset (classic, drift)
//	--log <path>      - Write session diagnostics to a file
//	--profile <kind>  - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPreset  string
	flagLogPath string
	flagProfile string

	profiler interface{ Stop() }
)

func main() {
	err := rootCmd.Execute()
	stopProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a flapping bird in your terminal",
	Long: `Flappy is a terminal port of the classic one-button game: flap between
the pipes, score a point for each pair you pass, and try to beat your best.

Available commands:
  play     - Play in this terminal
  menu     - Pick a variant interactively
  serve    - Start SSH server for remote play
  scores   - View high scores
  presets  - List the variant presets
  config   - Print the effective constants table

Examples:
  flappy play
  flappy play --preset drift
  flappy serve --ssh :2222
  flappy scores classic --interactive`,
	SilenceUsage:      true,
	PersistentPreRunE: startProfile,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom constants YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Variant preset: classic, drift")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile to collect: cpu, mem")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

func startProfile(*cobra.Command, []string) error {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	switch flagProfile {
	case "":
		return nil
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	default:
		return fmt.Errorf("unknown profile %q (use cpu or mem)", flagProfile)
	}
	profiler = profile.Start(opts...)
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
