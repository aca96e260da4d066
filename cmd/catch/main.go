// catch is a terminal arcade game: move the paddle to catch falling blocks
// and dodge the bombs.
//
// Usage:
//
//	catch                    - Play (same as "catch play")
//	catch play               - Play the game
//	catch config             - Print the effective configuration
//	catch version            - Print the version
//
// Global flags:
//
//	--fps <rate>           - Tick rate for simulation and movement (default: 60)
//	--seed <value>         - RNG seed for reproducible spawns
//	--config <path>        - YAML or TOML config file
//	--difficulty <preset>  - easy, normal or hard
//	--mute                 - Start with sound muted
//	--log-file <path>      - Write logs to a file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Catch the Falling Blocks - a terminal arcade game",
	Long: `Catch the Falling Blocks is a terminal arcade game.

Move the paddle to catch falling blocks for points and let the bombs
drop past. Every missed block costs a life, every caught bomb costs a
life, and every tenth catch earns one back. Blocks fall faster and
more often as your score grows.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  version  - Print the version

Examples:
  catch
  catch play --difficulty hard
  catch --seed 42 --log-file catch.log --log-level debug
  catch config --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
