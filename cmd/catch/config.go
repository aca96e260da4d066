package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-arcade/internal/config"
)

var (
	flagFormat  string
	flagDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after applying the
config file search order and the --difficulty preset.

Search order:
  --config <path>
  ~/.arcade/configs/catch.{yaml,yml,toml}
  ./configs/catch.{yaml,yml,toml}
  built-in defaults

Examples:
  catch config
  catch config --difficulty hard --format toml
  catch config --default > ~/.arcade/configs/catch.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefault && (flagFormat == "yaml" || flagFormat == "yml") {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg := config.DefaultCatchConfig()
	if !flagDefault {
		var err error
		cfg, _, _, err = loadSettings(flagConfig, flagDifficulty)
		if err != nil {
			return err
		}
	}

	data, err := config.Encode(cfg, flagFormat)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
