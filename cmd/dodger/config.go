package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, as YAML.

Without --config this is the built-in default, a good starting point for a
custom file:

  dodger config > my-dodge.yaml
  dodger play --config my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
