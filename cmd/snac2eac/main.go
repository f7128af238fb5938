// Package main provides the CLI entrypoint for snac2eac.
//
// snac2eac converts SNAC constellation JSON records into EAC-CPF XML:
//   - convert: turn constellation files into EAC-CPF documents
//   - name:    print the display name (or derived file name) of a document
package main

import (
	"os"

	"github.com/spf13/cobra"

	"snac2eac/internal/config"
)

var (
	// configPath is the optional YAML configuration file.
	configPath string
	// logLevel overrides log.level when set.
	logLevel string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snac2eac",
	Short: "Convert SNAC constellations to EAC-CPF",
	Long: `snac2eac converts agent records exported from the SNAC cooperative
(constellation JSON) into EAC-CPF XML suitable for import into ArchivesSpace.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(nameCmd)
}

// loadConfig loads configuration and applies persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
