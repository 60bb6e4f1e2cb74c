// Package cmd implements the CLI commands for the estatebot server.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "estatebot",
	Short: "Real estate chatbot backed by the onOffice API",
	Long: "An API service that answers property questions either from a structured onOffice " +
		"listings search or from a language model, and exposes the listings queries directly.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
