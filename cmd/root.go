// Package cmd implements the techintel command-line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/north-cloud/techintel/cmd/analyze"
	"github.com/jonesrussell/north-cloud/techintel/cmd/common"
	"github.com/jonesrussell/north-cloud/techintel/cmd/serve"
	cmdsources "github.com/jonesrussell/north-cloud/techintel/cmd/sources"
	"github.com/jonesrussell/north-cloud/techintel/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "techintel",
		Short: "Tech news intelligence from RSS feeds",
		Long: `Fetches technology news feeds and enriches every article with a
category, sentiment, trend signal, key topics and ready-to-post social copy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./techintel.yaml or ./config/techintel.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	load := func() (common.CommandDeps, error) {
		return common.NewCommandDeps(cfgFile, debug)
	}

	rootCmd.AddCommand(analyze.Command(load))
	rootCmd.AddCommand(cmdsources.Command(load))
	rootCmd.AddCommand(serve.Command(load))
}

// Execute loads .env files and runs the root command.
func Execute() error {
	if err := config.LoadEnvFiles(); err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}
