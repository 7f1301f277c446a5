package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	admission "github.com/kingfs/go-llm-admission"
	"github.com/kingfs/go-llm-admission/config"
	"github.com/kingfs/go-llm-admission/logging"
)

var (
	configPath string
	logLevel   string

	cfg      *config.Config
	registry *admission.Registry
)

var rootCmd = &cobra.Command{
	Use:           "admit",
	Short:         "admit checks generation requests against the model registry",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.ApplyEnv(); err != nil {
			return err
		}

		if logLevel == "" {
			logLevel = cfg.Logging.Level
		}
		if err := logging.Init(logLevel); err != nil {
			return err
		}

		registry, err = cfg.Registry()
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "admission.yaml", "path to the settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (e.g. debug, info, warn, error)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(proxyCmd)
}
