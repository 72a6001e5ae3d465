package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alvinosh/nestjs-recurly-sub000/config"
	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	envFile      string
	regionFlag   string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recurlyctl",
	Short: "Recurly site inspection and webhook receiver",
	Long: `recurlyctl talks to the Recurly v2021-02-25 API.

Configuration comes from a YAML file, RECURLY_* environment variables,
or a .env file in the working directory.

Quick start:
  export RECURLY_API_KEY=...
  recurlyctl sites list
  recurlyctl accounts get code-acme

Receiver:
  recurlyctl serve      # Accept and store webhook notifications
  recurlyctl validate   # Validate configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if regionFlag != "" {
			r, err := recurly.ParseRegion(regionFlag)
			if err != nil {
				return fmt.Errorf("--region: %w", err)
			}
			regionFlag = string(r)
		}
		return loadEnvFile(envFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "recurly.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before config")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "override the configured region (us or eu)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests to stderr")
}

// loadEnvFile loads KEY=VALUE pairs without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds an API client from the loaded configuration.
func newClient() (*recurly.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	return recurly.New(cfg.ClientConfig(),
		recurly.WithLogger(logger),
		recurly.WithUserAgent(fmt.Sprintf("recurlyctl/%s recurly-go/%s", version, recurly.Version)),
	)
}

// requestOptions applies global flags to a single call.
func requestOptions() []recurly.RequestOption {
	var opts []recurly.RequestOption
	if regionFlag != "" {
		opts = append(opts, recurly.WithRegion(recurly.Region(regionFlag)))
	}
	return opts
}
