package main

import (
	"fmt"
	"os"

	"github.com/alvinosh/nestjs-recurly-sub000/bootstrap"
	"github.com/alvinosh/nestjs-recurly-sub000/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var hotReload bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook receiver",
	Long: `Run the webhook receiver.

The server will:
  - Load configuration from recurly.yaml (or --config)
  - Or load configuration from RECURLY_* environment variables
  - Verify the Recurly-Signature header of each notification
  - Store accepted notifications in the database
  - Expose /health, /version, /notifications and Prometheus metrics

Environment variables (for container deployments):
  RECURLY_API_KEY           - Private API key (required)
  RECURLY_WEBHOOK_SECRET    - Webhook signing secret
  RECURLY_DATABASE_DSN      - Database path, or "memory" (default: recurly.db)
  RECURLY_SERVER_PORT       - Server port (default: 8080)
  RECURLY_LOG_LEVEL         - Log level: debug, info, warn, error

Examples:
  recurlyctl serve
  recurlyctl serve --config /etc/recurly/config.yaml
  recurlyctl serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "reload the config file on change or SIGHUP")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	out := cmd.OutOrStdout()
	if !hasConfigFile && !config.HasEnvConfig() {
		fmt.Fprintln(out, "No configuration found.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Option 1: Create %s\n", cfgFile)
		fmt.Fprintln(out, "Option 2: Set the RECURLY_API_KEY environment variable")
		return nil
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var holder *config.Holder
	if hasConfigFile && hotReload {
		h, err := config.NewHolder(cfgFile, logger)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		holder = h
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if !hasConfigFile {
			fmt.Fprintln(out, "Running with environment variables (no config file)")
		}
		holder = config.NewStaticHolder(cfg, logger)
	}

	app, err := bootstrap.New(holder, bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	return app.Run()
}
