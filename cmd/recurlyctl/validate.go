package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/sqlite"
	"github.com/alvinosh/nestjs-recurly-sub000/bootstrap"
	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the recurlyctl configuration.

Checks:
  - YAML syntax is valid (when a config file exists)
  - Required fields are present
  - The API key is accepted (optional)
  - The notification database migrates (optional)

Examples:
  recurlyctl validate
  recurlyctl validate --check-api --check-database`,
	RunE: runValidate,
}

var (
	validateCheckAPI      bool
	validateCheckDatabase bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckAPI, "check-api", false, "check the API key against the Recurly API")
	validateCmd.Flags().BoolVar(&validateCheckDatabase, "check-database", false, "check the database opens and migrates")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(cfgFile); err == nil {
		fmt.Fprintf(out, "Validating %s...\n\n", cfgFile)
	} else {
		fmt.Fprintf(out, "Validating environment (no %s)...\n\n", cfgFile)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  %s Config valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Fprintf(out, "  %s Config valid\n", checkMark)

	client, err := recurly.New(cfg.ClientConfig())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %s Endpoint: %s\n", checkMark, client.BaseURL())
	fmt.Fprintf(out, "  %s API version: %s\n", checkMark, recurly.APIVersion)
	fmt.Fprintf(out, "  %s Webhook receiver: %s%s\n", checkMark, cfg.Addr(), cfg.Webhooks.Path)
	if cfg.Webhooks.Secret == "" {
		fmt.Fprintf(out, "  %s Webhook secret not set\n", crossMark)
	} else {
		fmt.Fprintf(out, "  %s Webhook secret set\n", checkMark)
	}
	fmt.Fprintf(out, "  %s Database: %s\n", checkMark, cfg.Database.DSN)

	failed := 0
	if validateCheckAPI {
		if err := checkAPI(cmd.Context(), client); err != nil {
			failed++
			fmt.Fprintf(out, "  %s API key accepted\n", crossMark)
			fmt.Fprintf(out, "      Error: %v\n", err)
		} else {
			fmt.Fprintf(out, "  %s API key accepted\n", checkMark)
		}
	}

	if validateCheckDatabase {
		if err := checkDatabase(cfg.Database.DSN); err != nil {
			failed++
			fmt.Fprintf(out, "  %s Database migrates\n", crossMark)
			fmt.Fprintf(out, "      Error: %v\n", err)
		} else {
			fmt.Fprintf(out, "  %s Database migrates\n", checkMark)
		}
	}

	fmt.Fprintln(out)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Fprintln(out, "Configuration is valid.")
	return nil
}

func checkAPI(ctx context.Context, client *recurly.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := client.Sites.List(ctx, &recurly.SiteListParams{ListParams: recurly.ListParams{Limit: 1}}, requestOptions()...)
	return err
}

func checkDatabase(dsn string) error {
	if dsn == bootstrap.MemoryDSN {
		return nil
	}
	db, err := sqlite.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Migrate()
}
