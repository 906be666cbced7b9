// Package commands implements the toolsctl operations CLI.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// Global flags
	configPath string
	dbURL      string
	apiURL     string
	logLevel   string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toolsctl",
	Short: "Operations CLI for the gaming tools directory",
	Long: `toolsctl manages a gaming tools directory deployment.

Commands:
  migrate  - Apply or roll back the database schema
  admin    - Check and grant administrator access
  token    - Mint a development bearer token
  tools    - Read the catalog through the API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(configPath)
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		return logger.Initialize(logLevel, "console")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func openDB(ctx context.Context) (*sqlx.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("--db flag or DATABASE_URL is required")
	}
	db, err := sqlx.ConnectContext(ctx, "pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
