package main

import (
	"fmt"
	"os"

	"players-api/internal/config"
	"players-api/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the players store with the 2022 World Cup squad",
	Long: `Seed applies the players migrations to a SQLite store.

Each migration is idempotent. starting-eleven converts an integer-keyed
players table to UUID keys, backing the file up first; substitutes only adds
rows and needs the table starting-eleven creates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dbPath == "" {
			dbPath = defaultDBPath()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database (defaults to STORAGE_PATH)")
}

func defaultDBPath() string {
	cfg, err := config.Load()
	if err != nil {
		return "./storage/players-sqlite3.db"
	}
	return cfg.StoragePath
}

// Execute runs the root command and exits non-zero on any failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("seeding failed")
		fmt.Fprintf(os.Stderr, "seed: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}
	logger.Setup(os.Getenv("LOG_LEVEL"), os.Stdout)

	Execute()
}
