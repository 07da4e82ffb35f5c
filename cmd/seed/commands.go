package main

import (
	"players-api/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(startingElevenCmd)
	rootCmd.AddCommand(substitutesCmd)
	rootCmd.AddCommand(allCmd)
}

var startingElevenCmd = &cobra.Command{
	Use:   "starting-eleven",
	Short: "Apply migration 001: UUID keys and the starting eleven",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, seed.StartingEleven)
	},
}

var substitutesCmd = &cobra.Command{
	Use:   "substitutes",
	Short: "Apply migration 002: the substitutes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, seed.Substitutes)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Apply every migration in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, m := range seed.All() {
			if err := run(cmd, m); err != nil {
				return err
			}
		}
		return nil
	},
}

func run(cmd *cobra.Command, m seed.Migration) error {
	res, err := seed.NewRunner(dbPath).Run(cmd.Context(), m)
	if err != nil {
		return err
	}

	entry := logrus.WithFields(logrus.Fields{
		"migration": res.Migration,
		"inserted":  res.Inserted,
		"no_op":     res.NoOp,
	})
	if res.BackupPath != "" {
		entry = entry.WithField("backup", res.BackupPath)
	}
	entry.Info("done")
	return nil
}
