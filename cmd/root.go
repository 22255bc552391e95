package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vbstats/go-vb-metrics/internal/config"
	"github.com/vbstats/go-vb-metrics/internal/logger"
	"github.com/vbstats/go-vb-metrics/internal/stats"
	"github.com/vbstats/go-vb-metrics/internal/storage"
)

var (
	dbPath string
	cfg    *config.Config
	log    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vbmetrics",
	Short: "Volleyball scout metrics tool",
	Long:  "Import volleyball scout files and compute per-player and per-team skill statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		log = logger.New(cfg.LogLevel)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".vbmetrics", "metrics.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(setterCmd)
	rootCmd.AddCommand(teamCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadEngine builds a query engine over the stored actions of the given
// matches (all matches when none are given).
func loadEngine(db *storage.DB, matchIDs ...string) (*stats.Engine, error) {
	actions, err := db.LoadActions(matchIDs...)
	if err != nil {
		return nil, fmt.Errorf("load actions: %w", err)
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions stored yet, run 'vbmetrics import <scout.csv>' first")
	}
	return stats.NewEngine(actions, stats.DefaultRegistry(), log), nil
}

func parseMomentFlag(s string) (stats.Moment, error) {
	m, ok := stats.ParseMoment(s)
	if !ok {
		return stats.MomentAll, fmt.Errorf("unknown moment %q (use all, early, mid or late)", s)
	}
	return m, nil
}
