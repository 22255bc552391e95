package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbstats/go-vb-metrics/internal/model"
	"github.com/vbstats/go-vb-metrics/internal/report"
	"github.com/vbstats/go-vb-metrics/internal/scout"
)

var importCmd = &cobra.Command{
	Use:   "import <scout.csv> [more.csv ...]",
	Short: "Import scout files and store their actions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open scout file: %w", err)
		}
		actions, metas, err := scout.Read(f, log)
		f.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		// One file may carry several matches; store each separately.
		byMatch := make(map[string][]model.Action, len(metas))
		for _, a := range actions {
			byMatch[a.MatchID] = append(byMatch[a.MatchID], a)
		}

		for _, meta := range metas {
			exists, err := db.MatchExists(meta.ID)
			if err != nil {
				return fmt.Errorf("check match: %w", err)
			}
			if exists {
				log.Info().Str("match", meta.ID).Msg("match already stored, skipping")
				continue
			}
			if err := db.InsertMatch(meta, byMatch[meta.ID]); err != nil {
				return fmt.Errorf("store match %s: %w", meta.ID, err)
			}
			report.PrintMatchSummary(os.Stdout, meta)
		}
	}
	return nil
}
