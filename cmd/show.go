package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbstats/go-vb-metrics/internal/model"
	"github.com/vbstats/go-vb-metrics/internal/report"
	"github.com/vbstats/go-vb-metrics/internal/stats"
)

var (
	showSkill  string
	showMoment string
	showSets   []int
	showPlayer string
)

var showCmd = &cobra.Command{
	Use:   "show <match-prefix>",
	Short: "Show skill statistics for a stored match",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSkill, "skill", "", "show a single skill (reception, block, serve, attack, dig, set)")
	showCmd.Flags().StringVar(&showMoment, "moment", "all", "score phase: all, early, mid or late")
	showCmd.Flags().IntSliceVar(&showSets, "sets", nil, "restrict to the given set numbers")
	showCmd.Flags().StringVar(&showPlayer, "player", "", "mark this player id in the tables")
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.GetMatchByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("find match: %w", err)
	}
	if match == nil {
		return fmt.Errorf("no stored match with prefix %q", args[0])
	}

	moment, err := parseMomentFlag(showMoment)
	if err != nil {
		return err
	}

	skills := model.Skills
	if showSkill != "" {
		skill, err := model.ParseSkill(showSkill)
		if err != nil {
			return err
		}
		skills = []model.Skill{skill}
	}

	engine, err := loadEngine(db, match.ID)
	if err != nil {
		return err
	}
	registry := stats.DefaultRegistry()

	report.PrintMatchSummary(os.Stdout, *match)

	for _, skill := range skills {
		skillCfg, err := registry.Config(skill)
		if err != nil {
			return err
		}
		spec := stats.FilterSpec{
			Skill:   skill,
			Moment:  moment,
			Matches: []string{match.ID},
			Sets:    showSets,
		}
		rows, err := engine.RankPlayers(spec, skillCfg.DisplayMetrics[0], 1)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\n", skill)
		report.PrintSkillTable(os.Stdout, skillCfg, rows, showPlayer)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
