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
	compareSkill   string
	compareMoment  string
	compareMatches []string
)

var compareCmd = &cobra.Command{
	Use:   "compare <player-a> <player-b>",
	Short: "Compare two players metric by metric on one skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareSkill, "skill", "attack", "skill to compare on")
	compareCmd.Flags().StringVar(&compareMoment, "moment", "all", "score phase: all, early, mid or late")
	compareCmd.Flags().StringSliceVar(&compareMatches, "match", nil, "restrict to the given match ids")
}

func runCompare(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	skill, err := model.ParseSkill(compareSkill)
	if err != nil {
		return err
	}
	moment, err := parseMomentFlag(compareMoment)
	if err != nil {
		return err
	}

	engine, err := loadEngine(db, compareMatches...)
	if err != nil {
		return err
	}

	spec := stats.FilterSpec{Skill: skill, Moment: moment, Matches: compareMatches}
	specA, specB := spec, spec
	specA.PlayerID = args[0]
	specB.PlayerID = args[1]

	statsA, err := engine.SkillStats(specA)
	if err != nil {
		return err
	}
	statsB, err := engine.SkillStats(specB)
	if err != nil {
		return err
	}

	registry := stats.DefaultRegistry()
	skillCfg, err := registry.Config(skill)
	if err != nil {
		return err
	}
	metrics := append([]string{"Total"}, skillCfg.DisplayMetrics...)
	diffs := stats.DiffStats(statsA, statsB, metrics)

	fmt.Fprintf(os.Stdout, "\n%s — %s vs %s\n", skill, playerName(engine, args[0]), playerName(engine, args[1]))
	report.PrintComparisonTable(os.Stdout, playerName(engine, args[0]), playerName(engine, args[1]), diffs)
	return nil
}

func playerName(e *stats.Engine, id string) string {
	if p, ok := e.Player(id); ok && p.Name != "" {
		return p.Name
	}
	return id
}
