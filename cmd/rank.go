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
	rankSkill   string
	rankMetric  string
	rankMoment  string
	rankMatches []string
	rankTeam    string
	rankMin     int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank players on a skill metric across stored matches",
	Args:  cobra.NoArgs,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankSkill, "skill", "attack", "skill to rank on")
	rankCmd.Flags().StringVar(&rankMetric, "metric", "", "ranking metric (default: the skill's main metric)")
	rankCmd.Flags().StringVar(&rankMoment, "moment", "all", "score phase: all, early, mid or late")
	rankCmd.Flags().StringSliceVar(&rankMatches, "match", nil, "restrict to the given match ids")
	rankCmd.Flags().StringVar(&rankTeam, "team", "", "restrict to one team")
	rankCmd.Flags().IntVar(&rankMin, "min", -1, "minimum actions to be ranked (default from config)")
}

func runRank(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	skill, err := model.ParseSkill(rankSkill)
	if err != nil {
		return err
	}
	moment, err := parseMomentFlag(rankMoment)
	if err != nil {
		return err
	}

	registry := stats.DefaultRegistry()
	skillCfg, err := registry.Config(skill)
	if err != nil {
		return err
	}
	metric := rankMetric
	if metric == "" {
		metric = skillCfg.DisplayMetrics[0]
	}
	minActions := rankMin
	if minActions < 0 {
		minActions = cfg.MinActions
	}

	engine, err := loadEngine(db, rankMatches...)
	if err != nil {
		return err
	}

	spec := stats.FilterSpec{
		Skill:   skill,
		Moment:  moment,
		Matches: rankMatches,
	}
	if rankTeam != "" {
		spec.Team = model.CanonicalTeam(rankTeam)
	}
	ranked, err := engine.RankPlayers(spec, metric, minActions)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintf(os.Stdout, "No player reached %d %s actions under these filters.\n", minActions, skill)
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n%s — %s (min %d actions)\n", skill, metric, minActions)
	report.PrintRankingTable(os.Stdout, ranked, metric, cfg.Threshold(skill.String()))
	return nil
}
