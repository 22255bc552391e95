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
	teamSkill   string
	teamMoment  string
	teamMatches []string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show team-level skill statistics across stored matches",
	Args:  cobra.NoArgs,
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamSkill, "skill", "", "show a single skill (reception, block, serve, attack, dig, set)")
	teamCmd.Flags().StringVar(&teamMoment, "moment", "all", "score phase: all, early, mid or late")
	teamCmd.Flags().StringSliceVar(&teamMatches, "match", nil, "restrict to the given match ids")
}

func runTeam(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	moment, err := parseMomentFlag(teamMoment)
	if err != nil {
		return err
	}

	skills := model.Skills
	if teamSkill != "" {
		skill, err := model.ParseSkill(teamSkill)
		if err != nil {
			return err
		}
		skills = []model.Skill{skill}
	}

	engine, err := loadEngine(db, teamMatches...)
	if err != nil {
		return err
	}
	registry := stats.DefaultRegistry()
	mainTeam := model.CanonicalTeam(cfg.MainTeam)

	for _, skill := range skills {
		skillCfg, err := registry.Config(skill)
		if err != nil {
			return err
		}
		spec := stats.FilterSpec{
			Skill:   skill,
			Moment:  moment,
			Matches: teamMatches,
		}
		ranked, err := engine.RankTeams(spec, skillCfg.DisplayMetrics[0])
		if err != nil {
			return err
		}
		if len(ranked) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\n", skill)
		report.PrintTeamTable(os.Stdout, skillCfg, ranked, mainTeam)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
