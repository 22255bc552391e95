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
	setterSetType    string
	setterAttackType string
	setterMoment     string
	setterMatches    []string
	setterPlayer     string
	setterMin        int
)

var setterCmd = &cobra.Command{
	Use:   "setter",
	Short: "Show setter distribution and side-out conversion",
	Args:  cobra.NoArgs,
	RunE:  runSetter,
}

func init() {
	setterCmd.Flags().StringVar(&setterSetType, "set-type", "", "restrict to one pass type (K1, K2, ...)")
	setterCmd.Flags().StringVar(&setterAttackType, "attack-type", "", "restrict to passes followed by this attack type (X5, V3, ...)")
	setterCmd.Flags().StringVar(&setterMoment, "moment", "all", "score phase: all, early, mid or late")
	setterCmd.Flags().StringSliceVar(&setterMatches, "match", nil, "restrict to the given match ids")
	setterCmd.Flags().StringVar(&setterPlayer, "player", "", "mark this player id in the table")
	setterCmd.Flags().IntVar(&setterMin, "min", -1, "minimum passes to be listed (default from config)")
}

func runSetter(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	moment, err := parseMomentFlag(setterMoment)
	if err != nil {
		return err
	}
	minActions := setterMin
	if minActions < 0 {
		minActions = cfg.MinSetActions
	}

	engine, err := loadEngine(db, setterMatches...)
	if err != nil {
		return err
	}

	spec := stats.FilterSpec{
		Skill:      model.SkillSet,
		Moment:     moment,
		Matches:    setterMatches,
		SetCode:    setterSetType,
		AttackCode: setterAttackType,
	}
	rows, err := engine.RankPlayers(spec, "Total", minActions)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stdout, "No setter reached %d passes under these filters.\n", minActions)
		return nil
	}

	header := fmt.Sprintf("\nSetters (min %d passes)", minActions)
	if setterSetType != "" {
		header += fmt.Sprintf("  |  pass: %s", stats.CodeName(setterSetType, stats.SetTypeNames))
	}
	if setterAttackType != "" {
		header += fmt.Sprintf("  |  attack: %s", stats.CodeName(setterAttackType, stats.AttackTypeNames))
	}
	fmt.Fprintln(os.Stdout, header)
	report.PrintSetterTable(os.Stdout, rows, setterPlayer)
	return nil
}
