package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vbstats/go-vb-metrics/internal/model"
	"github.com/vbstats/go-vb-metrics/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchSummary prints a one-line summary header for a match.
func PrintMatchSummary(w io.Writer, m model.MatchMeta) {
	fmt.Fprintf(w, "\nMatch: %s  |  Day: %s  |  %s vs %s  |  Actions: %d\n\n",
		m.ID, m.Day, m.HomeTeam, m.VisitingTeam, m.ActionCount)
}

// PrintSkillTable prints the per-player table for one skill: total, the raw
// outcome counts in mapping order, then the skill's display metrics.
// If focusPlayerID is non-empty, that player's row is marked with ">".
func PrintSkillTable(w io.Writer, cfg stats.SkillConfig, rows []stats.RankedPlayer, focusPlayerID string) {
	table := newTable(w)

	labels := cfg.Mapping.LabelOrder()
	header := []any{" ", "PLAYER", "TEAM", "TOTAL"}
	for _, l := range labels {
		header = append(header, l)
	}
	for _, m := range cfg.DisplayMetrics {
		header = append(header, m)
	}
	table.Header(header...)

	for _, r := range rows {
		marker := " "
		if focusPlayerID != "" && r.Player.ID == focusPlayerID {
			marker = ">"
		}
		cells := []any{marker, r.Player.Name, string(r.Player.Team), strconv.Itoa(r.Stats.Total)}
		for _, l := range labels {
			cells = append(cells, strconv.Itoa(r.Stats.Counts[l]))
		}
		for _, m := range cfg.DisplayMetrics {
			cells = append(cells, formatMetric(&r.Stats, m))
		}
		table.Append(cells...)
	}
	table.Render()
}

// PrintSetterTable prints the setter distribution table: playable/fault
// counts and rates plus the side-out sequence metrics.
func PrintSetterTable(w io.Writer, rows []stats.RankedPlayer, focusPlayerID string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "TEAM", "TOTAL", "JOUABLE", "FAUTE",
		"% JOUABLE", "% FAUTE", "% FSO", "% SO")

	for _, r := range rows {
		marker := " "
		if focusPlayerID != "" && r.Player.ID == focusPlayerID {
			marker = ">"
		}
		s := &r.Stats
		faults := s.SymbolCounts['=']
		fso := "—"
		if s.FSOSituations > 0 {
			fso = fmt.Sprintf("%.1f%% (%d/%d)", s.Special["% FSO"], s.FSOSuccesses, s.FSOSituations)
		}
		so := "—"
		if s.SOSituations > 0 {
			so = fmt.Sprintf("%.1f%% (%d/%d)", s.Special["% SO"], s.SOSuccesses, s.SOSituations)
		}
		table.Append(
			marker,
			r.Player.Name,
			string(r.Player.Team),
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Total-faults),
			strconv.Itoa(faults),
			fmt.Sprintf("%.1f%%", s.Special["% Jouable"]),
			fmt.Sprintf("%.1f%%", s.Special["% Faute"]),
			fso,
			so,
		)
	}
	table.Render()
}

// PrintRankingTable prints a player ranking for one metric. Rows at or above
// the threshold are marked with "*".
func PrintRankingTable(w io.Writer, ranked []stats.RankedPlayer, metric string, threshold float64) {
	table := newTable(w)
	table.Header(" ", "RANK", "PLAYER", "TEAM", "TOTAL", metric, "% EFFICACITÉ", "% ERREUR")

	for i, r := range ranked {
		marker := " "
		if r.Value >= threshold {
			marker = "*"
		}
		table.Append(
			marker,
			strconv.Itoa(i+1),
			r.Player.Name,
			string(r.Player.Team),
			strconv.Itoa(r.Stats.Total),
			formatMetric(&r.Stats, metric),
			fmt.Sprintf("%.1f", r.Stats.Efficiency),
			fmt.Sprintf("%.1f", r.Stats.ErrorRate),
		)
	}
	table.Render()
	fmt.Fprintf(w, "\n  * at or above target (%.1f)\n\n", threshold)
}

// PrintTeamTable prints team-level stats, one row per team, with the skill's
// display metrics. The main team's row is marked with ">".
func PrintTeamTable(w io.Writer, cfg stats.SkillConfig, ranked []stats.RankedTeam, mainTeam model.TeamID) {
	table := newTable(w)
	header := []any{" ", "TEAM", "TOTAL"}
	for _, m := range cfg.DisplayMetrics {
		header = append(header, m)
	}
	table.Header(header...)

	for _, r := range ranked {
		marker := " "
		if mainTeam != "" && r.Team == mainTeam {
			marker = ">"
		}
		cells := []any{marker, string(r.Team), strconv.Itoa(r.Stats.Total)}
		for _, m := range cfg.DisplayMetrics {
			cells = append(cells, formatMetric(&r.Stats, m))
		}
		table.Append(cells...)
	}
	table.Render()
}

// PrintComparisonTable prints a metric-by-metric comparison of two players.
func PrintComparisonTable(w io.Writer, nameA, nameB string, diffs []stats.MetricDiff) {
	table := newTable(w)
	table.Header("METRIC", nameA, nameB, "DIFF")

	for _, d := range diffs {
		table.Append(
			d.Metric,
			fmt.Sprintf("%.1f", d.A),
			fmt.Sprintf("%.1f", d.B),
			fmt.Sprintf("%+.1f", d.Diff),
		)
	}
	table.Render()
}

// formatMetric renders a metric value: counts as integers, rates with one
// decimal place.
func formatMetric(s *model.SkillStats, metric string) string {
	v, ok := s.Metric(metric)
	if !ok {
		return "—"
	}
	if metric == "Total" {
		return strconv.Itoa(int(v))
	}
	if _, isCount := s.Counts[metric]; isCount {
		return strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
