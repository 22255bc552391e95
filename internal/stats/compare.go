package stats

import (
	"fmt"
	"sort"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// RankedPlayer is one row of a ranking: a roster entry with its stats and
// the value of the ranking metric.
type RankedPlayer struct {
	Player model.Player
	Stats  model.SkillStats
	Value  float64
}

// RankedTeam is one row of a team ranking.
type RankedTeam struct {
	Team  model.TeamID
	Stats model.SkillStats
	Value float64
}

// MetricDiff is one metric compared between two entities.
type MetricDiff struct {
	Metric string
	A, B   float64
	Diff   float64
}

// RankPlayers computes per-player stats under the spec and sorts them by the
// named metric, descending. Players with fewer than minActions matching
// actions are excluded. The sort is stable: ties keep roster order.
func (e *Engine) RankPlayers(spec FilterSpec, metric string, minActions int) ([]RankedPlayer, error) {
	var out []RankedPlayer
	for _, p := range e.players {
		ps := spec
		ps.PlayerID = p.ID
		s, err := e.SkillStats(ps)
		if err != nil {
			return nil, err
		}
		if s.Total < minActions || s.Total == 0 {
			continue
		}
		v, ok := s.Metric(metric)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q for skill %s", metric, spec.Skill)
		}
		out = append(out, RankedPlayer{Player: p, Stats: s, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// RankTeams aggregates each team count-wise and sorts by the named metric,
// descending, stable.
func (e *Engine) RankTeams(spec FilterSpec, metric string) ([]RankedTeam, error) {
	var out []RankedTeam
	for _, team := range e.teams {
		s, err := e.TeamStats(team, spec)
		if err != nil {
			return nil, err
		}
		if s.Total == 0 {
			continue
		}
		v, ok := s.Metric(metric)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q for skill %s", metric, spec.Skill)
		}
		out = append(out, RankedTeam{Team: team, Stats: s, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// DiffStats compares two stats records metric by metric (a minus b).
// Metrics unknown to either record are skipped.
func DiffStats(a, b model.SkillStats, metrics []string) []MetricDiff {
	var out []MetricDiff
	for _, m := range metrics {
		va, okA := a.Metric(m)
		vb, okB := b.Metric(m)
		if !okA || !okB {
			continue
		}
		out = append(out, MetricDiff{Metric: m, A: va, B: vb, Diff: round1(va - vb)})
	}
	return out
}
