package stats

import (
	"github.com/vbstats/go-vb-metrics/internal/model"
)

// Timeline is the immutable, chronologically ordered action table plus its
// adjacency index. prev/next are built once at construction and point at the
// directly preceding/following row of the same match; -1 marks a match
// boundary. The table must not be mutated after NewTimeline returns.
type Timeline struct {
	Actions []model.Action
	prev    []int
	next    []int
}

// NewTimeline indexes the given action table. Actions must already be in
// original chronological order per match; adjacency never crosses a match
// boundary.
func NewTimeline(actions []model.Action) *Timeline {
	t := &Timeline{
		Actions: actions,
		prev:    make([]int, len(actions)),
		next:    make([]int, len(actions)),
	}
	for i := range actions {
		t.prev[i] = -1
		t.next[i] = -1
	}
	for i := 1; i < len(actions); i++ {
		if actions[i].MatchID == actions[i-1].MatchID {
			t.prev[i] = i - 1
			t.next[i-1] = i
		}
	}
	return t
}

// Prev returns the action immediately before index i in its match timeline.
func (t *Timeline) Prev(i int) (model.Action, bool) {
	if p := t.prev[i]; p >= 0 {
		return t.Actions[p], true
	}
	return model.Action{}, false
}

// Next returns the action immediately after index i in its match timeline.
func (t *Timeline) Next(i int) (model.Action, bool) {
	if n := t.next[i]; n >= 0 {
		return t.Actions[n], true
	}
	return model.Action{}, false
}

// Moment is a score-based phase bucket of a set.
type Moment int

const (
	MomentAll Moment = iota
	// MomentEarly: both scores at most 10.
	MomentEarly
	// MomentMid: both scores strictly between 10 and 20.
	MomentMid
	// MomentLate: either score at least 20.
	MomentLate
)

func (m Moment) String() string {
	switch m {
	case MomentEarly:
		return "early"
	case MomentMid:
		return "mid"
	case MomentLate:
		return "late"
	default:
		return "all"
	}
}

// ParseMoment reads a moment bucket name ("all", "early", "mid", "late").
func ParseMoment(s string) (Moment, bool) {
	switch s {
	case "", "all":
		return MomentAll, true
	case "early":
		return MomentEarly, true
	case "mid":
		return MomentMid, true
	case "late":
		return MomentLate, true
	default:
		return MomentAll, false
	}
}

// contains reports whether a score pair falls in the bucket. The buckets do
// not cover every pair: a 5-15 score matches none of early/mid/late and such
// actions drop out of any moment-filtered query.
func (m Moment) contains(home, visiting int) bool {
	switch m {
	case MomentAll:
		return true
	case MomentEarly:
		return home <= 10 && visiting <= 10
	case MomentMid:
		return home > 10 && home < 20 && visiting > 10 && visiting < 20
	case MomentLate:
		return home >= 20 || visiting >= 20
	default:
		return false
	}
}

// FilterSpec narrows the action table for one query. Zero values mean "no
// restriction" for every field except Skill, which is mandatory. The spec is
// a plain value threaded through each call; there is no ambient filter state.
type FilterSpec struct {
	Skill    model.Skill
	Moment   Moment
	PlayerID string
	Team     model.TeamID

	// Matches/Sets restrict to the given match ids / set numbers when
	// non-empty.
	Matches []string
	Sets    []int

	// SetCode keeps only passes of the given type. AttackCode keeps only
	// passes whose immediately following action is an attack of the given
	// type, and also restricts the FSO/SO attack lookahead. Both apply to
	// the Set skill.
	SetCode    string
	AttackCode string
}

// Filter returns the timeline indices matching every constraint of the spec
// (AND semantics). An empty result is the normal zero-actions case.
func (t *Timeline) Filter(spec FilterSpec) []int {
	matchSet := make(map[string]bool, len(spec.Matches))
	for _, m := range spec.Matches {
		matchSet[m] = true
	}
	setSet := make(map[int]bool, len(spec.Sets))
	for _, s := range spec.Sets {
		setSet[s] = true
	}

	var out []int
	for i, a := range t.Actions {
		if a.Skill != spec.Skill {
			continue
		}
		if spec.PlayerID != "" && a.PlayerID != spec.PlayerID {
			continue
		}
		if spec.Team != "" && a.Team != spec.Team {
			continue
		}
		if len(matchSet) > 0 && !matchSet[a.MatchID] {
			continue
		}
		if len(setSet) > 0 && !setSet[a.SetNumber] {
			continue
		}
		if !spec.Moment.contains(a.HomeScore, a.VisitingScore) {
			continue
		}
		if spec.SetCode != "" && a.SetCode != spec.SetCode {
			continue
		}
		if spec.AttackCode != "" {
			next, ok := t.Next(i)
			if !ok || next.Skill != model.SkillAttack || next.AttackCode != spec.AttackCode {
				continue
			}
		}
		out = append(out, i)
	}
	return out
}

// sideOut counts pass→attack conversion situations over the adjacency index.
// A pass at index i is a situation when the next timeline row is an attack
// (of the requested type, if any); with requireReception the previous row
// must additionally be a reception. The situation succeeds when the attack's
// evaluation is the kill symbol. Boundary rows without adjacency are
// excluded from both counts.
func (t *Timeline) sideOut(passIdx []int, attackCode string, requireReception bool) (situations, successes int) {
	for _, i := range passIdx {
		n := t.next[i]
		if n < 0 {
			continue
		}
		attack := t.Actions[n]
		if attack.Skill != model.SkillAttack {
			continue
		}
		if attackCode != "" && attack.AttackCode != attackCode {
			continue
		}
		if requireReception {
			p := t.prev[i]
			if p < 0 || t.Actions[p].Skill != model.SkillReception {
				continue
			}
		}
		situations++
		if attack.EvaluationCode == '#' {
			successes++
		}
	}
	return situations, successes
}
