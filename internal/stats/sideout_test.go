package stats

import (
	"testing"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// buildRally assembles one match timeline exercising the pass→attack
// sequences:
//
//	0 reception  1 set  2 attack '#'   (reception phase, converted)
//	3 dig        4 set  5 attack '-'   (transition phase, not converted)
//	6 set        7 serve               (pass not followed by an attack)
//	8 set                              (pass at the end of the match)
func buildRally(setter string) []model.Action {
	mk := func(skill model.Skill, eval byte, player string) model.Action {
		return model.Action{
			MatchID:        "m1",
			SetNumber:      1,
			Skill:          skill,
			EvaluationCode: eval,
			PlayerID:       player,
			Team:           model.TeamID("Test Team"),
		}
	}
	return []model.Action{
		mk(model.SkillReception, '+', "libero"),
		mk(model.SkillSet, '#', setter),
		mk(model.SkillAttack, '#', "spiker"),
		mk(model.SkillDig, '+', "libero"),
		mk(model.SkillSet, '+', setter),
		mk(model.SkillAttack, '-', "spiker"),
		mk(model.SkillSet, '+', setter),
		mk(model.SkillServe, '#', "server"),
		mk(model.SkillSet, '+', setter),
	}
}

// TestSideOutCounting: two of the four passes are followed by an attack, one
// of which scores.
func TestSideOutCounting(t *testing.T) {
	e := newTestEngine(t, buildRally("setter"))

	s, err := e.SkillStats(FilterSpec{Skill: model.SkillSet, PlayerID: "setter"})
	if err != nil {
		t.Fatalf("SkillStats: %v", err)
	}

	if s.SOSituations != 2 || s.SOSuccesses != 1 {
		t.Errorf("SO = %d/%d, want 1/2", s.SOSuccesses, s.SOSituations)
	}
	if s.Special["% SO"] != 50.0 {
		t.Errorf("%% SO = %.1f, want 50.0", s.Special["% SO"])
	}
}

// TestFirstBallSideOutRequiresReception: only the pass with a reception
// directly before it counts as a first-ball situation.
func TestFirstBallSideOutRequiresReception(t *testing.T) {
	e := newTestEngine(t, buildRally("setter"))

	s, err := e.SkillStats(FilterSpec{Skill: model.SkillSet, PlayerID: "setter"})
	if err != nil {
		t.Fatalf("SkillStats: %v", err)
	}

	if s.FSOSituations != 1 || s.FSOSuccesses != 1 {
		t.Errorf("FSO = %d/%d, want 1/1", s.FSOSuccesses, s.FSOSituations)
	}
	if s.Special["% FSO"] != 100.0 {
		t.Errorf("%% FSO = %.1f, want 100.0", s.Special["% FSO"])
	}
	// First-ball situations are a subset of side-out situations.
	if s.FSOSituations > s.SOSituations {
		t.Errorf("FSO situations (%d) exceed SO situations (%d)", s.FSOSituations, s.SOSituations)
	}
}

// TestSideOutExcludesTimelineBoundary: a pass with no following action at all
// is part of no situation.
func TestSideOutExcludesTimelineBoundary(t *testing.T) {
	actions := buildRally("setter")
	e := newTestEngine(t, actions)

	s, err := e.SkillStats(FilterSpec{Skill: model.SkillSet, PlayerID: "setter"})
	if err != nil {
		t.Fatalf("SkillStats: %v", err)
	}
	// Four passes total, but passes 6 and 8 (serve follows / end of match)
	// have no attack continuation.
	if s.Total != 4 {
		t.Fatalf("Total = %d, want 4 passes", s.Total)
	}
	if s.SOSituations != 2 {
		t.Errorf("SOSituations = %d, want 2 (no-attack passes excluded)", s.SOSituations)
	}
}

// TestSideOutAttackTypeRestriction: restricting the attack type narrows
// both the situation count and the pass filter.
func TestSideOutAttackTypeRestriction(t *testing.T) {
	actions := buildRally("setter")
	actions[2].AttackCode = "X5"
	actions[5].AttackCode = "V3"
	e := newTestEngine(t, actions)

	s, err := e.SkillStats(FilterSpec{Skill: model.SkillSet, PlayerID: "setter", AttackCode: "X5"})
	if err != nil {
		t.Fatalf("SkillStats: %v", err)
	}
	if s.Total != 1 {
		t.Errorf("Total = %d, want 1 (only the pass before the X5 attack)", s.Total)
	}
	if s.SOSituations != 1 || s.SOSuccesses != 1 {
		t.Errorf("SO = %d/%d, want 1/1", s.SOSuccesses, s.SOSituations)
	}
}
