package scout

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

const sampleCSV = `match_id,match_day,set_number,skill,evaluation_code,home_team_score,visiting_team_score,player_id,player_name,team,home_team,visiting_team,set_code,attack_code
m1,2025-03-01,1,Serve,#,0,0,p1,Alice,FRANCE AVENIR 2024,France Avenir,Paris,,
m1,2025-03-01,1,Reception,+,0,1,p2,Bob,Paris Volley,France Avenir,Paris,,
m1,2025-03-01,1,Set,#,0,1,p3,Cleo,Paris Volley,France Avenir,Paris,K1,
m1,2025-03-01,1,Attack,#,0,1,p4,Dana,Paris Volley,France Avenir,Paris,,X5
`

func read(t *testing.T, csv string) ([]model.Action, []model.MatchMeta) {
	t.Helper()
	actions, metas, err := Read(strings.NewReader(csv), zerolog.Nop())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return actions, metas
}

func TestReadPreservesRowOrder(t *testing.T) {
	actions, metas := read(t, sampleCSV)

	if len(actions) != 4 {
		t.Fatalf("got %d actions, want 4", len(actions))
	}
	wantSkills := []model.Skill{model.SkillServe, model.SkillReception, model.SkillSet, model.SkillAttack}
	for i, want := range wantSkills {
		if actions[i].Skill != want {
			t.Errorf("action %d skill = %v, want %v", i, actions[i].Skill, want)
		}
	}
	if len(metas) != 1 || metas[0].ID != "m1" || metas[0].ActionCount != 4 {
		t.Errorf("metas = %+v, want one m1 record with 4 actions", metas)
	}
	if actions[2].SetCode != "K1" || actions[3].AttackCode != "X5" {
		t.Errorf("optional codes not carried: %+v, %+v", actions[2], actions[3])
	}
}

// TestReadCanonicalizesTeams: digits stripped, case normalized, once at load.
func TestReadCanonicalizesTeams(t *testing.T) {
	actions, _ := read(t, sampleCSV)
	if actions[0].Team != "France Avenir" {
		t.Errorf("team = %q, want %q", actions[0].Team, "France Avenir")
	}
}

// TestReadColumnOrderFree: the header contract is by name, not position.
func TestReadColumnOrderFree(t *testing.T) {
	csv := `player_id,evaluation_code,skill,visiting_team_score,home_team_score,set_number,match_id,extra_col
p1,#,Serve,0,0,1,m1,ignored
`
	actions, _ := read(t, csv)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	a := actions[0]
	if a.MatchID != "m1" || a.PlayerID != "p1" || a.Skill != model.SkillServe || a.EvaluationCode != '#' {
		t.Errorf("parsed action = %+v", a)
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	csv := `match_id,set_number,skill,home_team_score,visiting_team_score,player_id
m1,1,Serve,0,0,p1
`
	if _, _, err := Read(strings.NewReader(csv), zerolog.Nop()); err == nil {
		t.Error("expected error for missing evaluation_code column")
	}
}

// TestReadSkipsMalformedRows: bad rows are dropped, good rows survive.
func TestReadSkipsMalformedRows(t *testing.T) {
	csv := `match_id,set_number,skill,evaluation_code,home_team_score,visiting_team_score,player_id
m1,1,Serve,#,0,0,p1
m1,1,Levitate,#,0,0,p1
m1,1,Serve,##,0,0,p1
m1,one,Serve,#,0,0,p1
m1,1,Serve,=,2,0,p1
`
	actions, metas := read(t, csv)
	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2 (three malformed rows skipped)", len(actions))
	}
	if metas[0].ActionCount != 2 {
		t.Errorf("ActionCount = %d, want 2", metas[0].ActionCount)
	}
}

// TestReadMultipleMatches: one export may carry several matches; metas keep
// first-appearance order.
func TestReadMultipleMatches(t *testing.T) {
	csv := `match_id,match_day,set_number,skill,evaluation_code,home_team_score,visiting_team_score,player_id
m1,2025-03-01,1,Serve,#,0,0,p1
m2,2025-03-08,1,Serve,=,0,0,p1
m1,2025-03-01,1,Reception,+,0,0,p2
`
	actions, metas := read(t, csv)
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(actions))
	}
	if len(metas) != 2 || metas[0].ID != "m1" || metas[1].ID != "m2" {
		t.Fatalf("metas = %+v, want m1 then m2", metas)
	}
	if metas[0].ActionCount != 2 || metas[1].ActionCount != 1 {
		t.Errorf("action counts = %d/%d, want 2/1", metas[0].ActionCount, metas[1].ActionCount)
	}
	if metas[0].Day != "2025-03-01" || metas[1].Day != "2025-03-08" {
		t.Errorf("match days = %q/%q", metas[0].Day, metas[1].Day)
	}
}
