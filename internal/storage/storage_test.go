package storage

import (
	"testing"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleActions(matchID string, n int) []model.Action {
	actions := make([]model.Action, n)
	symbols := []byte{'#', '+', '!', '-', '='}
	for i := range actions {
		actions[i] = model.Action{
			MatchID:        matchID,
			SetNumber:      1 + i/5,
			Skill:          model.SkillReception,
			EvaluationCode: symbols[i%len(symbols)],
			HomeScore:      i,
			VisitingScore:  i / 2,
			PlayerID:       "p1",
			PlayerName:     "Alice",
			Team:           model.TeamID("France Avenir"),
		}
	}
	return actions
}

func TestInsertMatchAndExists(t *testing.T) {
	db := openMemDB(t)

	meta := model.MatchMeta{
		ID:           "m-001",
		Day:          "2025-03-01",
		HomeTeam:     "France Avenir",
		VisitingTeam: "Paris Volley",
	}
	if err := db.InsertMatch(meta, sampleActions("m-001", 10)); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	exists, err := db.MatchExists("m-001")
	if err != nil {
		t.Fatalf("MatchExists: %v", err)
	}
	if !exists {
		t.Error("expected match to exist after insert")
	}

	exists2, _ := db.MatchExists("nope")
	if exists2 {
		t.Error("expected unknown match id to not exist")
	}
}

func TestListMatches(t *testing.T) {
	db := openMemDB(t)

	metas := []model.MatchMeta{
		{ID: "m-old", Day: "2025-01-01", HomeTeam: "A", VisitingTeam: "B"},
		{ID: "m-new", Day: "2025-02-01", HomeTeam: "C", VisitingTeam: "D"},
	}
	for _, m := range metas {
		if err := db.InsertMatch(m, sampleActions(m.ID, 3)); err != nil {
			t.Fatalf("InsertMatch: %v", err)
		}
	}

	list, err := db.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list))
	}
	// Ordered by match_day DESC — m-new should be first.
	if list[0].ID != "m-new" {
		t.Errorf("expected m-new first (newest), got %s", list[0].ID)
	}
	if list[0].ActionCount != 3 {
		t.Errorf("expected action_count 3, got %d", list[0].ActionCount)
	}
}

func TestGetMatchByPrefix(t *testing.T) {
	db := openMemDB(t)

	meta := model.MatchMeta{ID: "20250301-fra-par", Day: "2025-03-01", HomeTeam: "A", VisitingTeam: "B"}
	if err := db.InsertMatch(meta, sampleActions(meta.ID, 2)); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	got, err := db.GetMatchByPrefix("2025030")
	if err != nil {
		t.Fatalf("GetMatchByPrefix: %v", err)
	}
	if got == nil || got.ID != "20250301-fra-par" {
		t.Errorf("expected prefix lookup to find the match, got %+v", got)
	}

	missing, err := db.GetMatchByPrefix("zzz")
	if err != nil {
		t.Fatalf("GetMatchByPrefix: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown prefix, got %+v", missing)
	}
}

func TestLoadActionsRoundTrip(t *testing.T) {
	db := openMemDB(t)

	actions := sampleActions("m-rt", 12)
	actions[4].Skill = model.SkillAttack
	actions[4].SetCode = "K1"
	actions[4].AttackCode = "X5"
	meta := model.MatchMeta{ID: "m-rt", Day: "2025-03-01", HomeTeam: "A", VisitingTeam: "B"}
	if err := db.InsertMatch(meta, actions); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	loaded, err := db.LoadActions("m-rt")
	if err != nil {
		t.Fatalf("LoadActions: %v", err)
	}
	if len(loaded) != len(actions) {
		t.Fatalf("expected %d actions, got %d", len(actions), len(loaded))
	}
	// seq ordering must reproduce the original sequence exactly.
	for i := range actions {
		if loaded[i] != actions[i] {
			t.Errorf("action %d mismatch: got %+v want %+v", i, loaded[i], actions[i])
		}
	}
}

func TestLoadActionsFiltersByMatch(t *testing.T) {
	db := openMemDB(t)

	for _, id := range []string{"m-a", "m-b"} {
		meta := model.MatchMeta{ID: id, Day: "2025-03-01", HomeTeam: "A", VisitingTeam: "B"}
		if err := db.InsertMatch(meta, sampleActions(id, 5)); err != nil {
			t.Fatalf("InsertMatch: %v", err)
		}
	}

	only, err := db.LoadActions("m-a")
	if err != nil {
		t.Fatalf("LoadActions: %v", err)
	}
	if len(only) != 5 {
		t.Errorf("expected 5 actions for m-a, got %d", len(only))
	}

	all, err := db.LoadActions()
	if err != nil {
		t.Fatalf("LoadActions (all): %v", err)
	}
	if len(all) != 10 {
		t.Errorf("expected 10 actions total, got %d", len(all))
	}
}
