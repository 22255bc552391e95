// Package scout reads exported scout data into the action table. It is the
// ingestion boundary: the proprietary scout-file format is parsed upstream
// and exported as CSV; this package only enforces the column contract.
package scout

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// Required column names. Header order is free and unknown columns are
// ignored; a missing required column fails the whole read.
var requiredColumns = []string{
	"match_id", "set_number", "skill", "evaluation_code",
	"home_team_score", "visiting_team_score", "player_id",
}

// Optional columns, defaulting to empty.
var optionalColumns = []string{
	"match_day", "home_team", "visiting_team", "player_name", "team",
	"set_code", "attack_code",
}

var evaluationSymbols = map[byte]bool{
	'#': true, '+': true, '!': true, '-': true, '/': true, '=': true,
}

// Read parses a scout CSV export. Rows keep their file order, which is the
// chronological order the adjacency index depends on. Malformed rows are
// skipped with a warn log; they never abort the read. Team labels are
// canonicalized here, once, at load time.
func Read(r io.Reader, log zerolog.Logger) ([]model.Action, []model.MatchMeta, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}

	field := func(record []string, name string) string {
		ix, ok := col[name]
		if !ok || ix >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[ix])
	}

	var actions []model.Action
	var metas []model.MatchMeta
	metaIx := make(map[string]int)

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read line %d: %w", line, err)
		}

		a, err := parseRow(record, field)
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping malformed scout row")
			continue
		}
		actions = append(actions, a)

		ix, ok := metaIx[a.MatchID]
		if !ok {
			ix = len(metas)
			metaIx[a.MatchID] = ix
			metas = append(metas, model.MatchMeta{
				ID:           a.MatchID,
				Day:          field(record, "match_day"),
				HomeTeam:     field(record, "home_team"),
				VisitingTeam: field(record, "visiting_team"),
			})
		}
		metas[ix].ActionCount++
	}
	return actions, metas, nil
}

func parseRow(record []string, field func([]string, string) string) (model.Action, error) {
	matchID := field(record, "match_id")
	if matchID == "" {
		return model.Action{}, fmt.Errorf("empty match_id")
	}

	skill, err := model.ParseSkill(field(record, "skill"))
	if err != nil {
		return model.Action{}, err
	}

	eval := field(record, "evaluation_code")
	if len(eval) != 1 || !evaluationSymbols[eval[0]] {
		return model.Action{}, fmt.Errorf("invalid evaluation_code %q", eval)
	}

	setNumber, err := strconv.Atoi(field(record, "set_number"))
	if err != nil {
		return model.Action{}, fmt.Errorf("invalid set_number: %w", err)
	}
	homeScore, err := strconv.Atoi(field(record, "home_team_score"))
	if err != nil {
		return model.Action{}, fmt.Errorf("invalid home_team_score: %w", err)
	}
	visitingScore, err := strconv.Atoi(field(record, "visiting_team_score"))
	if err != nil {
		return model.Action{}, fmt.Errorf("invalid visiting_team_score: %w", err)
	}

	playerID := field(record, "player_id")
	if playerID == "" {
		return model.Action{}, fmt.Errorf("empty player_id")
	}

	return model.Action{
		MatchID:        matchID,
		SetNumber:      setNumber,
		Skill:          skill,
		EvaluationCode: eval[0],
		HomeScore:      homeScore,
		VisitingScore:  visitingScore,
		PlayerID:       playerID,
		PlayerName:     field(record, "player_name"),
		Team:           model.CanonicalTeam(field(record, "team")),
		SetCode:        field(record, "set_code"),
		AttackCode:     field(record, "attack_code"),
	}, nil
}
