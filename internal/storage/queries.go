package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// MatchExists returns true if a match with the given id is already stored.
func (db *DB) MatchExists(matchID string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE match_id = ?", matchID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch stores a match record and its actions in one transaction.
// Actions are written with their slice position as seq so the original
// chronological order survives a reload. Uses INSERT OR REPLACE for
// idempotent re-imports.
func (db *DB) InsertMatch(meta model.MatchMeta, actions []model.Action) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO matches(match_id, match_day, home_team, visiting_team, action_count)
		VALUES (?, ?, ?, ?, ?)`,
		meta.ID, meta.Day, meta.HomeTeam, meta.VisitingTeam, len(actions),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", meta.ID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO actions(
			match_id, seq, set_number, skill, evaluation_code,
			home_score, visiting_score, player_id, player_name, team,
			set_code, attack_code
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for seq, a := range actions {
		_, err = stmt.Exec(
			a.MatchID, seq, a.SetNumber, a.Skill.String(), string(a.EvaluationCode),
			a.HomeScore, a.VisitingScore, a.PlayerID, a.PlayerName, string(a.Team),
			a.SetCode, a.AttackCode,
		)
		if err != nil {
			return fmt.Errorf("insert action %d of match %s: %w", seq, meta.ID, err)
		}
	}
	return tx.Commit()
}

// ListMatches returns all stored match records ordered by match day desc.
func (db *DB) ListMatches() ([]model.MatchMeta, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, match_day, home_team, visiting_team, action_count
		FROM matches ORDER BY match_day DESC, match_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchMeta
	for rows.Next() {
		var m model.MatchMeta
		if err := rows.Scan(&m.ID, &m.Day, &m.HomeTeam, &m.VisitingTeam, &m.ActionCount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetMatchByPrefix finds the first match whose id starts with the given
// prefix. Returns nil when none matches.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchMeta, error) {
	var m model.MatchMeta
	err := db.conn.QueryRow(`
		SELECT match_id, match_day, home_team, visiting_team, action_count
		FROM matches WHERE match_id LIKE ? LIMIT 1`, prefix+"%").
		Scan(&m.ID, &m.Day, &m.HomeTeam, &m.VisitingTeam, &m.ActionCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadActions returns stored actions in chronological order. With match ids
// given, only those matches are loaded; otherwise everything is.
func (db *DB) LoadActions(matchIDs ...string) ([]model.Action, error) {
	query := `
		SELECT match_id, set_number, skill, evaluation_code,
		       home_score, visiting_score, player_id, player_name, team,
		       set_code, attack_code
		FROM actions`
	var args []any
	if len(matchIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(matchIDs)), ",")
		query += " WHERE match_id IN (" + placeholders + ")"
		for _, id := range matchIDs {
			args = append(args, id)
		}
	}
	query += " ORDER BY match_id, seq"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Action
	for rows.Next() {
		var a model.Action
		var skillStr, evalStr, teamStr string
		if err := rows.Scan(
			&a.MatchID, &a.SetNumber, &skillStr, &evalStr,
			&a.HomeScore, &a.VisitingScore, &a.PlayerID, &a.PlayerName, &teamStr,
			&a.SetCode, &a.AttackCode,
		); err != nil {
			return nil, err
		}
		a.Skill, err = model.ParseSkill(skillStr)
		if err != nil {
			return nil, fmt.Errorf("stored action of match %s: %w", a.MatchID, err)
		}
		if len(evalStr) != 1 {
			return nil, fmt.Errorf("stored action of match %s: invalid evaluation %q", a.MatchID, evalStr)
		}
		a.EvaluationCode = evalStr[0]
		a.Team = model.TeamID(teamStr)
		out = append(out, a)
	}
	return out, rows.Err()
}
