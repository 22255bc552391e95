package model

import (
	"fmt"
	"strings"
	"unicode"
)

// Skill is the technical action category recorded for a scout row.
type Skill int

const (
	SkillUnknown Skill = iota
	SkillReception
	SkillBlock
	SkillServe
	SkillAttack
	SkillDig
	SkillSet
)

// Skills lists all known skills in display order.
var Skills = []Skill{SkillReception, SkillBlock, SkillServe, SkillAttack, SkillDig, SkillSet}

func (s Skill) String() string {
	switch s {
	case SkillReception:
		return "Reception"
	case SkillBlock:
		return "Block"
	case SkillServe:
		return "Serve"
	case SkillAttack:
		return "Attack"
	case SkillDig:
		return "Dig"
	case SkillSet:
		return "Set"
	default:
		return "?"
	}
}

// ParseSkill converts a scout-file skill label into a Skill.
func ParseSkill(s string) (Skill, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reception":
		return SkillReception, nil
	case "block":
		return SkillBlock, nil
	case "serve":
		return SkillServe, nil
	case "attack":
		return SkillAttack, nil
	case "dig":
		return SkillDig, nil
	case "set":
		return SkillSet, nil
	default:
		return SkillUnknown, fmt.Errorf("unknown skill %q", s)
	}
}

// TeamID is a canonicalized team label, produced once at load time.
type TeamID string

// CanonicalTeam normalizes a raw scout-file team label into a stable TeamID:
// digits stripped, whitespace collapsed, title case. "France Avenir 2024"
// and "FRANCE AVENIR" both become "France Avenir".
func CanonicalTeam(raw string) TeamID {
	var stripped strings.Builder
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			stripped.WriteRune(r)
		}
	}
	words := strings.Fields(stripped.String())
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return TeamID(strings.Join(words, " "))
}

// ---- Raw action table (produced by the ingestion boundary) ----

// Action is one row of the match event table. Rows belonging to one match
// are kept in original chronological order; prev/next adjacency is only
// meaningful under that ordering.
type Action struct {
	MatchID   string
	SetNumber int
	Skill     Skill

	// EvaluationCode is the single-character outcome symbol; its meaning
	// depends on Skill.
	EvaluationCode byte

	// Scores at the time of the action, used for moment bucketing.
	HomeScore     int
	VisitingScore int

	PlayerID   string
	PlayerName string
	Team       TeamID

	// SetCode is the pass type (K1, K2, ...), AttackCode the attack type
	// (X5, V3, ...). Both optional, used only for extended filtering.
	SetCode    string
	AttackCode string
}

// MatchMeta is a lightweight match record for list/show commands.
type MatchMeta struct {
	ID           string
	Day          string
	HomeTeam     string
	VisitingTeam string
	ActionCount  int
}

// Player identifies one owner of action rows, with display metadata.
type Player struct {
	ID   string
	Name string
	Team TeamID
}

// ---- Computed statistics ----

// SkillStats holds the statistics of one (player-or-team, skill, filter-set)
// query. Raw counts (Total, SymbolCounts, side-out situation counts) are the
// source of truth; everything else is derived from them, so stats from
// several players can be merged count-wise and re-derived.
type SkillStats struct {
	Skill Skill
	Total int

	// SymbolCounts counts filtered actions per evaluation symbol.
	SymbolCounts map[byte]int

	// Counts and Percentages are keyed by mapping label. A label shared by
	// several symbols receives the summed count.
	Counts      map[string]int
	Percentages map[string]float64

	// Efficiency is "% Efficacité": round(100*(positive-negative)/Total, 1)
	// over the skill's positive/negative symbol windows. ErrorRate is
	// "% Erreur".
	Efficiency float64
	ErrorRate  float64

	// Special holds the skill's named extra metrics ("% Kill", "% Ace",
	// "% Jouable", and for Set "% FSO" / "% SO").
	Special map[string]float64

	// Side-out situation counters, populated for Set only.
	FSOSituations int
	FSOSuccesses  int
	SOSituations  int
	SOSuccesses   int
}

// Metric resolves a display key to its numeric value. Supported keys:
// "Total", "% Efficacité", "% Erreur", a mapping label (count), "% "+label
// (percentage), and any special metric name.
func (s *SkillStats) Metric(key string) (float64, bool) {
	switch key {
	case "Total":
		return float64(s.Total), true
	case "% Efficacité":
		return s.Efficiency, true
	case "% Erreur":
		return s.ErrorRate, true
	}
	if v, ok := s.Special[key]; ok {
		return v, true
	}
	if label, found := strings.CutPrefix(key, "% "); found {
		if v, ok := s.Percentages[label]; ok {
			return v, true
		}
	}
	if c, ok := s.Counts[key]; ok {
		return float64(c), true
	}
	return 0, false
}
