package stats

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// Engine answers SkillStats queries over one immutable action table. It owns
// the timeline adjacency index, the evaluation registry, the roster derived
// from the table, and a memo of answered queries. All methods are safe for
// concurrent use: the table and indexes are read-only after construction and
// the memo is lock-protected.
type Engine struct {
	timeline *Timeline
	registry Registry
	log      zerolog.Logger

	players  []model.Player // first-appearance order
	playerIx map[string]int
	teams    []model.TeamID

	mu   sync.Mutex
	memo map[string]model.SkillStats
}

// NewEngine indexes the action table and builds the roster. The slice must
// already be in chronological order per match and is not copied; the caller
// must not mutate it afterwards.
func NewEngine(actions []model.Action, registry Registry, log zerolog.Logger) *Engine {
	e := &Engine{
		timeline: NewTimeline(actions),
		registry: registry,
		log:      log,
		playerIx: make(map[string]int),
		memo:     make(map[string]model.SkillStats),
	}
	seenTeam := make(map[model.TeamID]bool)
	for _, a := range actions {
		if a.PlayerID == "" {
			continue
		}
		if _, ok := e.playerIx[a.PlayerID]; !ok {
			e.playerIx[a.PlayerID] = len(e.players)
			e.players = append(e.players, model.Player{
				ID:   a.PlayerID,
				Name: a.PlayerName,
				Team: a.Team,
			})
		}
		if a.Team != "" && !seenTeam[a.Team] {
			seenTeam[a.Team] = true
			e.teams = append(e.teams, a.Team)
		}
	}
	return e
}

// Players returns the roster in first-appearance order.
func (e *Engine) Players() []model.Player {
	return e.players
}

// Player looks up one roster entry by id.
func (e *Engine) Player(id string) (model.Player, bool) {
	ix, ok := e.playerIx[id]
	if !ok {
		return model.Player{}, false
	}
	return e.players[ix], true
}

// Teams returns the distinct canonical team ids in first-appearance order.
func (e *Engine) Teams() []model.TeamID {
	return e.teams
}

// Matches returns the distinct match ids in timeline order.
func (e *Engine) Matches() []string {
	var out []string
	seen := make(map[string]bool)
	for _, a := range e.timeline.Actions {
		if !seen[a.MatchID] {
			seen[a.MatchID] = true
			out = append(out, a.MatchID)
		}
	}
	return out
}

// SkillStats computes the stats record for one filter spec. An unknown skill
// is a configuration error; a spec matching no actions returns zeroed stats.
// Results are memoized per spec since filters repeat across interactions.
func (e *Engine) SkillStats(spec FilterSpec) (model.SkillStats, error) {
	cfg, err := e.registry.Config(spec.Skill)
	if err != nil {
		return model.SkillStats{}, err
	}

	key := memoKey(spec)
	e.mu.Lock()
	if s, ok := e.memo[key]; ok {
		e.mu.Unlock()
		return s, nil
	}
	e.mu.Unlock()

	idx := e.timeline.Filter(spec)
	s := computeSkillStats(e.timeline, cfg, spec, idx, e.log)

	e.mu.Lock()
	e.memo[key] = s
	e.mu.Unlock()
	return s, nil
}

// TeamStats aggregates a team as the union of its players' slices: raw
// counts are summed across players and every derived metric is recomputed
// from the sums (summing pre-computed percentages would be incorrect).
func (e *Engine) TeamStats(team model.TeamID, spec FilterSpec) (model.SkillStats, error) {
	cfg, err := e.registry.Config(spec.Skill)
	if err != nil {
		return model.SkillStats{}, err
	}
	var parts []model.SkillStats
	for _, p := range e.players {
		if p.Team != team {
			continue
		}
		ps := spec
		ps.PlayerID = p.ID
		ps.Team = ""
		s, err := e.SkillStats(ps)
		if err != nil {
			return model.SkillStats{}, err
		}
		parts = append(parts, s)
	}
	return mergeSkillStats(cfg, parts, e.log), nil
}

func memoKey(spec FilterSpec) string {
	matches := append([]string(nil), spec.Matches...)
	sort.Strings(matches)
	sets := make([]string, len(spec.Sets))
	for i, s := range spec.Sets {
		sets[i] = strconv.Itoa(s)
	}
	sort.Strings(sets)

	return strings.Join([]string{
		spec.Skill.String(),
		spec.Moment.String(),
		spec.PlayerID,
		string(spec.Team),
		strings.Join(matches, ","),
		strings.Join(sets, ","),
		spec.SetCode,
		spec.AttackCode,
	}, "|")
}
