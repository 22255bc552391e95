package stats

import (
	"fmt"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// EvaluationMapping is an ordered symbol→label table for one skill. Order is
// significant: the first symbols are the best outcomes, the last the worst,
// and the efficiency/error formulas read their windows off that ordering.
type EvaluationMapping struct {
	Symbols []byte
	Labels  map[byte]string
}

// Label returns the semantic label for an evaluation symbol.
func (m EvaluationMapping) Label(sym byte) (string, bool) {
	l, ok := m.Labels[sym]
	return l, ok
}

// LabelOrder returns the distinct labels in symbol order. A label shared by
// several symbols appears once, at its first symbol's position.
func (m EvaluationMapping) LabelOrder() []string {
	var out []string
	seen := make(map[string]bool, len(m.Symbols))
	for _, sym := range m.Symbols {
		l := m.Labels[sym]
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

func mapping(pairs ...string) EvaluationMapping {
	m := EvaluationMapping{Labels: make(map[byte]string, len(pairs))}
	for _, p := range pairs {
		sym := p[0]
		m.Symbols = append(m.Symbols, sym)
		m.Labels[sym] = p[2:]
	}
	return m
}

// ErrorMode selects which tail of the symbol ordering counts as an error.
type ErrorMode int

const (
	// ErrorLastOne counts only the final symbol (Serve, Set).
	ErrorLastOne ErrorMode = iota
	// ErrorLastTwo counts the final two symbols (Attack, Reception, Block, Dig).
	ErrorLastTwo
)

// FormulaKind is the closed set of special-metric formulas. The original
// dashboard evaluated these from configuration strings; here each kind is a
// fixed combination rule over the symbol-count table, so no configured
// expression is ever executed.
type FormulaKind int

const (
	FormulaNone FormulaKind = iota
	// FormulaFirstSymbol is count(symbols[0]) / Total.
	FormulaFirstSymbol
	// FormulaSymbolShare is the summed count of an explicit symbol set / Total.
	FormulaSymbolShare
	// FormulaFirstBallSideOut and FormulaSideOut are the setter sequence
	// metrics computed from the timeline adjacency index.
	FormulaFirstBallSideOut
	FormulaSideOut
)

// SpecialMetric names one extra metric of a skill and how to compute it.
type SpecialMetric struct {
	Name    string
	Kind    FormulaKind
	Symbols []byte // only for FormulaSymbolShare
}

// SkillConfig bundles everything the aggregator needs to know about one
// skill: its mapping, the efficiency windows, the error mode, and the
// special metrics.
type SkillConfig struct {
	Skill   model.Skill
	Mapping EvaluationMapping

	// PositiveWindow/NegativeWindow are the number of leading/trailing
	// symbols feeding the efficiency formula.
	PositiveWindow int
	NegativeWindow int

	ErrMode ErrorMode

	Specials []SpecialMetric

	// DisplayMetrics is the preferred metric ordering for reports; the
	// first entry is the default ranking metric.
	DisplayMetrics []string
}

// Registry maps each skill to its configuration. A skill missing from the
// registry is a fatal configuration error, not an empty result.
type Registry map[model.Skill]SkillConfig

// Config looks up the configuration for a skill.
func (r Registry) Config(s model.Skill) (SkillConfig, error) {
	cfg, ok := r[s]
	if !ok {
		return SkillConfig{}, fmt.Errorf("no evaluation mapping registered for skill %q", s)
	}
	return cfg, nil
}

// DefaultRegistry returns the standard per-skill evaluation tables.
func DefaultRegistry() Registry {
	return Registry{
		model.SkillReception: {
			Skill: model.SkillReception,
			Mapping: mapping(
				"#=Parfaite", "+=Positif", "!=Exclamative",
				"-=Négatif", "/=Retour direct", "==Ace reçu",
			),
			PositiveWindow: 2,
			NegativeWindow: 2,
			ErrMode:        ErrorLastTwo,
			Specials: []SpecialMetric{
				{Name: "% Parfaite", Kind: FormulaFirstSymbol},
			},
			DisplayMetrics: []string{"% Efficacité", "% Parfaite", "% Erreur"},
		},
		model.SkillBlock: {
			Skill: model.SkillBlock,
			Mapping: mapping(
				"#=Kill bloc", "+=Positif", "!=Soutenu",
				"-=Négatif", "/=Faute de filet", "==Block out",
			),
			PositiveWindow: 1,
			NegativeWindow: 2,
			ErrMode:        ErrorLastTwo,
			Specials: []SpecialMetric{
				{Name: "% Kill", Kind: FormulaFirstSymbol},
			},
			DisplayMetrics: []string{"% Efficacité", "% Kill", "% Erreur"},
		},
		model.SkillServe: {
			Skill: model.SkillServe,
			Mapping: mapping(
				"#=Ace", "/=Bon", "+=Positif",
				"!=Exclamative", "-=Negatif", "==Faute",
			),
			PositiveWindow: 2,
			NegativeWindow: 1,
			ErrMode:        ErrorLastOne,
			Specials: []SpecialMetric{
				{Name: "% Ace", Kind: FormulaFirstSymbol},
				{Name: "% Positif", Kind: FormulaSymbolShare, Symbols: []byte{'#', '+', '/'}},
				{Name: "% Frequence", Kind: FormulaSymbolShare, Symbols: []byte{'#', '+', '/', '!', '-'}},
			},
			DisplayMetrics: []string{"% Efficacité", "% Ace", "% Positif", "% Frequence", "% Erreur"},
		},
		model.SkillAttack: {
			Skill: model.SkillAttack,
			Mapping: mapping(
				"#=Point", "+=Positif", "!=Soutenu",
				"-=Négatif", "/=Contré", "==Faute",
			),
			PositiveWindow: 1,
			NegativeWindow: 2,
			ErrMode:        ErrorLastTwo,
			Specials: []SpecialMetric{
				{Name: "% Kill", Kind: FormulaFirstSymbol},
				{Name: "% /", Kind: FormulaSymbolShare, Symbols: []byte{'/'}},
			},
			DisplayMetrics: []string{"% Efficacité", "% Kill", "% /", "% Erreur"},
		},
		model.SkillDig: {
			Skill: model.SkillDig,
			Mapping: mapping(
				"#=Parfaite", "+=Bonne", "!=Soutien de bloc",
				"-=Mauvaise", "/=Renvoi direct", "==Non defendu",
			),
			PositiveWindow: 2,
			NegativeWindow: 2,
			ErrMode:        ErrorLastTwo,
			Specials: []SpecialMetric{
				{Name: "% Parfaite", Kind: FormulaFirstSymbol},
			},
			DisplayMetrics: []string{"% Efficacité", "% Parfaite", "% Erreur"},
		},
		model.SkillSet: {
			Skill: model.SkillSet,
			Mapping: mapping(
				"#=Parfaite", "+=Bonne", "!=Ok",
				"-=Mauvaise", "/=Nulle", "==Faute",
			),
			PositiveWindow: 2,
			NegativeWindow: 1,
			ErrMode:        ErrorLastOne,
			Specials: []SpecialMetric{
				{Name: "% Jouable", Kind: FormulaSymbolShare, Symbols: []byte{'#', '+', '/', '!', '-'}},
				{Name: "% Faute", Kind: FormulaSymbolShare, Symbols: []byte{'='}},
				{Name: "% FSO", Kind: FormulaFirstBallSideOut},
				{Name: "% SO", Kind: FormulaSideOut},
			},
			DisplayMetrics: []string{"% Efficacité", "% Jouable", "% Faute", "% FSO", "% SO"},
		},
	}
}
