package stats

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/vbstats/go-vb-metrics/internal/model"
)

// minMappingSize is the smallest mapping for which efficiency is defined;
// below it the metric is reported as 0.0 rather than failing.
const minMappingSize = 4

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func pctOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(100 * float64(count) / float64(total))
}

// computeSkillStats builds a SkillStats from the filtered timeline indices.
// Zero indices is the normal empty case: every count and percentage key is
// present and zero. Per-metric failures degrade to 0.0 for that metric only.
func computeSkillStats(t *Timeline, cfg SkillConfig, spec FilterSpec, idx []int, log zerolog.Logger) model.SkillStats {
	s := model.SkillStats{
		Skill:        cfg.Skill,
		Total:        len(idx),
		SymbolCounts: make(map[byte]int, len(cfg.Mapping.Symbols)),
	}
	for _, sym := range cfg.Mapping.Symbols {
		s.SymbolCounts[sym] = 0
	}
	for _, i := range idx {
		code := t.Actions[i].EvaluationCode
		if _, known := cfg.Mapping.Labels[code]; known {
			s.SymbolCounts[code]++
		}
	}

	if cfg.Skill == model.SkillSet {
		s.SOSituations, s.SOSuccesses = t.sideOut(idx, spec.AttackCode, false)
		s.FSOSituations, s.FSOSuccesses = t.sideOut(idx, spec.AttackCode, true)
	}

	deriveSkillStats(cfg, &s, log)
	return s
}

// deriveSkillStats fills every derived field of s from its raw counts. It is
// shared between the single-query path and count-wise merges (team totals),
// so summed raw counts always yield correctly recomputed percentages.
func deriveSkillStats(cfg SkillConfig, s *model.SkillStats, log zerolog.Logger) {
	s.Counts = make(map[string]int)
	s.Percentages = make(map[string]float64)
	for _, label := range cfg.Mapping.LabelOrder() {
		s.Counts[label] = 0
	}
	for _, sym := range cfg.Mapping.Symbols {
		s.Counts[cfg.Mapping.Labels[sym]] += s.SymbolCounts[sym]
	}
	for label, count := range s.Counts {
		s.Percentages[label] = pctOf(count, s.Total)
	}

	s.Efficiency = efficiency(cfg, s)
	s.ErrorRate = errorRate(cfg, s)

	s.Special = make(map[string]float64, len(cfg.Specials))
	for _, sp := range cfg.Specials {
		s.Special[sp.Name] = specialValue(cfg, sp, s, log)
	}
}

// efficiency computes round(100*(positive-negative)/Total, 1), where
// positive/negative are the summed counts of the skill's leading/trailing
// symbol windows. Undefined (reported 0.0) for mappings shorter than four
// symbols and for the zero-actions case.
func efficiency(cfg SkillConfig, s *model.SkillStats) float64 {
	symbols := cfg.Mapping.Symbols
	if len(symbols) < minMappingSize || s.Total == 0 {
		return 0
	}
	posWindow, negWindow := cfg.PositiveWindow, cfg.NegativeWindow
	if posWindow <= 0 {
		posWindow = 2
	}
	if negWindow <= 0 {
		negWindow = 2
	}

	var positive, negative int
	for _, sym := range symbols[:posWindow] {
		positive += s.SymbolCounts[sym]
	}
	for _, sym := range symbols[len(symbols)-negWindow:] {
		negative += s.SymbolCounts[sym]
	}
	return round1(100 * float64(positive-negative) / float64(s.Total))
}

func errorRate(cfg SkillConfig, s *model.SkillStats) float64 {
	symbols := cfg.Mapping.Symbols
	if len(symbols) == 0 {
		return 0
	}
	errors := s.SymbolCounts[symbols[len(symbols)-1]]
	if cfg.ErrMode == ErrorLastTwo && len(symbols) >= 2 {
		errors += s.SymbolCounts[symbols[len(symbols)-2]]
	}
	return pctOf(errors, s.Total)
}

func specialValue(cfg SkillConfig, sp SpecialMetric, s *model.SkillStats, log zerolog.Logger) float64 {
	switch sp.Kind {
	case FormulaFirstSymbol:
		if len(cfg.Mapping.Symbols) == 0 {
			return 0
		}
		return pctOf(s.SymbolCounts[cfg.Mapping.Symbols[0]], s.Total)
	case FormulaSymbolShare:
		sum := 0
		for _, sym := range sp.Symbols {
			sum += s.SymbolCounts[sym]
		}
		return pctOf(sum, s.Total)
	case FormulaFirstBallSideOut:
		return pctOf(s.FSOSuccesses, s.FSOSituations)
	case FormulaSideOut:
		return pctOf(s.SOSuccesses, s.SOSituations)
	default:
		log.Warn().
			Str("skill", cfg.Skill.String()).
			Str("metric", sp.Name).
			Msg("unrecognized special-metric formula, reporting 0.0")
		return 0
	}
}

// mergeSkillStats sums the raw counts of several stats records and
// re-derives every percentage and derived metric from the summed counts.
// Percentages are never averaged: a team total is count-additive.
func mergeSkillStats(cfg SkillConfig, parts []model.SkillStats, log zerolog.Logger) model.SkillStats {
	merged := model.SkillStats{
		Skill:        cfg.Skill,
		SymbolCounts: make(map[byte]int, len(cfg.Mapping.Symbols)),
	}
	for _, sym := range cfg.Mapping.Symbols {
		merged.SymbolCounts[sym] = 0
	}
	for i := range parts {
		p := &parts[i]
		merged.Total += p.Total
		for sym, c := range p.SymbolCounts {
			merged.SymbolCounts[sym] += c
		}
		merged.FSOSituations += p.FSOSituations
		merged.FSOSuccesses += p.FSOSuccesses
		merged.SOSituations += p.SOSituations
		merged.SOSuccesses += p.SOSuccesses
	}
	deriveSkillStats(cfg, &merged, log)
	return merged
}
