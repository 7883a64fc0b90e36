package history

import (
	"fmt"
	"maps"
	"time"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/model"
)

// NewEntry builds a canonical entry from an analysis result. Every extracted
// skill starts at "practice" and FinalScore is derived from that map.
func NewEntry(id string, createdAt time.Time, company, role, jdText string, result model.AnalysisResult) model.AnalysisEntry {
	e := model.AnalysisEntry{
		ID:                 id,
		SchemaVersion:      model.CurrentSchemaVersion,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    result.Skills,
		Checklist:          result.Checklist,
		Plan7Days:          result.Plan,
		Questions:          result.Questions,
		BaseScore:          result.Score,
		SkillConfidenceMap: DefaultConfidence(result.Skills, nil),
		CompanyIntel:       result.CompanyIntel,
		RoundMapping:       result.RoundMapping,
	}
	return Recompute(e)
}

// DefaultConfidence returns a confidence map with one entry per extracted
// skill. Valid values from existing are kept; everything else is "practice".
// Skills that are no longer extracted are dropped.
func DefaultConfidence(skills model.SkillMap, existing map[string]model.Confidence) map[string]model.Confidence {
	out := make(map[string]model.Confidence)
	for _, s := range skills.Skills() {
		c := existing[s]
		if !c.Valid() {
			c = model.ConfidencePractice
		}
		out[s] = c
	}
	return out
}

// Recompute derives FinalScore from BaseScore and the confidence map.
func Recompute(e model.AnalysisEntry) model.AnalysisEntry {
	e.FinalScore = analyzer.AdjustedScore(e.BaseScore, e.SkillConfidenceMap)
	return e
}

// SetConfidence returns a copy of e with skill set to c, FinalScore recomputed
// and UpdatedAt set to now. The input entry is not modified.
func SetConfidence(e model.AnalysisEntry, skill string, c model.Confidence, now time.Time) (model.AnalysisEntry, error) {
	if !c.Valid() {
		return e, fmt.Errorf("invalid confidence %q (want %q or %q)", c, model.ConfidenceKnow, model.ConfidencePractice)
	}
	conf := DefaultConfidence(e.ExtractedSkills, e.SkillConfidenceMap)
	if _, ok := conf[skill]; !ok {
		return e, fmt.Errorf("skill %q was not extracted for entry %s", skill, e.ID)
	}

	conf = maps.Clone(conf)
	conf[skill] = c
	e.SkillConfidenceMap = conf
	e.UpdatedAt = now
	return Recompute(e), nil
}

// ToggleConfidence flips skill between "know" and "practice".
func ToggleConfidence(e model.AnalysisEntry, skill string, now time.Time) (model.AnalysisEntry, error) {
	next := model.ConfidenceKnow
	if e.SkillConfidenceMap[skill] == model.ConfidenceKnow {
		next = model.ConfidencePractice
	}
	return SetConfidence(e, skill, next, now)
}
