package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/amishk599/prepkit/internal/model"
)

const (
	baseReadiness     = 35
	perCategory       = 5
	maxScoredCategory = 6
	presenceBonus     = 10
	longJDChars       = 800
	confidenceStep    = 2
)

// ReadinessScore is the deterministic 0-100 readiness estimate. Every present
// SkillMap key counts as a category, including the general fallback.
func ReadinessScore(skills model.SkillMap, company, role, jdText string) int {
	score := baseReadiness + min(len(skills), maxScoredCategory)*perCategory
	if strings.TrimSpace(company) != "" {
		score += presenceBonus
	}
	if strings.TrimSpace(role) != "" {
		score += presenceBonus
	}
	if utf8.RuneCountInString(jdText) > longJDChars {
		score += presenceBonus
	}
	return clampScore(score)
}

// AdjustedScore shifts base by +2 for every "know" and -2 for every "practice"
// skill. It is always recomputed from scratch.
func AdjustedScore(base int, confidence map[string]model.Confidence) int {
	score := base
	for _, c := range confidence {
		switch c {
		case model.ConfidenceKnow:
			score += confidenceStep
		case model.ConfidencePractice:
			score -= confidenceStep
		}
	}
	return clampScore(score)
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
