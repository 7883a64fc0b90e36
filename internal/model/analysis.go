package model

import "time"

// Category names one bucket of the keyword taxonomy.
type Category string

const (
	CategoryCore      Category = "core"
	CategoryLanguages Category = "languages"
	CategoryWeb       Category = "web"
	CategoryData      Category = "data"
	CategoryCloud     Category = "cloud"
	CategoryTesting   Category = "testing"
	CategoryGeneral   Category = "general" // fallback when nothing else matched
)

// FallbackSkill is the only term ever stored under CategoryGeneral.
const FallbackSkill = "General fresher stack"

// CategoryOrder is the canonical category order used for iteration and output.
var CategoryOrder = []Category{
	CategoryCore,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
	CategoryGeneral,
}

// SkillMap maps a category to the keywords detected for it. A key is only
// present when its slice is non-empty.
type SkillMap map[Category][]string

// Has reports whether the category was detected.
func (s SkillMap) Has(c Category) bool {
	return len(s[c]) > 0
}

// Contains reports whether term was detected under category c.
func (s SkillMap) Contains(c Category, term string) bool {
	for _, t := range s[c] {
		if t == term {
			return true
		}
	}
	return false
}

// Categories returns the present categories in canonical order.
func (s SkillMap) Categories() []Category {
	var out []Category
	for _, c := range CategoryOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Skills flattens the map into individual skills in canonical order, skipping
// the fallback sentinel and duplicates.
func (s SkillMap) Skills() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.Categories() {
		if c == CategoryGeneral {
			continue
		}
		for _, t := range s[c] {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// ChecklistEntry is one interview round with its preparation items.
type ChecklistEntry struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one day of the 7-day study plan.
type PlanDay struct {
	Day   int      `json:"day"`
	Title string   `json:"title"`
	Tasks []string `json:"tasks,omitempty"`
}

// SizeCategory is the rough company size used to pick a round mapping.
type SizeCategory string

const (
	SizeStartup    SizeCategory = "Startup"
	SizeMidSize    SizeCategory = "Mid-size"
	SizeEnterprise SizeCategory = "Enterprise"
)

// CompanyIntel is the heuristic company profile derived from the company name.
type CompanyIntel struct {
	Name         string       `json:"name"`
	Industry     string       `json:"industry"`
	SizeCategory SizeCategory `json:"sizeCategory"`
	HiringFocus  string       `json:"hiringFocus"`
	Note         string       `json:"note"`
}

// RoundMappingEntry describes one expected interview stage.
type RoundMappingEntry struct {
	RoundTitle   string   `json:"roundTitle"`
	WhyItMatters string   `json:"whyItMatters"`
	FocusAreas   []string `json:"focusAreas,omitempty"`
}

// AnalysisResult is the immutable output of one analysis run.
type AnalysisResult struct {
	Skills       SkillMap            `json:"skills"`
	Checklist    []ChecklistEntry    `json:"checklist"`
	Plan         []PlanDay           `json:"plan"`
	Questions    []string            `json:"questions"`
	Score        int                 `json:"score"`
	CompanyIntel *CompanyIntel       `json:"companyIntel"`
	RoundMapping []RoundMappingEntry `json:"roundMapping"`
	Warnings     []string            `json:"warnings,omitempty"`
}

// Confidence is the user's self-reported level for a single skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// Valid reports whether c is one of the known confidence values.
func (c Confidence) Valid() bool {
	return c == ConfidenceKnow || c == ConfidencePractice
}

// CurrentSchemaVersion is written on every canonical entry.
const CurrentSchemaVersion = 2

// AnalysisEntry is the persisted unit of the history store. Baseline fields are
// fixed at creation; only SkillConfidenceMap, FinalScore and UpdatedAt change.
type AnalysisEntry struct {
	ID                 string                `json:"id"`
	SchemaVersion      int                   `json:"schemaVersion"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    SkillMap              `json:"extractedSkills"`
	Checklist          []ChecklistEntry      `json:"checklist"`
	Plan7Days          []PlanDay             `json:"plan7Days"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
	CompanyIntel       *CompanyIntel         `json:"companyIntel"`
	RoundMapping       []RoundMappingEntry   `json:"roundMapping"`
}
