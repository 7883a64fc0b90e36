package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/model"
)

// rawEntry accepts both stored shapes: the canonical entry and the legacy
// {skills, plan, checklist-object, questions, readinessScore} record.
type rawEntry struct {
	ID                 any                 `json:"id"`
	SchemaVersion      int                 `json:"schemaVersion"`
	CreatedAt          string              `json:"createdAt"`
	UpdatedAt          string              `json:"updatedAt"`
	Company            string              `json:"company"`
	Role               string              `json:"role"`
	JDText             string              `json:"jdText"`
	ExtractedSkills    map[string][]string `json:"extractedSkills"`
	Skills             map[string][]string `json:"skills"`
	Checklist          json.RawMessage     `json:"checklist"`
	Plan7Days          []rawPlanDay        `json:"plan7Days"`
	Plan               []rawPlanDay        `json:"plan"`
	Questions          []string            `json:"questions"`
	BaseScore          *int                `json:"baseScore"`
	ReadinessScore     *int                `json:"readinessScore"`
	Score              *int                `json:"score"`
	SkillConfidenceMap map[string]string   `json:"skillConfidenceMap"`
	CompanyIntel       *model.CompanyIntel `json:"companyIntel"`
	RoundMapping       []rawRound          `json:"roundMapping"`
}

type rawPlanDay struct {
	Day   int      `json:"day"`
	Title string   `json:"title"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

type rawRound struct {
	RoundTitle   string   `json:"roundTitle"`
	WhyItMatters string   `json:"whyItMatters"`
	Why          string   `json:"why"`
	FocusAreas   []string `json:"focusAreas"`
}

// categoryAliases maps category names used by older records.
var categoryAliases = map[string]model.Category{
	"coreCS": model.CategoryCore,
	"other":  model.CategoryGeneral,
}

// Normalizer turns stored records of any known shape into canonical entries.
//
// Fallback table (first present source wins):
//
//	extractedSkills    <- extractedSkills, skills, re-extracted from jdText
//	checklist          <- checklist (array), checklist (object keyed by round), rebuilt
//	plan7Days          <- plan7Days, plan (title or focus), rebuilt
//	questions          <- questions, rebuilt
//	baseScore          <- baseScore, readinessScore, score, recomputed
//	updatedAt          <- updatedAt, createdAt
//	companyIntel       <- companyIntel, derived from company
//	roundMapping       <- roundMapping (whyItMatters or why), derived from intel + skills
//	skillConfidenceMap <- stored values for extracted skills, "practice"
//	finalScore         <- always recomputed
type Normalizer struct {
	az *analyzer.Analyzer
}

// NewNormalizer returns a Normalizer that re-derives missing fields with az.
func NewNormalizer(az *analyzer.Analyzer) *Normalizer {
	return &Normalizer{az: az}
}

// Normalize decodes one stored record. It fails when the record cannot be
// decoded, has no usable id, or has an unparseable createdAt; it never repairs
// those fields.
func (n *Normalizer) Normalize(raw []byte) (model.AnalysisEntry, error) {
	var r rawEntry
	if err := json.Unmarshal(raw, &r); err != nil {
		return model.AnalysisEntry{}, fmt.Errorf("decode entry: %w", err)
	}

	id, err := idString(r.ID)
	if err != nil {
		return model.AnalysisEntry{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return model.AnalysisEntry{}, fmt.Errorf("entry %s: parse createdAt: %w", id, err)
	}
	updatedAt := createdAt
	if r.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, r.UpdatedAt); err == nil {
			updatedAt = t
		}
	}

	var derived *model.AnalysisResult
	derive := func() model.AnalysisResult {
		if derived == nil {
			d := n.az.Derive(r.Company, r.Role, r.JDText)
			derived = &d
		}
		return *derived
	}

	found := skillMap(r.ExtractedSkills)
	if found == nil {
		found = skillMap(r.Skills)
	}
	if found == nil {
		found = derive().Skills
	}

	checklist, ok := checklistFrom(r.Checklist)
	if !ok {
		checklist = analyzer.BuildChecklist(found)
	}

	plan := planFrom(r.Plan7Days)
	if plan == nil {
		plan = planFrom(r.Plan)
	}
	if plan == nil {
		plan = analyzer.BuildPlan(found)
	}

	questions := r.Questions
	if questions == nil {
		questions = analyzer.BuildQuestions(found)
	}

	var base int
	switch {
	case r.BaseScore != nil:
		base = *r.BaseScore
	case r.ReadinessScore != nil:
		base = *r.ReadinessScore
	case r.Score != nil:
		base = *r.Score
	default:
		base = analyzer.ReadinessScore(found, r.Company, r.Role, r.JDText)
	}

	intel := r.CompanyIntel
	if intel == nil {
		ci := n.az.CompanyIntel(r.Company, found)
		intel = &ci
	}

	rounds := roundsFrom(r.RoundMapping)
	if rounds == nil {
		rounds = analyzer.RoundMappingFor(*intel, found)
	}

	stored := make(map[string]model.Confidence, len(r.SkillConfidenceMap))
	for k, v := range r.SkillConfidenceMap {
		stored[k] = model.Confidence(v)
	}

	e := model.AnalysisEntry{
		ID:                 id,
		SchemaVersion:      model.CurrentSchemaVersion,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		Company:            r.Company,
		Role:               r.Role,
		JDText:             r.JDText,
		ExtractedSkills:    found,
		Checklist:          checklist,
		Plan7Days:          plan,
		Questions:          questions,
		BaseScore:          base,
		SkillConfidenceMap: DefaultConfidence(found, stored),
		CompanyIntel:       intel,
		RoundMapping:       rounds,
	}
	return Recompute(e), nil
}

func idString(v any) (string, error) {
	switch id := v.(type) {
	case string:
		if id != "" {
			return id, nil
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("entry has no usable id (%v)", v)
}

// skillMap converts a stored category map, mapping old category names and
// dropping empty or unknown categories. nil means "nothing usable stored".
func skillMap(raw map[string][]string) model.SkillMap {
	out := make(model.SkillMap)
	for k, terms := range raw {
		if len(terms) == 0 {
			continue
		}
		c := model.Category(k)
		if alias, ok := categoryAliases[k]; ok {
			c = alias
		}
		if !slices.Contains(model.CategoryOrder, c) {
			continue
		}
		out[c] = append(out[c], terms...)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// checklistFrom accepts the canonical array or the legacy object keyed by
// round title. Object rounds come out in canonical round order, unknown titles
// after them alphabetically.
func checklistFrom(raw json.RawMessage) ([]model.ChecklistEntry, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var list []model.ChecklistEntry
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, len(list) > 0
	}

	var byRound map[string][]string
	if err := json.Unmarshal(raw, &byRound); err != nil || len(byRound) == 0 {
		return nil, false
	}

	titles := make([]string, 0, len(byRound))
	for title := range byRound {
		titles = append(titles, title)
	}
	slices.SortFunc(titles, func(a, b string) int {
		ia, ib := roundRank(a), roundRank(b)
		if ia != ib {
			return ia - ib
		}
		return strings.Compare(a, b)
	})

	out := make([]model.ChecklistEntry, 0, len(titles))
	for _, title := range titles {
		out = append(out, model.ChecklistEntry{RoundTitle: title, Items: byRound[title]})
	}
	return out, true
}

func roundRank(title string) int {
	if i := slices.Index(analyzer.RoundOrder, title); i >= 0 {
		return i
	}
	return len(analyzer.RoundOrder)
}

func planFrom(raw []rawPlanDay) []model.PlanDay {
	if len(raw) == 0 {
		return nil
	}
	out := make([]model.PlanDay, len(raw))
	for i, d := range raw {
		title := d.Title
		if title == "" {
			title = d.Focus
		}
		day := d.Day
		if day == 0 {
			day = i + 1
		}
		out[i] = model.PlanDay{Day: day, Title: title, Tasks: d.Tasks}
	}
	return out
}

func roundsFrom(raw []rawRound) []model.RoundMappingEntry {
	if len(raw) == 0 {
		return nil
	}
	out := make([]model.RoundMappingEntry, len(raw))
	for i, r := range raw {
		why := r.WhyItMatters
		if why == "" {
			why = r.Why
		}
		out[i] = model.RoundMappingEntry{RoundTitle: r.RoundTitle, WhyItMatters: why, FocusAreas: r.FocusAreas}
	}
	return out
}
