package export

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/amishk599/prepkit/internal/model"
)

// Placeholder is printed for absent company, role and intel values.
const Placeholder = "—"

// Formats lists every name Render accepts.
var Formats = []string{"plan", "checklist", "questions", "report"}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("export").Funcs(template.FuncMap{
	"dash": dash,
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.tmpl"))

type skillView struct {
	Name       string
	Confidence model.Confidence
}

type categoryView struct {
	Category model.Category
	Skills   []skillView
}

type view struct {
	Entry   model.AnalysisEntry
	Company string
	Role    string
	Created string
	Skills  []categoryView
}

func newView(e model.AnalysisEntry) view {
	v := view{
		Entry:   e,
		Company: dash(e.Company),
		Role:    dash(e.Role),
		Created: Placeholder,
	}
	if !e.CreatedAt.IsZero() {
		v.Created = e.CreatedAt.Format(time.RFC1123)
	}
	for _, c := range e.ExtractedSkills.Categories() {
		cv := categoryView{Category: c}
		for _, s := range e.ExtractedSkills[c] {
			cv.Skills = append(cv.Skills, skillView{Name: s, Confidence: e.SkillConfidenceMap[s]})
		}
		v.Skills = append(v.Skills, cv)
	}
	return v
}

// Render produces the named plain-text rendering of an entry.
func Render(format string, e model.AnalysisEntry) (string, error) {
	t := templates.Lookup(format)
	if t == nil || !isFormat(format) {
		return "", fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	var b strings.Builder
	if err := t.Execute(&b, newView(e)); err != nil {
		return "", fmt.Errorf("rendering %s: %w", format, err)
	}
	return b.String(), nil
}

// Plan renders the 7-day plan.
func Plan(e model.AnalysisEntry) (string, error) { return Render("plan", e) }

// Checklist renders the round-wise checklist.
func Checklist(e model.AnalysisEntry) (string, error) { return Render("checklist", e) }

// Questions renders the numbered interview questions.
func Questions(e model.AnalysisEntry) (string, error) { return Render("questions", e) }

// Report renders the full report: header, skills, intel, rounds and all
// three sections above.
func Report(e model.AnalysisEntry) (string, error) { return Render("report", e) }

func isFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
