package skills

import (
	"regexp"

	"github.com/amishk599/prepkit/internal/model"
)

// Characters that may not touch a keyword on either side. '+' and '#' are
// included so "C" does not match inside "C++" or "C#".
const boundary = `[^A-Za-z0-9_+#]`

type termMatcher struct {
	term string
	re   *regexp.Regexp
}

type categoryMatcher struct {
	category model.Category
	terms    []termMatcher
}

// Extractor scans free text for taxonomy keywords. It is immutable after
// construction and safe for concurrent use.
type Extractor struct {
	matchers []categoryMatcher
}

// NewExtractor compiles one matcher per taxonomy category. Keywords are matched
// literally, case-insensitively, and only as whole words.
func NewExtractor(tax Taxonomy) *Extractor {
	e := &Extractor{}
	for _, row := range tax {
		cm := categoryMatcher{category: row.Category}
		for _, term := range row.Terms {
			pattern := `(?i)(?:^|` + boundary + `)` + regexp.QuoteMeta(term) + `(?:$|` + boundary + `)`
			cm.terms = append(cm.terms, termMatcher{term: term, re: regexp.MustCompile(pattern)})
		}
		e.matchers = append(e.matchers, cm)
	}
	return e
}

var defaultExtractor = NewExtractor(DefaultTaxonomy)

// Extract runs the default extractor over text.
func Extract(text string) model.SkillMap {
	return defaultExtractor.Extract(text)
}

// Extract returns the detected keywords per category. Categories with no match
// are omitted; if nothing matched at all, the result is the general fallback.
func (e *Extractor) Extract(text string) model.SkillMap {
	found := make(model.SkillMap)
	for _, cm := range e.matchers {
		seen := make(map[string]bool)
		var matched []string
		for _, tm := range cm.terms {
			if seen[tm.term] || !tm.re.MatchString(text) {
				continue
			}
			seen[tm.term] = true
			matched = append(matched, tm.term)
		}
		if len(matched) > 0 {
			found[cm.category] = append(found[cm.category], matched...)
		}
	}

	if len(found) == 0 {
		return model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}}
	}
	return found
}
