package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/skills"
)

// DefaultShortJDChars is the length below which a job description triggers an
// advisory warning.
const DefaultShortJDChars = 200

// Input is one analysis request.
type Input struct {
	Company string
	Role    string
	JDText  string `validate:"required"`
}

// Options tunes an Analyzer. Zero values fall back to defaults.
type Options struct {
	ShortJDChars     int
	ExtraEnterprises []string
}

// Analyzer runs the full rule pipeline over a job description. It holds no
// mutable state, so Analyze is deterministic for identical input.
type Analyzer struct {
	extractor    *skills.Extractor
	validate     *validator.Validate
	shortJDChars int
	enterprises  []string
}

// New creates an Analyzer over the default keyword taxonomy.
func New(opts Options) *Analyzer {
	short := opts.ShortJDChars
	if short <= 0 {
		short = DefaultShortJDChars
	}

	enterprises := clone(KnownEnterprises)
	for _, e := range opts.ExtraEnterprises {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			enterprises = append(enterprises, e)
		}
	}

	return &Analyzer{
		extractor:    skills.NewExtractor(skills.DefaultTaxonomy),
		validate:     validator.New(),
		shortJDChars: short,
		enterprises:  enterprises,
	}
}

// Validate checks an input without running the analysis. A blank job
// description is a *model.ValidationError; a short one only yields warnings.
func (a *Analyzer) Validate(in Input) ([]string, error) {
	in.JDText = strings.TrimSpace(in.JDText)
	if err := a.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	var warnings []string
	if n := utf8.RuneCountInString(in.JDText); n < a.shortJDChars {
		warnings = append(warnings, fmt.Sprintf(
			"job description is short (%d chars); results may be less accurate", n))
	}
	return warnings, nil
}

// Analyze validates the input and derives skills, checklist, plan, questions,
// score, company intel and round mapping from it.
func (a *Analyzer) Analyze(company, role, jdText string) (model.AnalysisResult, error) {
	warnings, err := a.Validate(Input{Company: company, Role: role, JDText: jdText})
	if err != nil {
		return model.AnalysisResult{}, err
	}

	result := a.Derive(company, role, jdText)
	result.Warnings = warnings
	return result, nil
}

// Derive runs the rule pipeline without validation. It is used to re-derive
// fields for stored entries that predate them.
func (a *Analyzer) Derive(company, role, jdText string) model.AnalysisResult {
	found := a.extractor.Extract(jdText)
	intel := a.CompanyIntel(company, found)

	return model.AnalysisResult{
		Skills:       found,
		Checklist:    BuildChecklist(found),
		Plan:         BuildPlan(found),
		Questions:    BuildQuestions(found),
		Score:        ReadinessScore(found, company, role, jdText),
		CompanyIntel: &intel,
		RoundMapping: RoundMappingFor(intel, found),
	}
}

// CompanyIntel classifies a company with the analyzer's enterprise list.
func (a *Analyzer) CompanyIntel(company string, _ model.SkillMap) model.CompanyIntel {
	return classifyCompany(company, a.enterprises)
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}

	fe := verrs[0]
	switch fe.Field() {
	case "JDText":
		return &model.ValidationError{Field: "jdText", Reason: "job description is required"}
	default:
		return &model.ValidationError{Field: fe.Field(), Reason: fe.Tag()}
	}
}
