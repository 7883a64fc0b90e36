package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/prepkit/internal/model"
)

// padding contains no taxonomy keywords.
func padding(n int) string {
	return strings.Repeat("lorem ipsum dolor sit amet ", n)
}

func TestAnalyze_ReactSQLDocker(t *testing.T) {
	jd := "We need React and SQL experience, Docker a plus. " + padding(8)
	require.Greater(t, len(jd), 200)
	require.LessOrEqual(t, len(jd), 800)

	res, err := New(Options{}).Analyze("", "", jd)
	require.NoError(t, err)

	assert.Equal(t, model.SkillMap{
		model.CategoryWeb:   {"React"},
		model.CategoryData:  {"SQL"},
		model.CategoryCloud: {"Docker"},
	}, res.Skills)
	assert.Equal(t, 50, res.Score)
	assert.Empty(t, res.Warnings)
}

func TestAnalyze_LongJDAddsBonus(t *testing.T) {
	jd := "We need React and SQL experience, Docker a plus. " + padding(40)
	require.Greater(t, len(jd), 800)

	res, err := New(Options{}).Analyze("", "", jd)
	require.NoError(t, err)
	assert.Equal(t, 60, res.Score)
}

func TestAnalyze_EmptyJDRejected(t *testing.T) {
	for _, jd := range []string{"", "   \n\t"} {
		_, err := New(Options{}).Analyze("Acme", "SDE", jd)
		require.Error(t, err)

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "jdText", verr.Field)
	}
}

func TestAnalyze_ShortJDWarns(t *testing.T) {
	res, err := New(Options{}).Analyze("", "", "Python and SQL")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "short (14 chars)")
}

func TestAnalyze_ShortJDThresholdConfigurable(t *testing.T) {
	res, err := New(Options{ShortJDChars: 5}).Analyze("", "", "Python and SQL")
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestAnalyze_LongCompanyAccepted(t *testing.T) {
	a := New(Options{})
	jd := "React and SQL. " + padding(10)

	anon, err := a.Analyze("", "", jd)
	require.NoError(t, err)
	res, err := a.Analyze(strings.Repeat("x", 500), strings.Repeat("y", 500), jd)
	require.NoError(t, err)

	assert.Equal(t, anon.Score+20, res.Score)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(Options{})
	jd := "Java, Spring, MySQL, AWS, Kubernetes and JUnit. DSA and OOP required. " + padding(10)

	first, err := a.Analyze("Globex Capital", "Backend Engineer", jd)
	require.NoError(t, err)
	second, err := a.Analyze("Globex Capital", "Backend Engineer", jd)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_Amazon(t *testing.T) {
	res, err := New(Options{}).Analyze("Amazon India Pvt Ltd", "SDE 1", "DSA and Java. "+padding(10))
	require.NoError(t, err)

	require.NotNil(t, res.CompanyIntel)
	assert.Equal(t, model.SizeEnterprise, res.CompanyIntel.SizeCategory)
	require.Len(t, res.RoundMapping, 4)
	assert.Equal(t, enterpriseRounds[0].RoundTitle, res.RoundMapping[0].RoundTitle)
	assert.Equal(t, enterpriseRounds[3].RoundTitle, res.RoundMapping[3].RoundTitle)
}

func TestAnalyze_ExtraEnterprises(t *testing.T) {
	a := New(Options{ExtraEnterprises: []string{"  Initech  "}})
	res, err := a.Analyze("Initech Labs", "", padding(10))
	require.NoError(t, err)
	assert.Equal(t, model.SizeEnterprise, res.CompanyIntel.SizeCategory)
}

func TestAnalyze_NoKeywordsUsesFallback(t *testing.T) {
	res, err := New(Options{}).Analyze("", "", padding(10))
	require.NoError(t, err)

	assert.Equal(t, model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}}, res.Skills)
	assert.Equal(t, 40, res.Score)
	assert.Len(t, res.Questions, QuestionCount)
	assert.Len(t, res.Plan, 7)
	assert.Len(t, res.Checklist, 4)
}
