package analyzer

import (
	"strings"

	"github.com/amishk599/prepkit/internal/model"
)

// KnownEnterprises are lower-case substrings that mark a company as Enterprise.
var KnownEnterprises = []string{
	"amazon", "google", "microsoft", "meta", "apple", "netflix",
	"infosys", "tcs", "wipro", "accenture", "ibm", "oracle",
	"cognizant", "capgemini", "deloitte", "hcl", "adobe", "salesforce",
	"flipkart", "walmart", "jpmorgan", "goldman",
}

const (
	defaultIndustry = "Technology Services"
	enterpriseFocus = "Structured DSA + core fundamentals; expect standardized rounds"
	startupFocus    = "Practical problem solving + depth in the stack you will use on day one"
	heuristicNote   = "Heuristic estimate from the company name only; verify with the company's careers page."
	demoModeNote    = "Demo mode: no company provided, showing a generic startup profile."
)

var industryHints = []struct {
	keywords []string
	industry string
}{
	{[]string{"bank", "finance", "capital"}, "Financial Services"},
	{[]string{"health", "clinic", "hospital"}, "Healthcare"},
	{[]string{"analytics", "data"}, "Analytics"},
}

// CompanyIntelFor classifies a company using the built-in enterprise list.
// skills is accepted for future heuristics and does not affect the result.
func CompanyIntelFor(name string, skills model.SkillMap) model.CompanyIntel {
	return classifyCompany(name, KnownEnterprises)
}

// classifyCompany never yields SizeMidSize; the Mid-size round mapping is
// only reachable from stored or hand-built intel.
func classifyCompany(name string, enterprises []string) model.CompanyIntel {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CompanyIntel{
			Industry:     defaultIndustry,
			SizeCategory: model.SizeStartup,
			HiringFocus:  startupFocus,
			Note:         demoModeNote,
		}
	}

	lower := strings.ToLower(name)

	industry := defaultIndustry
	for _, hint := range industryHints {
		if containsAny(lower, hint.keywords) {
			industry = hint.industry
			break
		}
	}

	size := model.SizeStartup
	focus := startupFocus
	if containsAny(lower, enterprises) {
		size = model.SizeEnterprise
		focus = enterpriseFocus
	}

	return model.CompanyIntel{
		Name:         name,
		Industry:     industry,
		SizeCategory: size,
		HiringFocus:  focus,
		Note:         heuristicNote,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
