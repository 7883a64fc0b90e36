package analyzer

import "github.com/amishk599/prepkit/internal/model"

var enterpriseRounds = []model.RoundMappingEntry{
	{
		RoundTitle:   "Round 1: Online Test (DSA + Aptitude)",
		WhyItMatters: "Large companies filter volume with a timed online assessment before any human round.",
		FocusAreas:   []string{"Arrays and strings", "Time-boxed problem solving", "Aptitude basics"},
	},
	{
		RoundTitle:   "Round 2: Technical (DSA + Core CS)",
		WhyItMatters: "Interviewers check fundamentals in a standardized way across candidates.",
		FocusAreas:   []string{"Data structures", "OOP", "DBMS and OS basics"},
	},
	{
		RoundTitle:   "Round 3: Tech + Projects",
		WhyItMatters: "Shows you can apply fundamentals to real work and explain your decisions.",
		FocusAreas:   []string{"Project deep dive", "Design trade-offs", "Stack-specific questions"},
	},
	{
		RoundTitle:   "Round 4: HR / Managerial",
		WhyItMatters: "Confirms culture fit, communication and expectations before an offer.",
		FocusAreas:   []string{"Behavioral stories", "Career goals", "Compensation and logistics"},
	},
}

var midSizeRounds = []model.RoundMappingEntry{
	{
		RoundTitle:   "Round 1: Technical Screen",
		WhyItMatters: "A single screen replaces the online test, so first impressions on fundamentals count.",
		FocusAreas:   []string{"Coding basics", "Core CS questions"},
	},
	{
		RoundTitle:   "Round 2: Technical Deep Dive",
		WhyItMatters: "Teams look for depth in the stack they already run.",
		FocusAreas:   []string{"Stack depth", "Debugging", "Project walkthrough"},
	},
	{
		RoundTitle:   "Round 3: Hiring Manager",
		WhyItMatters: "The manager decides on team fit and ownership.",
		FocusAreas:   []string{"Ownership examples", "Team fit"},
	},
}

var startupWebRounds = []model.RoundMappingEntry{
	{
		RoundTitle:   "Round 1: Practical Coding (frontend task)",
		WhyItMatters: "Startups want to see you build working UI quickly.",
		FocusAreas:   []string{"Components and state", "API integration"},
	},
	{
		RoundTitle:   "Round 2: System Discussion (web stack)",
		WhyItMatters: "You will likely own features end to end, so architecture judgement matters.",
		FocusAreas:   []string{"Rendering strategies", "REST/GraphQL design", "Deployment"},
	},
	{
		RoundTitle:   "Round 3: Culture Fit / Founder chat",
		WhyItMatters: "Small teams hire for ownership and pace as much as skill.",
		FocusAreas:   []string{"Ownership", "Learning speed"},
	},
}

var startupCoreRounds = []model.RoundMappingEntry{
	{
		RoundTitle:   "Round 1: Coding Round (DSA)",
		WhyItMatters: "Algorithmic problem solving is the quickest signal a small team can get.",
		FocusAreas:   []string{"Data structures", "Complexity analysis"},
	},
	{
		RoundTitle:   "Round 2: Core CS + Problem Solving",
		WhyItMatters: "Fundamentals show you can pick up whatever the product needs next.",
		FocusAreas:   []string{"OOP", "DBMS", "OS and networks"},
	},
	{
		RoundTitle:   "Round 3: Culture Fit / Founder chat",
		WhyItMatters: "Small teams hire for ownership and pace as much as skill.",
		FocusAreas:   []string{"Ownership", "Communication"},
	},
}

var startupGenericRounds = []model.RoundMappingEntry{
	{
		RoundTitle:   "Round 1: Screening Call",
		WhyItMatters: "A short call checks motivation and basic fit before any technical time is spent.",
		FocusAreas:   []string{"Self introduction", "Why this role"},
	},
	{
		RoundTitle:   "Round 2: Practical Assignment",
		WhyItMatters: "A take-home or live task shows how you work on realistic problems.",
		FocusAreas:   []string{"Problem breakdown", "Clean, working code"},
	},
	{
		RoundTitle:   "Round 3: Team Discussion",
		WhyItMatters: "The team checks collaboration and how you explain your work.",
		FocusAreas:   []string{"Walkthrough of your solution", "Questions for the team"},
	},
}

// RoundMappingFor picks the expected interview flow for a company profile.
func RoundMappingFor(intel model.CompanyIntel, skills model.SkillMap) []model.RoundMappingEntry {
	var rounds []model.RoundMappingEntry
	switch intel.SizeCategory {
	case model.SizeEnterprise:
		rounds = enterpriseRounds
	case model.SizeMidSize:
		rounds = midSizeRounds
	default:
		switch {
		case skills.Has(model.CategoryWeb):
			rounds = startupWebRounds
		case skills.Has(model.CategoryCore):
			rounds = startupCoreRounds
		default:
			rounds = startupGenericRounds
		}
	}
	return cloneRounds(rounds)
}

func cloneRounds(rounds []model.RoundMappingEntry) []model.RoundMappingEntry {
	out := make([]model.RoundMappingEntry, len(rounds))
	for i, r := range rounds {
		out[i] = r
		out[i].FocusAreas = clone(r.FocusAreas)
	}
	return out
}
