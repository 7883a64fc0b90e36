package analyzer

import "github.com/amishk599/prepkit/internal/model"

// Round titles in canonical order.
const (
	RoundAptitude   = "Round 1: Aptitude / Basics"
	RoundDSA        = "Round 2: DSA + Core CS"
	RoundTech       = "Round 3: Tech interview (projects + stack)"
	RoundManagerial = "Round 4: Managerial / HR"
)

// RoundOrder lists the checklist rounds in the order they are emitted.
var RoundOrder = []string{RoundAptitude, RoundDSA, RoundTech, RoundManagerial}

const minRoundItems = 5

var checklistTemplates = map[model.Category][]string{
	model.CategoryCore: {
		"Review data structures fundamentals",
		"Practice basic algorithms (sorting/searching)",
		"Study OOP concepts and design patterns",
		"Revise operating systems basics",
		"Brush up on networking fundamentals",
	},
	model.CategoryLanguages: {
		"Write small projects in preferred language",
		"Practice language-specific interview questions",
		"Master common libraries and toolchains",
		"Debugging and performance tips",
		"Understand package & dependency management",
	},
	model.CategoryWeb: {
		"Review component architecture (React)",
		"Understand server-side rendering (Next.js)",
		"API design: REST vs GraphQL",
		"Authentication and state management",
		"Deploy a small web service (Node/Express)",
	},
	model.CategoryData: {
		"Practice SQL queries and joins",
		"Indexing and query optimization",
		"Understand NoSQL basics (MongoDB)",
		"Data modeling and transactions",
		"Backup and replication fundamentals",
	},
	model.CategoryCloud: {
		"Basics of cloud providers (AWS/GCP/Azure)",
		"Containerization with Docker",
		"Orchestration basics with Kubernetes",
		"CI/CD pipelines overview",
		"Linux command-line proficiency",
	},
	model.CategoryTesting: {
		"Write unit tests for core modules",
		"Practice end-to-end testing basics",
		"Familiarize with test runners (JUnit, PyTest)",
		"Use testing tools (Selenium/Cypress)",
		"Mocking and test doubles",
	},
	model.CategoryGeneral: {
		"Brush up on basic programming concepts",
		"Practice simple coding problems",
		"Prepare a clean resume",
		"Do mock interviews with peers",
		"Review common HR questions",
	},
}

var aptitudeItems = []string{
	"Basic math & logical reasoning",
	"Time management for problem solving",
	"Simple coding exercises (arrays/strings)",
}

var managerialItems = []string{
	"Prepare a 60-second self introduction",
	"Draft behavioral stories in STAR format",
	"Explain why this company and role",
	"Discuss strengths, weaknesses and career goals",
	"Prepare questions to ask the interviewer",
}

// BuildChecklist expands detected categories into the 4-round interview
// checklist. Every round ends up with at least 5 items.
func BuildChecklist(skills model.SkillMap) []model.ChecklistEntry {
	general := checklistTemplates[model.CategoryGeneral]

	aptitude := append(clone(aptitudeItems), general[:2]...)

	var dsa []string
	for _, c := range []model.Category{model.CategoryCore, model.CategoryLanguages, model.CategoryData} {
		if skills.Has(c) {
			dsa = append(dsa, firstN(checklistTemplates[c], 3)...)
		}
	}

	var tech []string
	if skills.Has(model.CategoryWeb) {
		tech = append(tech, firstN(checklistTemplates[model.CategoryWeb], 3)...)
	}
	if skills.Has(model.CategoryCloud) {
		tech = append(tech, firstN(checklistTemplates[model.CategoryCloud], 2)...)
	}
	if skills.Has(model.CategoryTesting) {
		tech = append(tech, firstN(checklistTemplates[model.CategoryTesting], 2)...)
	}

	rounds := [][]string{aptitude, dsa, tech, clone(managerialItems)}
	out := make([]model.ChecklistEntry, len(RoundOrder))
	for i, title := range RoundOrder {
		out[i] = model.ChecklistEntry{RoundTitle: title, Items: topUp(rounds[i], general)}
	}
	return out
}

// topUp pads items from filler until it holds minRoundItems entries.
func topUp(items, filler []string) []string {
	if len(items) >= minRoundItems {
		return items
	}
	padded := append(clone(items), filler...)
	return padded[:max(minRoundItems, len(items))]
}

func firstN(items []string, n int) []string {
	return items[:min(n, len(items))]
}

func clone(items []string) []string {
	return append([]string(nil), items...)
}
