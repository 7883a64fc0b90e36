package analyzer

import "github.com/amishk599/prepkit/internal/model"

// QuestionCount is the exact length of every generated question list.
const QuestionCount = 10

const (
	qSSR  = "How does server-side rendering differ from client-side rendering?"
	qREST = "How would you design a RESTful API for a simple resource, including errors and pagination?"
)

var fillerQuestions = []string{
	"Describe a time you solved a hard bug and how you approached it.",
	"Walk me through a project you are proud of and the trade-offs you made.",
	"How do you approach learning a new technology quickly?",
	"Tell me about a time you disagreed with a teammate and how you resolved it.",
	"How do you decide when code is good enough to ship?",
}

// BuildQuestions produces exactly QuestionCount interview questions. Category
// questions come first in a fixed precedence, then rotating filler.
func BuildQuestions(skills model.SkillMap) []string {
	var qs []string

	if skills.Has(model.CategoryData) {
		qs = append(qs, dataQuestions(skills)...)
	}
	if skills.Has(model.CategoryWeb) {
		qs = append(qs, webQuestions(skills)...)
	}
	if skills.Has(model.CategoryCore) {
		qs = append(qs,
			"How would you optimize search in sorted data?",
			"Explain object-oriented principles and give examples.",
		)
	}
	if skills.Contains(model.CategoryLanguages, "Python") {
		qs = append(qs, "What are common Python performance pitfalls?")
	} else if skills.Contains(model.CategoryLanguages, "Java") {
		qs = append(qs, "How does garbage collection work in the JVM, and how would you tune it?")
	}
	if skills.Has(model.CategoryCloud) {
		qs = append(qs, "How would you design a simple scalable service on AWS?")
		if skills.Contains(model.CategoryCloud, "Docker") || skills.Contains(model.CategoryCloud, "Kubernetes") {
			qs = append(qs, "How do containers differ from virtual machines?")
		}
	}
	if skills.Has(model.CategoryTesting) {
		qs = append(qs, "How do you design end-to-end tests for a web application?")
	}

	for i := 0; len(qs) < QuestionCount; i++ {
		qs = append(qs, fillerQuestions[i%len(fillerQuestions)])
	}
	return qs[:QuestionCount]
}

func dataQuestions(skills model.SkillMap) []string {
	switch {
	case skills.Contains(model.CategoryData, "SQL"),
		skills.Contains(model.CategoryData, "PostgreSQL"),
		skills.Contains(model.CategoryData, "MySQL"):
		return []string{
			"Explain indexing and when it helps.",
			"How do transactions work in relational databases?",
		}
	case skills.Contains(model.CategoryData, "MongoDB"):
		return []string{
			"How would you model one-to-many relationships in MongoDB?",
			"When would you choose a document store over a relational database?",
		}
	default:
		return []string{
			"How would you use Redis as a cache, and how do you handle invalidation?",
			"Explain indexing and when it helps.",
		}
	}
}

func webQuestions(skills model.SkillMap) []string {
	var qs []string
	if skills.Contains(model.CategoryWeb, "React") {
		qs = append(qs, "Explain state management options in React and trade-offs.")
	}
	if skills.Contains(model.CategoryWeb, "GraphQL") {
		qs = append(qs, "How does GraphQL differ from REST, and when would you pick it?")
	}
	switch len(qs) {
	case 0:
		qs = append(qs, qSSR, qREST)
	case 1:
		qs = append(qs, qSSR)
	}
	return qs
}
