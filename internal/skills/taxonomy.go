package skills

import "github.com/amishk599/prepkit/internal/model"

// CategoryTerms is one row of the keyword taxonomy.
type CategoryTerms struct {
	Category model.Category
	Terms    []string
}

// Taxonomy is the ordered category -> keyword table scanned by the extractor.
type Taxonomy []CategoryTerms

// DefaultTaxonomy is the built-in keyword table.
var DefaultTaxonomy = Taxonomy{
	{model.CategoryCore, []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
	{model.CategoryLanguages, []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
	{model.CategoryWeb, []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
	{model.CategoryData, []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
	{model.CategoryCloud, []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
	{model.CategoryTesting, []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
}
