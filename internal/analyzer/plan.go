package analyzer

import "github.com/amishk599/prepkit/internal/model"

type planSlot struct {
	title string
	tasks []string
}

var basePlan = [7]planSlot{
	{"Basics & core CS", []string{"Revise OOP, DBMS and OS fundamentals", "Summarize one topic per hour in your own notes"}},
	{"Basics & core CS", []string{"Review networking and memory basics", "Solve 5 easy problems to warm up"}},
	{"DSA & coding practice", []string{"Arrays, strings and hashing problems", "Time yourself on 3 medium problems"}},
	{"DSA & coding practice", []string{"Trees, graphs and recursion", "Re-solve yesterday's misses without hints"}},
	{"Project & resume alignment", []string{"Map each resume project to the job description", "Prepare a 2-minute walkthrough of your best project"}},
	{"Mock interviews", []string{"Run one timed technical mock", "Run one behavioral mock and collect feedback"}},
	{"Revision & weak areas", []string{"Revisit every item marked practice", "Skim the question list and rehearse answers aloud"}},
}

// BuildPlan returns the 7-day plan, with day titles rewritten for detected
// categories. Rewrites apply in order so the cloud suffix stacks on the web
// title for day 6.
func BuildPlan(skills model.SkillMap) []model.PlanDay {
	plan := make([]model.PlanDay, len(basePlan))
	for i, slot := range basePlan {
		plan[i] = model.PlanDay{Day: i + 1, Title: slot.title, Tasks: clone(slot.tasks)}
	}

	if skills.Has(model.CategoryWeb) {
		plan[4].Title = "Project: frontend + resume alignment"
		plan[4].Tasks = append(plan[4].Tasks, "Polish a frontend project: components, state and deployment")
		plan[5].Title = "Mock interviews (frontend focus)"
		plan[5].Tasks = append(plan[5].Tasks, "Practice explaining rendering and state trade-offs")
	}
	if skills.Has(model.CategoryData) {
		plan[3].Title = "DSA + Database practice"
		plan[3].Tasks = append(plan[3].Tasks, "Write joins, aggregations and index-backed queries")
	}
	if skills.Has(model.CategoryCloud) {
		plan[5].Title += " + deployment review"
		plan[5].Tasks = append(plan[5].Tasks, "Walk through how you would containerize and deploy a service")
	}
	return plan
}
