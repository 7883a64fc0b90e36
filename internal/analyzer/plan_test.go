package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/prepkit/internal/model"
)

func planTitles(plan []model.PlanDay) []string {
	titles := make([]string, len(plan))
	for i, d := range plan {
		titles[i] = d.Title
	}
	return titles
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name   string
		skills model.SkillMap
		want   []string
	}{
		{
			name:   "base skeleton",
			skills: model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}},
			want: []string{
				"Basics & core CS", "Basics & core CS",
				"DSA & coding practice", "DSA & coding practice",
				"Project & resume alignment", "Mock interviews", "Revision & weak areas",
			},
		},
		{
			name:   "web rewrites days 5 and 6",
			skills: model.SkillMap{model.CategoryWeb: {"React"}},
			want: []string{
				"Basics & core CS", "Basics & core CS",
				"DSA & coding practice", "DSA & coding practice",
				"Project: frontend + resume alignment", "Mock interviews (frontend focus)", "Revision & weak areas",
			},
		},
		{
			name:   "data rewrites day 4",
			skills: model.SkillMap{model.CategoryData: {"SQL"}},
			want: []string{
				"Basics & core CS", "Basics & core CS",
				"DSA & coding practice", "DSA + Database practice",
				"Project & resume alignment", "Mock interviews", "Revision & weak areas",
			},
		},
		{
			name:   "cloud alone appends to day 6",
			skills: model.SkillMap{model.CategoryCloud: {"AWS"}},
			want: []string{
				"Basics & core CS", "Basics & core CS",
				"DSA & coding practice", "DSA & coding practice",
				"Project & resume alignment", "Mock interviews + deployment review", "Revision & weak areas",
			},
		},
		{
			name: "web and cloud compound",
			skills: model.SkillMap{
				model.CategoryWeb:   {"React"},
				model.CategoryCloud: {"Docker"},
			},
			want: []string{
				"Basics & core CS", "Basics & core CS",
				"DSA & coding practice", "DSA & coding practice",
				"Project: frontend + resume alignment", "Mock interviews (frontend focus) + deployment review", "Revision & weak areas",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPlan(tt.skills)
			require.Len(t, got, 7)
			for i, d := range got {
				assert.Equal(t, i+1, d.Day)
				assert.NotEmpty(t, d.Tasks)
			}
			assert.Equal(t, tt.want, planTitles(got))
		})
	}
}

func TestBuildPlan_DoesNotLeakBetweenCalls(t *testing.T) {
	_ = BuildPlan(model.SkillMap{model.CategoryWeb: {"React"}, model.CategoryCloud: {"AWS"}})
	got := BuildPlan(model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}})

	assert.Equal(t, "Mock interviews", got[5].Title)
	assert.Len(t, got[5].Tasks, 2)
}
