package skills

import (
	"reflect"
	"strings"
	"testing"

	"github.com/amishk599/prepkit/internal/model"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.SkillMap
	}{
		{
			name: "react sql docker",
			text: "We need React and SQL experience, Docker a plus",
			want: model.SkillMap{
				model.CategoryWeb:   {"React"},
				model.CategoryData:  {"SQL"},
				model.CategoryCloud: {"Docker"},
			},
		},
		{
			name: "case insensitive, taxonomy order",
			text: "python and JAVA developers",
			want: model.SkillMap{
				model.CategoryLanguages: {"Java", "Python"},
			},
		},
		{
			name: "punctuated keywords match literally",
			text: "Stack: C++ and C#, Node.js / Next.js, CI/CD pipelines",
			want: model.SkillMap{
				model.CategoryLanguages: {"C++", "C#"},
				model.CategoryWeb:       {"Next.js", "Node.js"},
				model.CategoryCloud:     {"CI/CD"},
			},
		},
		{
			name: "dots are not wildcards",
			text: "Nodexjs and NextXjs are not real",
			want: model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}},
		},
		{
			name: "whole words only",
			text: "Javascript and Golang, maybe Pythonic code",
			want: model.SkillMap{
				model.CategoryLanguages: {"JavaScript"},
			},
		},
		{
			name: "slash separated core subjects",
			text: "Fundamentals in DBMS/OS/Networks expected",
			want: model.SkillMap{
				model.CategoryCore: {"DBMS", "OS", "Networks"},
			},
		},
		{
			name: "repeated keyword counted once",
			text: "React, React and more react",
			want: model.SkillMap{
				model.CategoryWeb: {"React"},
			},
		},
		{
			name: "no keywords falls back to general",
			text: "We want a friendly team player with a positive attitude",
			want: model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}},
		},
		{
			name: "empty text falls back to general",
			text: "",
			want: model.SkillMap{model.CategoryGeneral: {model.FallbackSkill}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract_PresentKeysAreNonEmpty(t *testing.T) {
	inputs := []string{
		"",
		"AWS Azure GCP Docker Kubernetes Linux",
		"Selenium, Cypress and Playwright with JUnit or PyTest",
		strings.Repeat("lorem ipsum ", 50),
	}
	for _, in := range inputs {
		got := Extract(in)
		if len(got) == 0 {
			t.Fatalf("Extract(%q) returned an empty map", in)
		}
		for cat, terms := range got {
			if len(terms) == 0 {
				t.Errorf("Extract(%q): category %q present with no terms", in, cat)
			}
		}
		if got.Has(model.CategoryGeneral) && len(got) != 1 {
			t.Errorf("Extract(%q): general fallback mixed with other categories: %v", in, got)
		}
	}
}

func TestNewExtractor_CustomTaxonomy(t *testing.T) {
	e := NewExtractor(Taxonomy{
		{model.CategoryCloud, []string{"Terraform", "Helm"}},
	})
	got := e.Extract("terraform modules and HELM charts, plus React")
	want := model.SkillMap{model.CategoryCloud: {"Terraform", "Helm"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}
