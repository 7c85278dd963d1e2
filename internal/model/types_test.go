package model

import (
	"strings"
	"testing"
)

func validPortfolio() Portfolio {
	return Portfolio{
		Profile:           Profile{Name: "Ada"},
		Skills:            []Skill{{Label: "Go", Percentage: 90}},
		ProjectCategories: []string{"AI", "Web"},
		Projects:          []Project{{ID: 1, Title: "p", Category: "AI"}},
		Testimonials:      []Testimonial{{ID: 1, Name: "t", Rating: 5}},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	p := validPortfolio()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_RejectsWildcardProjectCategory(t *testing.T) {
	t.Parallel()

	p := validPortfolio()
	p.ProjectCategories = append(p.ProjectCategories, "All")
	p.Projects[0].Category = "All"

	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), `category "All" not in project_categories`) {
		t.Fatalf("Validate() = %v, want wildcard category rejected", err)
	}

	p.Projects[0].Category = "Web"
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() with All declared = %v, want nil", err)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	p := validPortfolio()
	p.Profile.Name = " "
	p.Skills[0].Percentage = 120
	p.Projects[0].Category = "Desktop"
	p.Testimonials = nil

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"profile.name", "percentage 120", `category "Desktop"`, "testimonials"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}
