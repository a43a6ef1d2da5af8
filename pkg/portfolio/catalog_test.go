package portfolio

import (
	"strings"
	"testing"
)

func TestCatalogFixtureSize(t *testing.T) {
	c := NewCatalog()
	if got := len(c.Projects()); got != 8 {
		t.Fatalf("fixture has %d projects, want 8", got)
	}
}

func TestProjectsByCategory(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		category string
		wantAll  bool
	}{
		{"all", true},
		{"", true},
		{"AI", false},
		{"ai", false},
		{"web3", false},
		{"tools", false},
	}

	for _, tt := range tests {
		t.Run("category "+tt.category, func(t *testing.T) {
			got := c.ProjectsByCategory(tt.category)
			if tt.wantAll {
				if len(got) != len(c.Projects()) {
					t.Fatalf("got %d projects, want full list", len(got))
				}
				return
			}
			if len(got) == 0 {
				t.Fatal("expected at least one project")
			}
			for _, p := range got {
				if !strings.EqualFold(string(p.Category), tt.category) {
					t.Errorf("project %s has category %s, want %s", p.ID, p.Category, tt.category)
				}
			}
		})
	}
}

func TestProjectsByCategoryUnknownIsEmpty(t *testing.T) {
	c := NewCatalog()
	if got := c.ProjectsByCategory("gamedev"); len(got) != 0 {
		t.Errorf("unknown category returned %d projects, want 0", len(got))
	}
}

func TestSkillsByCategory(t *testing.T) {
	c := NewCatalog()

	all := c.SkillsByCategory("all")
	if len(all) != len(c.Skills()) {
		t.Fatalf("all returned %d skills, want %d", len(all), len(c.Skills()))
	}

	backend := c.SkillsByCategory("backend")
	if len(backend) == 0 {
		t.Fatal("expected backend skills")
	}
	for _, s := range backend {
		if s.Category != "backend" {
			t.Errorf("skill %s in category %s", s.Name, s.Category)
		}
	}

	if got := c.SkillsByCategory("underwater-basket-weaving"); len(got) != 0 {
		t.Errorf("unknown category returned %d skills, want 0", len(got))
	}
}

func TestContactFixture(t *testing.T) {
	c := NewCatalog()
	contact := c.Contact()
	if contact.Email != "simone@example.com" {
		t.Errorf("email = %q", contact.Email)
	}
	if len(contact.Social) == 0 {
		t.Error("social links missing")
	}
	if contact.Availability == "" {
		t.Error("availability missing")
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog()
	first := c.Projects()
	first[0].Name = "mutated"
	if c.Projects()[0].Name == "mutated" {
		t.Error("Projects() exposed internal slice")
	}
}
