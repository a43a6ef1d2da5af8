// folio - personal portfolio AI assistant backend
// License: MIT

package portfolio

import "strings"

// Catalog bundles the static fixtures behind lookup methods. Construct one
// with NewCatalog (production data) or NewCatalogWith (test fixtures) and
// pass it to whatever needs portfolio data.
type Catalog struct {
	projects []Project
	skills   []Skill
	contact  Contact
}

// NewCatalog returns a catalog backed by the built-in portfolio data.
func NewCatalog() *Catalog {
	return NewCatalogWith(defaultProjects, defaultSkills, defaultContact)
}

// NewCatalogWith builds a catalog from explicit fixtures.
func NewCatalogWith(projects []Project, skills []Skill, contact Contact) *Catalog {
	return &Catalog{projects: projects, skills: skills, contact: contact}
}

// Projects returns every project in fixture order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// ProjectsByCategory filters by category. "all" (or empty) returns
// everything; an unknown category yields an empty slice, not an error.
func (c *Catalog) ProjectsByCategory(category string) []Project {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return c.Projects()
	}

	var out []Project
	for _, p := range c.projects {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// Skills returns every skill in fixture order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// SkillsByCategory filters by skill category with the same "all"/unknown
// semantics as ProjectsByCategory.
func (c *Catalog) SkillsByCategory(category string) []Skill {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return c.Skills()
	}

	var out []Skill
	for _, s := range c.skills {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// Contact returns the fixed contact record.
func (c *Catalog) Contact() Contact {
	return c.contact
}
