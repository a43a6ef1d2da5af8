// folio - personal portfolio AI assistant backend
// License: MIT

// Package portfolio holds the static showcase data served by the site:
// projects, skills and contact details. The data is fixed at build time and
// read-only at request time; handlers receive a Catalog instead of touching
// package-level state so tests can substitute fixtures.
package portfolio

// ProjectCategory is the closed set of project groupings on the site.
type ProjectCategory string

const (
	CategoryAI        ProjectCategory = "ai"
	CategoryWeb3      ProjectCategory = "web3"
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryTools     ProjectCategory = "tools"
)

// ProjectStatus tracks the delivery state of a project.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

// Project is one showcase entry. Never mutated at runtime.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ProjectCategory `json:"category"`
	Tags        []string        `json:"tags"`
	GithubURL   string          `json:"githubUrl,omitempty"`
	DemoURL     string          `json:"demoUrl,omitempty"`
	Image       string          `json:"image"`
	Status      ProjectStatus   `json:"status"`
	Year        int             `json:"year"`

	// Extended fields shown on the project detail view.
	Technologies []string `json:"technologies,omitempty"`
	Features     []string `json:"features,omitempty"`
	Challenges   []string `json:"challenges,omitempty"`
	Outcomes     []string `json:"outcomes,omitempty"`
	TeamSize     int      `json:"teamSize,omitempty"`
}

// Skill is a single named capability with a 0-100 proficiency level,
// rendered as a bar chart by the skills card.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Contact is the fixed contact record returned by the contact lookup.
type Contact struct {
	Email        string            `json:"email"`
	Social       map[string]string `json:"social"`
	Availability string            `json:"availability"`
}
