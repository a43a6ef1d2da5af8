// folio - personal portfolio AI assistant backend
// License: MIT

package tools

import (
	"context"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/simonedm/folio/pkg/portfolio"
)

// CatalogSource is the slice of the portfolio catalog the lookup tools
// need. Injected at registry construction so tests can substitute fixtures.
type CatalogSource interface {
	ProjectsByCategory(category string) []portfolio.Project
	SkillsByCategory(category string) []portfolio.Skill
	Contact() portfolio.Contact
}

// ProjectLookup is the structured result of a project lookup, rendered as
// a project list card by the client.
type ProjectLookup struct {
	Category      string              `json:"category"`
	Projects      []portfolio.Project `json:"projects"`
	TotalProjects int                 `json:"totalProjects"`
}

// SkillsLookup is the structured result of a skills lookup, rendered as a
// skills bar-chart card by the client.
type SkillsLookup struct {
	Category    string            `json:"category"`
	Skills      []portfolio.Skill `json:"skills"`
	TotalSkills int               `json:"totalSkills"`
}

// ContactCard is the structured result of a contact lookup. For kind "all"
// every field is populated; for a single-field kind only that field is set.
type ContactCard struct {
	Kind         string            `json:"kind"`
	Email        string            `json:"email,omitempty"`
	Social       map[string]string `json:"social,omitempty"`
	Availability string            `json:"availability,omitempty"`
}

// ProjectsTool lists showcase projects, optionally filtered by category.
type ProjectsTool struct {
	catalog CatalogSource
}

func NewProjectsTool(catalog CatalogSource) *ProjectsTool {
	return &ProjectsTool{catalog: catalog}
}

func (t *ProjectsTool) Name() string { return "showProjects" }

func (t *ProjectsTool) Description() string {
	return "Show portfolio projects, optionally filtered by category. Call this when the user asks about projects or past work."
}

func (t *ProjectsTool) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			// no enum: an unrecognized category degrades to an empty
			// list instead of a validation error
			"category": {
				Type:        "string",
				Description: "Project category filter: all, ai, web3, fullstack or tools",
			},
		},
	}
}

func (t *ProjectsTool) Execute(ctx context.Context, args map[string]any) *ToolResult {
	category, _ := args["category"].(string)
	if category == "" {
		category = "all"
	}

	projects := t.catalog.ProjectsByCategory(category)
	return NewToolResult(ProjectLookup{
		Category:      category,
		Projects:      projects,
		TotalProjects: len(projects),
	})
}

// SkillsTool lists skills, optionally filtered by category.
type SkillsTool struct {
	catalog CatalogSource
}

func NewSkillsTool(catalog CatalogSource) *SkillsTool {
	return &SkillsTool{catalog: catalog}
}

func (t *SkillsTool) Name() string { return "showSkills" }

func (t *SkillsTool) Description() string {
	return "Show skills and proficiency levels, optionally filtered by category. Call this when the user asks about skills, technologies or expertise."
}

func (t *SkillsTool) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"category": {
				Type:        "string",
				Description: "Skill category filter: all, backend, frontend, ai, web3 or devops",
			},
		},
	}
}

func (t *SkillsTool) Execute(ctx context.Context, args map[string]any) *ToolResult {
	category, _ := args["category"].(string)
	if category == "" {
		category = "all"
	}

	skills := t.catalog.SkillsByCategory(category)
	return NewToolResult(SkillsLookup{
		Category:    category,
		Skills:      skills,
		TotalSkills: len(skills),
	})
}

// ContactTool returns the fixed contact record, or one field of it.
type ContactTool struct {
	catalog CatalogSource
}

func NewContactTool(catalog CatalogSource) *ContactTool {
	return &ContactTool{catalog: catalog}
}

func (t *ContactTool) Name() string { return "getContactInfo" }

func (t *ContactTool) Description() string {
	return "Get contact information. Call this when the user asks how to get in touch, for an email address, social links or availability."
}

func (t *ContactTool) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"kind": {
				Type:        "string",
				Description: "Which contact detail to return: all, email, social or availability",
			},
		},
	}
}

func (t *ContactTool) Execute(ctx context.Context, args map[string]any) *ToolResult {
	kind, _ := args["kind"].(string)
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = "all"
	}

	contact := t.catalog.Contact()
	card := ContactCard{Kind: kind}
	switch kind {
	case "email":
		card.Email = contact.Email
	case "social":
		card.Social = contact.Social
	case "availability":
		card.Availability = contact.Availability
	default:
		card.Kind = "all"
		card.Email = contact.Email
		card.Social = contact.Social
		card.Availability = contact.Availability
	}

	return NewToolResult(card)
}
