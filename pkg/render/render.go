// folio - personal portfolio AI assistant backend
// License: MIT

// Package render maps settled tool invocations to presentational views.
// The view set is a closed union over the tool result record types; an
// unrecognized tool name renders nothing so unknown or future tools never
// break the chat UI.
package render

import (
	"encoding/json"

	"github.com/simonedm/folio/pkg/tools"
	"github.com/simonedm/folio/pkg/transcript"
)

// View is one renderable card. The concrete types form a closed union;
// callers switch exhaustively with a fallback arm.
type View interface {
	viewKind() string
}

// PendingView is the loading placeholder shown while a tool call is
// still executing.
type PendingView struct {
	ToolName string
	Label    string
}

type WeatherCard struct {
	Report tools.WeatherReport
}

type StockCard struct {
	Quote tools.StockQuote
}

type ProjectListCard struct {
	Lookup tools.ProjectLookup
}

type SkillsChartCard struct {
	Lookup tools.SkillsLookup
}

type ContactCardView struct {
	Card tools.ContactCard
}

func (PendingView) viewKind() string     { return "pending" }
func (WeatherCard) viewKind() string     { return "weather" }
func (StockCard) viewKind() string       { return "stock" }
func (ProjectListCard) viewKind() string { return "projects" }
func (SkillsChartCard) viewKind() string { return "skills" }
func (ContactCardView) viewKind() string { return "contact" }

var pendingLabels = map[string]string{
	"getWeather":     "Checking the weather...",
	"getStockPrice":  "Fetching the latest quote...",
	"showProjects":   "Loading projects...",
	"showSkills":     "Loading skills...",
	"getContactInfo": "Looking up contact details...",
}

// ViewFor selects the view for one tool invocation, chosen purely by tool
// name. The second return is false for unrecognized tools; callers skip
// those silently.
func ViewFor(inv transcript.ToolInvocation) (View, bool) {
	label, known := pendingLabels[inv.ToolName]
	if !known {
		return nil, false
	}

	if inv.State == transcript.StateCallPending {
		return PendingView{ToolName: inv.ToolName, Label: label}, true
	}

	switch inv.ToolName {
	case "getWeather":
		var report tools.WeatherReport
		if !decodeResult(inv.Result, &report) {
			return nil, false
		}
		return WeatherCard{Report: report}, true
	case "getStockPrice":
		var quote tools.StockQuote
		if !decodeResult(inv.Result, &quote) {
			return nil, false
		}
		return StockCard{Quote: quote}, true
	case "showProjects":
		var lookup tools.ProjectLookup
		if !decodeResult(inv.Result, &lookup) {
			return nil, false
		}
		return ProjectListCard{Lookup: lookup}, true
	case "showSkills":
		var lookup tools.SkillsLookup
		if !decodeResult(inv.Result, &lookup) {
			return nil, false
		}
		return SkillsChartCard{Lookup: lookup}, true
	case "getContactInfo":
		var card tools.ContactCard
		if !decodeResult(inv.Result, &card) {
			return nil, false
		}
		return ContactCardView{Card: card}, true
	}
	return nil, false
}

// decodeResult converts a result payload into the typed record. Payloads
// arrive either as the record itself (server-side path) or as a decoded
// JSON map (client-side path after transport), so a round trip covers both.
func decodeResult(payload any, out any) bool {
	if payload == nil {
		return false
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}
