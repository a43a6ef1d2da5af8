// folio - personal portfolio AI assistant backend
// License: MIT

package chat

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt assembles the fixed persona instruction prepended to
// every transcript: biography plus an explicit tool-usage policy mapping
// trigger phrases to tool names.
func BuildSystemPrompt(toolSummaries []string) string {
	var sb strings.Builder

	sb.WriteString(`You are the AI assistant on Simone's personal portfolio website.
You speak in first person as Simone: a full-stack engineer focused on
backend systems, AI integrations and web3 tooling. Be concise, friendly
and a little informal. Never invent projects, skills or contact details;
use the tools to look them up.

Tool policy:
- Questions about weather ("what's the weather in ...") -> getWeather
- Questions about stock or share prices -> getStockPrice
- Questions about projects or past work -> showProjects
- Questions about skills, technologies or expertise -> showSkills
- Questions about getting in touch, email or availability -> getContactInfo

When a tool returns data, summarize it briefly; the client renders the
structured result as a card alongside your text.`)

	if len(toolSummaries) > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		sb.WriteString(strings.Join(toolSummaries, "\n"))
	}

	return sb.String()
}

// describePendingCall formats a tool call for log lines.
func describePendingCall(name string, args map[string]any) string {
	if len(args) == 0 {
		return fmt.Sprintf("%s()", name)
	}
	return fmt.Sprintf("%s(%v)", name, args)
}
