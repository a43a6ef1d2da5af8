// folio - personal portfolio AI assistant backend
// License: MIT

package render

import (
	"fmt"
	"strings"
)

// Text renders a view as plain text for the CLI chat. The switch is
// exhaustive over the view union with a fallback arm for safety.
func Text(view View) string {
	switch v := view.(type) {
	case PendingView:
		return fmt.Sprintf("[%s]", v.Label)

	case WeatherCard:
		r := v.Report
		return fmt.Sprintf("Weather in %s: %s, %.0f°C, humidity %d%%, wind %.0f km/h",
			r.Location, r.Condition, r.Temperature, r.Humidity, r.WindSpeed)

	case StockCard:
		q := v.Quote
		sign := "+"
		if q.Change < 0 {
			sign = ""
		}
		return fmt.Sprintf("%s: $%.2f (%s%.2f) market cap %s",
			q.Symbol, q.Price, sign, q.Change, q.MarketCap)

	case ProjectListCard:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d project(s) [%s]:\n", v.Lookup.TotalProjects, v.Lookup.Category)
		for _, p := range v.Lookup.Projects {
			fmt.Fprintf(&sb, "  - %s (%d, %s): %s\n", p.Name, p.Year, p.Status, p.Description)
		}
		return strings.TrimRight(sb.String(), "\n")

	case SkillsChartCard:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d skill(s) [%s]:\n", v.Lookup.TotalSkills, v.Lookup.Category)
		for _, s := range v.Lookup.Skills {
			bar := strings.Repeat("#", s.Level/10)
			fmt.Fprintf(&sb, "  %-14s %-10s %d\n", s.Name, bar, s.Level)
		}
		return strings.TrimRight(sb.String(), "\n")

	case ContactCardView:
		c := v.Card
		var parts []string
		if c.Email != "" {
			parts = append(parts, "email: "+c.Email)
		}
		for platform, url := range c.Social {
			parts = append(parts, platform+": "+url)
		}
		if c.Availability != "" {
			parts = append(parts, "availability: "+c.Availability)
		}
		return strings.Join(parts, "\n")

	default:
		return ""
	}
}
