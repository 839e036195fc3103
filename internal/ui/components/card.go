package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/ui/theme"
)

// MetricCard renders a headline figure: label, big value, and a delta line.
func MetricCard(label, value, delta string, width int) string {
	content := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Success).Render("↑ "+delta)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(0, 1).
		Render(content)
}

// MetricRow lays out cards side by side, splitting width evenly.
func MetricRow(cards [][3]string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	cw := width/len(cards) - 1
	if cw < 16 {
		cw = 16
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, MetricCard(c[0], c[1], c[2], cw))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Section renders a heading followed by its body.
func Section(heading, body string) string {
	return theme.Heading.Render(heading) + "\n" + body
}

// Bullets renders one "• item" line per entry. Text between ** pairs is
// rendered bold.
func Bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(Emphasis(item))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Emphasis renders **bold** spans of s with the Strong style.
func Emphasis(s string) string {
	parts := strings.Split(s, "**")
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 {
			b.WriteString(theme.Strong.Render(p))
		} else {
			b.WriteString(theme.Body.Render(p))
		}
	}
	return b.String()
}

// Tabs renders a tab strip with the active tab highlighted.
func Tabs(labels []string, active int) string {
	rendered := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			rendered = append(rendered, theme.TabActive.Render(l))
		} else {
			rendered = append(rendered, theme.TabInactive.Render(l))
		}
	}
	return strings.Join(rendered, " ")
}
