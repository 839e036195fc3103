// Package chart draws small text charts for the terminal. Every renderer is
// a pure function of its inputs and the available width.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/ui/theme"
)

const (
	fullBlock  = "█"
	emptyBlock = "░"
	minBarLen  = 4
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
	Color color.Color // nil picks a series colour
}

// Formatter renders a value next to its bar.
type Formatter func(float64) string

// Percent formats 38 as "38%".
func Percent(v float64) string {
	return trimFloat(v) + "%"
}

// Plain formats a value with trailing zeros trimmed.
func Plain(v float64) string {
	return trimFloat(v)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// HBar renders one horizontal bar per entry, scaled to the largest value.
func HBar(bars []Bar, width int, format Formatter) string {
	if len(bars) == 0 {
		return ""
	}
	if format == nil {
		format = Plain
	}

	labelW, valueW := 0, 0
	maxV := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		valueW = max(valueW, lipgloss.Width(format(b.Value)))
		maxV = math.Max(maxV, b.Value)
	}
	barW := max(width-labelW-valueW-3, minBarLen)

	var sb strings.Builder
	for i, b := range bars {
		n := scaled(b.Value, maxV, barW)
		c := b.Color
		if c == nil {
			c = lipgloss.Color(theme.SeriesColor(i))
		}
		sb.WriteString(padRight(b.Label, labelW))
		sb.WriteString(" ")
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render(strings.Repeat(fullBlock, n)))
		sb.WriteString(strings.Repeat(" ", barW-n))
		sb.WriteString(" ")
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(format(b.Value)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Share renders parts of a whole as one stacked bar plus a legend, the
// terminal stand-in for a pie chart.
func Share(parts []Bar, width int) string {
	total := 0.0
	for _, p := range parts {
		total += p.Value
	}
	if total <= 0 || width < minBarLen {
		return ""
	}

	var bar, legend strings.Builder
	used := 0
	for i, p := range parts {
		c := p.Color
		if c == nil {
			c = lipgloss.Color(theme.SeriesColor(i))
		}
		n := int(math.Round(p.Value / total * float64(width)))
		if i == len(parts)-1 {
			n = width - used
		}
		n = max(min(n, width-used), 0)
		used += n

		style := lipgloss.NewStyle().Foreground(c)
		bar.WriteString(style.Render(strings.Repeat(fullBlock, n)))
		legend.WriteString(style.Render("■ "))
		legend.WriteString(fmt.Sprintf("%s %s\n", p.Label, Percent(p.Value/total*100)))
	}
	return bar.String() + "\n" + strings.TrimRight(legend.String(), "\n")
}

// Heat renders a ranked list whose bars are coloured along scale by value,
// the terminal stand-in for a choropleth map.
func Heat(items []Bar, width int, scale Scale, format Formatter) string {
	if len(items) == 0 {
		return ""
	}
	lo, hi := items[0].Value, items[0].Value
	for _, it := range items {
		lo = math.Min(lo, it.Value)
		hi = math.Max(hi, it.Value)
	}

	coloured := make([]Bar, len(items))
	for i, it := range items {
		coloured[i] = Bar{
			Label: it.Label,
			Value: it.Value,
			Color: scale.At(normalize(it.Value, lo, hi)),
		}
	}
	return HBar(coloured, width, format) + "\n" + Legend(scale, lo, hi, min(width, 40), format)
}

// Legend renders a colour ramp with its end values.
func Legend(scale Scale, lo, hi float64, width int, format Formatter) string {
	if format == nil {
		format = Plain
	}
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(format(lo) + " "))
	steps := max(width-lipgloss.Width(format(lo))-lipgloss.Width(format(hi))-2, minBarLen)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(max(steps-1, 1))
		sb.WriteString(lipgloss.NewStyle().Foreground(scale.At(t)).Render(fullBlock))
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + format(hi)))
	return sb.String()
}

// Series is a named set of values, one per axis.
type Series struct {
	Name   string
	Values []float64
}

// Grouped renders, for every axis, one bar per series on a fixed 0..limit
// scale. It is the terminal stand-in for a radar chart.
func Grouped(series []Series, axes []string, limit float64, width int) string {
	if len(series) == 0 || len(axes) == 0 || limit <= 0 {
		return ""
	}

	nameW := 0
	for _, s := range series {
		nameW = max(nameW, lipgloss.Width(s.Name))
	}
	valueW := lipgloss.Width(Plain(limit))
	barW := max(width-nameW-valueW-5, minBarLen)

	var sb strings.Builder
	for a, axis := range axes {
		sb.WriteString(theme.Strong.Render(axis))
		sb.WriteString("\n")
		for i, s := range series {
			v := 0.0
			if a < len(s.Values) {
				v = math.Max(0, math.Min(s.Values[a], limit))
			}
			n := scaled(v, limit, barW)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesColor(i)))
			sb.WriteString("  ")
			sb.WriteString(padRight(s.Name, nameW))
			sb.WriteString(" ")
			sb.WriteString(style.Render(strings.Repeat(fullBlock, n)))
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(emptyBlock, barW-n)))
			sb.WriteString(" ")
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(Plain(v)))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// scaled returns how many cells of width represent v on a 0..maxV scale.
func scaled(v, maxV float64, width int) int {
	if maxV <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / maxV * float64(width)))
	return max(min(n, width), 0)
}

// padRight pads s with spaces to display width w.
func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
