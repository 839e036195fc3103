package chart

import (
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/ui/theme"
)

// Point is one sample of a line chart.
type Point struct {
	X int
	Y float64
}

// Band is an inclusive X range drawn shaded behind the line.
type Band struct {
	From, To int
}

// LineOptions configure Line.
type LineOptions struct {
	Width  int
	Height int
	Band   *Band
	Format Formatter
}

// Line plots points as markers on a grid of Height rows. Columns inside
// the band are shaded. Points must be in ascending X order.
func Line(points []Point, opts LineOptions) string {
	if len(points) == 0 || opts.Height < 2 {
		return ""
	}
	format := opts.Format
	if format == nil {
		format = Plain
	}

	lo, hi := points[0].Y, points[0].Y
	for _, p := range points {
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}

	axisW := max(lipgloss.Width(format(lo)), lipgloss.Width(format(hi)))
	plotW := max(opts.Width-axisW-2, len(points))

	// Column of each point, spread evenly across the plot.
	cols := make([]int, len(points))
	for i := range points {
		if len(points) == 1 {
			cols[i] = 0
			continue
		}
		cols[i] = i * (plotW - 1) / (len(points) - 1)
	}

	grid := make([][]string, opts.Height)
	for r := range grid {
		grid[r] = make([]string, plotW)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	shade := lipgloss.NewStyle().Foreground(theme.Success).Faint(true).Render(emptyBlock)
	if opts.Band != nil {
		first, last := -1, -1
		for i, p := range points {
			if p.X >= opts.Band.From && p.X <= opts.Band.To {
				if first < 0 {
					first = cols[i]
				}
				last = cols[i]
			}
		}
		if first >= 0 {
			for r := range grid {
				for c := first; c <= last; c++ {
					grid[r][c] = shade
				}
			}
		}
	}

	marker := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	prevRow := -1
	for i, p := range points {
		row := opts.Height - 1 - int(math.Round(normalize(p.Y, lo, hi)*float64(opts.Height-1)))
		// Connect to the previous marker with a vertical run so steep
		// segments stay readable.
		if prevRow >= 0 && i > 0 {
			c := cols[i-1] + (cols[i]-cols[i-1])/2
			for r := min(prevRow, row) + 1; r < max(prevRow, row); r++ {
				grid[r][c] = marker.Render("│")
			}
		}
		grid[row][cols[i]] = marker.Render("●")
		prevRow = row
	}

	var sb strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = format(hi)
		case opts.Height - 1:
			label = format(lo)
		}
		sb.WriteString(dim.Render(padLeft(label, axisW)))
		sb.WriteString(dim.Render(" ┤"))
		sb.WriteString(strings.Join(line, ""))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", axisW+1))
	sb.WriteString(dim.Render("└" + strings.Repeat("─", plotW)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", axisW+2))
	sb.WriteString(dim.Render(xLabels(points, cols, plotW)))
	return sb.String()
}

// xLabels places the first and last X values under their columns.
func xLabels(points []Point, cols []int, width int) string {
	row := []rune(strings.Repeat(" ", width))
	place := func(col int, s string) {
		r := []rune(s)
		start := min(col, width-len(r))
		if start < 0 {
			return
		}
		copy(row[start:], r)
	}
	place(cols[0], strconv.Itoa(points[0].X))
	if len(points) > 1 {
		place(cols[len(cols)-1], strconv.Itoa(points[len(points)-1].X))
	}
	return string(row)
}

func padLeft(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
