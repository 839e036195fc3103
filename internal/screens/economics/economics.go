package economics

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/chart"
	"github.com/matrix/isotopes/internal/dataset"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/format"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// Tab is one view of the economic analysis panel.
type Tab int

const (
	MarketTrends Tab = iota
	CostComparison
	GrowthProjections
)

var tabNames = []string{"Market Trends", "Cost Comparison", "Growth Projections"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

const (
	lineHeight = 12
	minMarker  = " ★"
)

// EconomicsScreen shows market size, production costs and growth.
type EconomicsScreen struct {
	tab      Tab
	sizes    []dataset.MarketSize
	window   dataset.Window
	costs    []dataset.CostRow
	minima   dataset.CostMinima
	table    table.Model
	scroller components.Scroller
}

var _ screen.Screen = (*EconomicsScreen)(nil)
var _ screen.KeyHintProvider = (*EconomicsScreen)(nil)

// New creates the economic analysis panel.
func New() *EconomicsScreen {
	costs := dataset.CostComparison()
	minima := dataset.MinCosts(costs)
	return &EconomicsScreen{
		sizes:  dataset.MarketSizes(),
		window: dataset.ProjectionWindow(),
		costs:  costs,
		minima: minima,
		table:  costTable(costs, minima),
	}
}

func (s *EconomicsScreen) Init() tea.Cmd {
	return nil
}

func (s *EconomicsScreen) Title() string {
	return "Economic Analysis"
}

func (s *EconomicsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→/1-3", Description: "Tab"}}
	if s.tab == CostComparison {
		return append(hints, layout.KeyHint{Key: "↑↓", Description: "Row"})
	}
	return append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
}

// Active returns the selected tab.
func (s *EconomicsScreen) Active() Tab {
	return s.tab
}

func (s *EconomicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch k := kmsg.String(); k {
		case "left", "h":
			if s.tab > MarketTrends {
				s.setTab(s.tab - 1)
			}
			return s, nil
		case "right", "l":
			if s.tab < GrowthProjections {
				s.setTab(s.tab + 1)
			}
			return s, nil
		case "1", "2", "3":
			n, _ := strconv.Atoi(k)
			s.setTab(Tab(n - 1))
			return s, nil
		}
	}

	if s.tab == CostComparison {
		var cmd tea.Cmd
		s.table, cmd = s.table.Update(msg)
		return s, cmd
	}
	s.scroller, _ = s.scroller.Update(msg)
	return s, nil
}

func (s *EconomicsScreen) setTab(t Tab) {
	s.tab = t
	s.scroller.Offset = 0
}

func (s *EconomicsScreen) View(width, height int) string {
	return s.scroller.View(s.render(width), height)
}

func (s *EconomicsScreen) render(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("💹 Economic Analysis"))
	b.WriteString("\n\n")
	b.WriteString(components.Tabs(tabNames, int(s.tab)))
	b.WriteString("\n\n")

	switch s.tab {
	case MarketTrends:
		b.WriteString(s.renderTrends(width))
	case CostComparison:
		b.WriteString(s.renderCosts(width))
	case GrowthProjections:
		b.WriteString(s.renderGrowth(width))
	}
	return b.String()
}

func (s *EconomicsScreen) renderTrends(width int) string {
	points := make([]chart.Point, 0, len(s.sizes))
	for _, m := range s.sizes {
		points = append(points, chart.Point{X: m.Year, Y: m.Size})
	}

	first, last := s.sizes[0].Year, s.sizes[len(s.sizes)-1].Year
	plot := chart.Line(points, chart.LineOptions{
		Width:  width,
		Height: lineHeight,
		Band:   &chart.Band{From: s.window.From, To: s.window.To},
		Format: func(v float64) string { return "$" + format.Decimal(v, 1) + "B" },
	})

	legend := lipgloss.NewStyle().Foreground(theme.Success).Render("░") +
		theme.Hint.Render(fmt.Sprintf(" projection %d-%d", s.window.From, s.window.To))

	return components.Section("Global Isotope Market Trends",
		theme.Subtitle.Render(fmt.Sprintf("Isotope Market Growth (%d-%d)", first, last))+"\n\n"+
			plot+"\n\n"+legend)
}

func (s *EconomicsScreen) renderCosts(width int) string {
	s.table.SetWidth(min(width, tableWidth()+2))

	row := s.costs[s.table.Cursor()]
	detail := theme.Strong.Render(row.Method) + theme.Body.Render(": output capacity "+row.Capacity)

	bars := make([]chart.Bar, 0, len(s.costs))
	for _, r := range s.costs {
		bars = append(bars, chart.Bar{Label: r.Method, Value: r.UnitCost})
	}

	return components.Section("Production Cost Comparison",
		s.table.View()+"\n"+
			lipgloss.NewStyle().Foreground(theme.Highlight).Render(strings.TrimSpace(minMarker))+
			theme.Hint.Render(" lowest in column")+"\n\n"+detail) +
		"\n\n" +
		components.Section("Unit Production Cost Comparison",
			chart.HBar(bars, width, func(v float64) string { return format.USD(v) + "/unit" }))
}

func (s *EconomicsScreen) renderGrowth(width int) string {
	var cards [][3]string
	if rate, err := dataset.CAGR(s.window.From, s.window.To); err == nil {
		cards = append(cards, [3]string{
			fmt.Sprintf("Projected CAGR %d-%d", s.window.From, s.window.To),
			format.Percent(rate),
			"",
		})
	}
	first, last := s.sizes[0].Year, s.sizes[len(s.sizes)-1].Year
	if rate, err := dataset.CAGR(first, last); err == nil {
		cards = append(cards, [3]string{
			fmt.Sprintf("CAGR %d-%d", first, last),
			format.Percent(rate),
			"",
		})
	}
	if size, ok := dataset.MarketSizeIn(s.window.To); ok {
		cards = append(cards, [3]string{
			fmt.Sprintf("Market Size %d", s.window.To),
			"$" + format.Decimal(size, 1) + " Billion",
			"",
		})
	}

	yoy := dataset.YearOverYear()
	bars := make([]chart.Bar, 0, len(yoy))
	for _, g := range yoy {
		c := theme.Primary
		if s.window.Contains(g.Year) {
			c = theme.Success
		}
		bars = append(bars, chart.Bar{Label: strconv.Itoa(g.Year), Value: g.Size, Color: c})
	}

	return components.MetricRow(cards, width) + "\n\n" +
		components.Section("Year-over-Year Growth",
			chart.HBar(bars, width, format.Percent))
}

var costColumns = []table.Column{
	{Title: "Method", Width: 18},
	{Title: "Startup Cost ($M)", Width: 19},
	{Title: "Production Cost ($/unit)", Width: 25},
	{Title: "Output Capacity", Width: 16},
}

func tableWidth() int {
	w := 0
	for _, c := range costColumns {
		w += c.Width + 2
	}
	return w
}

// costTable builds the cost comparison table. Column minima carry a star.
func costTable(rows []dataset.CostRow, minima dataset.CostMinima) table.Model {
	trs := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		startup := format.USD(r.StartupCost)
		if i == minima.StartupCost {
			startup += minMarker
		}
		unit := format.USD(r.UnitCost)
		if i == minima.UnitCost {
			unit += minMarker
		}
		trs = append(trs, table.Row{r.Method, startup, unit, r.Capacity})
	}

	return table.New(
		table.WithColumns(costColumns),
		table.WithRows(trs),
		table.WithHeight(len(trs)+1),
		table.WithFocused(true),
	)
}
