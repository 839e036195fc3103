package overview

import (
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/matrix/isotopes/internal/chart"
	"github.com/matrix/isotopes/internal/dataset"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/format"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// topN is how many countries the "Top Producing Countries" chart shows.
const topN = 5

// OverviewScreen is the global dashboard: headline metrics, production by
// country and the top producers.
type OverviewScreen struct {
	stats    []dataset.CountryStat
	top      []dataset.CountryStat
	metrics  []dataset.Metric
	scroller components.Scroller
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates the global dashboard panel.
func New() *OverviewScreen {
	return &OverviewScreen{
		stats:   dataset.CountryStats(),
		top:     dataset.TopProducers(topN),
		metrics: dataset.HeadlineMetrics(),
	}
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Title() string {
	return "Global Isotope Economics Dashboard"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.scroller, _ = s.scroller.Update(msg)
	return s, nil
}

func (s *OverviewScreen) View(width, height int) string {
	return s.scroller.View(s.render(width), height)
}

func (s *OverviewScreen) render(width int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("⚛ Global Isotope Economics Dashboard")+"\n"+
			theme.Subtitle.Render("Non-Energy Applications of Nuclear Technologies"))

	cards := make([][3]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		cards = append(cards, [3]string{m.Label, m.Value, m.Delta})
	}
	sections = append(sections, components.MetricRow(cards, width))

	sections = append(sections, components.Section("Global Isotope Production",
		chart.Heat(countryBars(s.stats), width, chart.Plasma, chart.Percent)))

	sections = append(sections, components.Section("Top Producing Countries",
		chart.HBar(countryBars(s.top), width, chart.Percent)))

	sections = append(sections, components.Section("Country Breakdown",
		countryTable(s.stats, width).View()))

	return strings.Join(sections, "\n\n")
}

func countryBars(stats []dataset.CountryStat) []chart.Bar {
	bars := make([]chart.Bar, 0, len(stats))
	for _, c := range stats {
		bars = append(bars, chart.Bar{Label: c.Country, Value: c.ProductionShare})
	}
	return bars
}

// countryTable renders the full dataset with grouped numbers.
func countryTable(stats []dataset.CountryStat, width int) table.Model {
	nameW := max(width/4, 12)
	colW := max((width-nameW)/3-2, 10)
	columns := []table.Column{
		{Title: "Country", Width: nameW},
		{Title: "Production", Width: colW},
		{Title: "Procedures/yr", Width: colW},
		{Title: "CO₂ Saved", Width: colW},
	}

	rows := make([]table.Row, 0, len(stats))
	for _, c := range stats {
		rows = append(rows, table.Row{
			c.Country,
			chart.Percent(c.ProductionShare),
			format.Millions(c.MedicalProcedures),
			format.Tons(c.CO2Savings),
		})
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
}
