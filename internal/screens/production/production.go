package production

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/chart"
	"github.com/matrix/isotopes/internal/dataset"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// scoreLimit is the top of the 0-10 production score scale.
const scoreLimit = 10

var methods = []string{
	"**Research Reactors**: Neutron activation (e.g., Mo-99, I-131)",
	"**Nuclear Power Plants**: Fission products (e.g., Cs-137, Sr-90)",
	"**Cyclotrons**: Proton bombardment (e.g., F-18, C-11)",
	"**Radioisotope Generators**: Parent-daughter systems (e.g., Tc-99m)",
}

var facilities = []string{
	"**Canada**: NRU Reactor (Chalk River)",
	"**Russia**: RIAR (Dimitrovgrad)",
	"**Netherlands**: HFR (Petten)",
	"**South Africa**: SAFARI-1",
}

// ProductionScreen describes how isotopes are made and compares routes.
type ProductionScreen struct {
	methods  []dataset.ProductionMethod
	scroller components.Scroller
}

var _ screen.Screen = (*ProductionScreen)(nil)

// New creates the isotope production panel.
func New() *ProductionScreen {
	return &ProductionScreen{methods: dataset.ProductionMethods()}
}

func (s *ProductionScreen) Init() tea.Cmd {
	return nil
}

func (s *ProductionScreen) Title() string {
	return "Isotope Production Methods"
}

func (s *ProductionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.scroller, _ = s.scroller.Update(msg)
	return s, nil
}

func (s *ProductionScreen) View(width, height int) string {
	return s.scroller.View(s.render(width), height)
}

func (s *ProductionScreen) render(width int) string {
	title := theme.Title.Render("⚗ Isotope Production Methods")

	left := components.Section("Production Methods", wrapBullets(methods, width)) +
		"\n\n" +
		components.Section("Key Facilities", components.Bullets(facilities))

	if layout.IsCompactWidth(width + layout.SidebarWidth) {
		right := components.Section("Production Economics", s.economics(width))
		return strings.Join([]string{title, left, right}, "\n\n")
	}

	// One third for the lists, two thirds for the chart.
	leftW := width / 3
	rightW := width - leftW - 2
	left = lipgloss.NewStyle().Width(leftW).Render(
		components.Section("Production Methods", wrapBullets(methods, leftW)) +
			"\n\n" +
			components.Section("Key Facilities", components.Bullets(facilities)))
	right := lipgloss.NewStyle().Width(rightW).PaddingLeft(2).Render(
		components.Section("Production Economics", s.economics(rightW-2)))

	return title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (s *ProductionScreen) economics(width int) string {
	series := make([]chart.Series, 0, len(s.methods))
	for _, m := range s.methods {
		series = append(series, chart.Series{Name: m.Method, Values: m.Scores()})
	}
	return chart.Grouped(series, dataset.ProductionAxes, scoreLimit, width)
}

// wrapBullets renders bullets wrapped to width.
func wrapBullets(items []string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 20)).Render(components.Bullets(items))
}
