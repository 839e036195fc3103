package references

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// Source is a data provider the dashboard figures are drawn from.
type Source struct {
	Name  string
	Title string
	URL   string
}

// Sources lists the verified information sources.
var Sources = []Source{
	{Name: "IAEA (International Atomic Energy Agency)", Title: "Nuclear Data Services", URL: "https://www.iaea.org/resources/databases"},
	{Name: "World Nuclear Association", Title: "World Nuclear Performance Reports", URL: "https://www.world-nuclear.org/"},
	{Name: "OECD Nuclear Energy Agency", Title: "Nuclear Technology Reports", URL: "https://www.oecd-nea.org/"},
	{Name: "UN Sustainable Development", Title: "Nuclear for Climate Initiative", URL: "https://www.un.org/sustainabledevelopment/climate-change/"},
}

// Publications lists the key publications, in citation order.
var Publications = []string{
	`"The Supply of Medical Isotopes" (OECD/NEA, 2023)`,
	`"Industrial Applications of Radioisotopes" (IAEA, 2022)`,
	`"Economic Assessment of Non-Energy Nuclear Applications" (WNA, 2024)`,
}

var stack = []string{
	"**Interface**: Bubble Tea terminal UI",
	"**Styling**: Lip Gloss",
	"**Data Visualization**: text charts",
	"**Dataset**: embedded JSON, schema-validated",
}

// ReferencesScreen lists where the dashboard's data comes from.
type ReferencesScreen struct {
	scroller components.Scroller
}

var _ screen.Screen = (*ReferencesScreen)(nil)

// New creates the references panel.
func New() *ReferencesScreen {
	return &ReferencesScreen{}
}

func (s *ReferencesScreen) Init() tea.Cmd {
	return nil
}

func (s *ReferencesScreen) Title() string {
	return "References & Data Sources"
}

func (s *ReferencesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.scroller, _ = s.scroller.Update(msg)
	return s, nil
}

func (s *ReferencesScreen) View(width, height int) string {
	return s.scroller.View(s.render(width), height)
}

func (s *ReferencesScreen) render(width int) string {
	link := lipgloss.NewStyle().Foreground(theme.Primary).Underline(true)

	var sources strings.Builder
	for _, src := range Sources {
		sources.WriteString(components.Emphasis("  • **" + src.Name + "**:"))
		sources.WriteString("\n    ")
		sources.WriteString(theme.Body.Render(src.Title + " "))
		sources.WriteString(link.Render(src.URL))
		sources.WriteString("\n")
	}

	var pubs strings.Builder
	for i, p := range Publications {
		pubs.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, p)))
		pubs.WriteString("\n")
	}

	return strings.Join([]string{
		theme.Title.Render("📚 References & Data Sources"),
		components.Section("Verified Information Sources:", strings.TrimRight(sources.String(), "\n")),
		components.Section("Key Publications:", strings.TrimRight(pubs.String(), "\n")),
		layout.Divider(width),
		components.Section("Application Development:", components.Bullets(stack)),
	}, "\n\n")
}
