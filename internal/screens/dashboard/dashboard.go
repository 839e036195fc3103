package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/panel"
	"github.com/matrix/isotopes/internal/router"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/screens/economics"
	"github.com/matrix/isotopes/internal/screens/overview"
	"github.com/matrix/isotopes/internal/screens/production"
	"github.com/matrix/isotopes/internal/screens/quizscreen"
	"github.com/matrix/isotopes/internal/screens/references"
	"github.com/matrix/isotopes/internal/screens/sectors"
	"github.com/matrix/isotopes/internal/session"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// selectPanelMsg is sent by the sidebar when a panel is chosen.
type selectPanelMsg struct {
	id panel.ID
}

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// Options configure the dashboard.
type Options struct {
	Session       *session.Session
	AssetsDir     string
	FeedbackDelay time.Duration
}

// DashboardScreen is the single page of the app: a sidebar choosing one of
// the panels and the chosen panel beside it.
type DashboardScreen struct {
	opts    Options
	menu    components.Menu
	content *router.Router
	active  panel.ID
	focus   focusArea
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.StatusProvider = (*DashboardScreen)(nil)

// New creates the dashboard showing the global dashboard panel.
func New(opts Options) *DashboardScreen {
	d := &DashboardScreen{opts: opts}

	ids := panel.All()
	items := make([]components.MenuItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, components.MenuItem{
			Label: id.Icon() + " " + id.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return selectPanelMsg{id: id} }
			},
		})
	}
	d.menu = components.NewMenu(items)
	d.active = ids[0]
	d.content = router.New(d.SelectPanel(d.active))
	return d
}

// SelectPanel builds the screen for id. Every panel is a fresh screen; the
// quiz resumes from the session.
func (d *DashboardScreen) SelectPanel(id panel.ID) screen.Screen {
	switch id {
	case panel.GlobalDashboard:
		return overview.New()
	case panel.IsotopeProduction:
		return production.New()
	case panel.SectorApplications:
		return sectors.New(d.opts.AssetsDir, d.opts.Session.Log())
	case panel.EconomicAnalysis:
		return economics.New()
	case panel.InteractiveQuiz:
		return quizscreen.New(d.opts.Session, d.opts.FeedbackDelay)
	case panel.References:
		return references.New()
	}
	panic(fmt.Sprintf("dashboard: unknown panel %d", int(id)))
}

// Active returns the panel being shown.
func (d *DashboardScreen) Active() panel.ID {
	return d.active
}

// Content returns the screen of the active panel.
func (d *DashboardScreen) Content() screen.Screen {
	return d.content.Active()
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.content.Active().Init()
}

func (d *DashboardScreen) Title() string {
	return d.content.Active().Title()
}

func (d *DashboardScreen) Status() string {
	st := d.opts.Session.Quiz()
	total := len(d.opts.Session.Questions())
	if st.Finished(total) {
		return fmt.Sprintf("Quiz %d/%d ✓", st.Score, total)
	}
	return fmt.Sprintf("Quiz %d/%d", st.CurrentIndex, total)
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.focus == focusSidebar {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Panel"},
			{Key: "Enter/Tab", Description: "Open"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	var hints []layout.KeyHint
	if p, ok := d.content.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints,
		layout.KeyHint{Key: "Esc/Tab", Description: "Menu"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case selectPanelMsg:
		return d, d.show(msg.id)

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	// Timers and other panel messages go to the panel even while the
	// sidebar has focus.
	return d, d.content.Update(msg)
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "tab" {
		d.setFocus(1 - d.focus)
		return d, nil
	}

	if d.focus == focusContent {
		if key == "esc" {
			d.setFocus(focusSidebar)
			return d, nil
		}
		return d, d.content.Update(msg)
	}

	switch key {
	case "enter", "right", "l":
		d.setFocus(focusContent)
		return d, nil
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) setFocus(f focusArea) {
	d.focus = f
	d.menu.Focused = f == focusSidebar
}

func (d *DashboardScreen) show(id panel.ID) tea.Cmd {
	d.opts.Session.PanelSelected(id)
	d.active = id
	for i, item := range panel.All() {
		if item == id {
			d.menu.Selected = i
		}
	}
	return d.content.Replace(d.SelectPanel(id))
}

func (d *DashboardScreen) View(width, height int) string {
	sidebar := d.renderSidebar(height)
	contentW := max(width-lipgloss.Width(sidebar)-1, 0)
	content := lipgloss.NewStyle().
		Width(contentW).
		MaxHeight(height).
		PaddingLeft(1).
		Render(d.content.View(max(contentW-1, 0), height))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}

func (d *DashboardScreen) renderSidebar(height int) string {
	inner := layout.SidebarWidth - 3

	heading := theme.Heading
	if d.focus != focusSidebar {
		heading = theme.Subtitle.Bold(true)
	}

	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner)
	var b strings.Builder
	b.WriteString(heading.Render("Navigation"))
	b.WriteString("\n\n")
	b.WriteString(d.menu.View())
	b.WriteString("\n")
	b.WriteString(layout.Divider(inner))
	b.WriteString("\n")
	b.WriteString(theme.Strong.Render("Data Sources:"))
	b.WriteString("\n")
	b.WriteString(caption.Render("IAEA Databases • World Nuclear Association • OECD/NEA Reports"))
	b.WriteString("\n\n")
	b.WriteString(caption.Render("Developed by Team [Matrix]"))

	return theme.Sidebar.
		Width(layout.SidebarWidth).
		Height(height).
		MaxHeight(height).
		Render(b.String())
}
