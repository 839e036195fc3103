package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/config"
	"github.com/matrix/isotopes/internal/router"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/screens/dashboard"
	"github.com/matrix/isotopes/internal/screens/splash"
	"github.com/matrix/isotopes/internal/session"
	"github.com/matrix/isotopes/internal/ui/layout"
)

// Options holds the dependencies for the app.
type Options struct {
	Session *session.Session
	Config  config.Config
	// SkipSplash opens the dashboard directly.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	newDashboard := func() screen.Screen {
		return dashboard.New(dashboard.Options{
			Session:       opts.Session,
			AssetsDir:     opts.Config.AssetsDir,
			FeedbackDelay: opts.Config.FeedbackDelay,
		})
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = newDashboard()
	} else {
		initial = splash.New(newDashboard)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("run app: no session")
	}

	log := opts.Session.Log()
	log.Info("dashboard started")

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		return fmt.Errorf("run app: %w", err)
	}

	st := opts.Session.Quiz()
	log.WithField("score", st.Score).Info("dashboard closed")
	return nil
}
