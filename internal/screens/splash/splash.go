package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/router"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 900 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const atomArt = `    ╭─────╮
  ╭─┼──●──┼─╮
  │ │ ╲ ╱ │ │
  ● │  ⚛  │ ●
  │ │ ╱ ╲ │ │
  ╰─┼──●──┼─╯
    ╰─────╯`

// electron frames cycle around the atom
var electronFrames = []string{"·", "•", "●", "•"}

type tickMsg time.Time

// SplashScreen plays a short intro, then hands over to the dashboard. Any
// key skips it.
type SplashScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen that will be replaced by the screen next builds.
func New(next func() screen.Screen) *SplashScreen {
	return &SplashScreen{next: next}
}

func (w *SplashScreen) Title() string {
	return ""
}

func (w *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *SplashScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *SplashScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(atomArt)

	// Electrons orbit once the nucleus is drawn.
	if w.elapsed >= phase1End {
		e := electronFrames[w.tickCount%len(electronFrames)]
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(e)
		b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(e)

		lines := strings.Split(rendered, "\n")
		lines[0] = a + "  " + lines[0] + "  " + b
		lines[3] = b + "  " + lines[3] + "  " + a
		lines[6] = a + "  " + lines[6] + "  " + b
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Non-Energy Applications of Nuclear Technologies"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
