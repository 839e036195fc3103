package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrix/isotopes/internal/panel"
	"github.com/matrix/isotopes/internal/screens/economics"
	"github.com/matrix/isotopes/internal/screens/overview"
	"github.com/matrix/isotopes/internal/screens/production"
	"github.com/matrix/isotopes/internal/screens/quizscreen"
	"github.com/matrix/isotopes/internal/screens/references"
	"github.com/matrix/isotopes/internal/screens/sectors"
	"github.com/matrix/isotopes/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDashboard(t *testing.T) (*DashboardScreen, *session.Session, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	sess := session.New(log)
	return New(Options{Session: sess, AssetsDir: t.TempDir()}), sess, hook
}

// send delivers msg and then any message its command produces, the way
// the runtime would.
func send(d *DashboardScreen, msg tea.Msg) {
	_, cmd := d.Update(msg)
	if cmd != nil {
		if next := cmd(); next != nil {
			d.Update(next)
		}
	}
}

func TestSelectPanel_Exhaustive(t *testing.T) {
	d, _, _ := testDashboard(t)

	cases := map[panel.ID]any{
		panel.GlobalDashboard:    &overview.OverviewScreen{},
		panel.IsotopeProduction:  &production.ProductionScreen{},
		panel.SectorApplications: &sectors.SectorsScreen{},
		panel.EconomicAnalysis:   &economics.EconomicsScreen{},
		panel.InteractiveQuiz:    &quizscreen.QuizScreen{},
		panel.References:         &references.ReferencesScreen{},
	}
	for _, id := range panel.All() {
		want, ok := cases[id]
		require.True(t, ok, "no expectation for %s", id)
		assert.IsType(t, want, d.SelectPanel(id), id.Label())
	}
}

func TestSelectPanel_UnknownPanics(t *testing.T) {
	d, _, _ := testDashboard(t)
	assert.Panics(t, func() { d.SelectPanel(panel.ID(99)) })
}

func TestDashboard_StartsOnGlobalDashboard(t *testing.T) {
	d, _, _ := testDashboard(t)
	assert.Equal(t, panel.GlobalDashboard, d.Active())
	assert.Equal(t, "Global Isotope Economics Dashboard", d.Title())
}

func TestDashboard_SidebarSelectsPanel(t *testing.T) {
	d, _, hook := testDashboard(t)

	send(d, specialKey(tea.KeyDown))
	assert.Equal(t, panel.IsotopeProduction, d.Active())
	assert.IsType(t, &production.ProductionScreen{}, d.Content())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "panel selected", hook.LastEntry().Message)
	assert.Equal(t, "Isotope Production", hook.LastEntry().Data["panel"])
}

func TestDashboard_FocusRouting(t *testing.T) {
	d, _, _ := testDashboard(t)
	for range 4 {
		send(d, specialKey(tea.KeyDown))
	}
	require.Equal(t, panel.InteractiveQuiz, d.Active())

	// While the sidebar has focus, letters do not reach the quiz.
	send(d, keyPress('b'))
	assert.False(t, d.Content().(*quizscreen.QuizScreen).ShowingFeedback())

	send(d, specialKey(tea.KeyTab))
	send(d, keyPress('b'))
	assert.True(t, d.Content().(*quizscreen.QuizScreen).ShowingFeedback())

	// Esc returns to the sidebar; arrows navigate panels again.
	send(d, specialKey(tea.KeyEscape))
	send(d, specialKey(tea.KeyDown))
	assert.Equal(t, panel.References, d.Active())
}

func TestDashboard_QuizSurvivesNavigation(t *testing.T) {
	d, sess, _ := testDashboard(t)
	d.Update(selectPanelMsg{id: panel.InteractiveQuiz})
	send(d, specialKey(tea.KeyEnter))
	send(d, keyPress('b'))
	send(d, keyPress(' '))
	require.Equal(t, 1, sess.Quiz().Score)

	send(d, specialKey(tea.KeyEscape))
	d.Update(selectPanelMsg{id: panel.References})
	d.Update(selectPanelMsg{id: panel.InteractiveQuiz})

	assert.Equal(t, 1, sess.Quiz().CurrentIndex)
	assert.Contains(t, d.View(140, 40), "Question 2/3")
	assert.Equal(t, "Quiz 1/3", d.Status())
}

func TestDashboard_ViewShowsSidebar(t *testing.T) {
	d, _, _ := testDashboard(t)
	out := d.View(140, 40)

	for _, id := range panel.All() {
		assert.Contains(t, out, id.Label())
	}
	assert.Contains(t, out, "Data Sources:")
	assert.Contains(t, out, "[Matrix]")
	assert.Contains(t, out, "Global Isotope Economics Dashboard")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 40)
}

func TestDashboard_KeyHintsFollowFocus(t *testing.T) {
	d, _, _ := testDashboard(t)
	assert.Equal(t, "Panel", d.KeyHints()[0].Description)

	send(d, specialKey(tea.KeyTab))
	hints := d.KeyHints()
	assert.Equal(t, "Scroll", hints[0].Description)
	assert.Equal(t, "Menu", hints[len(hints)-2].Description)
}
