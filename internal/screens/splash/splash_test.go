package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/matrix/isotopes/internal/router"
	"github.com/matrix/isotopes/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "dashboard" }
func (s *stubScreen) Title() string                          { return "Dashboard" }

func newTestSplash() (*SplashScreen, *int) {
	callCount := 0
	next := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(next), &callCount
}

func sendTicks(w *SplashScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestSplash()

	if strings.Contains(w.View(100, 30), "Non-Energy Applications") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 3)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}

	sendTicks(w, 6)
	if !strings.Contains(w.View(100, 30), "Non-Energy Applications") {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestKeypressSkipsToDashboard(t *testing.T) {
	w, callCount := newTestSplash()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestAutoTransition(t *testing.T) {
	w, callCount := newTestSplash()

	n := int(totalDur / tickInterval)
	_, cmd := sendTicks(w, n)
	if cmd == nil {
		t.Fatal("expected a command when the intro ends")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected the intro to hand over to the dashboard")
	}

	// Further ticks stop the loop.
	if _, cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticks after the transition should not reschedule")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestSplash()
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
	if strings.Contains(RenderBanner(100), bannerCompact) {
		t.Error("wide terminals should get the full banner")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestSplash()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
