package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/matrix/isotopes/internal/config"
	"github.com/matrix/isotopes/internal/screens/dashboard"
	"github.com/matrix/isotopes/internal/screens/splash"
	"github.com/matrix/isotopes/internal/session"
)

func testOptions(t *testing.T, skipSplash bool) Options {
	t.Helper()
	log, _ := test.NewNullLogger()
	cfg := config.Default()
	cfg.AssetsDir = t.TempDir()
	return Options{Session: session.New(log), Config: cfg, SkipSplash: skipSplash}
}

func TestNewAppModel_StartsOnSplash(t *testing.T) {
	m := newAppModel(testOptions(t, false))
	if _, ok := m.router.Active().(*splash.SplashScreen); !ok {
		t.Fatalf("active = %T, want splash", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("splash should start its animation")
	}
}

func TestNewAppModel_SkipSplash(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Fatalf("active = %T, want dashboard", m.router.Active())
	}
}

func TestUpdate_SplashHandsOverToDashboard(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t, false))
	model, cmd := model.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	model, _ = model.Update(cmd())

	m := model.(AppModel)
	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Fatalf("active = %T, want dashboard", m.router.Active())
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t, true))
	_, cmd := model.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView_FrameAndStatus(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t, true))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	content := model.(AppModel).render()
	if !strings.Contains(content, "Nuclear Isotopes Economics") {
		t.Error("header should carry the app name")
	}
	if !strings.Contains(content, "Quiz 0/3") {
		t.Error("header should show quiz progress")
	}
	if !strings.Contains(content, "Ctrl+C") {
		t.Error("footer should list the quit key")
	}
}

func TestView_TooSmall(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t, true))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestRun_RequiresSession(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected an error without a session")
	}
}
