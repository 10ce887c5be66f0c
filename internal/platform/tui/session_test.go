package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	store := openStore(t)
	return NewSessionModel(store, config.DefaultFlappyConfig(), testRuntime(), "ssh-user", nil)
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGame(t *testing.T) {
	m := newTestSession(t)

	if !strings.Contains(m.View(), "F L A P P Y") {
		t.Fatal("session should open on the menu")
	}

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("Enter on Play should start a game, screen = %v", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if m.quitting {
		t.Error("choosing Play must not end the session")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	m := newTestSession(t)
	store := m.store
	if _, err := store.SaveScore(flappy.GameID, "ana", 2.5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("Tab should open the scoreboard, screen = %v", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "ana") {
		t.Errorf("scoreboard should list saved runs, got:\n%s", view)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("Esc should return to the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("back must not end the session")
	}
}

func TestSessionMenuNavigation(t *testing.T) {
	m := newTestSession(t)

	// Down twice lands on Quit
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.quitting || !isQuit(cmd) {
		t.Error("selecting Quit should end the session")
	}
}

func TestSessionGameBackToMenu(t *testing.T) {
	m := newTestSession(t)
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	gm := crash(t, *m.gameModel)
	m.gameModel = &gm

	m, _ = sendSession(t, m, runes("b"))
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("back after game over should return to the menu, screen = %v", m.screen)
	}

	// A stale tick in the menu is ignored.
	m, cmd := sendSession(t, m, TickMsg{})
	if m.screen != screenMenu || cmd != nil {
		t.Error("menu should ignore ticks")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, flappy.GameID, flappy.Title, 80, 24)
	if !strings.Contains(m.View(), "Scores unavailable") {
		t.Errorf("nil store should report unavailable scores, got:\n%s", m.View())
	}

	m = NewScoreboardModel(openStore(t), flappy.GameID, flappy.Title, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty store should show the empty message, got:\n%s", m.View())
	}
}
