package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	game := flappy.New(config.DefaultFlappyConfig(), nil, nil)
	m := NewGameModel(game, store, testRuntime(), "tester", nil)
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

// crash starts a run and lets the bird fall to the ground.
func crash(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, runes(" "))
	for i := 0; i < 600 && !m.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("bird never reached the ground")
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelStartsOnFlap(t *testing.T) {
	m := newTestModel(t, nil)

	m = tick(t, m)
	if m.State().Phase != "waiting" {
		t.Fatalf("Phase = %q, expected waiting", m.State().Phase)
	}

	m, _ = send(t, m, runes(" "))
	m = tick(t, m)
	if m.State().Phase != "playing" {
		t.Errorf("Phase = %q, expected playing", m.State().Phase)
	}
}

func TestGameModelMouseStart(t *testing.T) {
	m := newTestModel(t, nil)

	// Center of an 80x24 screen lies inside the greeting panel.
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)
	if m.State().Phase != "playing" {
		t.Errorf("Phase = %q, expected playing after click", m.State().Phase)
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runes("q"))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelBackOnlyWhenOver(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, runes(" "))
	m = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc while playing should not leave the game")
	}

	m = crash(t, m)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc after game over should go back")
	}
	if isQuit(cmd) {
		t.Error("embedded model should not quit the program on back")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m := newTestModel(t, nil)
	m.standalone = true

	m = crash(t, m)
	m, cmd := send(t, m, runes("b"))
	if !isQuit(cmd) {
		t.Error("standalone back should quit")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m.gameState = core.GameState{Phase: "game_over", Score: 1.375, GameOver: true}
	m.saveScore()

	scores, err := store.TopScores(flappy.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1.375 || scores[0].Player != "tester" {
		t.Fatalf("scores = %+v, expected one 1.375 run by tester", scores)
	}

	// A zero-score crash is not recorded, and repeated game-over ticks
	// never save twice.
	m = crash(t, m)
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	scores, _ = store.TopScores(flappy.GameID, 10)
	if len(scores) != 1 {
		t.Errorf("expected 1 stored score, got %d", len(scores))
	}
}

func TestGameModelNilStore(t *testing.T) {
	m := newTestModel(t, nil)
	m.gameState = core.GameState{Score: 2, GameOver: true}
	m.saveScore() // must not panic
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, runes(" "))
	m = tick(t, m)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = tick(t, m)

	if m.State().Phase != "playing" {
		t.Errorf("resize should not reset the run, phase = %q", m.State().Phase)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("View has %d lines, expected 30", len(lines))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'A', core.ColorGreen)
	s.SetColored(1, 0, 'B', core.ColorGreen)
	s.SetColored(0, 1, 'C', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "AB") {
		t.Errorf("same-color cells should render as one run, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "C") {
		t.Errorf("unknown color should still render its rune, got %q", lines[1])
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		0:     "0",
		0.125: "0.125",
		1.5:   "1.5",
		12:    "12",
	}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%v) = %q, expected %q", in, got, want)
		}
	}
}
