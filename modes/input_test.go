package modes

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/engine"
)

type fakeGame struct {
	running    bool
	starts     int
	typed      []rune
	backspaces int
}

func (g *fakeGame) Start()      { g.starts++; g.running = true }
func (g *fakeGame) Type(r rune) { g.typed = append(g.typed, r) }
func (g *fakeGame) Backspace()  { g.backspaces++ }
func (g *fakeGame) Snapshot() *engine.Snapshot {
	return &engine.Snapshot{Running: g.running}
}

type fakeMuter struct{ muted bool }

func (m *fakeMuter) ToggleMute() bool { m.muted = !m.muted; return m.muted }

type fakeResizer struct{ w, h int }

func (r *fakeResizer) Resize(w, h int) { r.w, r.h = w, h }

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputHandlerQuitKeys(t *testing.T) {
	h := NewInputHandler(&fakeGame{}, nil, nil)

	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ} {
		if h.HandleEvent(key(k)) {
			t.Errorf("Expected key %v to quit", k)
		}
	}
}

func TestInputHandlerTyping(t *testing.T) {
	game := &fakeGame{}
	h := NewInputHandler(game, nil, nil)

	for _, r := range "asd" {
		if !h.HandleEvent(runeKey(r)) {
			t.Fatal("Expected typing to continue the game")
		}
	}
	h.HandleEvent(key(tcell.KeyBackspace2))
	h.HandleEvent(key(tcell.KeyBackspace))

	if string(game.typed) != "asd" {
		t.Errorf("Expected typed runes %q, got %q", "asd", string(game.typed))
	}
	if game.backspaces != 2 {
		t.Errorf("Expected 2 backspaces, got %d", game.backspaces)
	}
}

func TestInputHandlerStart(t *testing.T) {
	game := &fakeGame{}
	h := NewInputHandler(game, nil, nil)

	h.HandleEvent(key(tcell.KeyEnter))
	if game.starts != 1 {
		t.Fatalf("Expected Enter to start from the title screen, got %d starts", game.starts)
	}

	// Enter during a game does nothing, Ctrl+R always restarts
	h.HandleEvent(key(tcell.KeyEnter))
	h.HandleEvent(key(tcell.KeyCtrlR))
	if game.starts != 2 {
		t.Errorf("Expected 2 starts, got %d", game.starts)
	}
}

func TestInputHandlerMuteAndResize(t *testing.T) {
	muter := &fakeMuter{}
	resizer := &fakeResizer{}
	h := NewInputHandler(&fakeGame{}, muter, resizer)

	h.HandleEvent(key(tcell.KeyCtrlS))
	if !muter.muted {
		t.Error("Expected Ctrl+S to mute")
	}

	if !h.HandleEvent(tcell.NewEventResize(100, 40)) {
		t.Error("Expected resize to continue the game")
	}
	if resizer.w != 100 || resizer.h != 40 {
		t.Errorf("Expected resize to 100x40, got %dx%d", resizer.w, resizer.h)
	}
}

func TestInputHandlerNilCollaborators(t *testing.T) {
	h := NewInputHandler(&fakeGame{}, nil, nil)

	if !h.HandleEvent(key(tcell.KeyCtrlS)) {
		t.Error("Expected Ctrl+S without audio to be ignored")
	}
	if !h.HandleEvent(tcell.NewEventResize(10, 10)) {
		t.Error("Expected resize without renderer to be ignored")
	}
}
