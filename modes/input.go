package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/engine"
)

// Controller is the control surface the keyboard drives
type Controller interface {
	Start()
	Type(r rune)
	Backspace()
	Snapshot() *engine.Snapshot
}

// Muter toggles sound, returning the new mute state
type Muter interface {
	ToggleMute() bool
}

// Resizer follows terminal size changes
type Resizer interface {
	Resize(width, height int)
}

// InputHandler processes user input events
type InputHandler struct {
	game    Controller
	muter   Muter
	resizer Resizer
}

// NewInputHandler creates a new input handler; muter and resizer may be nil
func NewInputHandler(game Controller, muter Muter, resizer Resizer) *InputHandler {
	return &InputHandler{
		game:    game,
		muter:   muter,
		resizer: resizer,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.resizer != nil {
			w, hgt := ev.Size()
			h.resizer.Resize(w, hgt)
		}
		return true
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyEscape:
		return false

	case tcell.KeyCtrlR:
		h.game.Start()

	case tcell.KeyCtrlS:
		if h.muter != nil {
			h.muter.ToggleMute()
		}

	case tcell.KeyEnter:
		// Enter only starts from the title screen
		if snap := h.game.Snapshot(); snap == nil || !snap.Running {
			h.game.Start()
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.game.Backspace()

	case tcell.KeyRune:
		h.game.Type(ev.Rune())
	}
	return true
}
