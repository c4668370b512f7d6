// Package input converts tcell events into the small set of
// application events the coordinator acts on.
package input

import "github.com/gdamore/tcell/v2"

// Event is a decoded input event.
type Event interface{ isEvent() }

// Quit asks the application to shut down.
type Quit struct{}

// Resize reports new screen dimensions in cells.
type Resize struct {
	Width  int
	Height int
}

// Click is a primary-button press at cell coordinates.
type Click struct {
	X int
	Y int
}

// None is anything the application ignores (motion, other keys).
type None struct{}

func (Quit) isEvent()   {}
func (Resize) isEvent() {}
func (Click) isEvent()  {}
func (None) isEvent()   {}

// Handler decodes tcell events. It tracks button state so a held drag
// does not repeat the click.
type Handler struct {
	buttonDown bool
}

// Map translates a tcell event into an application Event.
func (h *Handler) Map(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return Quit{}
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return Quit{}
		}
		return None{}
	case *tcell.EventResize:
		w, hgt := ev.Size()
		return Resize{Width: w, Height: hgt}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasDown := h.buttonDown
		h.buttonDown = pressed
		if pressed && !wasDown {
			x, y := ev.Position()
			return Click{X: x, Y: y}
		}
		return None{}
	default:
		return None{}
	}
}
