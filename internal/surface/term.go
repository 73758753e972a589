package surface

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var errScreenClosed = errors.New("surface: screen closed while waiting for input")

// Term adapts a tcell.Screen to the Surface contract. It tracks the logical
// drawable extent and the cursor position itself; tcell silently drops
// out-of-range writes, so Term re-checks bounds to surface them as errors.
type Term struct {
	screen tcell.Screen
	style  tcell.Style

	rows, cols     int
	curRow, curCol int
	released       bool
}

// Acquire takes ownership of the process terminal as a Surface. The caller
// must Release on every exit path.
func Acquire() (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("surface: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("surface: init screen: %w", err)
	}
	return newTerm(screen), nil
}

// NewSimulation builds a Term over an in-memory tcell simulation screen,
// sized width x height. Used by headless tests and has no terminal side
// effects.
func NewSimulation(width, height int) (*Term, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, fmt.Errorf("surface: init simulation screen: %w", err)
	}
	sim.SetSize(width, height)
	return newTerm(sim), nil
}

func newTerm(screen tcell.Screen) *Term {
	cols, rows := screen.Size()
	return &Term{
		screen: screen,
		style:  tcell.StyleDefault,
		rows:   rows,
		cols:   cols,
	}
}

// Release restores the terminal mode. Idempotent.
func (t *Term) Release() {
	if t.released {
		return
	}
	t.released = true
	t.screen.Fini()
}

// Resize establishes the logical drawable extent and drops prior content.
// The extent may exceed the physical screen; writes beyond the physical
// size are absorbed by tcell.
func (t *Term) Resize(width, height int, colorMode byte) error {
	t.cols = width
	t.rows = height
	return t.Clear()
}

// Clear erases all content and homes the cursor.
func (t *Term) Clear() error {
	t.screen.Clear()
	t.curRow, t.curCol = 0, 0
	t.screen.ShowCursor(t.curCol, t.curRow)
	return nil
}

// Refresh flushes pending draws to the visible output.
func (t *Term) Refresh() error {
	t.screen.Show()
	return nil
}

// PutChar writes one character cell.
func (t *Term) PutChar(row, col int, ch byte) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return OutOfRangeError{Op: "put", Row: row, Col: col, Rows: t.rows, Cols: t.cols}
	}
	t.screen.SetContent(col, row, rune(ch), nil, t.style)
	return nil
}

// MoveCursor repositions the cursor.
func (t *Term) MoveCursor(row, col int) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return OutOfRangeError{Op: "move", Row: row, Col: col, Rows: t.rows, Cols: t.cols}
	}
	t.curRow, t.curCol = row, col
	t.screen.ShowCursor(col, row)
	return nil
}

// CursorPosition reports the current cursor cell.
func (t *Term) CursorPosition() (int, int) {
	return t.curRow, t.curCol
}

// Extent reports the current drawable size.
func (t *Term) Extent() (int, int) {
	return t.rows, t.cols
}

// WaitForKey blocks until one key press, discarding other events.
func (t *Term) WaitForKey() error {
	for {
		switch t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case nil:
			return errScreenClosed
		}
	}
}
