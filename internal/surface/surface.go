// Package surface owns the character-cell display capability the interpreter
// draws against.
//
// Ownership boundary:
// - the Surface capability contract
// - the tcell-backed terminal adapter and its acquire/release bracket
// - out-of-range cell errors
package surface

import "fmt"

// Surface is one exclusively owned character-cell display. The surface owns
// its cursor position and drawable extent; callers never duplicate either.
type Surface interface {
	// Resize establishes the drawable extent and drops prior content.
	Resize(width, height int, colorMode byte) error

	// Clear erases all content and homes the cursor.
	Clear() error

	// Refresh flushes pending draws to the visible output.
	Refresh() error

	// PutChar writes one character cell. Out-of-range cells fail with
	// OutOfRangeError.
	PutChar(row, col int, ch byte) error

	// MoveCursor repositions the cursor; out-of-range positions fail.
	MoveCursor(row, col int) error

	// CursorPosition reports the current cursor cell.
	CursorPosition() (row, col int)

	// Extent reports the current drawable size.
	Extent() (rows, cols int)

	// WaitForKey blocks until one key press.
	WaitForKey() error

	// Release restores the underlying display mode. Safe to call twice.
	Release()
}

// OutOfRangeError reports a cell operation outside the drawable extent.
type OutOfRangeError struct {
	Op   string
	Row  int
	Col  int
	Rows int
	Cols int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("surface: %s (%d,%d) outside extent %dx%d", e.Op, e.Row, e.Col, e.Rows, e.Cols)
}
