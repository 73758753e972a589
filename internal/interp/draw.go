package interp

import (
	"github.com/danmuck/screenctl/internal/protocol"
	"github.com/danmuck/screenctl/internal/surface"
)

// Color bytes are carried by the wire format but not applied to any call
// here; the field is reserved.

func drawChar(s surface.Surface, c protocol.DrawChar) error {
	return s.PutChar(int(c.Y), int(c.X), c.Char)
}

// drawLine rasterizes an 8-connected Bresenham line, both endpoints
// inclusive. Cells outside the surface extent are skipped without cutting
// the walk short, so the step count along the dominant axis is always
// max(|dx|,|dy|)+1.
func drawLine(s surface.Surface, c protocol.DrawLine) error {
	x, y := int(c.X1), int(c.Y1)
	x2, y2 := int(c.X2), int(c.Y2)

	dx := abs(x2 - x)
	dy := abs(y2 - y)
	sx := 1
	if x > x2 {
		sx = -1
	}
	sy := 1
	if y > y2 {
		sy = -1
	}
	e := dx - dy

	rows, cols := s.Extent()
	for {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			if err := s.PutChar(y, x, c.Char); err != nil {
				return err
			}
		}
		if x == x2 && y == y2 {
			return nil
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

func renderText(s surface.Surface, c protocol.RenderText) error {
	for i, ch := range c.Text {
		if err := s.PutChar(int(c.Y), int(c.X)+i, ch); err != nil {
			return err
		}
	}
	return nil
}

func moveCursor(s surface.Surface, c protocol.MoveCursor) error {
	return s.MoveCursor(int(c.Y), int(c.X))
}

func drawAtCursor(s surface.Surface, c protocol.DrawAtCursor) error {
	row, col := s.CursorPosition()
	return s.PutChar(row, col, c.Char)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
