// Package interp owns the command interpreter driving a display surface.
//
// Ownership boundary:
// - the setup-first readiness gate and end-of-stream handling
// - dispatch from decoded commands to drawing primitives
// - the drawing primitives, including line rasterization
package interp

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/screenctl/internal/protocol"
	"github.com/danmuck/screenctl/internal/surface"
)

// UninitializedSurfaceError indicates a command arrived before any Setup
// established the surface extent. The readiness gate precedes the End check,
// so an End record before Setup fails the same way.
type UninitializedSurfaceError struct {
	Tag protocol.Tag
}

func (e UninitializedSurfaceError) Error() string {
	return fmt.Sprintf("interp: tag 0x%02X before surface setup", byte(e.Tag))
}

// Interpreter replays one decoded command stream against a surface. The only
// state it owns is the readiness flag; cursor position and extent live in the
// surface.
type Interpreter struct {
	surf  surface.Surface
	ready bool
}

// New builds an interpreter over surf.
func New(surf surface.Surface) *Interpreter {
	return &Interpreter{surf: surf}
}

// Run consumes dec to completion: End record, buffer exhaustion, or the first
// error. On clean completion it blocks for one key press before returning so
// the final frame stays visible. Errors abort before the key wait.
func (in *Interpreter) Run(dec *protocol.Decoder) error {
	if err := in.surf.Clear(); err != nil {
		return err
	}

	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		stop, err := in.step(rec)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return in.surf.WaitForKey()
}

// step executes one record. Setup bypasses the readiness gate; End is
// checked only after it, and stops without a refresh.
func (in *Interpreter) step(rec protocol.Record) (stop bool, err error) {
	if rec.Tag != protocol.TagSetup && !in.ready {
		return false, UninitializedSurfaceError{Tag: rec.Tag}
	}
	if rec.Tag == protocol.TagEnd {
		return true, nil
	}

	cmd, err := protocol.Parse(rec)
	if err != nil {
		return false, err
	}

	switch c := cmd.(type) {
	case protocol.Setup:
		err = in.setup(c)
	case protocol.DrawChar:
		err = drawChar(in.surf, c)
	case protocol.DrawLine:
		err = drawLine(in.surf, c)
	case protocol.RenderText:
		err = renderText(in.surf, c)
	case protocol.MoveCursor:
		err = moveCursor(in.surf, c)
	case protocol.DrawAtCursor:
		err = drawAtCursor(in.surf, c)
	case protocol.ClearScreen:
		err = in.surf.Clear()
	case protocol.Unknown:
		// Recognized-unknown: framed, skipped, no primitive.
	}
	if err != nil {
		return false, err
	}

	return false, in.surf.Refresh()
}

func (in *Interpreter) setup(c protocol.Setup) error {
	if err := in.surf.Resize(int(c.Width), int(c.Height), c.ColorMode); err != nil {
		return err
	}
	in.ready = true
	return nil
}
