package session

import (
	"errors"
	"testing"

	"github.com/danmuck/screenctl/internal/interp"
	"github.com/danmuck/screenctl/internal/protocol"
	"github.com/danmuck/screenctl/internal/testutil/testlog"
)

// stubSurface satisfies the surface contract with counters only.
type stubSurface struct {
	clears   int
	keyWaits int
	releases int
}

func (s *stubSurface) Resize(width, height int, colorMode byte) error { return nil }
func (s *stubSurface) Clear() error                                   { s.clears++; return nil }
func (s *stubSurface) Refresh() error                                 { return nil }
func (s *stubSurface) PutChar(row, col int, ch byte) error            { return nil }
func (s *stubSurface) MoveCursor(row, col int) error                  { return nil }
func (s *stubSurface) CursorPosition() (int, int)                     { return 0, 0 }
func (s *stubSurface) Extent() (int, int)                             { return 24, 80 }
func (s *stubSurface) WaitForKey() error                              { s.keyWaits++; return nil }
func (s *stubSurface) Release()                                       { s.releases++ }

func TestPlayOnCompletes(t *testing.T) {
	testlog.Start(t)

	surf := &stubSurface{}
	stream, err := protocol.Encode([]protocol.Command{
		protocol.Setup{Width: 10, Height: 10},
		protocol.DrawChar{X: 1, Y: 1, Char: 'x'},
		protocol.End{},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := PlayOn(stream, surf); err != nil {
		t.Fatalf("play: %v", err)
	}
	if surf.keyWaits != 1 {
		t.Fatalf("expected final key wait, got %d", surf.keyWaits)
	}
	// Release stays with the caller of PlayOn.
	if surf.releases != 0 {
		t.Fatalf("unexpected release")
	}
}

func TestPlayOnPropagatesErrors(t *testing.T) {
	testlog.Start(t)

	surf := &stubSurface{}
	err := PlayOn([]byte{0xFF, 0}, surf)
	var uninit interp.UninitializedSurfaceError
	if !errors.As(err, &uninit) {
		t.Fatalf("expected UninitializedSurfaceError, got %v", err)
	}
	if surf.keyWaits != 0 {
		t.Fatalf("error exit must skip the key wait")
	}
}
