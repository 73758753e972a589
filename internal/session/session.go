// Package session owns the scoped playback bracket around the display surface.
//
// Ownership boundary:
// - surface acquisition and guaranteed release
// - wiring decoder to interpreter for one run
package session

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/screenctl/internal/interp"
	"github.com/danmuck/screenctl/internal/protocol"
	"github.com/danmuck/screenctl/internal/surface"
)

// Play acquires the process terminal, replays stream against it, and
// releases the terminal on every exit path, error exits included.
func Play(stream []byte) error {
	log.Debug().Int("bytes", len(stream)).Msg("session start")

	surf, err := surface.Acquire()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	defer surf.Release()

	return PlayOn(stream, surf)
}

// PlayOn replays stream against an already-acquired surface. Release stays
// with the caller.
func PlayOn(stream []byte, surf surface.Surface) error {
	return interp.New(surf).Run(protocol.NewDecoder(stream))
}
