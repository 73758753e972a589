package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrPayloadTooLarge = errors.New("protocol: payload too large for one record")
)

// MalformedStreamError reports a truncated record at its start offset.
// HasTag is set when the header was intact but the declared payload ran
// past the end of the buffer.
type MalformedStreamError struct {
	Offset int
	Tag    Tag
	HasTag bool
}

func (e MalformedStreamError) Error() string {
	if !e.HasTag {
		return fmt.Sprintf("protocol: malformed stream at offset %d: truncated record header", e.Offset)
	}
	return fmt.Sprintf("protocol: malformed stream at offset %d: truncated payload for tag 0x%02X", e.Offset, byte(e.Tag))
}

// PayloadArityError indicates a payload length that disagrees with its tag.
type PayloadArityError struct {
	Tag      Tag
	Expected int
	Actual   int
}

func (e PayloadArityError) Error() string {
	return fmt.Sprintf("protocol: tag 0x%02X payload arity mismatch: got %d want %d", byte(e.Tag), e.Actual, e.Expected)
}
