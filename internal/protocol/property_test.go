package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"pgregory.net/rapid"
)

func byteGen() *rapid.Generator[byte] {
	return rapid.Byte()
}

// commandGen generates one arbitrary valid command.
func commandGen() *rapid.Generator[Command] {
	return rapid.Custom(func(t *rapid.T) Command {
		switch rapid.IntRange(0, 8).Draw(t, "variant") {
		case 0:
			return Setup{
				Width:     byteGen().Draw(t, "w"),
				Height:    byteGen().Draw(t, "h"),
				ColorMode: byteGen().Draw(t, "mode"),
			}
		case 1:
			return DrawChar{
				X:     byteGen().Draw(t, "x"),
				Y:     byteGen().Draw(t, "y"),
				Color: byteGen().Draw(t, "color"),
				Char:  byteGen().Draw(t, "char"),
			}
		case 2:
			return DrawLine{
				X1:    byteGen().Draw(t, "x1"),
				Y1:    byteGen().Draw(t, "y1"),
				X2:    byteGen().Draw(t, "x2"),
				Y2:    byteGen().Draw(t, "y2"),
				Color: byteGen().Draw(t, "color"),
				Char:  byteGen().Draw(t, "char"),
			}
		case 3:
			return RenderText{
				X:     byteGen().Draw(t, "x"),
				Y:     byteGen().Draw(t, "y"),
				Color: byteGen().Draw(t, "color"),
				Text:  rapid.SliceOfN(byteGen(), 0, MaxPayloadLen-renderTextMinLen).Draw(t, "text"),
			}
		case 4:
			return MoveCursor{X: byteGen().Draw(t, "x"), Y: byteGen().Draw(t, "y")}
		case 5:
			return DrawAtCursor{Char: byteGen().Draw(t, "char"), Color: byteGen().Draw(t, "color")}
		case 6:
			return ClearScreen{}
		case 7:
			return Unknown{
				Raw:     Tag(rapid.ByteRange(0x08, 0xFE).Draw(t, "tag")),
				Payload: rapid.SliceOfN(byteGen(), 0, MaxPayloadLen).Draw(t, "payload"),
			}
		default:
			return End{}
		}
	})
}

// Encoding any command list and decoding the stream reproduces the same
// tag and payload sequence.
func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cmds := rapid.SliceOfN(commandGen(), 0, 20).Draw(rt, "cmds")

		stream, err := Encode(cmds)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}

		dec := NewDecoder(stream)
		for i, want := range cmds {
			rec, err := dec.Next()
			if err != nil {
				rt.Fatalf("record %d: %v", i, err)
			}
			if rec.Tag != want.Tag() {
				rt.Fatalf("record %d: tag 0x%02X want 0x%02X", i, byte(rec.Tag), byte(want.Tag()))
			}
			if !bytes.Equal(rec.Payload, payloadOf(want)) {
				rt.Fatalf("record %d payload mismatch", i)
			}
		}
		if _, err := dec.Next(); !errors.Is(err, io.EOF) {
			rt.Fatalf("expected EOF, got %v", err)
		}
	})
}

// Truncating a valid stream at any interior byte yields MalformedStreamError
// at the start offset of the cut record, never a read past the buffer.
func TestPropertyTruncationBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cmds := rapid.SliceOfN(commandGen(), 1, 10).Draw(rt, "cmds")
		stream, err := Encode(cmds)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}
		cut := rapid.IntRange(0, len(stream)-1).Draw(rt, "cut")
		truncated := stream[:cut]

		dec := NewDecoder(truncated)
		var lastStart int
		for {
			lastStart = dec.Offset()
			_, err := dec.Next()
			if errors.Is(err, io.EOF) {
				// The cut landed exactly on a record boundary.
				if dec.Offset() != cut {
					rt.Fatalf("EOF before end of truncated buffer")
				}
				return
			}
			if err == nil {
				continue
			}
			var malformed MalformedStreamError
			if !errors.As(err, &malformed) {
				rt.Fatalf("unexpected error: %v", err)
			}
			if malformed.Offset != lastStart {
				rt.Fatalf("error offset %d, record started at %d", malformed.Offset, lastStart)
			}
			return
		}
	})
}
