package main

import "github.com/danmuck/screenctl/internal/protocol"

// demoStream is the fixed showcase played when no stream is configured:
// a 30x20 surface with one character, a horizontal line, a greeting, and a
// marker drawn at the cursor.
func demoStream() ([]byte, error) {
	return protocol.Encode([]protocol.Command{
		protocol.Setup{Width: 30, Height: 20, ColorMode: 1},
		protocol.DrawChar{X: 5, Y: 5, Color: 2, Char: 'A'},
		protocol.DrawLine{X1: 10, Y1: 10, X2: 20, Y2: 10, Color: 2, Char: '-'},
		protocol.RenderText{X: 3, Y: 3, Color: 2, Text: []byte("Hi!")},
		protocol.MoveCursor{X: 15, Y: 5},
		protocol.DrawAtCursor{Char: '*', Color: 2},
		protocol.End{},
	})
}
