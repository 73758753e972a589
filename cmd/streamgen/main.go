package main

import (
	"flag"
	"log"
	"os"

	"github.com/danmuck/screenctl/internal/protocol"
)

// streamgen writes sample display streams for exercising the player.
func main() {
	output := flag.String("output", "box.bin", "output path for the generated stream")
	force := flag.Bool("force", false, "overwrite an existing output file")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*output); err == nil {
			log.Fatalf("refusing to overwrite %s (use -force)", *output)
		}
	}

	stream, err := protocol.Encode(boxScene())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*output, stream, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d bytes to %s", len(stream), *output)
}

// boxScene draws a bordered box with a caption inside it.
func boxScene() []protocol.Command {
	return []protocol.Command{
		protocol.Setup{Width: 40, Height: 12, ColorMode: 1},
		protocol.DrawLine{X1: 2, Y1: 1, X2: 37, Y2: 1, Color: 1, Char: '-'},
		protocol.DrawLine{X1: 2, Y1: 10, X2: 37, Y2: 10, Color: 1, Char: '-'},
		protocol.DrawLine{X1: 2, Y1: 1, X2: 2, Y2: 10, Color: 1, Char: '|'},
		protocol.DrawLine{X1: 37, Y1: 1, X2: 37, Y2: 10, Color: 1, Char: '|'},
		protocol.RenderText{X: 14, Y: 5, Color: 1, Text: []byte("screenctl")},
		protocol.MoveCursor{X: 19, Y: 7},
		protocol.DrawAtCursor{Char: '*', Color: 1},
		protocol.End{},
	}
}
