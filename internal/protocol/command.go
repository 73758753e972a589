package protocol

// Command is the decoded form of one record. The set of implementations is
// closed: one variant per known tag plus Unknown for recognized-unknown tags.
type Command interface {
	Tag() Tag
}

// Setup establishes the drawable extent. Re-Setup mid-stream is legal and
// re-initializes the surface.
type Setup struct {
	Width     byte
	Height    byte
	ColorMode byte
}

// DrawChar places one character at an absolute cell.
type DrawChar struct {
	X     byte
	Y     byte
	Color byte
	Char  byte
}

// DrawLine rasterizes a character line between two cells.
type DrawLine struct {
	X1    byte
	Y1    byte
	X2    byte
	Y2    byte
	Color byte
	Char  byte
}

// RenderText writes a run of characters left to right.
type RenderText struct {
	X     byte
	Y     byte
	Color byte
	Text  []byte
}

// MoveCursor repositions the surface cursor.
type MoveCursor struct {
	X byte
	Y byte
}

// DrawAtCursor writes one character at the current cursor cell.
type DrawAtCursor struct {
	Char  byte
	Color byte
}

// ClearScreen erases all surface content.
type ClearScreen struct{}

// End terminates the stream; anything after it is never decoded.
type End struct{}

// Unknown is a correctly framed record whose tag is outside the command set.
type Unknown struct {
	Raw     Tag
	Payload []byte
}

func (Setup) Tag() Tag        { return TagSetup }
func (DrawChar) Tag() Tag     { return TagDrawChar }
func (DrawLine) Tag() Tag     { return TagDrawLine }
func (RenderText) Tag() Tag   { return TagRenderText }
func (MoveCursor) Tag() Tag   { return TagMoveCursor }
func (DrawAtCursor) Tag() Tag { return TagDrawAtCursor }
func (ClearScreen) Tag() Tag  { return TagClearScreen }
func (End) Tag() Tag          { return TagEnd }
func (u Unknown) Tag() Tag    { return u.Raw }

// renderTextMinLen covers the x, y and color bytes ahead of the text run.
const renderTextMinLen = 3

// fixedArity maps fixed-arity tags to their required payload length.
// RenderText (variable tail) and End (payload never destructured) are
// validated separately in Parse.
var fixedArity = map[Tag]int{
	TagSetup:        3,
	TagDrawChar:     4,
	TagDrawLine:     6,
	TagMoveCursor:   2,
	TagDrawAtCursor: 2,
	TagClearScreen:  0,
}

// Parse validates rec's payload against its tag arity and returns the typed
// command. Unknown tags parse successfully into Unknown.
func Parse(rec Record) (Command, error) {
	if want, ok := fixedArity[rec.Tag]; ok && len(rec.Payload) != want {
		return nil, PayloadArityError{Tag: rec.Tag, Expected: want, Actual: len(rec.Payload)}
	}

	p := rec.Payload
	switch rec.Tag {
	case TagSetup:
		return Setup{Width: p[0], Height: p[1], ColorMode: p[2]}, nil
	case TagDrawChar:
		return DrawChar{X: p[0], Y: p[1], Color: p[2], Char: p[3]}, nil
	case TagDrawLine:
		return DrawLine{X1: p[0], Y1: p[1], X2: p[2], Y2: p[3], Color: p[4], Char: p[5]}, nil
	case TagRenderText:
		if len(p) < renderTextMinLen {
			return nil, PayloadArityError{Tag: rec.Tag, Expected: renderTextMinLen, Actual: len(p)}
		}
		return RenderText{X: p[0], Y: p[1], Color: p[2], Text: p[renderTextMinLen:]}, nil
	case TagMoveCursor:
		return MoveCursor{X: p[0], Y: p[1]}, nil
	case TagDrawAtCursor:
		return DrawAtCursor{Char: p[0], Color: p[1]}, nil
	case TagClearScreen:
		return ClearScreen{}, nil
	case TagEnd:
		return End{}, nil
	default:
		return Unknown{Raw: rec.Tag, Payload: p}, nil
	}
}
