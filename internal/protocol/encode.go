package protocol

// AppendRecord appends one framed record to dst.
func AppendRecord(dst []byte, tag Tag, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	dst = append(dst, byte(tag), byte(len(payload)))
	dst = append(dst, payload...)
	return dst, nil
}

// Encode serializes cmds into one contiguous wire stream.
func Encode(cmds []Command) ([]byte, error) {
	out := make([]byte, 0, len(cmds)*recordHeaderSize)
	for _, cmd := range cmds {
		var err error
		out, err = AppendRecord(out, cmd.Tag(), payloadOf(cmd))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func payloadOf(cmd Command) []byte {
	switch c := cmd.(type) {
	case Setup:
		return []byte{c.Width, c.Height, c.ColorMode}
	case DrawChar:
		return []byte{c.X, c.Y, c.Color, c.Char}
	case DrawLine:
		return []byte{c.X1, c.Y1, c.X2, c.Y2, c.Color, c.Char}
	case RenderText:
		p := make([]byte, 0, renderTextMinLen+len(c.Text))
		p = append(p, c.X, c.Y, c.Color)
		return append(p, c.Text...)
	case MoveCursor:
		return []byte{c.X, c.Y}
	case DrawAtCursor:
		return []byte{c.Char, c.Color}
	case Unknown:
		return c.Payload
	default:
		// ClearScreen and End carry no payload.
		return nil
	}
}
