package protocol

// Tag identifies which command variant a record encodes.
type Tag byte

// Tag values from the wire contract.
const (
	TagSetup        Tag = 0x01
	TagDrawChar     Tag = 0x02
	TagDrawLine     Tag = 0x03
	TagRenderText   Tag = 0x04
	TagMoveCursor   Tag = 0x05
	TagDrawAtCursor Tag = 0x06
	TagClearScreen  Tag = 0x07
	TagEnd          Tag = 0xFF
)

// recordHeaderSize is the fixed tag+length prefix of every record.
const recordHeaderSize = 2

// MaxPayloadLen is the largest payload one record can carry.
const MaxPayloadLen = 255

// Record is one framed tag/length/payload unit from the stream.
type Record struct {
	Tag     Tag
	Payload []byte
}
