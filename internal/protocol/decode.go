package protocol

import "io"

// Decoder is a single-pass cursor over one raw stream buffer. The offset
// advances monotonically; a fresh Decoder is required to re-scan.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder wraps buf for decoding. The buffer is not copied and must not
// be mutated while the Decoder is in use.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Next decodes the record at the current offset and advances past it.
// It returns io.EOF exactly when the buffer is exhausted on a record
// boundary; a partial record yields MalformedStreamError instead.
func (d *Decoder) Next() (Record, error) {
	if d.off == len(d.buf) {
		return Record{}, io.EOF
	}
	if len(d.buf)-d.off < recordHeaderSize {
		return Record{}, MalformedStreamError{Offset: d.off}
	}

	tag := Tag(d.buf[d.off])
	length := int(d.buf[d.off+1])
	if len(d.buf)-d.off-recordHeaderSize < length {
		return Record{}, MalformedStreamError{Offset: d.off, Tag: tag, HasTag: true}
	}

	payload := make([]byte, length)
	copy(payload, d.buf[d.off+recordHeaderSize:])
	d.off += recordHeaderSize + length

	return Record{Tag: tag, Payload: payload}, nil
}

// Offset reports the byte offset of the next undecoded record.
func (d *Decoder) Offset() int {
	return d.off
}
