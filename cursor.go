package worldmap

import "encoding/binary"

// cursor is a forward-only read position over an immutable byte buffer.
// Every read either advances pos by exactly the bytes consumed or fails with
// *InsufficientDataError and leaves pos where it was. Nothing ever seeks
// backward.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

// readU32 consumes 4 bytes as a little-endian unsigned integer.
func (c *cursor) readU32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, &InsufficientDataError{Offset: c.pos, Needed: 4, Available: c.remaining()}
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// readBytes consumes the next n bytes verbatim. The returned slice aliases
// the input buffer.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, &InsufficientDataError{Offset: c.pos, Needed: n, Available: c.remaining()}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
