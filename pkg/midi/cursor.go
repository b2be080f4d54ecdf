package midi

import "encoding/binary"

// Cursor is a bounds-checked sequential reader over a borrowed byte slice.
// The position only moves forward and never past the end of the slice.
type Cursor struct {
	data []byte
	pos  int
	base int // absolute offset of data[0] in the file
}

func newCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the absolute offset of the next unread byte.
func (c *Cursor) Offset() int {
	return c.base + c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.data)
}

// Next returns the next n bytes and advances past them.
// The returned slice aliases the underlying data.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, newError(ErrPrematureEndOfData, c.Offset(), int64(n))
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) Peek() (byte, error) {
	if c.AtEnd() {
		return 0, newError(ErrPrematureEndOfData, c.Offset(), 1)
	}
	return c.data[c.pos], nil
}

func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.pos++
	return b, nil
}

func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.Next(n)
	return err
}

// Sub splits the next n bytes off into their own cursor and advances past them.
// Offsets reported by the returned cursor stay absolute.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	start, off := c.pos, c.Offset()
	if _, err := c.Next(n); err != nil {
		return nil, err
	}
	return &Cursor{data: c.data[start : start+n : start+n], base: off}, nil
}
