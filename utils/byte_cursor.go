// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// ByteCursor is a sequential reader over an immutable byte slice.
//
// Reads never copy and never fail: a read that runs past the end returns a
// short view (or zero for the missing bytes of an integer) and still advances
// the position, so callers check EOF between structural reads.
type ByteCursor struct {
	buf []byte
	pos int
}

func NewByteCursor(b []byte) *ByteCursor {
	return &ByteCursor{buf: b}
}

// Pos returns the current read position.
func (c *ByteCursor) Pos() int { return c.pos }

// Len returns the total length of the underlying buffer.
func (c *ByteCursor) Len() int { return len(c.buf) }

// EOF reports whether the position reached or passed the end of the buffer.
func (c *ByteCursor) EOF() bool { return c.pos >= len(c.buf) }

// Skip moves the position by n bytes. n may be negative; the position never
// goes below zero.
func (c *ByteCursor) Skip(n int) {
	c.pos += n
	if c.pos < 0 {
		c.pos = 0
	}
}

// View returns up to n bytes starting at the current position without
// advancing.
func (c *ByteCursor) View(n int) []byte {
	start := min(c.pos, len(c.buf))
	end := start
	if n > 0 {
		end = min(start+n, len(c.buf))
	}

	return c.buf[start:end:end]
}

// Read returns the next n bytes as a view into the buffer and advances by n.
func (c *ByteCursor) Read(n int) []byte {
	p := c.View(n)
	c.Skip(n)

	return p
}

// ReadASCII reads n bytes as an 8-bit-per-character string.
func (c *ByteCursor) ReadASCII(n int) string {
	p := c.Read(n)

	r := make([]rune, len(p))
	for i, b := range p {
		r[i] = rune(b)
	}

	return string(r)
}

// ReadLE16 reads a little-endian uint16.
func (c *ByteCursor) ReadLE16() uint16 {
	var tmp [2]byte
	copy(tmp[:], c.Read(2))

	return binary.LittleEndian.Uint16(tmp[:])
}

// ReadLE32 reads a little-endian uint32.
func (c *ByteCursor) ReadLE32() uint32 {
	var tmp [4]byte
	copy(tmp[:], c.Read(4))

	return binary.LittleEndian.Uint32(tmp[:])
}
