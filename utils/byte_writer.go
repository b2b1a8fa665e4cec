// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultWriterCapacity is the initial capacity of a ByteWriter and also the
// size of every growth step.
const DefaultWriterCapacity = 50_000_000

// ByteWriter is an append-only byte buffer.
//
// When an append does not fit, the backing array is reallocated to
// size + appended + initial capacity. Growth is therefore linear in steps of
// the initial capacity, which keeps the number of reallocations predictable
// for the default size. Only the written bytes are ever exposed.
type ByteWriter struct {
	buf  []byte
	size int
	step int
}

// NewByteWriter returns a writer with the given initial capacity. A capacity
// <= 0 selects DefaultWriterCapacity.
func NewByteWriter(capacity int) *ByteWriter {
	if capacity <= 0 {
		capacity = DefaultWriterCapacity
	}

	return &ByteWriter{
		buf:  make([]byte, capacity),
		step: capacity,
	}
}

// Len returns the number of bytes written so far.
func (w *ByteWriter) Len() int { return w.size }

// Bytes returns the written bytes. The slice aliases the writer's buffer and
// is only valid until the next write.
func (w *ByteWriter) Bytes() []byte { return w.buf[:w.size:w.size] }

func (w *ByteWriter) grow(n int) {
	if w.size+n <= len(w.buf) {
		return
	}

	next := make([]byte, w.size+n+w.step)
	copy(next, w.buf[:w.size])
	w.buf = next
}

// Append copies p to the end of the buffer.
func (w *ByteWriter) Append(p []byte) {
	w.grow(len(p))
	copy(w.buf[w.size:], p)
	w.size += len(p)
}

// Write implements io.Writer. It never fails.
func (w *ByteWriter) Write(p []byte) (int, error) {
	w.Append(p)
	return len(p), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (w *ByteWriter) WriteByte(c byte) error {
	w.grow(1)
	w.buf[w.size] = c
	w.size++

	return nil
}

func (w *ByteWriter) WriteLE16(v uint16) {
	w.grow(2)
	binary.LittleEndian.PutUint16(w.buf[w.size:], v)
	w.size += 2
}

func (w *ByteWriter) WriteLE32(v uint32) {
	w.grow(4)
	binary.LittleEndian.PutUint32(w.buf[w.size:], v)
	w.size += 4
}

// WriteASCII writes s one byte per character, keeping the low 8 bits of each.
func (w *ByteWriter) WriteASCII(s string) {
	for _, r := range s {
		_ = w.WriteByte(byte(r))
	}
}

// WriteTo implements io.WriterTo, writing only the bytes written so far.
func (w *ByteWriter) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}

	return int64(n), nil
}
