// Package scratch provides a reusable byte buffer for text rebuilt every
// frame, such as window titles and overlay status lines. Reset it once per
// frame and append with the chainable methods; the backing array is kept.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// New returns a buffer with the given initial capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the length without freeing memory.
func (b *Buffer) Reset() *Buffer {
	b.buf = b.buf[:0]
	return b
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// S appends a string.
func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// R appends a rune as UTF-8.
func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F appends v with prec digits after the decimal point; F(3.14159, 2)
// appends "3.14".
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
	return b
}

// Mark returns the current length, for use with From.
func (b *Buffer) Mark() int { return len(b.buf) }

// From copies everything appended since mark into a new string.
func (b *Buffer) From(mark int) string { return string(b.buf[mark:]) }

// String copies the buffer into a new string.
func (b *Buffer) String() string { return string(b.buf) }

// View returns the buffer as a string without copying. The result is only
// valid until the next Reset or append.
func (b *Buffer) View() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}
