// Package utils contains helper structures and functions shared across the
// library.
package utils

import "encoding/binary"

// Buffer is a simple big-endian byte buffer with typed read and write
// helpers. Writes append to the buffer; reads consume from the front.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a new Buffer over the provided byte slice.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Bytes returns the unread portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// WriteUint8 appends one byte.
func (b *Buffer) WriteUint8(c uint8) {
	b.buf = append(b.buf, c)
}

// WriteUint8Slice appends the given bytes.
func (b *Buffer) WriteUint8Slice(s []uint8) {
	b.buf = append(b.buf, s...)
}

// WriteUint32 appends a big-endian uint32.
func (b *Buffer) WriteUint32(c uint32) {
	b.buf = append(b.buf, byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
}

// WriteUint32Slice appends the given uint32 values in big-endian order.
func (b *Buffer) WriteUint32Slice(s []uint32) {
	for _, c := range s {
		b.WriteUint32(c)
	}
}

// WriteUint64 appends a big-endian uint64.
func (b *Buffer) WriteUint64(c uint64) {
	b.buf = append(b.buf,
		byte(c>>56), byte(c>>48), byte(c>>40), byte(c>>32),
		byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
}

// ReadUint8 consumes and returns one byte.
func (b *Buffer) ReadUint8() uint8 {
	c := b.buf[0]
	b.buf = b.buf[1:]
	return c
}

// ReadUint8Slice consumes len(s) bytes into s.
func (b *Buffer) ReadUint8Slice(s []uint8) {
	copy(s, b.buf[:len(s)])
	b.buf = b.buf[len(s):]
}

// ReadUint32 consumes and returns a big-endian uint32.
func (b *Buffer) ReadUint32() uint32 {
	c := binary.BigEndian.Uint32(b.buf)
	b.buf = b.buf[4:]
	return c
}

// ReadUint32Slice consumes len(s) big-endian uint32 values into s.
func (b *Buffer) ReadUint32Slice(s []uint32) {
	for i := range s {
		s[i] = b.ReadUint32()
	}
}

// ReadUint64 consumes and returns a big-endian uint64.
func (b *Buffer) ReadUint64() uint64 {
	c := binary.BigEndian.Uint64(b.buf)
	b.buf = b.buf[8:]
	return c
}
