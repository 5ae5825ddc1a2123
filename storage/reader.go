// Package storage provides a buffered byte-stream reader, used to read a
// raw recovered program before it is wrapped in a TIFILES container.
package storage

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Reader wraps an io.Reader with the Peek/ReadByte/PeekShort conveniences
// used throughout the container readers.
type Reader struct {
	*bufio.Reader
}

// NewReader returns a Reader buffering r.
func NewReader(r io.Reader) *Reader {
	return &Reader{Reader: bufio.NewReader(r)}
}

// ReadByte reads a single byte, panicking if the underlying reader fails.
func (r *Reader) ReadByte() byte {
	b, err := r.Reader.ReadByte()
	if err != nil {
		panic("storage: read error: " + err.Error())
	}
	return b
}

// PeekShort peeks the next two bytes as a big-endian uint16 without
// consuming them.
func (r *Reader) PeekShort() (uint16, error) {
	b, err := r.Peek(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadAll reads and returns the remainder of the stream.
func (r *Reader) ReadAll() ([]byte, error) {
	return io.ReadAll(r.Reader)
}
