package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadByte(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	assert.Equal(t, byte(0x01), r.ReadByte())
	assert.Equal(t, byte(0x02), r.ReadByte())
}

func TestReaderReadBytePanicsOnEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	assert.Panics(t, func() { r.ReadByte() })
}

func TestReaderPeekShort(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x12, 0x34, 0x56}))
	v, err := r.PeekShort()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)

	// Peek must not consume.
	assert.Equal(t, byte(0x12), r.ReadByte())
}

func TestReaderReadAll(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3, 4}))
	data, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}
