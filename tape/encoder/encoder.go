// Package encoder re-synthesizes a tape-compatible waveform from a raw byte
// stream: the inverse of the signal/bitproc/dataproc decode pipeline.
package encoder

import (
	"bytes"

	"github.com/pkg/errors"

	"ti99tape/tape"
)

const (
	// InitialSyncLen is the number of leading zero bytes written before
	// the header, giving the decoder's training phase time to lock onto
	// the symbol clock.
	InitialSyncLen = 768
	// SymbolLen is the number of samples per bit period.
	SymbolLen = 32
	// MaxLevel is the peak amplitude of the generated square wave.
	MaxLevel = 0x7fff
	// PaddingByte fills out the final record when the input isn't a whole
	// number of 64-byte records. The decoder makes no attempt to strip it
	// back out; this is a documented, unresolved ambiguity inherited from
	// the original format.
	PaddingByte = 0x80
)

// Sink receives the generated waveform one sample at a time.
type Sink interface {
	WriteSample(sample int16)
}

// Encoder writes a phase-encoded tape waveform: one edge per bit period for
// a 0, two edges for a 1.
type Encoder struct {
	sink   Sink
	useHPF bool

	level        float64
	lastLevel    float64
	lastFiltered float64
}

// New returns an Encoder writing to sink. If useHPF is set, a one-pole
// high-pass filter is applied to the output, matching real tape deck
// response.
func New(sink Sink, useHPF bool) *Encoder {
	return &Encoder{sink: sink, useHPF: useHPF, level: MaxLevel}
}

func (e *Encoder) writeLevel(level float64) {
	out := level
	if e.useHPF {
		filtered := 0.8 * (e.lastFiltered + level - e.lastLevel)
		e.lastFiltered = filtered
		e.lastLevel = level
		out = filtered / 2
	}
	e.sink.WriteSample(int16(out))
}

// writeByte emits one byte MSB-first, one bit period per bit: the level
// always flips at the start of the period, and flips again partway through
// if the bit is a 1, producing the second edge phase encoding relies on.
func (e *Encoder) writeByte(b byte) {
	for i := 0; i < 8; i++ {
		e.level = -e.level
		for j := 0; j < SymbolLen/2; j++ {
			e.writeLevel(e.level)
		}
		if b&0x80 != 0 {
			e.level = -e.level
		}
		for j := 0; j < SymbolLen/2; j++ {
			e.writeLevel(e.level)
		}
		b <<= 1
	}
}

// Encode writes the complete tape waveform for data: initial sync run,
// header (record count written twice), then every record written as two
// identical copies, each with its own checksum.
func (e *Encoder) Encode(data []byte) error {
	padding := tape.RecordLen - (len(data) % tape.RecordLen)
	if padding != tape.RecordLen {
		data = append(append([]byte(nil), data...), bytes.Repeat([]byte{PaddingByte}, padding)...)
	}

	nrecords := len(data) / tape.RecordLen
	if nrecords == 0 {
		return errors.New("no data to encode")
	}
	if nrecords > 0xff {
		return errors.Errorf("too many records to encode: %d (max 255)", nrecords)
	}

	for i := 0; i < InitialSyncLen; i++ {
		e.writeByte(0x00)
	}

	e.writeByte(0xff)
	e.writeByte(byte(nrecords))
	e.writeByte(byte(nrecords))

	for i := 0; i < nrecords; i++ {
		record := data[i*tape.RecordLen : (i+1)*tape.RecordLen]
		for copyIdx := 0; copyIdx < 2; copyIdx++ {
			for j := 0; j < 8; j++ {
				e.writeByte(0x00)
			}
			e.writeByte(0xff)

			var chksum byte
			for _, b := range record {
				chksum += b
				e.writeByte(b)
			}
			e.writeByte(chksum)
		}
	}

	return nil
}
