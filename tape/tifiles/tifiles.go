// Package tifiles builds the 128-byte TIFILES container header used to
// wrap a raw recovered program for transfer to TI-99/4A emulators and disk
// tools. It is a thin shim the decoder core exposes but never depends on.
package tifiles

import "encoding/binary"

// SectorLen is the TI disk sector size the container is padded to.
const SectorLen = 256

// HeaderLen is the size of the fixed TIFILES header.
const HeaderLen = 128

const (
	flagProgram = 0x01
)

// Header mirrors the fixed-layout TIFILES preamble.
type Header struct {
	SectorCount uint16
	Flags       byte
	RecsPerSec  byte
	EOFOffset   byte
	Filename    string
}

// HeaderFromName builds the Header fields for a raw program of length n
// bytes saved under name.
func HeaderFromName(n int, name string) Header {
	return Header{
		SectorCount: uint16((n + SectorLen - 1) / SectorLen),
		Flags:       flagProgram,
		RecsPerSec:  0,
		EOFOffset:   byte(n % SectorLen),
		Filename:    name,
	}
}

// Wrap returns data prefixed with a TIFILES header and padded to a whole
// number of sectors, as produced by the original format's raw-to-TIFILES
// conversion tool.
func Wrap(data []byte, name string) []byte {
	h := HeaderFromName(len(data), name)

	header := make([]byte, HeaderLen)
	header[0] = 0x07
	copy(header[1:8], "TIFILES")
	binary.BigEndian.PutUint16(header[8:10], h.SectorCount)
	header[10] = h.Flags
	header[11] = h.RecsPerSec
	header[12] = h.EOFOffset
	// header[13] logical record length, header[14:16] level-3 record
	// count: both zero for a plain program file.

	nameField := []byte(h.Filename)
	if len(nameField) > 10 {
		nameField = nameField[:10]
	}
	copy(header[0x10:0x1a], nameField)
	for i := len(nameField); i < 10; i++ {
		header[0x10+i] = ' '
	}
	// Remaining MXT/reserved/extended-header/timestamp fields are left
	// zero; emulators tolerate a zeroed timestamp.

	out := make([]byte, 0, HeaderLen+int(h.SectorCount)*SectorLen)
	out = append(out, header...)
	out = append(out, data...)

	if h.EOFOffset != 0 {
		out = append(out, make([]byte, SectorLen-int(h.EOFOffset))...)
	}
	return out
}
