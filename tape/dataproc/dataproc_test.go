package dataproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ti99tape/tape"
)

type recordingSink struct {
	programs []tape.Program
}

func (s *recordingSink) EmitProgram(index int, program tape.Program) {
	s.programs = append(s.programs, program)
}

func makeRecord(payload []byte) []byte {
	var sum byte
	for _, b := range payload {
		sum += b
	}
	return append(append([]byte(nil), payload...), sum)
}

func feedBytes(p *Processor, data []byte) tape.ByteResult {
	var result tape.ByteResult
	for _, b := range data {
		result = p.ProcessByte(b, 0)
	}
	return result
}

func samplePayload(fill byte) []byte {
	payload := make([]byte, tape.RecordLen)
	for i := range payload {
		payload[i] = fill
	}
	return payload
}

func TestSingleRecordProgramRoundTrips(t *testing.T) {
	sink := &recordingSink{}
	diag := &tape.DiagnosticLog{}
	p := New(sink, diag)

	payload := samplePayload(0x42)
	record := makeRecord(payload)

	feedBytes(p, []byte{1, 1}) // header: 1 record
	feedBytes(p, record)       // copy a
	result := feedBytes(p, record) // copy b, completes the program

	assert.Equal(t, tape.ByteDone, result)
	require.Len(t, sink.programs, 1)
	assert.Equal(t, payload, sink.programs[0].Data)
	assert.Empty(t, diag.Entries)
}

func TestHeaderMismatchAbandons(t *testing.T) {
	sink := &recordingSink{}
	diag := &tape.DiagnosticLog{}
	p := New(sink, diag)

	result := feedBytes(p, []byte{1, 2})
	assert.Equal(t, tape.ByteDone, result)
	assert.Empty(t, sink.programs)
	require.NotEmpty(t, diag.Entries)
	assert.Equal(t, tape.KindHeaderMismatch, diag.Entries[0].Kind)
}

func TestSecondaryReconstructsFromDisjointErrors(t *testing.T) {
	sink := &recordingSink{}
	diag := &tape.DiagnosticLog{}
	p := New(sink, diag)

	payload := samplePayload(0x55)
	goodRecord := makeRecord(payload)

	// Zero the primary copy's first byte, masked as errored there (missed
	// bits are always recovered as 0).
	primary := append([]byte(nil), goodRecord...)
	primary[0] = 0

	// Zero the secondary copy's second byte instead, disjoint from the
	// primary's error.
	secondary := append([]byte(nil), goodRecord...)
	secondary[1] = 0

	feedBytes(p, []byte{1, 1})

	primaryMask := make([]byte, len(primary))
	primaryMask[0] = 0xff
	for i, b := range primary {
		p.ProcessByte(b, primaryMask[i])
	}

	secondaryMask := make([]byte, len(secondary))
	secondaryMask[1] = 0xff
	var result tape.ByteResult
	for i, b := range secondary {
		result = p.ProcessByte(b, secondaryMask[i])
	}

	assert.Equal(t, tape.ByteDone, result)
	require.Len(t, sink.programs, 1)
	assert.Equal(t, payload, sink.programs[0].Data)
}

func TestBothCopiesCorruptedIsUnrecoverable(t *testing.T) {
	sink := &recordingSink{}
	diag := &tape.DiagnosticLog{}
	p := New(sink, diag)

	payload := samplePayload(0x11)
	good := makeRecord(payload)

	bad1 := append([]byte(nil), good...)
	bad1[0] ^= 0x01
	bad2 := append([]byte(nil), good...)
	bad2[0] ^= 0x02

	feedBytes(p, []byte{1, 1})
	feedBytes(p, bad1)
	feedBytes(p, bad2)

	assert.Empty(t, sink.programs)
	found := false
	for _, d := range diag.Entries {
		if d.Kind == tape.KindRecordUnrecoverable {
			found = true
		}
	}
	assert.True(t, found)
}

// Property: for any single-record payload, a clean pair of identical copies
// always round-trips exactly, regardless of the payload's content.
func TestCleanRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), tape.RecordLen, tape.RecordLen).Draw(t, "payload")

		sink := &recordingSink{}
		p := New(sink, &tape.DiagnosticLog{})

		record := makeRecord(payload)
		feedBytes(p, []byte{1, 1})
		feedBytes(p, record)
		feedBytes(p, record)

		if len(sink.programs) != 1 {
			t.Fatalf("expected 1 program, got %d", len(sink.programs))
		}
		if string(sink.programs[0].Data) != string(payload) {
			t.Fatalf("payload mismatch")
		}
	})
}
