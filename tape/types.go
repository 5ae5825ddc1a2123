// Package tape holds the data model shared by the decode and encode
// pipelines: sample-stream primitives, the threaded decoder configuration,
// and the diagnostic reporting sink recoverable decode events are logged to.
package tape

// Level is the demodulated line state: a space (low) or mark (high) on the
// tape's FSK-like phase-encoded carrier.
type Level uint8

const (
	LevelLow Level = iota
	LevelHigh
)

// Edge is an edge event handed from the envelope tracker to the bit
// recovery stage.
type Edge struct {
	// EdgeFrame is the sample index the threshold crossing actually occurred at.
	EdgeFrame uint64
	// PeakFrame is the sample index of the extremum since the previous edge.
	PeakFrame uint64
	NewLevel  Level
}

// RecordLen is the payload size of a tape record in bytes.
const RecordLen = 64

// ChecksumLen is the size, in bytes, of a record's trailing checksum byte.
const ChecksumLen = 1

// ByteResult is returned by a byte sink to tell the bit-recovery stage how
// to proceed after a byte completes.
type ByteResult uint8

const (
	// ByteContinue: keep accumulating bits in the current phase.
	ByteContinue ByteResult = iota
	// ByteRequestResync: the next byte starts a fresh record; re-enter the
	// resync phase to reacquire the bit clock at the record boundary.
	ByteRequestResync
	// ByteDone: the current program is complete (or abandoned); return to
	// the training phase.
	ByteDone
)

// Program is one completed, or discarded, recovered tape program.
type Program struct {
	RecordCount uint8
	Data        []byte
}
