// Package bitproc implements the second decode stage: recovering bytes from
// the edge-event stream produced by the signal stage, via phase-encoded
// symbol timing recovery.
package bitproc

import "ti99tape/tape"

// ByteSink receives completed bytes (with a per-bit error mask), is
// consulted when a resync deadline expires, and is notified at end of
// stream. It is implemented by the record/dataproc stage.
type ByteSink interface {
	// ProcessByte delivers one reconstructed byte and its bit error mask
	// (a 1 bit marks a bit recovered from a missed-symbol interval rather
	// than a clean boundary match).
	ProcessByte(value, errorMask byte) tape.ByteResult
	// ResyncFailed is called when the resync deadline expires; it returns
	// true if the current record boundary is known and decode should skip
	// ahead to retry, false to abandon the whole program.
	ResyncFailed() bool
	ProcessEOF()
}

type phase uint8

const (
	phaseTraining phase = iota
	phaseResync
	phaseActive
)

const (
	maxInitialSyncSymbols = 800 * 8
	maxRecordSyncSymbols  = 8 * 8
	endOfSyncSymbols      = 8
)

// Processor is the TRAINING / RESYNC / ACTIVE bit-recovery state machine.
type Processor struct {
	cfg  tape.Config
	sink ByteSink

	phase phase

	lastEdgeFrame uint64

	// Symbol clock. trainingStart/edgeCnt are shared across all three
	// phases: training accumulates matching intervals to estimate
	// symbolLen, then resync/active both use trainingStart+edgeCnt*symbolLen
	// as the running prediction for the next symbol boundary.
	trainingMatches []uint64
	trainingStart   uint64
	symbolLen       float64
	edgeCnt         uint64

	resyncStartFrame uint64
	resyncMaxSymbol  float64

	edgesWithinSymbol uint64

	// byteVal is the shared shift register: it frames the 0xff sync byte
	// during resync and, because an 8-bit left shift masked to 8 bits
	// naturally discards any stale high bits, continues to accumulate the
	// first 8 payload bits once active decode begins without needing to be
	// cleared at the phase transition.
	byteVal      byte
	bitErrorMask byte
	bitCnt       int
}

// New returns a Processor configured by cfg, pushing bytes to sink.
func New(cfg tape.Config, sink ByteSink) *Processor {
	p := &Processor{cfg: cfg, sink: sink}
	p.reset()
	return p
}

func (p *Processor) reset() {
	p.phase = phaseTraining
	p.lastEdgeFrame = 0
	p.trainingMatches = nil
	p.trainingStart = 0
	p.symbolLen = 0
	p.edgeCnt = 0
	p.edgesWithinSymbol = 0
	p.byteVal = 0
	p.bitErrorMask = 0
	p.bitCnt = 0
}

func (p *Processor) startResync(frameIdx uint64, maxSymbols float64) {
	p.phase = phaseResync
	p.resyncStartFrame = frameIdx
	p.resyncMaxSymbol = maxSymbols + endOfSyncSymbols + 8
	p.byteVal = 0
	p.edgesWithinSymbol = 0
}

// ProcessEdge advances the state machine with one edge event.
func (p *Processor) ProcessEdge(edge tape.Edge) {
	var frameIdx uint64
	if p.cfg.UsePeak {
		frameIdx = edge.PeakFrame
		// PEAK_TO_EDGE HACK: when the observed edge trails its peak by
		// more than eight symbol periods, fall back to the raw edge frame — the
		// peak tracker likely locked onto a stale extremum.
		if p.symbolLen > 0 && float64(edge.EdgeFrame) > float64(edge.PeakFrame)+p.symbolLen*8 {
			frameIdx = edge.EdgeFrame
		}
	} else {
		frameIdx = edge.EdgeFrame
	}

	levelLen := float64(frameIdx) - float64(p.lastEdgeFrame)
	p.lastEdgeFrame = frameIdx

	switch p.phase {
	case phaseTraining:
		p.processTraining(frameIdx, levelLen)
	case phaseResync:
		p.processResync(frameIdx, levelLen)
	case phaseActive:
		p.processActive(frameIdx, levelLen)
	}
}

// ProcessEOF notifies the sink of end of stream.
func (p *Processor) ProcessEOF() {
	p.sink.ProcessEOF()
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
