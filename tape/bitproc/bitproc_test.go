package bitproc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ti99tape/tape"
	"ti99tape/tape/profile"
)

type fakeByteSink struct {
	bytes     []byte
	masks     []byte
	resyncOK  bool
	eof       bool
	nextIsEOF bool
}

func (s *fakeByteSink) ProcessByte(value, errorMask byte) tape.ByteResult {
	s.bytes = append(s.bytes, value)
	s.masks = append(s.masks, errorMask)
	if s.nextIsEOF {
		return tape.ByteDone
	}
	return tape.ByteRequestResync
}

func (s *fakeByteSink) ResyncFailed() bool { return s.resyncOK }
func (s *fakeByteSink) ProcessEOF()        { s.eof = true }

// feedSymbols pushes n synthetic edges spaced symLen apart, simulating a
// run of 0-bits (one edge per symbol).
func feedSymbols(p *Processor, start uint64, symLen uint64, n int) uint64 {
	frame := start
	for i := 0; i < n; i++ {
		frame += symLen
		p.ProcessEdge(tape.Edge{EdgeFrame: frame, PeakFrame: frame})
	}
	return frame
}

func TestTrainingConverges(t *testing.T) {
	cfg, _ := profile.Get("edge1")
	cfg.Config.TrainingThreshold = 20

	sink := &fakeByteSink{resyncOK: true}
	p := New(cfg.Config, sink)

	feedSymbols(p, 0, 32, cfg.Config.TrainingThreshold+1)

	assert.Equal(t, phaseResync, p.phase)
	assert.InDelta(t, 32, p.symbolLen, 1)
}

func TestProcessEOFDelegates(t *testing.T) {
	cfg, _ := profile.Get("edge1")
	sink := &fakeByteSink{resyncOK: true}
	p := New(cfg.Config, sink)
	p.ProcessEOF()
	assert.True(t, sink.eof)
}
