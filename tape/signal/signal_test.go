package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"ti99tape/tape"
	"ti99tape/tape/profile"
)

type recordingSink struct {
	edges []tape.Edge
	eof   bool
}

func (s *recordingSink) ProcessEdge(edge tape.Edge) { s.edges = append(s.edges, edge) }
func (s *recordingSink) ProcessEOF()                { s.eof = true }

func squareWave(periods int, halfPeriod int) []int16 {
	samples := make([]int16, 0, periods*halfPeriod*2)
	high := true
	for i := 0; i < periods*2; i++ {
		lvl := int16(-16000)
		if high {
			lvl = 16000
		}
		for j := 0; j < halfPeriod; j++ {
			samples = append(samples, lvl)
		}
		high = !high
	}
	return samples
}

func TestProcessorDetectsEdgesOnSquareWave(t *testing.T) {
	cfg, ok := profile.Get(profile.Default)
	assert.True(t, ok)

	sink := &recordingSink{}
	p := New(cfg.Config, sink)

	for _, s := range squareWave(40, 32) {
		p.ProcessSample(s)
	}
	p.ProcessEOF()

	assert.True(t, sink.eof)
	// After the envelope settles, edges should appear regularly; we don't
	// assert an exact count (warm-up transients vary) but there must be
	// several.
	assert.Greater(t, len(sink.edges), 10)
}

func TestProcessorEdgeFramesAreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		periods := rapid.IntRange(5, 60).Draw(t, "periods")
		halfPeriod := rapid.IntRange(4, 64).Draw(t, "halfPeriod")

		cfg, _ := profile.Get(profile.Default)
		sink := &recordingSink{}
		p := New(cfg.Config, sink)
		for _, s := range squareWave(periods, halfPeriod) {
			p.ProcessSample(s)
		}

		var last uint64
		for _, e := range sink.edges {
			if e.EdgeFrame < last {
				t.Fatalf("edge frames not monotonic: %d before %d", e.EdgeFrame, last)
			}
			last = e.EdgeFrame
		}
	})
}
