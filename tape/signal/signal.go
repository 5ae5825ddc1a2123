// Package signal implements the envelope-tracking edge detector: the first
// stage of the decode pipeline, turning a raw sample stream into edge
// events.
package signal

import "ti99tape/tape"

// EdgeSink receives edge events and the end-of-stream notification. It is
// implemented by the bit-recovery stage.
type EdgeSink interface {
	ProcessEdge(edge tape.Edge)
	ProcessEOF()
}

// DebugFrame is one frame of the optional internal-state dump, useful for
// visually inspecting the envelope tracker against the raw capture.
type DebugFrame struct {
	Sample, Level, RangeMax, RangeMin, Threshold, Peak int16
}

// Processor is the dynamic-threshold edge detector. Construct one per
// capture; it is not safe for concurrent use by design (the whole pipeline
// is a single-threaded push chain).
type Processor struct {
	cfg  tape.Config
	sink EdgeSink

	frameIdx  uint64
	rangeMax  float64
	rangeMin  float64
	level     tape.Level
	peak      float64
	peakFrame uint64

	onDebugFrame func(DebugFrame)
}

// New returns a Processor configured by cfg, pushing edges to sink.
func New(cfg tape.Config, sink EdgeSink) *Processor {
	return &Processor{
		cfg:      cfg,
		sink:     sink,
		rangeMax: -0x10000,
		rangeMin: 0x10000,
		level:    tape.LevelLow,
	}
}

// SetDebugSink installs a callback invoked with every sample's internal
// tracker state, for the decoder's optional debug-wave dump.
func (p *Processor) SetDebugSink(fn func(DebugFrame)) {
	p.onDebugFrame = fn
}

// ProcessSample feeds one signed 16-bit sample through the envelope
// tracker, emitting an edge event to the sink whenever the threshold is
// crossed with hysteresis.
func (p *Processor) ProcessSample(sample int16) {
	s := float64(sample)

	p.rangeMax *= p.cfg.RangeDecay
	p.rangeMin *= p.cfg.RangeDecay
	if s > p.rangeMax {
		p.rangeMax = s
	}
	if s < p.rangeMin {
		p.rangeMin = s
	}

	dynRange := p.rangeMax - p.rangeMin
	threshold := p.rangeMin + dynRange/2

	if (p.level == tape.LevelHigh && s > p.peak) || (p.level == tape.LevelLow && s < p.peak) {
		p.peak = s
		p.peakFrame = p.frameIdx
	}

	edge := false
	switch {
	case p.level == tape.LevelLow && s > threshold+(dynRange/2)*p.cfg.Hysteresis:
		p.level = tape.LevelHigh
		edge = true
	case p.level == tape.LevelHigh && s < threshold-(dynRange/2)*p.cfg.Hysteresis:
		p.level = tape.LevelLow
		edge = true
	}

	if edge {
		p.sink.ProcessEdge(tape.Edge{EdgeFrame: p.frameIdx, PeakFrame: p.peakFrame, NewLevel: p.level})
		p.peak = s
		p.peakFrame = p.frameIdx
	}

	if p.onDebugFrame != nil {
		p.onDebugFrame(DebugFrame{
			Sample:    sample,
			Level:     int16(int(p.level) * 0x7000),
			RangeMax:  clampInt16(p.rangeMax),
			RangeMin:  clampInt16(p.rangeMin),
			Threshold: clampInt16(threshold),
			Peak:      clampInt16(p.peak),
		})
	}

	p.frameIdx++
}

// ProcessEOF signals the end of the capture to the sink.
func (p *Processor) ProcessEOF() {
	p.sink.ProcessEOF()
}

func clampInt16(v float64) int16 {
	if v > 0x7fff {
		return 0x7fff
	}
	if v < -0x8000 {
		return -0x8000
	}
	return int16(v)
}
