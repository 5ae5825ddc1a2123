package tape

// Config holds the tuning knobs for the signal and bit recovery stages.
// It is threaded into each stage's constructor rather than held as package
// globals, so a single process can run several decoders concurrently with
// different profiles.
type Config struct {
	// UsePeak selects peak-tracking frame alignment over raw edge-frame
	// alignment when locating a symbol boundary.
	UsePeak bool
	// TrainingThreshold is the number of consecutive matching intervals
	// required to finish clock training.
	TrainingThreshold int
	// MinBitLen is the minimum acceptable symbol length, in samples, for
	// training to complete.
	MinBitLen float64
	// Hysteresis is the fraction of the half dynamic-range band an edge
	// must cross before being recognized, suppressing jitter near the
	// threshold.
	Hysteresis float64
	// MaxBitDiff is the fractional tolerance, relative to the current
	// symbol length, used both during training (interval matching) and
	// during resync/active decode (boundary alignment).
	MaxBitDiff float64
	// RangeDecay is the per-sample decay factor applied to the envelope's
	// running max/min.
	RangeDecay float64
	// ContinuousResync re-anchors the symbol clock to every detected
	// symbol boundary instead of only at acquisition, tolerating tape
	// speed drift across a long capture.
	ContinuousResync bool
}
