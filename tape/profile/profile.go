// Package profile holds the named decoder tuning profiles used by the CLI
// and tests, in place of runtime auto-detection of capture characteristics.
package profile

import "ti99tape/tape"

// Profile names a Config with a human-readable description.
type Profile struct {
	Name        string
	Description string
	Config      tape.Config
}

// Default is the profile selected when none is given explicitly.
const Default = "peak1"

var registry = []Profile{
	{
		Name:        "peak1",
		Description: "peak-tracking frame alignment, higher jitter tolerance",
		Config: tape.Config{
			UsePeak:           true,
			TrainingThreshold: 400,
			MinBitLen:         10,
			Hysteresis:        0.50,
			MaxBitDiff:        0.24,
			RangeDecay:        0.990,
			ContinuousResync:  true,
		},
	},
	{
		Name:        "edge1",
		Description: "raw edge-frame alignment, lower jitter tolerance",
		Config: tape.Config{
			UsePeak:           false,
			TrainingThreshold: 400,
			MinBitLen:         10,
			Hysteresis:        0.80,
			MaxBitDiff:        0.24,
			RangeDecay:        0.995,
			ContinuousResync:  true,
		},
	},
}

// Get looks up a profile by name.
func Get(name string) (Profile, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the registered profile names, in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

// Describe returns a one-line human-readable description of name, or an
// empty string if name isn't registered.
func Describe(name string) string {
	p, ok := Get(name)
	if !ok {
		return ""
	}
	suffix := ""
	if name == Default {
		suffix = " (default)"
	}
	return p.Name + " - " + p.Description + suffix
}
