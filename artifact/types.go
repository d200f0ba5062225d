// Package artifact defines options for RR-interval filtering and correction.
package artifact

import "errors"

// Default option values, calibrated against common HRV practice.
const (
	// DefaultThreshold is the relative deviation from the local median above
	// which an interval is treated as anomalous.
	DefaultThreshold = 0.2

	// DefaultMedianWindow is the number of preceding accepted intervals in
	// the running-median window.
	DefaultMedianWindow = 5

	// DefaultMissedFactor is the multiple of the local median at or above
	// which a long interval is treated as containing dropped detections.
	DefaultMissedFactor = 1.8

	// DefaultMinRR and DefaultMaxRR bound the physiologically plausible
	// RR-interval range, in seconds (40–200 bpm).
	DefaultMinRR = 0.3
	DefaultMaxRR = 1.5

	// DefaultMovingAvgWindow is the one-sided neighbor count of the
	// moving-average pre-filter.
	DefaultMovingAvgWindow = 10

	// DefaultMovingAvgThreshold is the relative deviation from the
	// neighborhood mean above which the moving-average filter rejects.
	DefaultMovingAvgThreshold = 0.2
)

// Sentinel errors for option validation.
var (
	// ErrBadOption indicates an out-of-range or contradictory option value.
	ErrBadOption = errors.New("artifact: invalid option value")
)

// Options configures Correct.
//
// Fields:
//   - Threshold    — relative deviation fraction from the local median
//     above which an interval is anomalous. Must be in (0, 1).
//   - MedianWindow — number of preceding accepted intervals forming the
//     local median. Must be ≥ 2.
//   - MissedFactor — an interval ≥ MissedFactor × local median implies
//     dropped detections and is split. Must be > 1.
//   - EnableRange  — apply the physiological range pre-filter.
//   - MinRR/MaxRR  — physiological RR bounds in seconds, used when
//     EnableRange is set.
//   - EnableMovingAvg      — apply the moving-average pre-filter.
//   - MovingAvgWindow      — one-sided neighbor count of that filter.
//   - MovingAvgThreshold   — relative deviation from the neighborhood mean
//     above which that filter rejects.
//
// Example:
//
//	opts := artifact.DefaultOptions()
//	opts.Threshold = 0.25     // tolerate slightly larger deviations
//	opts.EnableMovingAvg = true
//	series, rec, err := artifact.Correct(beats, opts)
type Options struct {
	Threshold    float64
	MedianWindow int
	MissedFactor float64

	EnableRange bool
	MinRR       float64
	MaxRR       float64

	EnableMovingAvg    bool
	MovingAvgWindow    int
	MovingAvgThreshold float64
}

// DefaultOptions returns the documented defaults: 20 % threshold, window
// of 5, missed factor 1.8, range filter on at 0.3–1.5 s, moving-average
// filter off.
func DefaultOptions() Options {
	return Options{
		Threshold:          DefaultThreshold,
		MedianWindow:       DefaultMedianWindow,
		MissedFactor:       DefaultMissedFactor,
		EnableRange:        true,
		MinRR:              DefaultMinRR,
		MaxRR:              DefaultMaxRR,
		EnableMovingAvg:    false,
		MovingAvgWindow:    DefaultMovingAvgWindow,
		MovingAvgThreshold: DefaultMovingAvgThreshold,
	}
}

// validate reports ErrBadOption for out-of-range option values.
func (o Options) validate() error {
	switch {
	case o.Threshold <= 0 || o.Threshold >= 1:
		return ErrBadOption
	case o.MedianWindow < 2:
		return ErrBadOption
	case o.MissedFactor <= 1:
		return ErrBadOption
	case o.EnableRange && (o.MinRR <= 0 || o.MaxRR <= o.MinRR):
		return ErrBadOption
	case o.EnableMovingAvg && (o.MovingAvgWindow < 1 || o.MovingAvgThreshold <= 0):
		return ErrBadOption
	default:
		return nil
	}
}
