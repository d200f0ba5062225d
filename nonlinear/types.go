// Package nonlinear defines options for the nonlinear HRV analyzer.
package nonlinear

import "errors"

// Default option values.
const (
	// DefaultEmbeddingDim is the sample-entropy pattern length m.
	DefaultEmbeddingDim = 2

	// DefaultToleranceFactor scales SDNN to the sample-entropy tolerance r.
	DefaultToleranceFactor = 0.2

	// DefaultShortBoxMin/Max bound the DFA α1 box sizes.
	DefaultShortBoxMin = 4
	DefaultShortBoxMax = 11

	// DefaultLongBoxMin/Max bound the DFA α2 box sizes.
	DefaultLongBoxMin = 12
	DefaultLongBoxMax = 64
)

// ErrBadOption indicates an out-of-range option value.
var ErrBadOption = errors.New("nonlinear: invalid option value")

// Options configures Analyze.
//
// Fields:
//   - EmbeddingDim    — sample-entropy pattern length m. Must be ≥ 1.
//   - ToleranceFactor — sample-entropy tolerance as a fraction of SDNN.
//     Must be > 0.
//   - ShortBoxMin/Max — DFA α1 box-size range.
//   - LongBoxMin/Max  — DFA α2 box-size range; the effective upper bound
//     is additionally capped at n/4 so every box size keeps at least four
//     boxes.
type Options struct {
	EmbeddingDim    int
	ToleranceFactor float64
	ShortBoxMin     int
	ShortBoxMax     int
	LongBoxMin      int
	LongBoxMax      int
}

// DefaultOptions returns the documented defaults: m=2, r=0.2×SDNN,
// α1 boxes 4–11, α2 boxes 12–64.
func DefaultOptions() Options {
	return Options{
		EmbeddingDim:    DefaultEmbeddingDim,
		ToleranceFactor: DefaultToleranceFactor,
		ShortBoxMin:     DefaultShortBoxMin,
		ShortBoxMax:     DefaultShortBoxMax,
		LongBoxMin:      DefaultLongBoxMin,
		LongBoxMax:      DefaultLongBoxMax,
	}
}

// validate reports ErrBadOption for out-of-range option values.
func (o Options) validate() error {
	switch {
	case o.EmbeddingDim < 1:
		return ErrBadOption
	case o.ToleranceFactor <= 0:
		return ErrBadOption
	case o.ShortBoxMin < 2 || o.ShortBoxMax < o.ShortBoxMin:
		return ErrBadOption
	case o.LongBoxMin <= o.ShortBoxMax || o.LongBoxMax < o.LongBoxMin:
		return ErrBadOption
	default:
		return nil
	}
}
