// Package freqdomain defines options and modes for spectral HRV analysis.
package freqdomain

import "errors"

// Method selects the spectral estimator.
//
//   - Welch — resample to a uniform grid, then average windowed,
//     overlapping periodogram segments. The default.
//   - Lomb  — Lomb-Scargle periodogram evaluated directly on the
//     non-uniform tachogram; no resampling, at higher cost per frequency.
type Method int

const (
	// Welch selects the averaged windowed-periodogram estimator.
	Welch Method = iota

	// Lomb selects the Lomb-Scargle estimator for non-uniform samples.
	Lomb
)

// WindowFunc selects the taper applied to each segment.
type WindowFunc int

const (
	// Hamming window: 0.54 − 0.46·cos(2πi/(N−1)). The default.
	Hamming WindowFunc = iota

	// Hann window: 0.5·(1 − cos(2πi/(N−1))).
	Hann

	// Boxcar window: rectangular (no taper).
	Boxcar
)

// Detrend selects the per-segment trend removal.
type Detrend int

const (
	// DetrendConstant subtracts the segment mean. The default.
	DetrendConstant Detrend = iota

	// DetrendLinear removes a least-squares line from the segment.
	DetrendLinear
)

// NormMethod selects how normalized band powers are computed.
//
//   - NormLFHF  — LF and HF are each normalized by (LF+HF), i.e. by the
//     total power minus VLF. The standard in most of the literature, and
//     the default.
//   - NormTotal — every band is normalized by the total spectral power.
type NormMethod int

const (
	// NormLFHF normalizes LF and HF by their sum.
	NormLFHF NormMethod = iota

	// NormTotal normalizes each band by the total power.
	NormTotal
)

// Band is a frequency interval in Hz.
type Band struct {
	Low  float64
	High float64
}

// Physiological band defaults (Hz), per the HRV Task Force conventions.
var (
	// DefaultVLF is the very-low-frequency band.
	DefaultVLF = Band{Low: 0.003, High: 0.04}

	// DefaultLF is the low-frequency band.
	DefaultLF = Band{Low: 0.04, High: 0.15}

	// DefaultHF is the high-frequency band.
	DefaultHF = Band{Low: 0.15, High: 0.4}
)

// Default scalar option values.
const (
	// DefaultResampleRate is the uniform resampling rate in Hz; at least
	// twice the top of the HF band to satisfy Nyquist.
	DefaultResampleRate = 4.0

	// DefaultOverlapPercent is the Welch segment overlap.
	DefaultOverlapPercent = 50.0
)

// Sentinel errors for spectral analysis.
var (
	// ErrBadOption indicates an out-of-range or contradictory option value,
	// e.g. a resampling rate below twice the HF band top.
	ErrBadOption = errors.New("freqdomain: invalid option value")
)

// Options configures Analyze.
//
// Fields:
//   - Method         — Welch (default) or Lomb.
//   - ResampleRate   — uniform grid rate in Hz (Welch only). Must be
//     ≥ 2 × HF.High.
//   - SegmentLength  — Welch segment length in samples; 0 means one
//     segment spanning the whole signal.
//   - OverlapPercent — Welch segment overlap in percent, [0, 100).
//   - Window         — segment taper (Hamming default).
//   - Detrend        — per-segment trend removal (constant default).
//   - Norm           — normalized-power convention (NormLFHF default).
//   - VLF/LF/HF      — band bounds in Hz; must be positive, ordered and
//     non-overlapping.
//
// Example:
//
//	opts := freqdomain.DefaultOptions()
//	opts.SegmentLength = 512    // ~128 s segments at 4 Hz
//	opts.Detrend = freqdomain.DetrendLinear
//	res, err := freqdomain.Analyze(series, opts)
type Options struct {
	Method         Method
	ResampleRate   float64
	SegmentLength  int
	OverlapPercent float64
	Window         WindowFunc
	Detrend        Detrend
	Norm           NormMethod
	VLF            Band
	LF             Band
	HF             Band
}

// DefaultOptions returns the documented defaults: Welch at 4 Hz, one
// whole-signal segment, 50 % overlap, Hamming window, constant detrend,
// LF/HF normalization, Task Force bands.
func DefaultOptions() Options {
	return Options{
		Method:         Welch,
		ResampleRate:   DefaultResampleRate,
		SegmentLength:  0,
		OverlapPercent: DefaultOverlapPercent,
		Window:         Hamming,
		Detrend:        DetrendConstant,
		Norm:           NormLFHF,
		VLF:            DefaultVLF,
		LF:             DefaultLF,
		HF:             DefaultHF,
	}
}

// validate reports ErrBadOption for out-of-range option values.
func (o Options) validate() error {
	switch {
	case o.VLF.Low <= 0 || o.VLF.High <= o.VLF.Low:
		return ErrBadOption
	case o.LF.Low < o.VLF.High || o.LF.High <= o.LF.Low:
		return ErrBadOption
	case o.HF.Low < o.LF.High || o.HF.High <= o.HF.Low:
		return ErrBadOption
	case o.Method == Welch && o.ResampleRate < 2*o.HF.High:
		return ErrBadOption
	case o.SegmentLength < 0:
		return ErrBadOption
	case o.OverlapPercent < 0 || o.OverlapPercent >= 100:
		return ErrBadOption
	default:
		return nil
	}
}
