package freqdomain

import (
	"fmt"
	"math"
	"sort"

	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
)

// analyzerName identifies this analyzer in Result.Analyzer.
const analyzerName = "freqdomain"

// minValidIntervals is the smallest tachogram the spline/spectral chain
// can work with.
const minValidIntervals = 4

// Analyze — frequency-domain HRV metrics.
//
// Description:
//
//	Estimates the PSD of the valid-interval tachogram and integrates it
//	over the physiological bands.
//
// Procedure:
//  1. Collect valid intervals and their start times (the tachogram).
//  2. Welch: resample onto a uniform grid (natural cubic spline at
//     ResampleRate), then average windowed overlapping detrended
//     periodogram segments. Lomb: evaluate the Lomb-Scargle periodogram
//     directly on the non-uniform tachogram at 1/span resolution.
//  3. Integrate the PSD over VLF, LF and HF by trapezoid; the bands
//     partition [VLF.Low, HF.High], so their sum equals the total
//     integral to floating-point tolerance.
//  4. Derive LF/HF and normalized powers per the Norm option.
//
// Degradation: when the effective analysis window is shorter than one
// full VLF cycle (1/VLF.Low seconds), the VLF metric is flagged Degraded —
// reported, not omitted. LF/HF and normalized powers degrade to
// Unavailable when their denominators vanish.
//
// Errors:
//   - ErrBadOption          — invalid Options values.
//   - rr.ErrEmptySeries     — no valid intervals in the series.
//   - rr.ErrInsufficientData — fewer than 4 valid intervals, or a
//     zero-length time span.
func Analyze(s *rr.IntervalSeries, opts Options) (report.Result, error) {
	// Stage 1: Validate options and input
	if err := opts.validate(); err != nil {
		return report.Result{}, fmt.Errorf("freqdomain.Analyze: %w", err)
	}
	times, durs := s.Valid()
	if len(durs) == 0 {
		return report.Result{}, fmt.Errorf("freqdomain.Analyze: %w", rr.ErrEmptySeries)
	}
	if len(durs) < minValidIntervals {
		return report.Result{}, fmt.Errorf("freqdomain.Analyze: %d valid intervals, need %d: %w",
			len(durs), minValidIntervals, rr.ErrInsufficientData)
	}
	span := times[len(times)-1] - times[0]
	if span <= 0 {
		return report.Result{}, fmt.Errorf("freqdomain.Analyze: zero time span: %w", rr.ErrInsufficientData)
	}

	// Stage 2: Spectral estimate
	var (
		freqs, psd []float64
		winDur     float64 // effective analysis window for the VLF check
	)
	switch opts.Method {
	case Welch:
		x := resampleUniform(times, durs, opts.ResampleRate)
		if len(x) < minValidIntervals {
			return report.Result{}, fmt.Errorf("freqdomain.Analyze: %d resampled points: %w",
				len(x), rr.ErrInsufficientData)
		}
		freqs, psd = welchPSD(x, opts.ResampleRate, opts.SegmentLength,
			opts.OverlapPercent, opts.Window, opts.Detrend)
		segLen := opts.SegmentLength
		if segLen <= 0 || segLen > len(x) {
			segLen = len(x)
		}
		winDur = float64(segLen) / opts.ResampleRate
	case Lomb:
		fRes := 1 / span
		for f := fRes; f <= opts.HF.High+fRes/2; f += fRes {
			freqs = append(freqs, f)
		}
		psd = lombPSD(times, durs, freqs)
		winDur = span
	default:
		return report.Result{}, fmt.Errorf("freqdomain.Analyze: method %d: %w", opts.Method, ErrBadOption)
	}

	// Stage 3: Band powers
	vlf := bandPower(freqs, psd, opts.VLF.Low, opts.VLF.High)
	lf := bandPower(freqs, psd, opts.LF.Low, opts.LF.High)
	hf := bandPower(freqs, psd, opts.HF.Low, opts.HF.High)
	total := bandPower(freqs, psd, opts.VLF.Low, opts.HF.High)

	vlfMetric := report.Metric{Name: "VLF", Value: vlf, Unit: "s²", Validity: report.Valid}
	if winDur < 1/opts.VLF.Low {
		vlfMetric.Validity = report.Degraded
		vlfMetric.Note = fmt.Sprintf("window %.0fs shorter than one VLF cycle (%.0fs)", winDur, 1/opts.VLF.Low)
	}

	// Stage 4: Ratios and normalized powers
	lfhf := report.Metric{Name: "LF/HF", Value: math.NaN(), Unit: "ratio",
		Validity: report.Unavailable, Note: "zero HF power"}
	if hf > 0 {
		lfhf = report.Metric{Name: "LF/HF", Value: lf / hf, Unit: "ratio", Validity: report.Valid}
	}

	var denom float64
	switch opts.Norm {
	case NormLFHF:
		denom = lf + hf
	case NormTotal:
		denom = total
	}
	lfnu := report.Metric{Name: "LFnu", Value: math.NaN(), Unit: "n.u.",
		Validity: report.Unavailable, Note: "zero normalization power"}
	hfnu := report.Metric{Name: "HFnu", Value: math.NaN(), Unit: "n.u.",
		Validity: report.Unavailable, Note: "zero normalization power"}
	if denom > 0 {
		lfnu = report.Metric{Name: "LFnu", Value: 100 * lf / denom, Unit: "n.u.", Validity: report.Valid}
		hfnu = report.Metric{Name: "HFnu", Value: 100 * hf / denom, Unit: "n.u.", Validity: report.Valid}
	}

	first, last := s.At(0), s.At(s.Len()-1)
	return report.Result{
		Analyzer: analyzerName,
		Window:   report.Window{Start: first.Start, End: last.Start + last.Length},
		Excluded: s.Len() - len(durs),
		Metrics: []report.Metric{
			vlfMetric,
			{Name: "LF", Value: lf, Unit: "s²", Validity: report.Valid},
			{Name: "HF", Value: hf, Unit: "s²", Validity: report.Valid},
			{Name: "TotalPower", Value: total, Unit: "s²", Validity: report.Valid},
			lfhf,
			lfnu,
			hfnu,
		},
	}, nil
}

// bandPower integrates the piecewise-linear PSD over [lo, hi] by the
// trapezoid rule, interpolating the PSD at the exact band edges. Adjacent
// bands therefore tile: power(a,b) + power(b,c) == power(a,c) exactly.
func bandPower(freqs, psd []float64, lo, hi float64) float64 {
	n := len(freqs)
	if n < 2 || hi <= freqs[0] || lo >= freqs[n-1] {
		return 0
	}
	if lo < freqs[0] {
		lo = freqs[0]
	}
	if hi > freqs[n-1] {
		hi = freqs[n-1]
	}
	if hi <= lo {
		return 0
	}

	// Piecewise-linear PSD value at frequency f.
	at := func(f float64) float64 {
		i := sort.SearchFloat64s(freqs, f)
		if i < n && freqs[i] == f {
			return psd[i]
		}
		// f lies strictly inside (freqs[i-1], freqs[i]).
		t := (f - freqs[i-1]) / (freqs[i] - freqs[i-1])
		return psd[i-1] + t*(psd[i]-psd[i-1])
	}

	power := 0.0
	prevF, prevP := lo, at(lo)
	for i := sort.SearchFloat64s(freqs, lo); i < n && freqs[i] < hi; i++ {
		if freqs[i] <= prevF {
			continue
		}
		power += (freqs[i] - prevF) * (psd[i] + prevP) / 2
		prevF, prevP = freqs[i], psd[i]
	}
	power += (hi - prevF) * (at(hi) + prevP) / 2
	return power
}
