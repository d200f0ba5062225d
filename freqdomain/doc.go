// Package freqdomain estimates the spectral power distribution of
// RR-interval fluctuations across the physiological frequency bands.
//
// 🚀 What is freqdomain?
//
//	Beat occurrences are inherently non-uniform in time, while spectral
//	estimation assumes uniform sampling. This package bridges the gap:
//	  1. resample the tachogram onto a uniform grid (natural cubic
//	     spline, default 4 Hz) — or skip resampling entirely with the
//	     Lomb-Scargle method, which handles non-uniform samples directly
//	  2. remove the mean or a linear trend
//	  3. estimate the PSD with a windowed, overlapping-segment
//	     periodogram (Welch) to trade resolution against variance
//	  4. integrate power in the VLF (0.003–0.04 Hz), LF (0.04–0.15 Hz)
//	     and HF (0.15–0.4 Hz) bands
//	  5. report absolute, normalized and ratio metrics
//
// ✨ Key properties:
//   - VLF + LF + HF equals the total PSD integral over the analysis span
//     to floating-point tolerance (bands partition the span)
//   - A recording too short to resolve the VLF band degrades the VLF
//     metric (flagged, not omitted) instead of failing the analysis
//   - Pure Go: iterative radix-2 FFT, no external DSP dependency
//
// ⚙️ Usage:
//
//	opts := freqdomain.DefaultOptions()
//	opts.Method = freqdomain.Lomb    // optional: direct non-uniform PSD
//	res, err := freqdomain.Analyze(series, opts)
//	if err != nil {
//	  // handle rr.ErrEmptySeries / rr.ErrInsufficientData / ErrBadOption
//	}
//	lfhf, _ := res.Get("LF/HF")
//
// Complexity: O(n log n) per segment for Welch, O(n·f) for Lomb with f
// evaluated frequencies.
package freqdomain
