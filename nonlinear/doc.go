// Package nonlinear computes geometric and complexity measures of
// RR-interval dynamics: Poincaré geometry, fractal scaling and entropy.
//
// 🚀 What is nonlinear?
//
//	Time- and frequency-domain statistics treat the tachogram as a bag of
//	numbers; this package looks at its structure:
//	  • Poincaré SD1/SD2 — scatter of consecutive-interval pairs across
//	    and along the identity line (short- vs long-term variability)
//	  • DFA α1/α2 — detrended-fluctuation scaling exponents over short
//	    (4–11) and long (≥ 12) box sizes
//	  • Sample entropy — regularity of m-length patterns at tolerance
//	    r = factor × SDNN
//
// ✨ Key properties:
//   - Partial results: each metric has its own feasibility gate (α2 needs
//     materially more samples than SD1/SD2); an infeasible metric is
//     emitted as Unavailable instead of aborting the analyzer
//   - The analyzer fails only when nothing at all is computable
//
// ⚙️ Usage:
//
//	res, err := nonlinear.Analyze(series, nonlinear.DefaultOptions())
//	if err != nil {
//	  // handle rr.ErrEmptySeries / rr.ErrInsufficientData
//	}
//	if a2, _ := res.Get("DFA α2"); a2.Validity == report.Unavailable {
//	  // series too short for long-range scaling
//	}
//
// Complexity: O(n²) time dominated by sample entropy, O(n) memory.
package nonlinear
