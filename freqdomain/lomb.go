package freqdomain

import "math"

// lombPSD evaluates the Lomb-Scargle periodogram of the non-uniform samples
// (times, values) at the given frequencies (Hz), with mean pre-centering
// and the classic phase-offset τ that makes the estimate invariant to time
// shifts.
//
// The raw periodogram is converted to a one-sided density by scaling with
// 2·T/n (T the observation span), so that its band integrals are
// comparable with welchPSD output.
//
// Complexity: O(n·f) time for n samples and f frequencies.
func lombPSD(times, values, freqs []float64) []float64 {
	n := len(values)

	// Pre-center.
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)
	y := make([]float64, n)
	for i, v := range values {
		y[i] = v - mean
	}

	span := times[n-1] - times[0]
	scale := 2 * span / float64(n)

	psd := make([]float64, len(freqs))
	for fi, f := range freqs {
		if f <= 0 {
			continue
		}
		omega := 2 * math.Pi * f

		// Phase offset: tan(2ωτ) = Σ sin(2ωt) / Σ cos(2ωt).
		var s2, c2 float64
		for _, t := range times {
			s2 += math.Sin(2 * omega * t)
			c2 += math.Cos(2 * omega * t)
		}
		tau := math.Atan2(s2, c2) / (2 * omega)

		var yc, ys, cc, ss float64
		for i, t := range times {
			c := math.Cos(omega * (t - tau))
			s := math.Sin(omega * (t - tau))
			yc += y[i] * c
			ys += y[i] * s
			cc += c * c
			ss += s * s
		}

		var p float64
		if cc > 0 {
			p += yc * yc / cc
		}
		if ss > 0 {
			p += ys * ys / ss
		}
		psd[fi] = 0.5 * p * scale
	}
	return psd
}
