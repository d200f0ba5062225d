package freqdomain

import "math"

// windowCoeffs returns the taper coefficients for n samples.
func windowCoeffs(fn WindowFunc, n int) []float64 {
	w := make([]float64, n)
	switch fn {
	case Boxcar:
		for i := range w {
			w[i] = 1
		}
	case Hann:
		for i := range w {
			w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
	case Hamming:
		for i := range w {
			w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
	default:
		for i := range w {
			w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
	}
	return w
}

// detrendSegment removes the configured trend from seg in place.
func detrendSegment(seg []float64, mode Detrend) {
	n := float64(len(seg))
	switch mode {
	case DetrendConstant:
		var mean float64
		for _, v := range seg {
			mean += v
		}
		mean /= n
		for i := range seg {
			seg[i] -= mean
		}
	case DetrendLinear:
		// Least-squares line over sample index.
		var sx, sy, sxx, sxy float64
		for i, v := range seg {
			x := float64(i)
			sx += x
			sy += v
			sxx += x * x
			sxy += x * v
		}
		den := n*sxx - sx*sx
		if den == 0 {
			return
		}
		slope := (n*sxy - sx*sy) / den
		icept := (sy - slope*sx) / n
		for i := range seg {
			seg[i] -= icept + slope*float64(i)
		}
	}
}

// welchPSD estimates the one-sided power spectral density of x sampled at
// fs Hz by averaging windowed, overlapping, detrended periodogram segments.
//
// segLen ≤ 0 or segLen > len(x) selects a single whole-signal segment.
// Density scaling: Pxx[k] = |X[k]|² / (fs · Σw²), doubled away from DC and
// Nyquist, so that the integral of Pxx approximates the signal variance.
//
// Returns the frequency axis (Hz) and the averaged PSD (unit²/Hz).
func welchPSD(x []float64, fs float64, segLen int, overlapPct float64, winFn WindowFunc, mode Detrend) (freqs, psd []float64) {
	if segLen <= 0 || segLen > len(x) {
		segLen = len(x)
	}

	step := segLen - int(float64(segLen)*overlapPct/100)
	if step < 1 {
		step = 1
	}

	w := windowCoeffs(winFn, segLen)
	var winPower float64
	for _, c := range w {
		winPower += c * c
	}

	nfft := nextPow2(segLen)
	half := nfft / 2
	acc := make([]float64, half+1)
	buf := make([]complex128, nfft)
	seg := make([]float64, segLen)

	segments := 0
	for start := 0; start+segLen <= len(x); start += step {
		copy(seg, x[start:start+segLen])
		detrendSegment(seg, mode)

		for i := 0; i < nfft; i++ {
			if i < segLen {
				buf[i] = complex(seg[i]*w[i], 0)
			} else {
				buf[i] = 0 // zero-pad up to the radix-2 length
			}
		}
		fft(buf)

		for k := 0; k <= half; k++ {
			re, im := real(buf[k]), imag(buf[k])
			p := (re*re + im*im) / (fs * winPower)
			if k != 0 && k != half {
				p *= 2 // fold the negative frequencies
			}
			acc[k] += p
		}
		segments++
	}

	freqs = make([]float64, half+1)
	psd = make([]float64, half+1)
	for k := 0; k <= half; k++ {
		freqs[k] = fs * float64(k) / float64(nfft)
		psd[k] = acc[k] / float64(segments)
	}
	return freqs, psd
}
