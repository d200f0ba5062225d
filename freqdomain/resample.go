package freqdomain

import "sort"

// cubicSpline fits a natural cubic spline through (xs, ys) and returns an
// evaluator. xs must be strictly increasing with len(xs) ≥ 3. Queries
// outside [xs[0], xs[n-1]] are extrapolated with the boundary polynomial.
//
// The second derivatives are obtained from the natural-boundary
// tridiagonal system via the Thomas algorithm.
//
// Complexity: O(n) fit, O(log n) per evaluation.
func cubicSpline(xs, ys []float64) func(float64) float64 {
	n := len(xs)

	// Interval widths.
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
	}

	// Thomas algorithm for the second derivatives m[1..n-2];
	// natural boundaries fix m[0] = m[n-1] = 0.
	var (
		m     = make([]float64, n)
		cPrim = make([]float64, n)
		dPrim = make([]float64, n)
	)
	for i := 1; i < n-1; i++ {
		diag := 2 * (h[i-1] + h[i])
		rhs := 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
		if i == 1 {
			cPrim[i] = h[i] / diag
			dPrim[i] = rhs / diag
			continue
		}
		den := diag - h[i-1]*cPrim[i-1]
		cPrim[i] = h[i] / den
		dPrim[i] = (rhs - h[i-1]*dPrim[i-1]) / den
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = dPrim[i] - cPrim[i]*m[i+1]
	}

	return func(x float64) float64 {
		// Locate the segment; clamp to boundary polynomials outside.
		i := sort.SearchFloat64s(xs, x) - 1
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}

		t := x - xs[i]
		hi := h[i]
		a := (m[i+1] - m[i]) / (6 * hi)
		b := m[i] / 2
		c := (ys[i+1]-ys[i])/hi - hi*(2*m[i]+m[i+1])/6
		return ys[i] + t*(c+t*(b+t*a))
	}
}

// resampleUniform interpolates the tachogram (times, values) onto a uniform
// grid at rate fs Hz, spanning [times[0], times[len-1]].
// Returns the resampled values; the k-th sample sits at times[0] + k/fs.
func resampleUniform(times, values []float64, fs float64) []float64 {
	spline := cubicSpline(times, values)
	span := times[len(times)-1] - times[0]
	n := int(span*fs) + 1

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = spline(times[0] + float64(k)/fs)
	}
	return out
}
