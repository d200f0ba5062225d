package nonlinear

import "math"

// sampEn computes the sample entropy of nn with pattern length m and
// tolerance r (Chebyshev distance).
//
// SampEn = −ln(A/B), where B counts pairs of m-length templates within r
// of each other and A counts pairs still within r when extended to m+1.
// Self-matches are excluded.
//
// Returns ok=false when the series is too short or when no template pair
// matches (A or B is zero), in which case the entropy is undefined.
//
// Complexity: O(n²·m) time, O(1) extra memory.
func sampEn(nn []float64, m int, r float64) (entropy float64, ok bool) {
	n := len(nn)
	if n <= m+1 || r <= 0 {
		return 0, false
	}

	var a, b int
	// Compare every template pair once (i < j).
	for i := 0; i+m < n; i++ {
		for j := i + 1; j+m < n; j++ {
			// Chebyshev distance over the first m samples.
			within := true
			for k := 0; k < m; k++ {
				if math.Abs(nn[i+k]-nn[j+k]) > r {
					within = false
					break
				}
			}
			if !within {
				continue
			}
			b++
			if math.Abs(nn[i+m]-nn[j+m]) <= r {
				a++
			}
		}
	}
	if a == 0 || b == 0 {
		return 0, false
	}
	return -math.Log(float64(a) / float64(b)), true
}
