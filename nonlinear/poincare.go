package nonlinear

import "math"

// poincare computes the Poincaré-plot descriptors of nn.
//
// Consecutive-interval pairs (nn[i], nn[i+1]) form a scatter around the
// identity line. SD1 is the standard deviation of the scatter across that
// line — std(nn[i+1]−nn[i])/√2, short-term variability; SD2 is the
// standard deviation along it — std(nn[i+1]+nn[i])/√2, long-term
// variability.
//
// Requires len(nn) ≥ 2 (at least one pair).
func poincare(nn []float64) (sd1, sd2 float64) {
	pairs := len(nn) - 1

	var sumD, sumS float64
	for i := 0; i < pairs; i++ {
		sumD += nn[i+1] - nn[i]
		sumS += nn[i+1] + nn[i]
	}
	meanD := sumD / float64(pairs)
	meanS := sumS / float64(pairs)

	var ssD, ssS float64
	for i := 0; i < pairs; i++ {
		d := (nn[i+1] - nn[i]) - meanD
		s := (nn[i+1] + nn[i]) - meanS
		ssD += d * d
		ssS += s * s
	}

	sd1 = math.Sqrt(ssD / float64(pairs) / 2)
	sd2 = math.Sqrt(ssS / float64(pairs) / 2)
	return sd1, sd2
}
