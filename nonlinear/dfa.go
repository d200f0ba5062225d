package nonlinear

import "math"

// dfa estimates the detrended-fluctuation scaling exponent of nn over box
// sizes boxMin..boxMax.
//
// Procedure:
//  1. Integrate the mean-centered series: y(k) = Σ_{i≤k} (nn[i] − mean).
//  2. For each box size s, split y into ⌊n/s⌋ non-overlapping boxes,
//     remove a least-squares line from each, and take the RMS residual
//     F(s) over all covered samples.
//  3. The exponent is the slope of log F(s) against log s.
//
// Returns ok=false when fewer than two box sizes keep at least two boxes,
// so no slope can be fit.
func dfa(nn []float64, boxMin, boxMax int) (alpha float64, ok bool) {
	n := len(nn)

	var mean float64
	for _, v := range nn {
		mean += v
	}
	mean /= float64(n)

	y := make([]float64, n)
	acc := 0.0
	for i, v := range nn {
		acc += v - mean
		y[i] = acc
	}

	var logS, logF []float64
	for s := boxMin; s <= boxMax; s++ {
		boxes := n / s
		if boxes < 2 {
			break // larger sizes only get worse
		}

		var ss float64
		for b := 0; b < boxes; b++ {
			seg := y[b*s : (b+1)*s]
			ss += lineResidualSS(seg)
		}
		f := math.Sqrt(ss / float64(boxes*s))
		if f <= 0 {
			continue // a perfectly linear box contributes no fluctuation
		}
		logS = append(logS, math.Log(float64(s)))
		logF = append(logF, math.Log(f))
	}
	if len(logS) < 2 {
		return 0, false
	}

	// Least-squares slope of log F over log s.
	m := float64(len(logS))
	var sx, sy, sxx, sxy float64
	for i := range logS {
		sx += logS[i]
		sy += logF[i]
		sxx += logS[i] * logS[i]
		sxy += logS[i] * logF[i]
	}
	den := m*sxx - sx*sx
	if den == 0 {
		return 0, false
	}
	return (m*sxy - sx*sy) / den, true
}

// lineResidualSS returns the sum of squared residuals of seg around its
// least-squares line over the sample index.
func lineResidualSS(seg []float64) float64 {
	n := float64(len(seg))
	var sx, sy, sxx, sxy float64
	for i, v := range seg {
		x := float64(i)
		sx += x
		sy += v
		sxx += x * x
		sxy += x * v
	}
	den := n*sxx - sx*sx
	var slope, icept float64
	if den != 0 {
		slope = (n*sxy - sx*sy) / den
		icept = (sy - slope*sx) / n
	} else {
		icept = sy / n
	}

	var ss float64
	for i, v := range seg {
		r := v - (icept + slope*float64(i))
		ss += r * r
	}
	return ss
}
