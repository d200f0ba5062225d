package artifact

import (
	"sort"

	"github.com/cardiolab/hrv/rr"
)

// rangeFilter marks intervals outside [MinRR, MaxRR] as artifacts.
// Returns the number of intervals newly rejected.
func rangeFilter(ivs []rr.Interval, minRR, maxRR float64) int {
	rejected := 0
	for i, iv := range ivs {
		if iv.Label != rr.LabelNormal {
			continue // already flagged upstream
		}
		if iv.Length < minRR || iv.Length > maxRR {
			ivs[i].Label = rr.LabelArtifact
			rejected++
		}
	}
	return rejected
}

// movingAvgFilter marks intervals deviating from their neighborhood mean by
// more than thresh (relative) as artifacts. The neighborhood is up to win
// intervals on each side, excluding the interval itself and any interval
// already flagged. Returns the number of intervals newly rejected.
func movingAvgFilter(ivs []rr.Interval, win int, thresh float64) int {
	n := len(ivs)
	rejected := 0
	for i := 0; i < n; i++ {
		if ivs[i].Label != rr.LabelNormal {
			continue
		}

		lo, hi := i-win, i+win
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}

		sum, count := 0.0, 0
		for j := lo; j <= hi; j++ {
			if j == i || ivs[j].Label != rr.LabelNormal {
				continue
			}
			sum += ivs[j].Length
			count++
		}
		if count == 0 {
			continue // nothing to compare against
		}

		ma := sum / float64(count)
		if abs(ivs[i].Length-ma) > thresh*ma {
			ivs[i].Label = rr.LabelArtifact
			rejected++
		}
	}
	return rejected
}

// medianWindow is a fixed-capacity causal window of accepted interval
// lengths supporting O(W log W) median queries.
type medianWindow struct {
	cap     int
	values  []float64
	scratch []float64
}

func newMedianWindow(capacity int) *medianWindow {
	return &medianWindow{
		cap:     capacity,
		values:  make([]float64, 0, capacity),
		scratch: make([]float64, 0, capacity),
	}
}

// push appends an accepted interval length, evicting the oldest once full.
func (w *medianWindow) push(v float64) {
	if len(w.values) == w.cap {
		copy(w.values, w.values[1:])
		w.values = w.values[:w.cap-1]
	}
	w.values = append(w.values, v)
}

// median returns the median of the window contents and whether the window
// holds any value at all.
func (w *medianWindow) median() (float64, bool) {
	n := len(w.values)
	if n == 0 {
		return 0, false
	}
	w.scratch = append(w.scratch[:0], w.values...)
	sort.Float64s(w.scratch)
	if n%2 == 1 {
		return w.scratch[n/2], true
	}
	return (w.scratch[n/2-1] + w.scratch[n/2]) / 2, true
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
