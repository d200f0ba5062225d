package timedomain

import (
	"fmt"
	"math"

	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
)

// analyzerName identifies this analyzer in Result.Analyzer.
const analyzerName = "timedomain"

// pNN50ThresholdSec is the successive-difference threshold for pNN50.
const pNN50ThresholdSec = 0.050

// Analyze computes the time-domain HRV metrics over the valid intervals of
// a corrected series.
//
// Metrics produced (stable order): AVNN (s), SDNN (s), RMSSD (s),
// pNN50 (%), RangeNN (s). RMSSD and pNN50 need at least one adjacent pair
// of valid intervals; with none, they degrade to Unavailable rather than
// failing the analyzer.
//
// Errors:
//   - rr.ErrEmptySeries — no valid intervals remain in the series.
func Analyze(s *rr.IntervalSeries) (report.Result, error) {
	// Stage 1: Collect valid intervals
	_, nn := s.Valid()
	if len(nn) == 0 {
		return report.Result{}, fmt.Errorf("timedomain.Analyze: %w", rr.ErrEmptySeries)
	}

	// Stage 2: Moments and range
	var (
		sum   float64
		minNN = math.Inf(1)
		maxNN = math.Inf(-1)
	)
	for _, v := range nn {
		sum += v
		minNN = math.Min(minNN, v)
		maxNN = math.Max(maxNN, v)
	}
	mean := sum / float64(len(nn))

	var ss float64
	for _, v := range nn {
		d := v - mean
		ss += d * d
	}
	sdnn := math.Sqrt(ss / float64(len(nn)))

	// Stage 3: Successive differences over adjacent valid pairs only
	var (
		sumSq  float64
		over50 int
		pairs  int
	)
	for i := 1; i < s.Len(); i++ {
		a, b := s.At(i-1), s.At(i)
		if a.Label != rr.LabelNormal || b.Label != rr.LabelNormal {
			continue // a flagged interval breaks the pair
		}
		d := b.Length - a.Length
		sumSq += d * d
		if math.Abs(d) > pNN50ThresholdSec {
			over50++
		}
		pairs++
	}

	rmssd := report.Metric{Name: "RMSSD", Unit: "s", Validity: report.Unavailable,
		Value: math.NaN(), Note: "needs at least one adjacent valid interval pair"}
	pnn50 := report.Metric{Name: "pNN50", Unit: "%", Validity: report.Unavailable,
		Value: math.NaN(), Note: "needs at least one adjacent valid interval pair"}
	if pairs > 0 {
		rmssd = report.Metric{Name: "RMSSD", Unit: "s", Validity: report.Valid,
			Value: math.Sqrt(sumSq / float64(pairs))}
		pnn50 = report.Metric{Name: "pNN50", Unit: "%", Validity: report.Valid,
			Value: 100 * float64(over50) / float64(pairs)}
	}

	// Stage 4: Assemble the result
	first, last := s.At(0), s.At(s.Len()-1)
	return report.Result{
		Analyzer: analyzerName,
		Window:   report.Window{Start: first.Start, End: last.Start + last.Length},
		Excluded: s.Len() - len(nn),
		Metrics: []report.Metric{
			{Name: "AVNN", Value: mean, Unit: "s", Validity: report.Valid},
			{Name: "SDNN", Value: sdnn, Unit: "s", Validity: report.Valid},
			rmssd,
			pnn50,
			{Name: "RangeNN", Value: maxNN - minNN, Unit: "s", Validity: report.Valid},
		},
	}, nil
}
