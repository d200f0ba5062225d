package nonlinear

import (
	"fmt"
	"math"

	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
)

// analyzerName identifies this analyzer in Result.Analyzer.
const analyzerName = "nonlinear"

// Per-metric feasibility gates: each DFA exponent needs boxesPerSize full
// boxes of its smallest size to fit a meaningful slope.
const boxesPerSize = 4

// Analyze computes the nonlinear HRV metrics over the valid intervals of a
// corrected series.
//
// Metrics produced (stable order): SD1 (s), SD2 (s), SD1/SD2, DFA α1,
// DFA α2, SampEn. Each metric carries its own feasibility gate — a short
// series yields a partial result set with the infeasible metrics marked
// Unavailable rather than aborting the analyzer:
//
//	SD1/SD2  — ≥ 2 valid intervals
//	DFA α1   — ≥ 4 × ShortBoxMin intervals (16 with defaults)
//	DFA α2   — ≥ 4 × LongBoxMin intervals (48 with defaults)
//	SampEn   — > EmbeddingDim+1 intervals, non-zero variability
//
// Errors:
//   - ErrBadOption        — invalid Options values.
//   - rr.ErrEmptySeries   — no valid intervals in the series.
//   - rr.ErrInsufficientData — fewer than 2 valid intervals, so nothing
//     at all is computable.
func Analyze(s *rr.IntervalSeries, opts Options) (report.Result, error) {
	// Stage 1: Validate options and input
	if err := opts.validate(); err != nil {
		return report.Result{}, fmt.Errorf("nonlinear.Analyze: %w", err)
	}
	_, nn := s.Valid()
	if len(nn) == 0 {
		return report.Result{}, fmt.Errorf("nonlinear.Analyze: %w", rr.ErrEmptySeries)
	}
	if len(nn) < 2 {
		return report.Result{}, fmt.Errorf("nonlinear.Analyze: %d valid intervals: %w",
			len(nn), rr.ErrInsufficientData)
	}

	// Stage 2: Poincaré geometry (always feasible past the input gate)
	sd1, sd2 := poincare(nn)
	metrics := []report.Metric{
		{Name: "SD1", Value: sd1, Unit: "s", Validity: report.Valid},
		{Name: "SD2", Value: sd2, Unit: "s", Validity: report.Valid},
	}
	if sd2 > 0 {
		metrics = append(metrics, report.Metric{
			Name: "SD1/SD2", Value: sd1 / sd2, Unit: "ratio", Validity: report.Valid,
		})
	} else {
		metrics = append(metrics, report.Metric{
			Name: "SD1/SD2", Value: math.NaN(), Unit: "ratio",
			Validity: report.Unavailable, Note: "zero long-term variability",
		})
	}

	// Stage 3: DFA scaling exponents, each with its own gate
	metrics = append(metrics, dfaMetric("DFA α1", nn, opts.ShortBoxMin, opts.ShortBoxMax))

	longMax := opts.LongBoxMax
	if limit := len(nn) / boxesPerSize; limit < longMax {
		longMax = limit
	}
	metrics = append(metrics, dfaMetric("DFA α2", nn, opts.LongBoxMin, longMax))

	// Stage 4: Sample entropy at r = factor × SDNN
	r := opts.ToleranceFactor * sdnn(nn)
	if en, ok := sampEn(nn, opts.EmbeddingDim, r); ok {
		metrics = append(metrics, report.Metric{
			Name: "SampEn", Value: en, Unit: "nats", Validity: report.Valid,
		})
	} else {
		metrics = append(metrics, report.Metric{
			Name: "SampEn", Value: math.NaN(), Unit: "nats",
			Validity: report.Unavailable, Note: "series too short or too regular for the tolerance",
		})
	}

	first, last := s.At(0), s.At(s.Len()-1)
	return report.Result{
		Analyzer: analyzerName,
		Window:   report.Window{Start: first.Start, End: last.Start + last.Length},
		Excluded: s.Len() - len(nn),
		Metrics:  metrics,
	}, nil
}

// dfaMetric runs DFA over one box range, degrading to Unavailable when the
// series cannot support the fit.
func dfaMetric(name string, nn []float64, boxMin, boxMax int) report.Metric {
	if len(nn) < boxesPerSize*boxMin || boxMax < boxMin {
		return report.Metric{
			Name: name, Value: math.NaN(), Unit: "",
			Validity: report.Unavailable,
			Note:     fmt.Sprintf("needs at least %d valid intervals", boxesPerSize*boxMin),
		}
	}
	alpha, ok := dfa(nn, boxMin, boxMax)
	if !ok {
		return report.Metric{
			Name: name, Value: math.NaN(), Unit: "",
			Validity: report.Unavailable, Note: "too few usable box sizes",
		}
	}
	return report.Metric{Name: name, Value: alpha, Unit: "", Validity: report.Valid}
}

// sdnn returns the population standard deviation of nn.
func sdnn(nn []float64) float64 {
	var mean float64
	for _, v := range nn {
		mean += v
	}
	mean /= float64(len(nn))

	var ss float64
	for _, v := range nn {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(nn)))
}
