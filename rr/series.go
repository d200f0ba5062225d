package rr

import "fmt"

// IntervalSeries is an ordered sequence of inter-beat intervals.
//
// A series is immutable after construction: every slice accessor returns a
// fresh copy, so any number of analyzers may read one series concurrently.
// Invariants (enforced by the constructors):
//   - every interval length is strictly positive
//   - start times are strictly increasing
//   - series length = originating beat count − 1
type IntervalSeries struct {
	intervals []Interval
}

// FromBeats derives an IntervalSeries from consecutive beats.
// Each interval inherits the worse label of its beat pair.
//
// Errors:
//   - ErrTooFewBeats  — fewer than two beats.
//   - ErrNotMonotonic — timestamps not strictly increasing.
func FromBeats(beats []Beat) (*IntervalSeries, error) {
	if len(beats) < 2 {
		return nil, fmt.Errorf("FromBeats: got %d beats: %w", len(beats), ErrTooFewBeats)
	}
	intervals := make([]Interval, 0, len(beats)-1)
	for i := 1; i < len(beats); i++ {
		if beats[i].Time <= beats[i-1].Time {
			return nil, fmt.Errorf("FromBeats: beat %d at t=%.6f after t=%.6f: %w",
				i, beats[i].Time, beats[i-1].Time, ErrNotMonotonic)
		}
		intervals = append(intervals, Interval{
			Start:  beats[i-1].Time,
			Length: beats[i].Time - beats[i-1].Time,
			Label:  worse(beats[i-1].Label, beats[i].Label),
		})
	}
	return &IntervalSeries{intervals: intervals}, nil
}

// FromIntervals builds a series directly from pre-formed intervals.
// Used by the artifact corrector to publish its cleaned output.
//
// Errors:
//   - ErrTooFewBeats — empty input.
//   - ErrBadInterval — non-positive length or non-increasing start times.
func FromIntervals(intervals []Interval) (*IntervalSeries, error) {
	if len(intervals) == 0 {
		return nil, fmt.Errorf("FromIntervals: empty input: %w", ErrTooFewBeats)
	}
	own := make([]Interval, len(intervals))
	copy(own, intervals)
	for i, iv := range own {
		if iv.Length <= 0 {
			return nil, fmt.Errorf("FromIntervals: interval %d length %.6f: %w", i, iv.Length, ErrBadInterval)
		}
		if i > 0 && iv.Start <= own[i-1].Start {
			return nil, fmt.Errorf("FromIntervals: interval %d start %.6f: %w", i, iv.Start, ErrBadInterval)
		}
	}
	return &IntervalSeries{intervals: own}, nil
}

// Len returns the number of intervals in the series.
func (s *IntervalSeries) Len() int { return len(s.intervals) }

// At returns the i-th interval. Panics if i is out of range, matching
// slice-index semantics.
func (s *IntervalSeries) At(i int) Interval { return s.intervals[i] }

// Durations returns a copy of all interval lengths, in seconds.
func (s *IntervalSeries) Durations() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Length
	}
	return out
}

// Times returns a copy of all interval start times, in seconds.
func (s *IntervalSeries) Times() []float64 {
	out := make([]float64, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Start
	}
	return out
}

// Valid returns copies of the start times and lengths of intervals labeled
// LabelNormal, preserving order. The two slices are index-aligned.
func (s *IntervalSeries) Valid() (times, durations []float64) {
	for _, iv := range s.intervals {
		if iv.Label == LabelNormal {
			times = append(times, iv.Start)
			durations = append(durations, iv.Length)
		}
	}
	return times, durations
}

// ValidCount returns the number of intervals labeled LabelNormal.
func (s *IntervalSeries) ValidCount() int {
	n := 0
	for _, iv := range s.intervals {
		if iv.Label == LabelNormal {
			n++
		}
	}
	return n
}

// CountLabel returns how many intervals carry the given label.
func (s *IntervalSeries) CountLabel(l Label) int {
	n := 0
	for _, iv := range s.intervals {
		if iv.Label == l {
			n++
		}
	}
	return n
}

// Duration returns the total time span covered by the series, in seconds:
// from the start of the first interval to the end of the last.
func (s *IntervalSeries) Duration() float64 {
	if len(s.intervals) == 0 {
		return 0
	}
	last := s.intervals[len(s.intervals)-1]
	return last.Start + last.Length - s.intervals[0].Start
}
