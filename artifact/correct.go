package artifact

import (
	"fmt"
	"math"

	"github.com/cardiolab/hrv/rr"
)

// methodName identifies the correction algorithm in CorrectionRecord.Method.
const methodName = "running-median"

// Correct — RR-interval artifact detection and correction.
//
// Description:
//
//	Turns a raw beat sequence into a cleaned IntervalSeries plus a
//	CorrectionRecord documenting every detection. The input is never
//	mutated.
//
// Algorithm Outline:
//  1. Derive successive intervals from the beats; each interval inherits
//     the worse label of its beat pair.
//  2. Pre-filters: reject intervals outside [MinRR, MaxRR] (range filter)
//     and, when enabled, intervals deviating from their neighborhood mean
//     (moving-average filter). Rejects are relabeled artifact, not removed.
//  3. Running-median pass over the remaining normal intervals, causal:
//     the window holds only the last MedianWindow already-accepted lengths,
//     so no correction depends on intervals not yet validated.
//     For each interval with local median m:
//     - within Threshold of m           → accept.
//     - ≥ MissedFactor × m              → a dropped detection: split into
//     k = round(len/m) equal parts (interpolated beats), provided the
//     parts themselves fall within Threshold of m.
//     - short, and together with the next normal interval sums to ≈ m
//     → a spurious detection: merge the two fragments into one.
//     - otherwise                       → flag ectopic and exclude from
//     the median window.
//  4. Repaired intervals are relabeled normal; flagged ones keep their
//     flag so downstream analyzers exclude them.
//
// Idempotence: accepted and repaired intervals all lie within Threshold of
// the local median, and flagged intervals are skipped by label, so a second
// run over the output yields zero further corrections.
//
// Complexity:
//
//	Time   = O(n · W log W) for n intervals, median window W
//	Memory = O(n)
//
// Errors:
//   - ErrBadOption          — invalid Options values.
//   - rr.ErrTooFewBeats / rr.ErrNotMonotonic — malformed input beats.
//   - rr.ErrEmptySeries     — zero valid intervals survive filtering.
//   - rr.ErrInsufficientData — fewer than 2×MedianWindow valid beats
//     remain after filtering.
func Correct(beats []rr.Beat, opts Options) (*rr.IntervalSeries, rr.CorrectionRecord, error) {
	// Stage 1: Validate options
	if err := opts.validate(); err != nil {
		return nil, rr.CorrectionRecord{}, fmt.Errorf("Correct: %w", err)
	}

	// Stage 2: Derive intervals (input beats stay untouched)
	src, err := rr.FromBeats(beats)
	if err != nil {
		return nil, rr.CorrectionRecord{}, fmt.Errorf("Correct: %w", err)
	}
	ivs := make([]rr.Interval, src.Len())
	for i := range ivs {
		ivs[i] = src.At(i)
	}

	rec := rr.CorrectionRecord{
		Method:       methodName,
		Threshold:    opts.Threshold,
		MedianWindow: opts.MedianWindow,
	}

	// Stage 3: Pre-filters
	if opts.EnableRange {
		rec.RangeRejected = rangeFilter(ivs, opts.MinRR, opts.MaxRR)
	}
	if opts.EnableMovingAvg {
		rec.MovingAvgRejected = movingAvgFilter(ivs, opts.MovingAvgWindow, opts.MovingAvgThreshold)
	}

	valid := 0
	for _, iv := range ivs {
		if iv.Label == rr.LabelNormal {
			valid++
		}
	}
	if valid == 0 {
		return nil, rec, fmt.Errorf("Correct: after filtering: %w", rr.ErrEmptySeries)
	}
	if valid+1 < 2*opts.MedianWindow {
		return nil, rec, fmt.Errorf("Correct: %d valid beats after filtering, need %d: %w",
			valid+1, 2*opts.MedianWindow, rr.ErrInsufficientData)
	}

	// Stage 4: Causal running-median correction
	out := make([]rr.Interval, 0, len(ivs))
	win := newMedianWindow(opts.MedianWindow)
	for i := 0; i < len(ivs); i++ {
		iv := ivs[i]

		switch iv.Label {
		case rr.LabelArtifact, rr.LabelEctopic, rr.LabelMissed, rr.LabelExtra:
			// Pre-flagged: keep for provenance, exclude from detection.
			out = append(out, iv)
			continue
		case rr.LabelNormal:
			// fall through to detection
		}

		med, ok := win.median()
		if !ok || abs(iv.Length-med) <= opts.Threshold*med {
			// Within tolerance (or warm-up before any accepted interval).
			out = append(out, iv)
			win.push(iv.Length)
			continue
		}

		// Missed beat: a long interval spanning k true intervals.
		if iv.Length >= opts.MissedFactor*med {
			k := int(math.Round(iv.Length / med))
			if k < 2 {
				k = 2
			}
			sub := iv.Length / float64(k)
			if abs(sub-med) <= opts.Threshold*med {
				for j := 0; j < k; j++ {
					part := rr.Interval{
						Start:  iv.Start + float64(j)*sub,
						Length: sub,
						Label:  rr.LabelNormal,
					}
					out = append(out, part)
					win.push(sub)
				}
				rec.Missed++
				continue
			}
		}

		// Extra beat: two short fragments that sum to one median interval.
		if iv.Length < med && i+1 < len(ivs) && ivs[i+1].Label == rr.LabelNormal {
			combined := iv.Length + ivs[i+1].Length
			if abs(combined-med) <= opts.Threshold*med {
				out = append(out, rr.Interval{
					Start:  iv.Start,
					Length: combined,
					Label:  rr.LabelNormal,
				})
				win.push(combined)
				rec.Extra++
				i++ // the second fragment is consumed by the merge
				continue
			}
		}

		// Ectopic: irreparable deviation, flag and exclude.
		iv.Label = rr.LabelEctopic
		out = append(out, iv)
		rec.Ectopic++
	}

	// Stage 5: Publish the cleaned series
	cleaned, err := rr.FromIntervals(out)
	if err != nil {
		return nil, rec, fmt.Errorf("Correct: %w", err)
	}
	if cleaned.ValidCount() == 0 {
		return nil, rec, fmt.Errorf("Correct: after correction: %w", rr.ErrEmptySeries)
	}

	return cleaned, rec, nil
}
