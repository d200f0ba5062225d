// Package rr defines the core data model for RR-interval analysis:
// beats, beat labels, interval series and correction provenance.
//
// 🚀 What is rr?
//
//	The shared vocabulary of every analyzer in cardiolab/hrv:
//	  • Beat — one heartbeat occurrence time with an optional label
//	  • Label — closed set: normal, ectopic, artifact, missed, extra
//	  • IntervalSeries — ordered inter-beat durations, immutable once built
//	  • CorrectionRecord — what the artifact corrector did, and with
//	    which thresholds
//
// ✨ Key guarantees:
//   - IntervalSeries is immutable post-construction; all slice accessors
//     return copies, so concurrent analyzers never need locks
//   - Interval lengths are strictly positive and ordered by start time
//     (series length = beat count − 1)
//   - Label is a closed tagged set; switches over it are exhaustive
//
// ⚙️ Usage:
//
//	import "github.com/cardiolab/hrv/rr"
//
//	beats := []rr.Beat{{Time: 0.0}, {Time: 0.8}, {Time: 1.6}}
//	s, err := rr.FromBeats(beats)
//	if err != nil {
//	  // handle ErrTooFewBeats or ErrNotMonotonic
//	}
//	fmt.Println(s.Len(), s.Durations())
package rr
