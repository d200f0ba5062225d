// Package artifact detects and corrects ectopic, missed and extra beats in
// RR-interval series, producing a cleaned series plus a correction record.
//
// 🚀 What is artifact?
//
//	The first stage of the HRV pipeline. Raw beat detections are noisy:
//	the detector drops beats (one long interval where two should be),
//	fires twice (two short intervals that belong together), or picks up
//	ectopic beats whose timing says nothing about autonomic variability.
//	This package repairs what it can and flags what it cannot:
//	  • range pre-filter — rejects physiologically impossible intervals
//	  • moving-average pre-filter — rejects intervals far from their
//	    local neighborhood mean (optional)
//	  • running-median corrector — splits missed-beat gaps, merges
//	    extra-beat fragments, flags ectopic deviations
//
// ✨ Key properties:
//   - Causal: the median window holds only already-accepted intervals,
//     so no correction depends on intervals not yet validated
//   - Idempotent: re-running Correct on its own output (same options)
//     produces zero additional corrections
//   - Non-destructive: the input slice is never mutated; irreparable
//     intervals stay in the output labeled, not deleted
//
// ⚙️ Usage:
//
//	opts := artifact.DefaultOptions()
//	series, rec, err := artifact.Correct(beats, opts)
//	if err != nil {
//	  // handle rr.ErrInsufficientData / rr.ErrEmptySeries / ErrBadOption
//	}
//	fmt.Printf("repaired %d missed, %d extra, flagged %d ectopic\n",
//	  rec.Missed, rec.Extra, rec.Ectopic)
//
// Complexity: O(n · W) time for n intervals and median window W,
// O(n) memory.
package artifact
