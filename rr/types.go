package rr

import "fmt"

// Label classifies the origin quality of a beat or of the interval formed
// by a beat pair. The set is closed: code that matches on Label must handle
// every member.
//
//   - LabelNormal   — a regular sinus beat (or a corrected equivalent).
//   - LabelEctopic  — timing deviates from local variability; excluded
//     from statistics unless repaired.
//   - LabelArtifact — a detection known to be spurious and irreparable.
//   - LabelMissed   — a dropped detection; the corrector splits the long
//     interval it leaves behind.
//   - LabelExtra    — a spurious detection; the corrector merges the two
//     short intervals it creates.
type Label int

const (
	// LabelNormal marks a regular beat.
	LabelNormal Label = iota

	// LabelEctopic marks a beat whose timing deviates from the local median.
	LabelEctopic

	// LabelArtifact marks an irreparable spurious detection.
	LabelArtifact

	// LabelMissed marks the position of a dropped detection.
	LabelMissed

	// LabelExtra marks a spurious additional detection.
	LabelExtra
)

// String returns the canonical lower-case name of the label.
func (l Label) String() string {
	switch l {
	case LabelNormal:
		return "normal"
	case LabelEctopic:
		return "ectopic"
	case LabelArtifact:
		return "artifact"
	case LabelMissed:
		return "missed"
	case LabelExtra:
		return "extra"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// ParseLabel maps a canonical label name back to its Label.
// Returns ErrUnknownLabel for anything outside the closed set.
func ParseLabel(s string) (Label, error) {
	switch s {
	case "normal":
		return LabelNormal, nil
	case "ectopic":
		return LabelEctopic, nil
	case "artifact":
		return LabelArtifact, nil
	case "missed":
		return LabelMissed, nil
	case "extra":
		return LabelExtra, nil
	default:
		return 0, fmt.Errorf("ParseLabel %q: %w", s, ErrUnknownLabel)
	}
}

// severity orders labels from most to least trustworthy; an interval
// inherits the worse label of its originating beat pair.
func (l Label) severity() int {
	switch l {
	case LabelNormal:
		return 0
	case LabelMissed:
		return 1
	case LabelExtra:
		return 2
	case LabelEctopic:
		return 3
	case LabelArtifact:
		return 4
	default:
		return 5
	}
}

// worse returns the less trustworthy of two labels.
func worse(a, b Label) Label {
	if a.severity() >= b.severity() {
		return a
	}
	return b
}

// Beat is one heartbeat occurrence.
//
// Time is the occurrence timestamp in seconds; within a record, times are
// strictly increasing. Label is the pre-existing annotation, LabelNormal
// when the upstream detector provided none. A Beat is immutable once
// labeled.
type Beat struct {
	// Time is the beat occurrence time in seconds.
	Time float64

	// Label is the beat's quality annotation.
	Label Label
}

// Interval is one inter-beat duration.
type Interval struct {
	// Start is the occurrence time of the earlier beat, in seconds.
	Start float64

	// Length is the duration between the two beats, in seconds. Always > 0.
	Length float64

	// Label is the worse label of the originating beat pair.
	Label Label
}

// CorrectionRecord documents what the artifact corrector detected and the
// method and thresholds it used. It is attached to the corrected
// IntervalSeries for provenance and never mutated after creation.
type CorrectionRecord struct {
	// Method names the correction algorithm, e.g. "running-median".
	Method string

	// Threshold is the relative deviation fraction used for ectopic detection.
	Threshold float64

	// MedianWindow is the number of preceding valid intervals in the
	// running-median window.
	MedianWindow int

	// Ectopic counts intervals flagged as ectopic deviations.
	Ectopic int

	// Missed counts dropped detections repaired by splitting.
	Missed int

	// Extra counts spurious detections repaired by merging.
	Extra int

	// RangeRejected counts intervals removed by the physiological
	// range pre-filter.
	RangeRejected int

	// MovingAvgRejected counts intervals removed by the moving-average
	// pre-filter.
	MovingAvgRejected int
}

// Total returns the total number of detections across all categories.
func (c CorrectionRecord) Total() int {
	return c.Ectopic + c.Missed + c.Extra + c.RangeRejected + c.MovingAvgRejected
}
