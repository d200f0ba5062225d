package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardiolab/hrv/rr"
)

// Validity qualifies how trustworthy a computed metric is.
//
//   - Valid       — fully computed from sufficient data.
//   - Degraded    — computed, but under data limits (e.g. VLF power from a
//     recording shorter than one VLF cycle); use with care.
//   - Unavailable — infeasible for this series (e.g. DFA α2 on a short
//     series); Value is NaN or zero and must not be consumed.
type Validity int

const (
	// Valid marks a fully computed metric.
	Valid Validity = iota

	// Degraded marks a metric computed under data limits.
	Degraded

	// Unavailable marks a metric that could not be computed.
	Unavailable
)

// String returns the canonical lower-case name of the validity flag.
func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Degraded:
		return "degraded"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("Validity(%d)", int(v))
	}
}

// Metric is one named HRV index. Read-only once produced.
type Metric struct {
	// Name identifies the metric, e.g. "SDNN" or "LF/HF".
	Name string

	// Value is the numeric result. NaN when Validity is Unavailable.
	Value float64

	// Unit is the physical unit, e.g. "s", "ms", "s²/Hz", "%", "n.u.".
	Unit string

	// Validity flags how trustworthy Value is.
	Validity Validity

	// Note optionally explains a Degraded or Unavailable flag.
	Note string
}

// Window is the time span a result was computed over, in record seconds.
type Window struct {
	Start float64
	End   float64
}

// Result is one analyzer's metric set.
type Result struct {
	// Analyzer names the producer: "timedomain", "freqdomain", "nonlinear".
	Analyzer string

	// Window is the analysis window the metrics were computed over.
	Window Window

	// Metrics holds the computed metrics, in a stable order.
	Metrics []Metric

	// Excluded counts intervals left out of the computation because they
	// were still labeled artifact (or otherwise invalid) after correction.
	Excluded int
}

// Get returns the metric with the given name and whether it was found.
func (r Result) Get(name string) (Metric, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// Value is a convenience accessor: the named metric's value, or NaN-free
// zero if absent. Prefer Get when the validity flag matters.
func (r Result) Value(name string) float64 {
	m, ok := r.Get(name)
	if !ok {
		return 0
	}
	return m.Value
}

// HRVReport aggregates one record's correction provenance and the three
// analyzer results. It is created once per analysis run by Aggregate and
// never mutated after assembly.
type HRVReport struct {
	// ID uniquely identifies this report.
	ID uuid.UUID

	// RecordID identifies the input record the report was computed from.
	RecordID string

	// CreatedAt is the report assembly time.
	CreatedAt time.Time

	// Correction documents the artifact corrections applied upstream.
	Correction rr.CorrectionRecord

	// TimeDomain, Frequency and Nonlinear are the per-analyzer results.
	TimeDomain Result
	Frequency  Result
	Nonlinear  Result
}
