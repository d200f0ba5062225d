package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardiolab/hrv/rr"
)

// ErrIncompleteAnalysis indicates aggregation was attempted without all
// three analyzer results.
var ErrIncompleteAnalysis = errors.New("report: missing analyzer result")

// Aggregate composes one HRVReport from a correction record and the three
// analyzer results. Pure composition: no value is recomputed or altered.
//
// A result is considered absent when it carries no analyzer name — the
// zero Result. An analyzer that ran but produced only Unavailable metrics
// is still present.
//
// Errors:
//   - ErrIncompleteAnalysis — any of td, fd, nl is absent.
func Aggregate(recordID string, corr rr.CorrectionRecord, td, fd, nl Result) (*HRVReport, error) {
	for _, r := range []struct {
		slot string
		res  Result
	}{
		{"timedomain", td},
		{"freqdomain", fd},
		{"nonlinear", nl},
	} {
		if r.res.Analyzer == "" {
			return nil, fmt.Errorf("Aggregate record %q: %s: %w", recordID, r.slot, ErrIncompleteAnalysis)
		}
	}

	return &HRVReport{
		ID:         uuid.New(),
		RecordID:   recordID,
		CreatedAt:  time.Now().UTC(),
		Correction: corr,
		TimeDomain: td,
		Frequency:  fd,
		Nonlinear:  nl,
	}, nil
}
