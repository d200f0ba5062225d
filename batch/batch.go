package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/cardiolab/hrv/hrvconf"
	"github.com/cardiolab/hrv/pipeline"
	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
)

// Record is one unit of batch work: an identified beat sequence.
type Record struct {
	// ID identifies the record in outcomes, errors and logs.
	ID string

	// Beats is the raw detected beat sequence.
	Beats []rr.Beat
}

// Outcome is the per-record result: exactly one of Report or Err is set.
type Outcome struct {
	RecordID string
	Report   *report.HRVReport
	Err      error
}

// RecordError wraps a per-record failure with the record's identity.
type RecordError struct {
	RecordID string
	Err      error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q: %v", e.RecordID, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *RecordError) Unwrap() error { return e.Err }

// Run analyzes every record over a pool of workers goroutines and returns
// one outcome per record, in input order.
//
// workers ≤ 0 selects runtime.GOMAXPROCS(0). Per-record failures land in
// that record's Outcome.Err as a RecordError; the batch never fails as a
// whole. Canceling ctx stops dispatch: records not yet picked up get a
// RecordError wrapping the context error, in-flight records run to
// completion.
func Run(ctx context.Context, records []Record, cfg hrvconf.Config, workers int) []Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(records) {
		workers = len(records)
	}

	runID := uuid.New()
	log := slog.With("run", runID.String())
	log.Info("batch run starting", "records", len(records), "workers", workers)

	outcomes := make([]Outcome, len(records))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r := records[idx]
				rep, err := pipeline.Run(ctx, r.ID, r.Beats, cfg)
				if err != nil {
					err = &RecordError{RecordID: r.ID, Err: err}
					log.Warn("record failed", "record", r.ID, "error", err)
					rep = nil
				}
				outcomes[idx] = Outcome{RecordID: r.ID, Report: rep, Err: err}
			}
		}()
	}

	// Dispatch in order; on cancellation mark everything not yet handed out.
dispatch:
	for i := range records {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(records); j++ {
				outcomes[j] = Outcome{
					RecordID: records[j].ID,
					Err:      &RecordError{RecordID: records[j].ID, Err: ctx.Err()},
				}
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	log.Info("batch run done", "records", len(records), "failed", failed)

	return outcomes
}
