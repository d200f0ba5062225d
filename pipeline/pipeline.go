package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cardiolab/hrv/artifact"
	"github.com/cardiolab/hrv/freqdomain"
	"github.com/cardiolab/hrv/hrvconf"
	"github.com/cardiolab/hrv/nonlinear"
	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
	"github.com/cardiolab/hrv/timedomain"
)

// Run executes correction, the three analyzers and aggregation for one
// record and returns the assembled report.
//
// The analyzers run concurrently over the shared corrected series. An
// analyzer that cannot run on this data (rr.ErrEmptySeries or
// rr.ErrInsufficientData) contributes an empty result set for its slot;
// siblings are unaffected. Any other analyzer error, a correction
// failure, or a canceled context fails the whole record.
//
// Errors:
//   - rr.ErrEmptySeries / rr.ErrInsufficientData — the record as a whole
//     holds too little valid data to correct.
//   - artifact.ErrBadOption, freqdomain.ErrBadOption,
//     nonlinear.ErrBadOption — invalid configuration.
//   - ctx.Err() — the context was canceled.
func Run(ctx context.Context, recordID string, beats []rr.Beat, cfg hrvconf.Config) (*report.HRVReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}

	// Stage 1: Correct artifacts; this is the only stage that may reject
	// the record for data reasons.
	series, corr, err := artifact.Correct(beats, cfg.Artifact())
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}

	// Stage 2: Fan out the analyzers over the immutable series.
	var (
		wg                  sync.WaitGroup
		td, fd, nl          report.Result
		tdErr, fdErr, nlErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		td, tdErr = timedomain.Analyze(series)
	}()
	go func() {
		defer wg.Done()
		fd, fdErr = freqdomain.Analyze(series, cfg.Frequency())
	}()
	go func() {
		defer wg.Done()
		nl, nlErr = nonlinear.Analyze(series, cfg.Nonlinear())
	}()
	wg.Wait()

	// Stage 3: Degrade per-analyzer data infeasibility to an empty slot;
	// propagate everything else.
	if td, err = settle("timedomain", td, tdErr); err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}
	if fd, err = settle("freqdomain", fd, fdErr); err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}
	if nl, err = settle("nonlinear", nl, nlErr); err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}

	// Stage 4: Aggregate
	rep, err := report.Aggregate(recordID, corr, td, fd, nl)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run record %q: %w", recordID, err)
	}
	return rep, nil
}

// settle maps one analyzer outcome onto its report slot. Data
// infeasibility becomes a named, metric-less result so aggregation still
// assembles; other errors propagate.
func settle(name string, res report.Result, err error) (report.Result, error) {
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, rr.ErrEmptySeries) || errors.Is(err, rr.ErrInsufficientData):
		return report.Result{Analyzer: name}, nil
	default:
		return report.Result{}, err
	}
}
