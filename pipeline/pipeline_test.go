package pipeline_test

import (
	"context"
	"math"
	"testing"

	"github.com/cardiolab/hrv/artifact"
	"github.com/cardiolab/hrv/hrvconf"
	"github.com/cardiolab/hrv/pipeline"
	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modulatedBeats synthesizes a physiological beat list with slow (LF) and
// fast (HF) rhythm modulation.
func modulatedBeats(n int) []rr.Beat {
	beats := make([]rr.Beat, n)
	t := 0.0
	for i := range beats {
		beats[i] = rr.Beat{Time: t, Label: rr.LabelNormal}
		t += 0.8 + 0.05*math.Sin(2*math.Pi*0.1*t) + 0.03*math.Sin(2*math.Pi*0.3*t)
	}
	return beats
}

// TestRun_FullReport verifies the whole chain on a clean five-minute
// recording: every analyzer slot filled, provenance carried through.
func TestRun_FullReport(t *testing.T) {
	rep, err := pipeline.Run(context.Background(), "subject01", modulatedBeats(400), hrvconf.Default())
	require.NoError(t, err)

	assert.Equal(t, "subject01", rep.RecordID)
	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.False(t, rep.CreatedAt.IsZero())

	assert.Equal(t, "timedomain", rep.TimeDomain.Analyzer)
	assert.Equal(t, "freqdomain", rep.Frequency.Analyzer)
	assert.Equal(t, "nonlinear", rep.Nonlinear.Analyzer)

	sdnn, ok := rep.TimeDomain.Get("SDNN")
	require.True(t, ok)
	assert.Equal(t, report.Valid, sdnn.Validity)
	assert.Greater(t, sdnn.Value, 0.0)

	lfhf, ok := rep.Frequency.Get("LF/HF")
	require.True(t, ok)
	assert.Equal(t, report.Valid, lfhf.Validity)

	sd1, ok := rep.Nonlinear.Get("SD1")
	require.True(t, ok)
	assert.Equal(t, report.Valid, sd1.Validity)
}

// TestRun_DegradedAnalyzerSlot verifies that an analyzer short on data
// degrades to an empty slot while its siblings still report.
func TestRun_DegradedAnalyzerSlot(t *testing.T) {
	// Three intervals: enough to correct (window 2) and for the time and
	// nonlinear analyzers, below the spectral minimum of four.
	beats := []rr.Beat{
		{Time: 0.0}, {Time: 0.8}, {Time: 1.62}, {Time: 2.41},
	}
	cfg := hrvconf.Default()
	cfg.MedianWindow = 2

	rep, err := pipeline.Run(context.Background(), "short", beats, cfg)
	require.NoError(t, err, "spectral infeasibility must not fail the record")

	assert.Equal(t, "freqdomain", rep.Frequency.Analyzer)
	assert.Empty(t, rep.Frequency.Metrics, "the degraded slot carries no metrics")

	assert.NotEmpty(t, rep.TimeDomain.Metrics)
	assert.NotEmpty(t, rep.Nonlinear.Metrics)
}

// TestRun_CorrectionFailureFailsRecord verifies that a record with no
// valid beats fails as a whole.
func TestRun_CorrectionFailureFailsRecord(t *testing.T) {
	// Every gap is outside the physiological range, so the range filter
	// rejects all intervals.
	beats := []rr.Beat{
		{Time: 0.0}, {Time: 2.0}, {Time: 4.0}, {Time: 6.0}, {Time: 8.0},
		{Time: 10.0}, {Time: 12.0}, {Time: 14.0}, {Time: 16.0}, {Time: 18.0},
	}
	_, err := pipeline.Run(context.Background(), "flatline", beats, hrvconf.Default())
	assert.ErrorIs(t, err, rr.ErrEmptySeries)
	assert.Contains(t, err.Error(), "flatline", "the record ID must be in the error chain")
}

// TestRun_BadConfigFailsRecord verifies that configuration errors are
// never degraded.
func TestRun_BadConfigFailsRecord(t *testing.T) {
	cfg := hrvconf.Default()
	cfg.ArtifactThreshold = 2.0

	_, err := pipeline.Run(context.Background(), "subject01", modulatedBeats(100), cfg)
	assert.ErrorIs(t, err, artifact.ErrBadOption)
}

// TestRun_CanceledContext verifies cancellation fails the record with the
// context error.
func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, "subject01", modulatedBeats(100), hrvconf.Default())
	assert.ErrorIs(t, err, context.Canceled)
}
