package artifact_test

import (
	"testing"

	"github.com/cardiolab/hrv/artifact"
	"github.com/cardiolab/hrv/rr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steadyBeats returns n beats spaced rrLen seconds apart, starting at 0.
func steadyBeats(n int, rrLen float64) []rr.Beat {
	beats := make([]rr.Beat, n)
	for i := range beats {
		beats[i] = rr.Beat{Time: float64(i) * rrLen}
	}
	return beats
}

// beatsFromSeries rebuilds a beat sequence from a corrected series so the
// corrector can be re-applied to its own output.
func beatsFromSeries(s *rr.IntervalSeries) []rr.Beat {
	beats := []rr.Beat{{Time: s.At(0).Start}}
	for i := 0; i < s.Len(); i++ {
		iv := s.At(i)
		beats = append(beats, rr.Beat{Time: iv.Start + iv.Length})
	}
	return beats
}

// TestCorrect_BadOptions verifies option validation.
func TestCorrect_BadOptions(t *testing.T) {
	beats := steadyBeats(20, 0.8)

	opts := artifact.DefaultOptions()
	opts.Threshold = 1.5
	_, _, err := artifact.Correct(beats, opts)
	assert.ErrorIs(t, err, artifact.ErrBadOption, "threshold outside (0,1) must error")

	opts = artifact.DefaultOptions()
	opts.MedianWindow = 1
	_, _, err = artifact.Correct(beats, opts)
	assert.ErrorIs(t, err, artifact.ErrBadOption, "median window < 2 must error")
}

// TestCorrect_CleanSeriesPassesThrough verifies that an artifact-free input
// yields zero corrections and an identical interval sequence.
func TestCorrect_CleanSeriesPassesThrough(t *testing.T) {
	beats := steadyBeats(20, 0.8)

	s, rec, err := artifact.Correct(beats, artifact.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 19, s.Len())
	assert.Equal(t, 0, rec.Total(), "clean input must produce zero detections")
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, 0.8, s.At(i).Length, 1e-12)
	}
}

// TestCorrect_ExtraBeatMerged verifies the merge repair: one spurious beat
// splits a median-length interval into two short fragments; the corrector
// merges them back and reports one extra-beat correction.
func TestCorrect_ExtraBeatMerged(t *testing.T) {
	beats := steadyBeats(11, 0.8) // beats at 0, 0.8, ..., 8.0
	spur := append([]rr.Beat{}, beats[:3]...)
	spur = append(spur, rr.Beat{Time: 2.0}) // extra detection inside [1.6, 2.4]
	spur = append(spur, beats[3:]...)

	s, rec, err := artifact.Correct(spur, artifact.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Extra, "exactly one extra-beat correction")
	assert.Equal(t, 0, rec.Ectopic)
	assert.Equal(t, 0, rec.Missed)
	require.Equal(t, 10, s.Len(), "fragments must merge back into one interval")
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, 0.8, s.At(i).Length, 1e-12)
		assert.Equal(t, rr.LabelNormal, s.At(i).Label)
	}
}

// TestCorrect_MissedBeatSplit verifies that an interval of ~2× the local
// median is split by an interpolated beat and reported as missed.
func TestCorrect_MissedBeatSplit(t *testing.T) {
	// 0.7 s base rhythm keeps the doubled gap (1.4 s) inside the
	// physiological range filter.
	beats := steadyBeats(15, 0.7)
	dropped := append([]rr.Beat{}, beats[:7]...) // drop the detection at 4.9
	dropped = append(dropped, beats[8:]...)

	s, rec, err := artifact.Correct(dropped, artifact.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Missed, "exactly one missed-beat correction")
	assert.Equal(t, 0, rec.Extra)
	require.Equal(t, 14, s.Len(), "split must restore the original interval count")
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, 0.7, s.At(i).Length, 1e-12)
	}
}

// TestCorrect_EctopicFlagged verifies that a deviation that can be neither
// split nor merged is flagged ectopic and excluded, not deleted.
func TestCorrect_EctopicFlagged(t *testing.T) {
	beats := steadyBeats(15, 0.8)
	// Shift one beat 0.2 s early: intervals become ... 0.6, 1.0 ... — the
	// short one deviates 25 % and sums with its successor to 1.6, far from
	// the median, so no merge applies.
	beats[7].Time -= 0.2

	s, rec, err := artifact.Correct(beats, artifact.DefaultOptions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, rec.Ectopic, 1, "the shifted beat must be flagged")
	assert.Equal(t, 0, rec.Missed)
	assert.Equal(t, 0, rec.Extra)
	assert.Equal(t, 14, s.Len(), "flagged intervals stay in the series")
	assert.GreaterOrEqual(t, s.CountLabel(rr.LabelEctopic), 1)
}

// TestCorrect_Idempotent verifies the structural property: re-running the
// corrector on its own output produces zero additional corrections.
func TestCorrect_Idempotent(t *testing.T) {
	beats := steadyBeats(11, 0.8)
	spur := append([]rr.Beat{}, beats[:3]...)
	spur = append(spur, rr.Beat{Time: 2.0})
	spur = append(spur, beats[3:]...)

	opts := artifact.DefaultOptions()
	first, rec1, err := artifact.Correct(spur, opts)
	require.NoError(t, err)
	require.Equal(t, 1, rec1.Total())

	second, rec2, err := artifact.Correct(beatsFromSeries(first), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, rec2.Total(), "second run must detect nothing")
	assert.Equal(t, first.Len(), second.Len())
}

// TestCorrect_RangeFilter verifies that a physiologically impossible
// interval is rejected by the range pre-filter and kept as an artifact.
func TestCorrect_RangeFilter(t *testing.T) {
	beats := steadyBeats(15, 0.8)
	// Stretch one gap to 3.2 s (> MaxRR) by removing three beats.
	gapped := append([]rr.Beat{}, beats[:7]...)
	gapped = append(gapped, beats[10:]...)

	s, rec, err := artifact.Correct(gapped, artifact.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.RangeRejected)
	assert.Equal(t, 0, rec.Missed, "range-rejected intervals never reach the median pass")
	assert.Equal(t, 1, s.CountLabel(rr.LabelArtifact))
}

// TestCorrect_MovingAvgFilter verifies the optional neighborhood-mean
// pre-filter rejects a lone outlier.
func TestCorrect_MovingAvgFilter(t *testing.T) {
	beats := steadyBeats(25, 0.8)
	beats[12].Time += 0.25 // intervals become ... 1.05, 0.55 ...

	opts := artifact.DefaultOptions()
	opts.EnableRange = false
	opts.EnableMovingAvg = true

	_, rec, err := artifact.Correct(beats, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.MovingAvgRejected, "both distorted intervals deviate > 20% from the neighborhood mean")
}

// TestCorrect_EmptyAfterFiltering verifies rr.ErrEmptySeries when every
// interval is flagged before the median pass.
func TestCorrect_EmptyAfterFiltering(t *testing.T) {
	beats := steadyBeats(12, 0.8)
	for i := range beats {
		beats[i].Label = rr.LabelArtifact
	}

	_, _, err := artifact.Correct(beats, artifact.DefaultOptions())
	assert.ErrorIs(t, err, rr.ErrEmptySeries, "all-artifact input must yield empty-series error")
}

// TestCorrect_InsufficientData verifies rr.ErrInsufficientData when fewer
// than 2×MedianWindow valid beats survive filtering.
func TestCorrect_InsufficientData(t *testing.T) {
	beats := steadyBeats(6, 0.8) // 6 valid beats < 2×5

	_, _, err := artifact.Correct(beats, artifact.DefaultOptions())
	assert.ErrorIs(t, err, rr.ErrInsufficientData)
}

// TestCorrect_InputNotMutated verifies the corrector never writes through
// to the caller's beat slice.
func TestCorrect_InputNotMutated(t *testing.T) {
	beats := steadyBeats(15, 0.8)
	beats[7].Time -= 0.2
	snapshot := append([]rr.Beat{}, beats...)

	_, _, err := artifact.Correct(beats, artifact.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, snapshot, beats, "input slice must be untouched")
}
