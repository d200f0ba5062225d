package freqdomain_test

import (
	"math"
	"testing"

	"github.com/cardiolab/hrv/freqdomain"
	"github.com/cardiolab/hrv/report"
	"github.com/cardiolab/hrv/rr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modulatedSeries builds a tachogram of duration seconds around a 0.8 s
// base rhythm with a sinusoidal RR modulation at modHz of amplitude amp.
func modulatedSeries(t *testing.T, duration, modHz, amp float64) *rr.IntervalSeries {
	t.Helper()
	var beats []rr.Beat
	for ts := 0.0; ts < duration; {
		beats = append(beats, rr.Beat{Time: ts})
		ts += 0.8 + amp*math.Sin(2*math.Pi*modHz*ts)
	}
	s, err := rr.FromBeats(beats)
	require.NoError(t, err)
	return s
}

// TestAnalyze_BandSumEqualsTotal verifies the partition property: VLF+LF+HF
// equals the total PSD integral within floating-point tolerance.
func TestAnalyze_BandSumEqualsTotal(t *testing.T) {
	s := modulatedSeries(t, 400, 0.1, 0.05)

	res, err := freqdomain.Analyze(s, freqdomain.DefaultOptions())
	require.NoError(t, err)

	sum := res.Value("VLF") + res.Value("LF") + res.Value("HF")
	total := res.Value("TotalPower")
	require.Greater(t, total, 0.0)
	assert.InEpsilon(t, total, sum, 1e-6, "bands must tile the analysis span")
}

// TestAnalyze_LFModulationDominates verifies that a 0.1 Hz modulation puts
// its power into the LF band.
func TestAnalyze_LFModulationDominates(t *testing.T) {
	s := modulatedSeries(t, 400, 0.1, 0.05)

	res, err := freqdomain.Analyze(s, freqdomain.DefaultOptions())
	require.NoError(t, err)

	assert.Greater(t, res.Value("LF"), res.Value("HF"),
		"0.1 Hz modulation must concentrate power in LF")
	assert.Greater(t, res.Value("LFnu"), res.Value("HFnu"))

	lfhf, ok := res.Get("LF/HF")
	require.True(t, ok)
	assert.Equal(t, report.Valid, lfhf.Validity)
	assert.Greater(t, lfhf.Value, 1.0)
}

// TestAnalyze_HFModulationDominates verifies the symmetric case at 0.3 Hz.
func TestAnalyze_HFModulationDominates(t *testing.T) {
	s := modulatedSeries(t, 400, 0.3, 0.05)

	res, err := freqdomain.Analyze(s, freqdomain.DefaultOptions())
	require.NoError(t, err)

	assert.Greater(t, res.Value("HF"), res.Value("LF"),
		"0.3 Hz modulation must concentrate power in HF")

	lfhf, ok := res.Get("LF/HF")
	require.True(t, ok)
	assert.Less(t, lfhf.Value, 1.0)
}

// TestAnalyze_LombAgreesOnDominance verifies the Lomb-Scargle path ranks
// the bands like Welch and keeps the partition property.
func TestAnalyze_LombAgreesOnDominance(t *testing.T) {
	s := modulatedSeries(t, 400, 0.1, 0.05)

	opts := freqdomain.DefaultOptions()
	opts.Method = freqdomain.Lomb
	res, err := freqdomain.Analyze(s, opts)
	require.NoError(t, err)

	assert.Greater(t, res.Value("LF"), res.Value("HF"))

	sum := res.Value("VLF") + res.Value("LF") + res.Value("HF")
	assert.InEpsilon(t, res.Value("TotalPower"), sum, 1e-6)
}

// TestAnalyze_VLFDegradedOnShortRecording verifies the edge case: a
// recording shorter than one VLF cycle flags VLF as degraded, not missing.
func TestAnalyze_VLFDegradedOnShortRecording(t *testing.T) {
	s := modulatedSeries(t, 120, 0.1, 0.05) // 120 s < 1/0.003 Hz ≈ 333 s

	res, err := freqdomain.Analyze(s, freqdomain.DefaultOptions())
	require.NoError(t, err, "short recording must not fail the analysis")

	vlf, ok := res.Get("VLF")
	require.True(t, ok, "VLF must be reported even when unreliable")
	assert.Equal(t, report.Degraded, vlf.Validity)
	assert.NotEmpty(t, vlf.Note)

	lf, _ := res.Get("LF")
	assert.Equal(t, report.Valid, lf.Validity, "only VLF is affected")
}

// TestAnalyze_SegmentedWelch verifies that explicit segmentation with
// overlap still satisfies the partition property.
func TestAnalyze_SegmentedWelch(t *testing.T) {
	s := modulatedSeries(t, 400, 0.1, 0.05)

	opts := freqdomain.DefaultOptions()
	opts.SegmentLength = 512 // 128 s segments at 4 Hz
	opts.Detrend = freqdomain.DetrendLinear
	res, err := freqdomain.Analyze(s, opts)
	require.NoError(t, err)

	sum := res.Value("VLF") + res.Value("LF") + res.Value("HF")
	assert.InEpsilon(t, res.Value("TotalPower"), sum, 1e-6)
	assert.Greater(t, res.Value("LF"), res.Value("HF"))
}

// TestAnalyze_BadOptions verifies Nyquist and band-order validation.
func TestAnalyze_BadOptions(t *testing.T) {
	s := modulatedSeries(t, 120, 0.1, 0.05)

	opts := freqdomain.DefaultOptions()
	opts.ResampleRate = 0.5 // below 2 × HF.High
	_, err := freqdomain.Analyze(s, opts)
	assert.ErrorIs(t, err, freqdomain.ErrBadOption)

	opts = freqdomain.DefaultOptions()
	opts.LF = freqdomain.Band{Low: 0.01, High: 0.15} // overlaps VLF
	_, err = freqdomain.Analyze(s, opts)
	assert.ErrorIs(t, err, freqdomain.ErrBadOption)

	opts = freqdomain.DefaultOptions()
	opts.OverlapPercent = 100
	_, err = freqdomain.Analyze(s, opts)
	assert.ErrorIs(t, err, freqdomain.ErrBadOption)
}

// TestAnalyze_EmptyAndInsufficient verifies the error taxonomy on degenerate
// series.
func TestAnalyze_EmptyAndInsufficient(t *testing.T) {
	allArtifact, err := rr.FromIntervals([]rr.Interval{
		{Start: 0.0, Length: 0.8, Label: rr.LabelArtifact},
		{Start: 0.8, Length: 0.8, Label: rr.LabelArtifact},
	})
	require.NoError(t, err)
	_, err = freqdomain.Analyze(allArtifact, freqdomain.DefaultOptions())
	assert.ErrorIs(t, err, rr.ErrEmptySeries)

	tiny, err := rr.FromBeats([]rr.Beat{{Time: 0}, {Time: 0.8}, {Time: 1.6}})
	require.NoError(t, err)
	_, err = freqdomain.Analyze(tiny, freqdomain.DefaultOptions())
	assert.ErrorIs(t, err, rr.ErrInsufficientData)
}

// TestAnalyze_ExcludedCount verifies flagged intervals are excluded and
// counted in the result metadata.
func TestAnalyze_ExcludedCount(t *testing.T) {
	s := modulatedSeries(t, 400, 0.1, 0.05)
	ivs := make([]rr.Interval, s.Len())
	for i := range ivs {
		ivs[i] = s.At(i)
	}
	ivs[10].Label = rr.LabelEctopic
	ivs[11].Label = rr.LabelArtifact
	flagged, err := rr.FromIntervals(ivs)
	require.NoError(t, err)

	res, err := freqdomain.Analyze(flagged, freqdomain.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Excluded)
}
