package hrvconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cardiolab/hrv/freqdomain"
	"github.com/cardiolab/hrv/hrvconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops a config file into a test temp dir and returns its path.
func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hrv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoad_EmptyFileEqualsDefault verifies that loading an empty file
// yields exactly the defaults.
func TestLoad_EmptyFileEqualsDefault(t *testing.T) {
	cfg, err := hrvconf.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, hrvconf.Default(), cfg)
}

// TestLoad_PartialOverride verifies that set keys override and unset keys
// keep their defaults.
func TestLoad_PartialOverride(t *testing.T) {
	cfg, err := hrvconf.Load(writeFile(t, `
artifact_threshold: 0.25
spectral_method: lomb
psd_segment_length: 512
`))
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.ArtifactThreshold)
	assert.Equal(t, hrvconf.MethodLomb, cfg.SpectralMethod)
	assert.Equal(t, 512, cfg.PSDSegmentLength)

	def := hrvconf.Default()
	assert.Equal(t, def.MedianWindow, cfg.MedianWindow, "unset keys keep defaults")
	assert.Equal(t, def.WindowFunc, cfg.WindowFunc)
}

// TestLoad_UnknownKeysIgnored verifies forward compatibility with
// unrecognized keys.
func TestLoad_UnknownKeysIgnored(t *testing.T) {
	cfg, err := hrvconf.Load(writeFile(t, `
median_window: 7
some_future_key: 42
`))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MedianWindow)
}

// TestLoad_BadEnum verifies that an unrecognized enum spelling fails fast.
func TestLoad_BadEnum(t *testing.T) {
	_, err := hrvconf.Load(writeFile(t, "spectral_method: burg\n"))
	assert.ErrorIs(t, err, hrvconf.ErrBadConfig)

	_, err = hrvconf.Load(writeFile(t, "window_func: blackman\n"))
	assert.ErrorIs(t, err, hrvconf.ErrBadConfig)
}

// TestLoad_MissingFile verifies the error path for an absent file.
func TestLoad_MissingFile(t *testing.T) {
	_, err := hrvconf.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestProjections verifies the per-analyzer option projections.
func TestProjections(t *testing.T) {
	cfg := hrvconf.Default()
	cfg.ArtifactThreshold = 0.3
	cfg.SpectralMethod = hrvconf.MethodLomb
	cfg.WindowFunc = hrvconf.WindowHann
	cfg.NormMethod = hrvconf.NormTotal
	cfg.EntropyDimension = 3

	art := cfg.Artifact()
	assert.Equal(t, 0.3, art.Threshold)
	assert.True(t, art.EnableRange)

	freq := cfg.Frequency()
	assert.Equal(t, freqdomain.Lomb, freq.Method)
	assert.Equal(t, freqdomain.Hann, freq.Window)
	assert.Equal(t, freqdomain.NormTotal, freq.Norm)
	assert.Equal(t, freqdomain.DefaultVLF, freq.VLF, "band bounds stay at the defaults")

	nl := cfg.Nonlinear()
	assert.Equal(t, 3, nl.EmbeddingDim)
	assert.Equal(t, 0.2, nl.ToleranceFactor)
}
