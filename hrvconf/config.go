package hrvconf

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cardiolab/hrv/artifact"
	"github.com/cardiolab/hrv/freqdomain"
	"github.com/cardiolab/hrv/nonlinear"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadConfig indicates an out-of-range or unrecognized value in a
	// configuration file.
	ErrBadConfig = errors.New("hrvconf: invalid configuration value")
)

// Recognized enum spellings for string-valued keys.
const (
	MethodWelch = "welch"
	MethodLomb  = "lomb"

	WindowHamming = "hamming"
	WindowHann    = "hann"
	WindowBoxcar  = "boxcar"

	NormLFHF  = "lf_hf"
	NormTotal = "total"
)

// Config is the flat, YAML-loadable pipeline configuration. Every field
// carries a working default, so the zero act of loading an empty file
// yields the same behavior as Default().
type Config struct {
	// Artifact correction.
	ArtifactThreshold  float64 `yaml:"artifact_threshold"`
	MedianWindow       int     `yaml:"median_window"`
	MissedFactor       float64 `yaml:"missed_factor"`
	RangeFilter        bool    `yaml:"range_filter"`
	MinRR              float64 `yaml:"min_rr"`
	MaxRR              float64 `yaml:"max_rr"`
	MovingAvgFilter    bool    `yaml:"moving_avg_filter"`
	MovingAvgWindow    int     `yaml:"moving_avg_window"`
	MovingAvgThreshold float64 `yaml:"moving_avg_threshold"`

	// Spectral analysis.
	SpectralMethod    string  `yaml:"spectral_method"`
	ResampleRateHz    float64 `yaml:"resample_rate_hz"`
	PSDSegmentLength  int     `yaml:"psd_segment_length"`
	PSDOverlapPercent float64 `yaml:"psd_overlap_percent"`
	WindowFunc        string  `yaml:"window_func"`
	NormMethod        string  `yaml:"norm_method"`

	// Nonlinear analysis.
	EntropyDimension       int     `yaml:"entropy_dimension"`
	EntropyToleranceFactor float64 `yaml:"entropy_tolerance_factor"`
}

// Default returns the configuration matching each package's
// DefaultOptions.
func Default() Config {
	return Config{
		ArtifactThreshold:  artifact.DefaultThreshold,
		MedianWindow:       artifact.DefaultMedianWindow,
		MissedFactor:       artifact.DefaultMissedFactor,
		RangeFilter:        true,
		MinRR:              artifact.DefaultMinRR,
		MaxRR:              artifact.DefaultMaxRR,
		MovingAvgFilter:    false,
		MovingAvgWindow:    artifact.DefaultMovingAvgWindow,
		MovingAvgThreshold: artifact.DefaultMovingAvgThreshold,

		SpectralMethod:    MethodWelch,
		ResampleRateHz:    freqdomain.DefaultResampleRate,
		PSDSegmentLength:  0,
		PSDOverlapPercent: freqdomain.DefaultOverlapPercent,
		WindowFunc:        WindowHamming,
		NormMethod:        NormLFHF,

		EntropyDimension:       2,
		EntropyToleranceFactor: 0.2,
	}
}

// Load reads a YAML configuration file. Missing keys keep their defaults;
// unrecognized keys are ignored. The result is validated before return.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("hrvconf.Load: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("hrvconf.Load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("hrvconf.Load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the string-valued keys; numeric ranges are enforced by
// the analysis packages when the projections are consumed.
func (c Config) Validate() error {
	switch c.SpectralMethod {
	case MethodWelch, MethodLomb:
	default:
		return fmt.Errorf("%w: spectral_method %q", ErrBadConfig, c.SpectralMethod)
	}
	switch c.WindowFunc {
	case WindowHamming, WindowHann, WindowBoxcar:
	default:
		return fmt.Errorf("%w: window_func %q", ErrBadConfig, c.WindowFunc)
	}
	switch c.NormMethod {
	case NormLFHF, NormTotal:
	default:
		return fmt.Errorf("%w: norm_method %q", ErrBadConfig, c.NormMethod)
	}
	return nil
}

// Artifact projects the configuration onto artifact.Options.
func (c Config) Artifact() artifact.Options {
	return artifact.Options{
		Threshold:          c.ArtifactThreshold,
		MedianWindow:       c.MedianWindow,
		MissedFactor:       c.MissedFactor,
		EnableRange:        c.RangeFilter,
		MinRR:              c.MinRR,
		MaxRR:              c.MaxRR,
		EnableMovingAvg:    c.MovingAvgFilter,
		MovingAvgWindow:    c.MovingAvgWindow,
		MovingAvgThreshold: c.MovingAvgThreshold,
	}
}

// Frequency projects the configuration onto freqdomain.Options. Band
// bounds always use the Task Force defaults.
func (c Config) Frequency() freqdomain.Options {
	opts := freqdomain.DefaultOptions()
	if c.SpectralMethod == MethodLomb {
		opts.Method = freqdomain.Lomb
	}
	switch c.WindowFunc {
	case WindowHann:
		opts.Window = freqdomain.Hann
	case WindowBoxcar:
		opts.Window = freqdomain.Boxcar
	}
	if c.NormMethod == NormTotal {
		opts.Norm = freqdomain.NormTotal
	}
	opts.ResampleRate = c.ResampleRateHz
	opts.SegmentLength = c.PSDSegmentLength
	opts.OverlapPercent = c.PSDOverlapPercent
	return opts
}

// Nonlinear projects the configuration onto nonlinear.Options. DFA box
// ranges always use the package defaults.
func (c Config) Nonlinear() nonlinear.Options {
	opts := nonlinear.DefaultOptions()
	opts.EmbeddingDim = c.EntropyDimension
	opts.ToleranceFactor = c.EntropyToleranceFactor
	return opts
}
