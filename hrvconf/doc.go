// Package hrvconf maps a YAML configuration file onto the explicit Options
// values consumed by the analysis packages.
//
// 🚀 What is hrvconf?
//
//	One flat, documented set of recognized keys with defaults:
//
//	  artifact_threshold: 0.2        # relative median deviation
//	  median_window: 5               # beats in the running-median window
//	  resample_rate_hz: 4.0          # uniform grid rate for Welch
//	  psd_segment_length: 0          # samples; 0 = whole signal
//	  psd_overlap_percent: 50
//	  spectral_method: welch         # welch | lomb
//	  window_func: hamming           # hamming | hann | boxcar
//	  norm_method: lf_hf             # lf_hf | total
//	  entropy_dimension: 2
//	  entropy_tolerance_factor: 0.2
//	  range_filter: true             # physiological RR range pre-filter
//	  moving_avg_filter: false       # neighborhood-mean pre-filter
//
//	Unrecognized keys are ignored; missing keys use the defaults.
//
// ✨ Key properties:
//   - No global state: Load returns a value, and the Artifact/Frequency/
//     Nonlinear projections hand each analyzer its own Options — the
//     configuration is always passed explicitly into each call
//   - Validation happens at load time, so a bad file fails fast with a
//     key-qualified message
//
// ⚙️ Usage:
//
//	cfg, err := hrvconf.Load("hrv.yaml")
//	if err != nil { ... }
//	series, rec, err := artifact.Correct(beats, cfg.Artifact())
package hrvconf
