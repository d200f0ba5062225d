// Package hrv is an in-memory toolkit for computing heart-rate-variability
// metrics from beat-occurrence time series — from artifact correction to
// time-domain, frequency-domain and nonlinear indices.
//
// 🚀 What is cardiolab/hrv?
//
//	A pure-Go library that takes a raw, noisy sequence of heartbeat times
//	(e.g. R-peak annotations of an ECG) and turns it into a validated set
//	of HRV indices:
//		• Artifact handling: range & moving-average filters, causal
//		  ectopic / missed-beat / extra-beat correction
//		• Time domain: AVNN, SDNN, RMSSD, pNN50, NN range
//		• Frequency domain: Welch & Lomb-Scargle spectra, VLF/LF/HF band
//		  powers, LF/HF ratio, normalized powers
//		• Nonlinear: Poincaré SD1/SD2, DFA α1/α2, sample entropy
//		• Reporting: one immutable HRVReport per record with full
//		  correction provenance and per-metric validity flags
//
// ✨ Why choose cardiolab/hrv?
//
//   - Partial results over hard failures – an infeasible metric degrades
//     to "unavailable", it never aborts its siblings
//   - Immutable data flow – series, records and reports are never mutated
//     after construction, so analyzers run concurrently without locks
//   - Explicit configuration – every analyzer takes an Options value;
//     no process-wide settings
//   - Pure Go numerics – no cgo, no hidden deps
//
// Under the hood, everything is organized under small subpackages:
//
//	rr/         — Beat, Label, IntervalSeries & CorrectionRecord types
//	artifact/   — RR filters and the ectopic/missed/extra corrector
//	timedomain/ — statistical interval descriptors
//	freqdomain/ — resampling, PSD estimation & band powers
//	nonlinear/  — Poincaré, DFA & sample entropy
//	report/     — metric/result model and report aggregation
//	pipeline/   — correct → analyze(×3, concurrent) → aggregate, per record
//	batch/      — record-level worker pool over many records
//	hrvconf/    — YAML configuration mapped onto package options
//	rec/        — plain-text beat-time record reader
//
// Quick start:
//
//	beats, _ := rec.ReadFile("subject01.txt")
//	rep, err := pipeline.Run(ctx, "subject01", beats, hrvconf.Default())
//	if err != nil { ... }
//	fmt.Println(rep.TimeDomain.Get("SDNN"))
//
//	go get github.com/cardiolab/hrv
package hrv
