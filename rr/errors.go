package rr

import "errors"

var (
	// ErrTooFewBeats indicates fewer than two beats were supplied, so no
	// interval can be derived.
	ErrTooFewBeats = errors.New("rr: need at least two beats to form an interval")

	// ErrNotMonotonic indicates beat timestamps are not strictly increasing.
	ErrNotMonotonic = errors.New("rr: beat times must be strictly increasing")

	// ErrBadInterval indicates an interval with a non-positive length or
	// out-of-order start time.
	ErrBadInterval = errors.New("rr: intervals must have positive length and increasing start times")

	// ErrUnknownLabel indicates a string that names no member of the closed
	// Label set.
	ErrUnknownLabel = errors.New("rr: unknown beat label")

	// ErrEmptySeries indicates zero valid intervals remain after correction
	// and label filtering.
	ErrEmptySeries = errors.New("rr: no valid intervals in series")

	// ErrInsufficientData indicates too few valid beats or intervals for a
	// metric or for the whole analysis run.
	ErrInsufficientData = errors.New("rr: insufficient data")
)
