// Package rec reads beat annotation files into rr.Beat sequences.
//
// 🚀 What is rec?
//
//	A line-oriented text format, one beat per line: the detection time in
//	seconds, optionally followed by a label. Blank lines and lines
//	starting with '#' are skipped.
//
//	  # subject01, lead II
//	  0.000
//	  0.812  normal
//	  1.601  ectopic
//	  2.430
//
// ✨ Key properties:
//   - Times must be strictly increasing; the reader rejects a
//     non-monotonic file rather than silently reordering it
//   - Unrecognized labels fail with a line-qualified error, so a typo in
//     an annotation file never passes as data
//
// ⚙️ Usage:
//
//	beats, err := rec.ReadFile("subject01.txt")
//	if err != nil { ... }
//	rep, err := pipeline.Run(ctx, "subject01", beats, cfg)
package rec
