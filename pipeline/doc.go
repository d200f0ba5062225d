// Package pipeline runs the full HRV analysis chain for one record:
// artifact correction, the three analyzers fanned out concurrently over
// the shared read-only series, and report aggregation.
//
// 🚀 What is pipeline?
//
//	Run is the one entry point:
//
//	  beats → artifact.Correct → IntervalSeries ─┬→ timedomain.Analyze ─┐
//	                                             ├→ freqdomain.Analyze ─┼→ report.Aggregate
//	                                             └→ nonlinear.Analyze  ─┘
//
// ✨ Key properties:
//   - The corrected series is immutable, so the three analyzers run on
//     separate goroutines without locks
//   - Data infeasibility inside one analyzer degrades that analyzer's
//     slot to an empty result set instead of failing the record; only
//     correction failure or a bad configuration fails the whole record
//   - Cancellation is checked at stage boundaries; a canceled context
//     fails the record with the context's error
//
// ⚙️ Usage:
//
//	rep, err := pipeline.Run(ctx, "subject01", beats, hrvconf.Default())
//	if err != nil { ... }
//	fmt.Println(rep.TimeDomain.Value("SDNN"))
package pipeline
