// Package timedomain computes statistical descriptors of RR-interval
// variability over a corrected series.
//
// 🚀 What is timedomain?
//
//	The classical HRV statistics, computed over the full corrected series:
//	  • AVNN    — mean NN interval
//	  • SDNN    — standard deviation of NN intervals
//	  • RMSSD   — root mean square of successive differences
//	  • pNN50   — percentage of successive differences exceeding 50 ms
//	  • RangeNN — max − min NN interval
//
// ✨ Key properties:
//   - Only intervals labeled normal (or corrected equivalents) enter the
//     statistics; everything still flagged after correction is excluded
//     and counted in Result.Excluded
//   - Successive-difference metrics (RMSSD, pNN50) use only adjacent
//     interval pairs that are both valid — a flagged interval breaks the
//     pair, it does not bridge it
//   - SDNN ≥ 0 and RMSSD ≥ 0 always; SDNN = 0 iff all intervals are equal
//
// ⚙️ Usage:
//
//	res, err := timedomain.Analyze(series)
//	if err != nil {
//	  // handle rr.ErrEmptySeries
//	}
//	m, _ := res.Get("RMSSD")
//	fmt.Println(m.Value, m.Unit)
//
// Complexity: O(n) time, O(n) memory.
package timedomain
