// Package report defines the metric/result model shared by all analyzers
// and the aggregation join that assembles one HRVReport per record.
//
// 🚀 What is report?
//
//	The output side of the pipeline:
//	  • Metric   — name, numeric value, unit, validity flag
//	  • Result   — one analyzer's metric set plus its analysis window
//	  • HRVReport — correction provenance + the three analyzer results,
//	    stamped with a unique ID and creation time
//
// ✨ Key guarantees:
//   - A Metric is fully computed (Valid), computed under data limits
//     (Degraded), or explicitly Unavailable — it is never silently absent
//   - HRVReport is assembled once by Aggregate and never mutated after
//   - Aggregate performs pure composition; it fails only when a required
//     analyzer result is missing (ErrIncompleteAnalysis)
//
// ⚙️ Usage:
//
//	rep, err := report.Aggregate("subject01", corr, td, fd, nl)
//	if err != nil {
//	  // handle ErrIncompleteAnalysis
//	}
//	if m, ok := rep.TimeDomain.Get("SDNN"); ok && m.Validity == report.Valid {
//	  fmt.Println(m.Value, m.Unit)
//	}
package report
