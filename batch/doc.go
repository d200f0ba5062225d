// Package batch fans a set of beat records out over a fixed worker pool,
// running the full analysis pipeline on each and collecting per-record
// outcomes.
//
// 🚀 What is batch?
//
//	Run takes N records and W workers and returns N outcomes in input
//	order. Each record is an isolated unit of work: a record that fails
//	(too little valid data, malformed beats) yields an error outcome
//	without disturbing its siblings, and the batch itself never fails.
//
// ✨ Key properties:
//   - Record granularity: one record is never split across workers, and
//     cancellation takes effect between records, not inside one
//   - A canceled context marks every not-yet-dispatched record with the
//     context error; records already picked up still finish
//   - Every failed outcome wraps a RecordError carrying the record ID,
//     on top of the underlying cause for errors.Is matching
//   - Progress is logged through log/slog under a per-run UUID
//
// ⚙️ Usage:
//
//	outcomes := batch.Run(ctx, records, hrvconf.Default(), 4)
//	for _, o := range outcomes {
//		if o.Err != nil {
//			log.Printf("%s: %v", o.RecordID, o.Err)
//			continue
//		}
//		fmt.Println(o.RecordID, o.Report.TimeDomain.Value("SDNN"))
//	}
package batch
