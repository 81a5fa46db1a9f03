// Package reconcile compares two tabular extracts (a source and a target)
// row by row and field by field, and classifies every row as matched,
// mismatched, or missing from one side.
//
// The engine is a pure batch computation over two already-parsed datasets:
// it performs no file, network, or database I/O. Parsing uploads into
// datasets and persisting or rendering the classified output are the concern
// of calling code.
//
// # Pipeline
//
// A run flows through five stages with strict data dependencies:
//
//  1. Normalize: render each raw cell into its canonical comparison form.
//  2. Key building: derive a (tuple, ordinal) RowKey per row, where the
//     ordinal counts earlier rows in the same dataset with an identical
//     normalized key tuple.
//  3. Matching: pair rows across datasets by exact (tuple, ordinal)
//     identity, leaving unmatched rows tagged to their side.
//  4. Comparison: evaluate every mapped column pair of each matched pair.
//  5. Aggregation: order the classified results and total the summary.
//
// # Duplicate keys
//
// Duplicate business keys are not collapsed. Because ordinals are assigned
// in encounter order per dataset, the first source row with a given key only
// ever pairs with the first target row with that key, the second with the
// second, and so on. Genuine count differences per key therefore surface as
// missing rows instead of silently dropping records. Selecting
// Options.IncludeDuplicates=false keeps only ordinal 0 of every key on both
// sides before matching; excluded rows appear in no summary count.
//
// # Run isolation
//
// All working state (ordinal counters, match indices) is owned by a single
// Run invocation. Concurrent runs need no locking.
//
// # Usage
//
//	report, err := reconcile.Run(ctx, source, target, reconcile.Mapping{
//	    Pairs: []reconcile.ColumnPair{
//	        {Source: "id", Target: "id"},
//	        {Source: "amount", Target: "amount"},
//	    },
//	}, reconcile.Options{IncludeDuplicates: true})
package reconcile
