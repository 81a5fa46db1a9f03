package reconcile

import (
	"context"
	"runtime"
	"sync"
)

// candidate ties a data row to its key and its original dataset index after
// optional duplicate filtering.
type candidate struct {
	row   Row
	key   RowKey
	index int
}

// Run executes one reconciliation run over the two datasets.
//
// The mapping is validated eagerly: a *ConfigurationError is returned before
// any per-row work if a mapped column is absent or named twice. An empty
// dataset on either side yields an all-zero report rather than an error, so
// a caller can still render a response. Every other outcome is data, never
// a failure; normalization is total.
//
// The context only carries caller-driven cancellation. There is no internal
// timeout, and an abandoned run leaves no state behind.
func Run(ctx context.Context, source, target Dataset, mapping Mapping, opts Options) (*Report, error) {
	if err := mapping.Validate(source, target); err != nil {
		return nil, err
	}

	if len(source.Rows) == 0 || len(target.Rows) == 0 {
		return &Report{Results: []RowResult{}}, nil
	}

	keyPairs := mapping.KeyPairs()
	srcKeyCols := make([]string, len(keyPairs))
	tgtKeyCols := make([]string, len(keyPairs))
	for i, p := range keyPairs {
		srcKeyCols[i] = p.Source
		tgtKeyCols[i] = p.Target
	}

	srcCands := buildCandidates(source.Rows, srcKeyCols, opts.IncludeDuplicates)
	tgtCands := buildCandidates(target.Rows, tgtKeyCols, opts.IncludeDuplicates)

	set := Match(keysOf(srcCands), keysOf(tgtCands))

	pairResults, err := compareAll(ctx, srcCands, tgtCands, set, mapping.Pairs, opts.Workers)
	if err != nil {
		return nil, err
	}

	return aggregate(srcCands, tgtCands, set, pairResults), nil
}

// buildCandidates assigns keys in strict encounter order and applies the
// duplicate policy. Rows dropped here are invisible to matching and to every
// summary count.
func buildCandidates(rows []Row, keyColumns []string, includeDuplicates bool) []candidate {
	keys := BuildKeys(rows, keyColumns)
	cands := make([]candidate, 0, len(rows))
	for i, row := range rows {
		if !includeDuplicates && keys[i].Ordinal > 0 {
			continue
		}
		cands = append(cands, candidate{row: row, key: keys[i], index: i})
	}
	return cands
}

func keysOf(cands []candidate) []RowKey {
	keys := make([]RowKey, len(cands))
	for i, c := range cands {
		keys[i] = c.key
	}
	return keys
}

// compareAll runs the comparison stage across a bounded worker pool. Each
// worker writes into its own slot of the result slice, so the merged output
// is identical regardless of scheduling or worker count.
func compareAll(ctx context.Context, src, tgt []candidate, set MatchSet, pairs []ColumnPair, workers int) ([]RowResult, error) {
	results := make([]RowResult, len(set.Pairs))
	if len(set.Pairs) == 0 {
		return results, ctx.Err()
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(set.Pairs) {
		workers = len(set.Pairs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := set.Pairs[i]
				s := src[p.SourceIndex]
				t := tgt[p.TargetIndex]
				status, fields := CompareRow(s.row, t.row, pairs)
				results[i] = RowResult{
					Key:         s.key,
					Status:      status,
					SourceIndex: s.index,
					TargetIndex: t.index,
					Fields:      fields,
				}
			}
		}()
	}

feed:
	for i := range set.Pairs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// aggregate orders the classified results and totals the summary. Matched
// and missing-in-target rows appear in source encounter order, then rows
// present only in the target follow in target order.
func aggregate(src, tgt []candidate, set MatchSet, pairResults []RowResult) *Report {
	results := make([]RowResult, 0, len(pairResults)+len(set.SourceOnly)+len(set.TargetOnly))

	pairAt := make(map[int]int, len(set.Pairs))
	for i, p := range set.Pairs {
		pairAt[p.SourceIndex] = i
	}

	for pos, c := range src {
		if i, ok := pairAt[pos]; ok {
			results = append(results, pairResults[i])
		} else {
			results = append(results, RowResult{
				Key:         c.key,
				Status:      StatusMissingInTarget,
				SourceIndex: c.index,
				TargetIndex: -1,
			})
		}
	}
	for _, pos := range set.TargetOnly {
		c := tgt[pos]
		results = append(results, RowResult{
			Key:         c.key,
			Status:      StatusMissingInSource,
			SourceIndex: -1,
			TargetIndex: c.index,
		})
	}

	summary := Summary{
		SourceRowsConsidered: len(src),
		TargetRowsConsidered: len(tgt),
	}
	for _, r := range results {
		summary.TotalKeysCompared++
		switch r.Status {
		case StatusMatch:
			summary.Matches++
		case StatusMismatch:
			summary.Mismatches++
		case StatusMissingInTarget:
			summary.MissingInTarget++
		case StatusMissingInSource:
			summary.MissingInSource++
		}
	}

	return &Report{Results: results, Summary: summary}
}
