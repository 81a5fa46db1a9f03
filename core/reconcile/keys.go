package reconcile

// BuildKeys derives the matching key for every row, aligned one to one with
// input row order. The ordinal counter table is local to the call: it starts
// empty for every dataset of every run, is consulted and advanced once per
// row in strict encounter order, and is discarded afterwards. Ordinal
// assignment must stay sequential even if other per-row work is
// parallelized, because the ordinal of a row depends on every earlier row
// with the same tuple.
func BuildKeys(rows []Row, keyColumns []string) []RowKey {
	keys := make([]RowKey, len(rows))
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		tuple := make([]string, len(keyColumns))
		for j, col := range keyColumns {
			tuple[j] = Normalize(row[col])
		}
		id := tupleID(tuple)
		keys[i] = RowKey{Tuple: tuple, Ordinal: seen[id]}
		seen[id]++
	}

	return keys
}
