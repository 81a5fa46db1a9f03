package reconcile

// CompareRow evaluates every mapped column pair of one matched row pair and
// classifies the row. Comparison is exact string equality over normalized
// values: case-sensitive, whitespace-insensitive at the boundaries only.
// Key pairs are included in the field list; they compare equal by
// construction since both rows share the same normalized tuple.
func CompareRow(source, target Row, pairs []ColumnPair) (Status, []FieldResult) {
	status := StatusMatch
	fields := make([]FieldResult, len(pairs))

	for i, p := range pairs {
		sv := Normalize(source[p.Source])
		tv := Normalize(target[p.Target])
		equal := sv == tv
		if !equal {
			status = StatusMismatch
		}
		fields[i] = FieldResult{Pair: p, Source: sv, Target: tv, Equal: equal}
	}

	return status, fields
}
