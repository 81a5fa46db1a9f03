package reconcile

// MatchedPair associates a source row with the target row sharing its exact
// (tuple, ordinal) key. Indices refer to positions in the key slices handed
// to Match.
type MatchedPair struct {
	SourceIndex int `json:"source_index"`
	TargetIndex int `json:"target_index"`
}

// MatchSet is the outcome of the matching stage: matched pairs in source
// encounter order, plus the leftover rows of each side in their own
// encounter order.
type MatchSet struct {
	Pairs      []MatchedPair
	SourceOnly []int
	TargetOnly []int
}

// Match pairs source rows to target rows by exact (tuple, ordinal) identity.
// Two rows with the same business key but different ordinals never cross
// match: ordinal 0 of the source only ever pairs with ordinal 0 of the
// target. Because (tuple, ordinal) is unique within a dataset, the target
// index lookup is collision free.
func Match(sourceKeys, targetKeys []RowKey) MatchSet {
	targetByID := make(map[string]int, len(targetKeys))
	for i, k := range targetKeys {
		targetByID[k.id()] = i
	}

	set := MatchSet{}
	paired := make([]bool, len(targetKeys))

	for i, k := range sourceKeys {
		if j, ok := targetByID[k.id()]; ok {
			set.Pairs = append(set.Pairs, MatchedPair{SourceIndex: i, TargetIndex: j})
			paired[j] = true
		} else {
			set.SourceOnly = append(set.SourceOnly, i)
		}
	}

	for j := range targetKeys {
		if !paired[j] {
			set.TargetOnly = append(set.TargetOnly, j)
		}
	}

	return set
}
