package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(columns []string, rows ...Row) Dataset {
	return Dataset{Columns: columns, Rows: rows}
}

func idValueMapping() Mapping {
	return Mapping{Pairs: []ColumnPair{
		{Source: "id", Target: "id"},
		{Source: "v", Target: "v"},
	}}
}

func TestRun_EndToEnd(t *testing.T) {
	source := dataset([]string{"id", "v"},
		Row{"id": "1", "v": "a"},
		Row{"id": "2", "v": "b"},
	)
	target := dataset([]string{"id", "v"},
		Row{"id": "1", "v": "a"},
		Row{"id": "2", "v": "B"},
		Row{"id": "3", "v": "c"},
	)

	report, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: true})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.Equal(t, StatusMatch, report.Results[0].Status)
	assert.Equal(t, []string{"1"}, report.Results[0].Key.Tuple)

	assert.Equal(t, StatusMismatch, report.Results[1].Status)
	assert.Equal(t, []string{"v"}, report.Results[1].MismatchedColumns())
	assert.Equal(t, "b", report.Results[1].Fields[1].Source)
	assert.Equal(t, "B", report.Results[1].Fields[1].Target)

	assert.Equal(t, StatusMissingInSource, report.Results[2].Status)
	assert.Equal(t, []string{"3"}, report.Results[2].Key.Tuple)
	assert.Equal(t, -1, report.Results[2].SourceIndex)

	assert.Equal(t, Summary{
		TotalKeysCompared:    3,
		Matches:              1,
		Mismatches:           1,
		MissingInSource:      1,
		SourceRowsConsidered: 2,
		TargetRowsConsidered: 3,
	}, report.Summary)
}

// Source [A,A,B] against target [A,A]: with duplicates included both A rows
// pair by ordinal and B is missing in the target; with duplicates excluded
// the second A rows vanish from every count.
func TestRun_DuplicatePolicy(t *testing.T) {
	mapping := Mapping{Pairs: []ColumnPair{{Source: "id", Target: "id"}}}
	source := dataset([]string{"id"}, Row{"id": "A"}, Row{"id": "A"}, Row{"id": "B"})
	target := dataset([]string{"id"}, Row{"id": "A"}, Row{"id": "A"})

	t.Run("Included", func(t *testing.T) {
		report, err := Run(context.Background(), source, target, mapping, Options{IncludeDuplicates: true})
		require.NoError(t, err)
		require.Len(t, report.Results, 3)

		assert.Equal(t, StatusMatch, report.Results[0].Status)
		assert.Equal(t, 0, report.Results[0].Key.Ordinal)
		assert.Equal(t, StatusMatch, report.Results[1].Status)
		assert.Equal(t, 1, report.Results[1].Key.Ordinal)
		assert.Equal(t, StatusMissingInTarget, report.Results[2].Status)

		assert.Equal(t, 3, report.Summary.SourceRowsConsidered)
		assert.Equal(t, 2, report.Summary.TargetRowsConsidered)
	})

	t.Run("Excluded", func(t *testing.T) {
		report, err := Run(context.Background(), source, target, mapping, Options{})
		require.NoError(t, err)
		require.Len(t, report.Results, 2)

		assert.Equal(t, StatusMatch, report.Results[0].Status)
		assert.Equal(t, StatusMissingInTarget, report.Results[1].Status)

		assert.Equal(t, 2, report.Summary.SourceRowsConsidered)
		assert.Equal(t, 1, report.Summary.TargetRowsConsidered)
		assert.Equal(t, 2, report.Summary.TotalKeysCompared)
	})
}

func TestRun_ConfigurationError(t *testing.T) {
	source := dataset([]string{"id"}, Row{"id": "1"})
	target := dataset([]string{"id"}, Row{"id": "1"})

	tests := []struct {
		name    string
		mapping Mapping
	}{
		{"MissingColumn", Mapping{Pairs: []ColumnPair{{Source: "id", Target: "id"}, {Source: "nope", Target: "id2"}}}},
		{"DuplicateSourceColumn", Mapping{Pairs: []ColumnPair{{Source: "id", Target: "id"}, {Source: "id", Target: "id"}}}},
		{"NoPairs", Mapping{}},
		{"KeyCountTooLarge", Mapping{Pairs: []ColumnPair{{Source: "id", Target: "id"}}, KeyColumns: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Run(context.Background(), source, target, tt.mapping, Options{})
			assert.Nil(t, report)

			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

// An empty side is reported as an all-zero summary, not raised.
func TestRun_EmptyInput(t *testing.T) {
	source := dataset([]string{"id", "v"})
	target := dataset([]string{"id", "v"}, Row{"id": "1", "v": "a"})

	report, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: true})
	require.NoError(t, err)

	assert.Empty(t, report.Results)
	assert.Equal(t, Summary{}, report.Summary)
}

func TestRun_WhitespaceAndCasePolicy(t *testing.T) {
	source := dataset([]string{"id", "v"},
		Row{"id": "1", "v": " X "},
		Row{"id": "2", "v": "X"},
	)
	target := dataset([]string{"id", "v"},
		Row{"id": "1", "v": "X"},
		Row{"id": "2", "v": "x"},
	)

	report, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, StatusMatch, report.Results[0].Status, "boundary whitespace is ignored")
	assert.Equal(t, StatusMismatch, report.Results[1].Status, "comparison stays case-sensitive")
}

// Mapped columns may carry different names on each side.
func TestRun_RenamedColumns(t *testing.T) {
	mapping := Mapping{Pairs: []ColumnPair{
		{Source: "id", Target: "record_id"},
		{Source: "name", Target: "title"},
	}}
	source := dataset([]string{"id", "name"}, Row{"id": "1", "name": "alpha"})
	target := dataset([]string{"record_id", "title"}, Row{"record_id": "1", "title": "alpha"})

	report, err := Run(context.Background(), source, target, mapping, Options{IncludeDuplicates: true})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusMatch, report.Results[0].Status)
}

// Rows whose key cells contain the internal tuple separator byte stay
// distinct from any other tuple split.
func TestRun_SeparatorBearingKeyValues(t *testing.T) {
	mapping := Mapping{
		Pairs: []ColumnPair{
			{Source: "k1", Target: "k1"},
			{Source: "k2", Target: "k2"},
		},
		KeyColumns: 2,
	}
	source := dataset([]string{"k1", "k2"}, Row{"k1": "a", "k2": "b\x1fc"})
	target := dataset([]string{"k1", "k2"}, Row{"k1": "a\x1fb", "k2": "c"})

	report, err := Run(context.Background(), source, target, mapping, Options{IncludeDuplicates: true})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	assert.Equal(t, StatusMissingInTarget, report.Results[0].Status)
	assert.Equal(t, StatusMissingInSource, report.Results[1].Status)
	assert.Equal(t, 1, report.Summary.MissingInTarget)
	assert.Equal(t, 1, report.Summary.MissingInSource)
	assert.Zero(t, report.Summary.Matches)
	assert.Zero(t, report.Summary.Mismatches)
}

// matchCount + mismatchCount + missing counts always equals
// totalKeysCompared.
func TestRun_Conservation(t *testing.T) {
	source := dataset([]string{"id", "v"},
		Row{"id": "1", "v": "a"},
		Row{"id": "1", "v": "b"},
		Row{"id": "2", "v": "c"},
		Row{"id": "3", "v": "d"},
	)
	target := dataset([]string{"id", "v"},
		Row{"id": "1", "v": "a"},
		Row{"id": "2", "v": "zzz"},
		Row{"id": "4", "v": "e"},
	)

	for _, include := range []bool{true, false} {
		report, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: include})
		require.NoError(t, err)

		s := report.Summary
		assert.Equal(t, s.TotalKeysCompared, s.Matches+s.Mismatches+s.MissingInTarget+s.MissingInSource)
		assert.Len(t, report.Results, s.TotalKeysCompared)
	}
}

// Identical inputs produce identical output regardless of worker count.
func TestRun_Deterministic(t *testing.T) {
	source := dataset([]string{"id", "v"})
	target := dataset([]string{"id", "v"})
	for i := 0; i < 500; i++ {
		source.Rows = append(source.Rows, Row{"id": i % 120, "v": i})
		target.Rows = append(target.Rows, Row{"id": i % 150, "v": i})
	}

	baseline, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: true, Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 8, 1000} {
		report, err := Run(context.Background(), source, target, idValueMapping(), Options{IncludeDuplicates: true, Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, baseline.Summary, report.Summary)
		assert.Equal(t, baseline.Results, report.Results)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := dataset([]string{"id", "v"}, Row{"id": "1", "v": "a"})
	target := dataset([]string{"id", "v"}, Row{"id": "1", "v": "a"})

	report, err := Run(ctx, source, target, idValueMapping(), Options{IncludeDuplicates: true})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}
