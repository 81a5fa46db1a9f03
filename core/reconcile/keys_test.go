package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeys_OrdinalsInEncounterOrder(t *testing.T) {
	rows := []Row{
		{"id": "A"},
		{"id": "A"},
		{"id": "B"},
		{"id": "A"},
	}

	keys := BuildKeys(rows, []string{"id"})

	assert.Len(t, keys, 4)
	assert.Equal(t, RowKey{Tuple: []string{"A"}, Ordinal: 0}, keys[0])
	assert.Equal(t, RowKey{Tuple: []string{"A"}, Ordinal: 1}, keys[1])
	assert.Equal(t, RowKey{Tuple: []string{"B"}, Ordinal: 0}, keys[2])
	assert.Equal(t, RowKey{Tuple: []string{"A"}, Ordinal: 2}, keys[3])
}

// Identical tuples in one dataset always receive distinct ordinals.
func TestBuildKeys_OrdinalUniqueness(t *testing.T) {
	rows := make([]Row, 50)
	for i := range rows {
		rows[i] = Row{"id": "same", "seq": i}
	}

	keys := BuildKeys(rows, []string{"id"})

	seen := make(map[int]bool, len(keys))
	for i, k := range keys {
		assert.False(t, seen[k.Ordinal], "ordinal assigned twice")
		assert.Equal(t, i, k.Ordinal, "ordinals follow encounter order from zero")
		seen[k.Ordinal] = true
	}
}

// Keys are built from normalized values, so padding and numeric formatting
// differences collapse into the same tuple.
func TestBuildKeys_NormalizedTuples(t *testing.T) {
	rows := []Row{
		{"id": " 1 ", "region": "kr"},
		{"id": 1.0, "region": "kr"},
	}

	keys := BuildKeys(rows, []string{"id", "region"})

	assert.Equal(t, []string{"1", "kr"}, keys[0].Tuple)
	assert.Equal(t, 0, keys[0].Ordinal)
	assert.Equal(t, []string{"1", "kr"}, keys[1].Tuple)
	assert.Equal(t, 1, keys[1].Ordinal)
}

// The counter table is call-scoped: a second invocation over the same rows
// starts counting from zero again.
func TestBuildKeys_RunScopedCounters(t *testing.T) {
	rows := []Row{{"id": "A"}, {"id": "A"}}

	first := BuildKeys(rows, []string{"id"})
	second := BuildKeys(rows, []string{"id"})

	assert.Equal(t, first, second)
	assert.Equal(t, 0, second[0].Ordinal)
}

// A cell value containing the tuple separator byte must not collapse two
// distinct tuples into one ordinal counter.
func TestBuildKeys_SeparatorInCellValue(t *testing.T) {
	rows := []Row{
		{"k1": "a", "k2": "b\x1fc"},
		{"k1": "a\x1fb", "k2": "c"},
	}

	keys := BuildKeys(rows, []string{"k1", "k2"})

	assert.Equal(t, []string{"a", "b\x1fc"}, keys[0].Tuple)
	assert.Equal(t, 0, keys[0].Ordinal)
	assert.Equal(t, []string{"a\x1fb", "c"}, keys[1].Tuple)
	assert.Equal(t, 0, keys[1].Ordinal, "distinct tuples keep independent counters")
}

func TestBuildKeys_AbsentKeyColumn(t *testing.T) {
	rows := []Row{{"other": "x"}, {"other": "y"}}

	keys := BuildKeys(rows, []string{"id"})

	// Absent cells normalize to the empty string, producing one shared
	// tuple with sequential ordinals.
	assert.Equal(t, []string{""}, keys[0].Tuple)
	assert.Equal(t, 0, keys[0].Ordinal)
	assert.Equal(t, 1, keys[1].Ordinal)
}
