package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is a single ingested record mapping column names to raw cell values.
// Values may be strings, numbers, booleans, byte slices, or nil for absent
// cells. Rows are treated as immutable once handed to the engine.
type Row map[string]any

// Dataset is an ordered tabular extract. The header row has already been
// consumed by the ingestion layer; Rows contains data rows only.
type Dataset struct {
	// Columns is the ordered list of column names from the header row.
	Columns []string `json:"columns"`

	// Rows holds the data rows in file order.
	Rows []Row `json:"rows"`
}

// HasColumn reports whether the dataset declares the named column.
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnPair names a source column and the target column it is compared
// against.
type ColumnPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Mapping configures which column pairs to compare. Pairs are ordered; the
// first KeyColumns pairs form the row key used for matching.
type Mapping struct {
	// Pairs is the ordered set of (source, target) column pairs.
	Pairs []ColumnPair `json:"pairs"`

	// KeyColumns is the number of leading pairs that form the row key.
	// Zero means one, matching the convention that the first selected
	// column is the record identifier.
	KeyColumns int `json:"key_columns"`
}

func (m Mapping) keyCount() int {
	if m.KeyColumns <= 0 {
		return 1
	}
	return m.KeyColumns
}

// KeyPairs returns the leading pairs that form the row key.
func (m Mapping) KeyPairs() []ColumnPair {
	return m.Pairs[:m.keyCount()]
}

// Validate checks the mapping against both datasets. It returns a
// *ConfigurationError describing every problem at once, so a caller can
// surface the full picture before any row work starts.
func (m Mapping) Validate(source, target Dataset) error {
	cfgErr := &ConfigurationError{}

	if len(m.Pairs) == 0 {
		cfgErr.Reason = "mapping has no column pairs"
		return cfgErr
	}
	if m.keyCount() > len(m.Pairs) {
		cfgErr.Reason = fmt.Sprintf("key_columns %d exceeds %d mapped pairs", m.KeyColumns, len(m.Pairs))
		return cfgErr
	}

	seenSource := make(map[string]bool, len(m.Pairs))
	seenTarget := make(map[string]bool, len(m.Pairs))
	for _, p := range m.Pairs {
		if seenSource[p.Source] {
			cfgErr.DuplicateColumns = append(cfgErr.DuplicateColumns, p.Source)
		}
		if seenTarget[p.Target] {
			cfgErr.DuplicateColumns = append(cfgErr.DuplicateColumns, p.Target)
		}
		seenSource[p.Source] = true
		seenTarget[p.Target] = true

		if !source.HasColumn(p.Source) {
			cfgErr.MissingSourceColumns = append(cfgErr.MissingSourceColumns, p.Source)
		}
		if !target.HasColumn(p.Target) {
			cfgErr.MissingTargetColumns = append(cfgErr.MissingTargetColumns, p.Target)
		}
	}

	if cfgErr.hasProblems() {
		return cfgErr
	}
	return nil
}

// ConfigurationError reports a mapping that cannot be applied to the given
// datasets. It is detected once, eagerly, before any per-row work.
type ConfigurationError struct {
	// MissingSourceColumns lists mapped columns absent from the source dataset.
	MissingSourceColumns []string

	// MissingTargetColumns lists mapped columns absent from the target dataset.
	MissingTargetColumns []string

	// DuplicateColumns lists columns named twice on one side of the mapping.
	DuplicateColumns []string

	// Reason holds a structural problem not tied to a specific column.
	Reason string
}

func (e *ConfigurationError) hasProblems() bool {
	return len(e.MissingSourceColumns) > 0 || len(e.MissingTargetColumns) > 0 ||
		len(e.DuplicateColumns) > 0 || e.Reason != ""
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return "invalid mapping: " + e.Reason
	}
	var parts []string
	if len(e.MissingSourceColumns) > 0 {
		parts = append(parts, "missing in source: "+strings.Join(e.MissingSourceColumns, ", "))
	}
	if len(e.MissingTargetColumns) > 0 {
		parts = append(parts, "missing in target: "+strings.Join(e.MissingTargetColumns, ", "))
	}
	if len(e.DuplicateColumns) > 0 {
		parts = append(parts, "mapped twice: "+strings.Join(e.DuplicateColumns, ", "))
	}
	return "invalid mapping: " + strings.Join(parts, "; ")
}

// tupleSep separates tuple elements inside a key identity string.
const tupleSep = "\x1f"

// tupleID folds a key tuple into one map identity string. Elements are
// quoted before joining, so a cell value containing the separator byte can
// never make two distinct tuples produce the same identity.
func tupleID(tuple []string) string {
	var b strings.Builder
	for i, v := range tuple {
		if i > 0 {
			b.WriteString(tupleSep)
		}
		b.WriteString(strconv.Quote(v))
	}
	return b.String()
}

// RowKey identifies a row for matching: the normalized values of the key
// columns plus a zero-based occurrence ordinal. Within one dataset the
// (tuple, ordinal) combination is unique, which lets duplicate business keys
// still match one to one in encounter order.
type RowKey struct {
	// Tuple holds the normalized key column values in mapping order.
	Tuple []string `json:"tuple"`

	// Ordinal counts earlier rows in the same dataset with an identical
	// tuple, starting at zero.
	Ordinal int `json:"ordinal"`
}

// id returns the map identity of this key, folding tuple and ordinal into
// one string.
func (k RowKey) id() string {
	return tupleID(k.Tuple) + tupleSep + "#" + strconv.Itoa(k.Ordinal)
}

// Status classifies the outcome for one row key.
type Status string

const (
	// StatusMatch means every mapped column pair compared equal.
	StatusMatch Status = "Match"
	// StatusMismatch means at least one mapped column pair differed.
	StatusMismatch Status = "Mismatch"
	// StatusMissingInTarget means the key exists only in the source dataset.
	StatusMissingInTarget Status = "Missing_in_Target"
	// StatusMissingInSource means the key exists only in the target dataset.
	StatusMissingInSource Status = "Missing_in_Source"
)

// FieldResult is the outcome of one mapped column pair within a matched row
// pair. Values are stored in normalized form.
type FieldResult struct {
	Pair   ColumnPair `json:"pair"`
	Source string     `json:"source"`
	Target string     `json:"target"`
	Equal  bool       `json:"equal"`
}

// RowResult classifies one row key's outcome.
type RowResult struct {
	// Key is the matching key this result belongs to.
	Key RowKey `json:"key"`

	// Status is the row classification.
	Status Status `json:"status"`

	// SourceIndex is the zero-based data row index in the source dataset,
	// or -1 when the row exists only in the target.
	SourceIndex int `json:"source_index"`

	// TargetIndex is the zero-based data row index in the target dataset,
	// or -1 when the row exists only in the source.
	TargetIndex int `json:"target_index"`

	// Fields holds the ordered per-pair outcomes for matched rows; nil for
	// missing rows.
	Fields []FieldResult `json:"fields,omitempty"`
}

// MismatchedColumns returns the source column names of every unequal field.
func (r RowResult) MismatchedColumns() []string {
	var cols []string
	for _, f := range r.Fields {
		if !f.Equal {
			cols = append(cols, f.Pair.Source)
		}
	}
	return cols
}

// Summary totals one reconciliation run. It is derived from the result set
// and never mutated after construction. The four classification counts
// always sum to TotalKeysCompared.
type Summary struct {
	TotalKeysCompared    int `json:"total_keys_compared"`
	Matches              int `json:"matches"`
	Mismatches           int `json:"mismatches"`
	MissingInTarget      int `json:"missing_in_target"`
	MissingInSource      int `json:"missing_in_source"`
	SourceRowsConsidered int `json:"source_rows_considered"`
	TargetRowsConsidered int `json:"target_rows_considered"`
}

// Report is the full output of one run: classified results in deterministic
// order plus the summary.
type Report struct {
	Results []RowResult `json:"results"`
	Summary Summary     `json:"summary"`
}

// Options controls engine behavior for one run.
type Options struct {
	// IncludeDuplicates keeps every occurrence of a duplicate key when
	// true. When false, only ordinal 0 of each key is retained on both
	// sides, and excluded rows appear in no summary count.
	IncludeDuplicates bool

	// Workers bounds the comparison worker pool. Zero or negative means
	// one worker per CPU. Output is identical regardless of this value.
	Workers int
}
