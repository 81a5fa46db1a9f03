package history

import (
	"time"

	"data-verifier/core/reconcile"
)

// Entry is one completed verification run.
type Entry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SourceFilename string `gorm:"size:255" json:"source_filename"`
	TargetFilename string `gorm:"size:255" json:"target_filename"`

	TotalKeys       int `json:"total_keys"`
	Matched         int `json:"matched"`
	Mismatched      int `json:"mismatched"`
	MissingInTarget int `json:"missing_in_target"`
	MissingInSource int `json:"missing_in_source"`

	// ResultObject is the object storage name of the exported workbook,
	// relative to the results prefix.
	ResultObject string `gorm:"size:255" json:"result_object"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Entry) TableName() string {
	return "verification_history"
}

// NewEntry builds a history entry from a run summary.
func NewEntry(sourceFilename, targetFilename, resultObject string, summary reconcile.Summary) *Entry {
	return &Entry{
		SourceFilename:  sourceFilename,
		TargetFilename:  targetFilename,
		TotalKeys:       summary.TotalKeysCompared,
		Matched:         summary.Matches,
		Mismatched:      summary.Mismatches,
		MissingInTarget: summary.MissingInTarget,
		MissingInSource: summary.MissingInSource,
		ResultObject:    resultObject,
	}
}
