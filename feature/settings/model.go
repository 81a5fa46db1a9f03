package settings

import (
	"encoding/json"
	"fmt"
	"time"

	"data-verifier/core/reconcile"
)

// DefaultProfileName is the profile the compare endpoint uses.
const DefaultProfileName = "default"

// MappingProfile is the persisted column mapping configuration. Column
// lists are stored as JSON text so a profile survives schema-agnostic in a
// single row, matching how the configuration is edited as a whole.
type MappingProfile struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64" json:"name"`

	// SourceColumns and TargetColumns are JSON string arrays of equal
	// length; position i of each forms one compared pair.
	SourceColumns string `gorm:"type:text" json:"source_columns"`
	TargetColumns string `gorm:"type:text" json:"target_columns"`

	// KeyColumns is the number of leading pairs that form the row key.
	KeyColumns int `json:"key_columns"`

	// IncludeDuplicates is the default duplicate policy for runs using
	// this profile.
	IncludeDuplicates bool `json:"include_duplicates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (MappingProfile) TableName() string {
	return "mapping_profiles"
}

// NewDefaultProfile returns the profile created on first use.
func NewDefaultProfile() *MappingProfile {
	return &MappingProfile{
		Name:              DefaultProfileName,
		SourceColumns:     `["A","B","C","D","E"]`,
		TargetColumns:     `["A","B","C","D","E"]`,
		KeyColumns:        1,
		IncludeDuplicates: true,
	}
}

// Mapping builds the engine mapping from the stored column lists.
func (p *MappingProfile) Mapping() (reconcile.Mapping, error) {
	var sourceCols, targetCols []string
	if err := json.Unmarshal([]byte(p.SourceColumns), &sourceCols); err != nil {
		return reconcile.Mapping{}, fmt.Errorf("profile %q has invalid source columns: %w", p.Name, err)
	}
	if err := json.Unmarshal([]byte(p.TargetColumns), &targetCols); err != nil {
		return reconcile.Mapping{}, fmt.Errorf("profile %q has invalid target columns: %w", p.Name, err)
	}
	if len(sourceCols) != len(targetCols) {
		return reconcile.Mapping{}, fmt.Errorf("profile %q maps %d source columns to %d target columns",
			p.Name, len(sourceCols), len(targetCols))
	}

	pairs := make([]reconcile.ColumnPair, len(sourceCols))
	for i := range sourceCols {
		pairs[i] = reconcile.ColumnPair{Source: sourceCols[i], Target: targetCols[i]}
	}
	return reconcile.Mapping{Pairs: pairs, KeyColumns: p.KeyColumns}, nil
}

// SetColumns stores the column lists, validating shape up front so a broken
// profile can never be saved.
func (p *MappingProfile) SetColumns(sourceCols, targetCols []string) error {
	if len(sourceCols) == 0 {
		return fmt.Errorf("mapping needs at least one column pair")
	}
	if len(sourceCols) != len(targetCols) {
		return fmt.Errorf("source and target column lists differ in length (%d vs %d)",
			len(sourceCols), len(targetCols))
	}

	src, err := json.Marshal(sourceCols)
	if err != nil {
		return err
	}
	tgt, err := json.Marshal(targetCols)
	if err != nil {
		return err
	}
	p.SourceColumns = string(src)
	p.TargetColumns = string(tgt)
	return nil
}
