package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository persists mapping profiles.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Active returns the default profile, creating it on first use so the
// compare endpoint always has a mapping to work with.
func (r *Repository) Active(ctx context.Context) (*MappingProfile, error) {
	var profile MappingProfile
	err := r.db.WithContext(ctx).Where("name = ?", DefaultProfileName).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := NewDefaultProfile()
		if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
			return nil, err
		}
		return created, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update persists the given profile fields onto the active profile.
func (r *Repository) Update(ctx context.Context, update *MappingProfile) (*MappingProfile, error) {
	profile, err := r.Active(ctx)
	if err != nil {
		return nil, err
	}

	profile.SourceColumns = update.SourceColumns
	profile.TargetColumns = update.TargetColumns
	profile.KeyColumns = update.KeyColumns
	profile.IncludeDuplicates = update.IncludeDuplicates

	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
