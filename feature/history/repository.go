package history

import (
	"context"

	"gorm.io/gorm"
)

// Repository persists verification history entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a completed run.
func (r *Repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns entries newest first.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Get returns one entry by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*Entry, error) {
	var entry Entry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes one entry by ID.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Entry{}, id).Error
}
