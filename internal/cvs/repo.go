package cvs

import (
	"context"

	"cvbuilder-backend/cv/model"
)

// Stored pairs a CV with its persisted quality score and the storage key of
// the source document it was imported from.
type Stored struct {
	CV        model.CV
	Score     int
	SourceKey string
}

// Repo defines persistence operations for imported CVs.
type Repo interface {
	Create(ctx context.Context, rec Stored) error
	GetByID(ctx context.Context, userID, cvID string) (Stored, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Stored, error)
	Update(ctx context.Context, rec Stored) error
}
