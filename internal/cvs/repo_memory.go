package cvs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Stored // userID -> records
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Stored),
	}
}

// Create stores a new record for a user.
func (r *MemoryRepo) Create(ctx context.Context, rec Stored) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.CV.UserID] = append(r.data[rec.CV.UserID], clone(rec))
	return nil
}

// GetByID returns a record by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, cvID string) (Stored, error) {
	if err := ctx.Err(); err != nil {
		return Stored{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.data[userID] {
		if rec.CV.ID == cvID {
			return clone(rec), nil
		}
	}
	return Stored{}, ErrNotFound
}

// ListByUser returns records for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Stored, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	records := make([]Stored, len(r.data[userID]))
	copy(records, r.data[userID])
	r.mu.RUnlock()

	if len(records) == 0 || offset >= len(records) {
		return []Stored{}, nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CV.CreatedAt.After(records[j].CV.CreatedAt)
	})

	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]Stored, 0, end-offset)
	for _, rec := range records[offset:end] {
		out = append(out, clone(rec))
	}
	return out, nil
}

// Update replaces the stored record matching the CV's id and owner.
func (r *MemoryRepo) Update(ctx context.Context, rec Stored) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.data[rec.CV.UserID]
	for i := range records {
		if records[i].CV.ID == rec.CV.ID {
			records[i] = clone(rec)
			return nil
		}
	}
	return ErrNotFound
}

func clone(rec Stored) Stored {
	rec.CV = rec.CV.Clone()
	return rec
}
