package cvs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cvbuilder-backend/cv/model"
)

// PGRepo implements Repo using Postgres. The structured CV body lives in a
// jsonb column; id, owner, title, score, and timestamps are projected into
// real columns so listing never has to decode payloads it throws away.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new CV record.
func (r *PGRepo) Create(ctx context.Context, rec Stored) error {
	const query = `
INSERT INTO cvs (id, user_id, title, data, score, source_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	data, err := json.Marshal(rec.CV)
	if err != nil {
		return fmt.Errorf("marshal cv: %w", err)
	}

	var sourceKey sql.NullString
	if rec.SourceKey != "" {
		sourceKey = sql.NullString{String: rec.SourceKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.CV.ID,
		rec.CV.UserID,
		rec.CV.Title,
		data,
		rec.Score,
		sourceKey,
		rec.CV.CreatedAt,
		rec.CV.UpdatedAt,
	)
	return err
}

// GetByID returns one CV owned by the given user.
func (r *PGRepo) GetByID(ctx context.Context, userID, cvID string) (Stored, error) {
	const query = `
SELECT id, user_id, title, data, score, source_key, created_at, updated_at
FROM cvs
WHERE id = $1 AND user_id = $2`

	row := r.DB.QueryRowContext(ctx, query, cvID, userID)
	rec, err := scanStored(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Stored{}, ErrNotFound
		}
		return Stored{}, err
	}
	return rec, nil
}

// ListByUser returns the user's CVs, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Stored, error) {
	const query = `
SELECT id, user_id, title, data, score, source_key, created_at, updated_at
FROM cvs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Stored{}
	for rows.Next() {
		rec, err := scanStored(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update rewrites the CV payload, title, score, and updated_at.
func (r *PGRepo) Update(ctx context.Context, rec Stored) error {
	const query = `
UPDATE cvs
SET title = $3, data = $4, score = $5, updated_at = $6
WHERE id = $1 AND user_id = $2`

	data, err := json.Marshal(rec.CV)
	if err != nil {
		return fmt.Errorf("marshal cv: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		rec.CV.ID,
		rec.CV.UserID,
		rec.CV.Title,
		data,
		rec.Score,
		rec.CV.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStored(row rowScanner) (Stored, error) {
	var (
		rec       Stored
		id        string
		userID    string
		title     string
		data      []byte
		sourceKey sql.NullString
	)
	err := row.Scan(
		&id,
		&userID,
		&title,
		&data,
		&rec.Score,
		&sourceKey,
		&rec.CV.CreatedAt,
		&rec.CV.UpdatedAt,
	)
	if err != nil {
		return Stored{}, err
	}

	var cv model.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return Stored{}, fmt.Errorf("unmarshal cv %s: %w", id, err)
	}
	createdAt, updatedAt := rec.CV.CreatedAt, rec.CV.UpdatedAt
	rec.CV = cv
	// Columns are authoritative over the jsonb copy.
	rec.CV.ID = id
	rec.CV.UserID = userID
	rec.CV.Title = title
	rec.CV.CreatedAt = createdAt
	rec.CV.UpdatedAt = updatedAt
	if sourceKey.Valid {
		rec.SourceKey = sourceKey.String
	}
	return rec, nil
}
