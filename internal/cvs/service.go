package cvs

import (
	"context"
	"io"
	"time"

	"cvbuilder-backend/cv/model"
	"cvbuilder-backend/cv/normalize"
	"cvbuilder-backend/cv/parse"
	"cvbuilder-backend/cv/quality"
	"cvbuilder-backend/cv/suggest"
	"cvbuilder-backend/internal/extract"
	"cvbuilder-backend/internal/shared/metrics"
	"cvbuilder-backend/internal/shared/storage/object"
	"cvbuilder-backend/internal/shared/telemetry"
)

// Service contains the import and suggestion-application business logic.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// ImportResult is everything the import pipeline produces for one document.
type ImportResult struct {
	CV           model.CV
	Score        int
	Validation   model.ValidationResult
	Improvements []string
}

// QualityReport is the recomputed quality view of a stored CV.
type QualityReport struct {
	Score        int
	Validation   model.ValidationResult
	Improvements []string
}

// Import runs the full pipeline for one uploaded document: persist the
// original, decode it to text, extract the structured CV, canonicalize it,
// grade it, and store the result.
func (s *Service) Import(ctx context.Context, userID, fileName string, r io.Reader) (ImportResult, error) {
	if userID == "" || fileName == "" {
		return ImportResult{}, ErrInvalidInput
	}

	metrics.IncImportStarted()
	start := time.Now()

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, err
	}

	text, err := extract.TextFromStored(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, err
	}

	parsed, err := parse.Parse(text, fileName)
	if err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, err
	}

	cv := model.FromParsed(parsed, userID, time.Now().UTC())
	cv = normalize.EnhanceCV(cv)

	result := ImportResult{
		CV:           cv,
		Score:        quality.CompletenessScore(cv.ParsedCV),
		Validation:   quality.ValidateCV(cv.ParsedCV),
		Improvements: quality.SuggestImprovements(cv.ParsedCV),
	}

	if err := s.Repo.Create(ctx, Stored{CV: cv, Score: result.Score, SourceKey: storageKey}); err != nil {
		metrics.IncImportFailed()
		return ImportResult{}, err
	}

	metrics.IncImportCompleted()
	metrics.ObserveImportDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("cv.import.complete", map[string]any{
		"cv_id":       cv.ID,
		"user_id":     userID,
		"file_name":   fileName,
		"size_bytes":  size,
		"mime_type":   mimeType,
		"score":       result.Score,
		"experiences": len(cv.Experiences),
		"educations":  len(cv.Educations),
		"skills":      len(cv.Skills),
	})

	return result, nil
}

// List returns the user's CVs, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Stored, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Get returns one CV owned by the user.
func (s *Service) Get(ctx context.Context, userID, cvID string) (Stored, error) {
	if userID == "" || cvID == "" {
		return Stored{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, cvID)
}

// Quality recomputes validation, score, and improvement advice for a stored CV.
func (s *Service) Quality(ctx context.Context, userID, cvID string) (QualityReport, error) {
	rec, err := s.Get(ctx, userID, cvID)
	if err != nil {
		return QualityReport{}, err
	}
	return QualityReport{
		Score:        quality.CompletenessScore(rec.CV.ParsedCV),
		Validation:   quality.ValidateCV(rec.CV.ParsedCV),
		Improvements: quality.SuggestImprovements(rec.CV.ParsedCV),
	}, nil
}

// ApplySuggestion applies one suggestion record to a stored CV and persists
// the new value. An unrecognized section surfaces suggest.ErrUnknownSection
// and leaves the stored CV untouched.
func (s *Service) ApplySuggestion(ctx context.Context, userID, cvID string, sug model.Suggestion) (Stored, error) {
	rec, err := s.Get(ctx, userID, cvID)
	if err != nil {
		return Stored{}, err
	}

	updated, err := suggest.ApplySuggestion(rec.CV, sug, time.Now().UTC())
	if err != nil {
		metrics.IncSuggestionRejected()
		return Stored{}, err
	}

	out := Stored{
		CV:        updated,
		Score:     quality.CompletenessScore(updated.ParsedCV),
		SourceKey: rec.SourceKey,
	}
	if err := s.Repo.Update(ctx, out); err != nil {
		return Stored{}, err
	}

	metrics.IncSuggestionApplied()
	telemetry.Info("cv.suggestion.applied", map[string]any{
		"cv_id":   cvID,
		"user_id": userID,
		"section": sug.Section,
		"score":   out.Score,
	})
	return out, nil
}
