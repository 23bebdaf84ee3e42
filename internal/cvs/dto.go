package cvs

import (
	"time"

	"cvbuilder-backend/cv/model"
)

// ImportResponse is the outward-facing result of one import.
type ImportResponse struct {
	CV           model.CV               `json:"cv"`
	Score        int                    `json:"score"`
	Validation   model.ValidationResult `json:"validation"`
	Improvements []string               `json:"improvements"`
}

// SummaryResponse is the list representation of a stored CV.
type SummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FullName  string    `json:"fullname"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QualityResponse is the recomputed quality view of a stored CV.
type QualityResponse struct {
	Score        int                    `json:"score"`
	Validation   model.ValidationResult `json:"validation"`
	Improvements []string               `json:"improvements"`
}

// ApplyResponse is returned after a suggestion is applied.
type ApplyResponse struct {
	CV    model.CV `json:"cv"`
	Score int      `json:"score"`
}

func toImportResponse(res ImportResult) ImportResponse {
	return ImportResponse{
		CV:           res.CV,
		Score:        res.Score,
		Validation:   res.Validation,
		Improvements: res.Improvements,
	}
}

func toSummary(rec Stored) SummaryResponse {
	return SummaryResponse{
		ID:        rec.CV.ID,
		Title:     rec.CV.Title,
		FullName:  rec.CV.PersonalInfo.FullName,
		Score:     rec.Score,
		CreatedAt: rec.CV.CreatedAt,
		UpdatedAt: rec.CV.UpdatedAt,
	}
}
