package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Placeholder is rendered by the UI wherever a field could not be recovered
// from the source document. Fields never carry null; absence is this sentinel
// or the empty string.
const Placeholder = "Chưa có thông tin"

// PresentToken is the in-band representation of an ongoing date range.
const PresentToken = "Present"

// PersonalInfo holds best-effort contact and identity fields.
type PersonalInfo struct {
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
	AvatarURL string `json:"avatarUrl"`
}

// Experience is one work-history entry. ID is generated at extraction time
// and is used only for list identity, never for business logic.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one education entry, with the same identifier and
// ongoing-date conventions as Experience.
type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ParsedCV is the structured result of one document extraction. Title comes
// from the source filename, not from document content.
type ParsedCV struct {
	Title        string       `json:"title"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Educations   []Education  `json:"educations"`
	Skills       []string     `json:"skills"`
}

// CV is the persisted, editable record built from a ParsedCV. Later edits
// (including suggestion application) produce a new CV value with a fresh
// UpdatedAt; existing values are never mutated in place.
type CV struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Avatar *string `json:"avatar"`
	ParsedCV
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidationResult reports structural problems with a CV snapshot.
// IsValid is true iff Errors is empty; warnings never affect validity.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Suggestion is an externally produced improvement record. Suggestion text
// may carry an embedded Before/After convention; Section is free text matched
// case-insensitively against a fixed vocabulary.
type Suggestion struct {
	ID         string `json:"id"`
	Section    string `json:"section"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Type       string `json:"type"`
	LineNumber *int   `json:"lineNumber,omitempty"`
	Applied    bool   `json:"applied"`
}

// NewID returns a fresh unique identifier for CVs and their entries.
func NewID() string {
	return uuid.NewString()
}

// FromParsed builds a persistable CV from a parsed document.
func FromParsed(parsed ParsedCV, userID string, now time.Time) CV {
	return CV{
		ID:        NewID(),
		UserID:    userID,
		Avatar:    nil,
		ParsedCV:  parsed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the CV so callers can derive new values
// without sharing entry slices with the original.
func (c CV) Clone() CV {
	out := c
	out.Experiences = append([]Experience(nil), c.Experiences...)
	out.Educations = append([]Education(nil), c.Educations...)
	out.Skills = append([]string(nil), c.Skills...)
	if c.Avatar != nil {
		avatar := *c.Avatar
		out.Avatar = &avatar
	}
	return out
}

// HasFullName reports whether the CV carries a usable full name, treating
// the placeholder sentinel as absent.
func (p PersonalInfo) HasFullName() bool {
	name := strings.TrimSpace(p.FullName)
	return name != "" && name != Placeholder
}
