package parse

import (
	"errors"
	"path/filepath"
	"strings"

	"cvbuilder-backend/cv/model"
)

// ErrNoContent is returned when the decoded document holds no usable text.
var ErrNoContent = errors.New("could not extract content")

// Parse assembles a ParsedCV from the plain text of one document. The title
// is derived from the source filename, never from document content. Section
// extraction never fails; a layout the heuristics miss yields empty lists
// and placeholder fields.
func Parse(text, fileName string) (model.ParsedCV, error) {
	if strings.TrimSpace(text) == "" {
		return model.ParsedCV{}, ErrNoContent
	}

	return model.ParsedCV{
		Title:        titleFromFileName(fileName),
		PersonalInfo: ExtractPersonalInfo(text),
		Experiences:  ExtractExperiences(text),
		Educations:   ExtractEducations(text),
		Skills:       ExtractSkills(text),
	}, nil
}

func titleFromFileName(fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" || title == "." {
		return "CV"
	}
	return title
}
