package parse

import (
	"strings"

	"cvbuilder-backend/cv/model"
)

const (
	minFieldLen       = 2
	minDescriptionLen = 10
)

// ExtractExperiences scans text for the experience section and assembles one
// entry per date-range block. Lines are classified by position: the first
// non-date line names the company, the next the position, and longer
// remaining lines are joined into the description. A date line closes the
// in-progress entry only once that entry already carries a start date, so
// both date-first and company-first layouts assemble correctly.
func ExtractExperiences(text string) []model.Experience {
	var (
		out       []model.Experience
		current   *model.Experience
		descParts []string
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.EndDate == "" {
			current.EndDate = model.PresentToken
		}
		current.Description = strings.Join(descParts, " ")
		out = append(out, *current)
		current = nil
		descParts = nil
	}

	inSection := false
	for _, line := range splitLines(text) {
		if !inSection {
			if isHeader(line, experienceHeaders) {
				inSection = true
			}
			continue
		}
		if isHeader(line, educationHeaders, skillHeaders, trailingHeaders) {
			break
		}

		if start, end, ok := dateRange(line); ok {
			if current != nil && current.StartDate != "" {
				flush()
			}
			if current == nil {
				current = &model.Experience{ID: model.NewID()}
			}
			current.StartDate = start
			current.EndDate = end
			continue
		}

		if current == nil {
			if len(line) > minFieldLen {
				current = &model.Experience{ID: model.NewID(), Company: line}
			}
			continue
		}
		switch {
		case current.Company == "" && len(line) > minFieldLen:
			current.Company = line
		case current.Position == "" && len(line) > minFieldLen:
			current.Position = line
		case len(line) > minDescriptionLen:
			descParts = append(descParts, line)
		}
	}
	flush()

	return out
}
