package parse

import "cvbuilder-backend/cv/model"

// ExtractEducations scans text for the education section. The shape mirrors
// ExtractExperiences: a date-range block delimits one entry, the first
// non-date line names the school, then degree, then field of study.
func ExtractEducations(text string) []model.Education {
	var (
		out     []model.Education
		current *model.Education
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.EndDate == "" {
			current.EndDate = model.PresentToken
		}
		out = append(out, *current)
		current = nil
	}

	inSection := false
	for _, line := range splitLines(text) {
		if !inSection {
			if isHeader(line, educationHeaders) {
				inSection = true
			}
			continue
		}
		if isHeader(line, skillHeaders, experienceHeaders, trailingHeaders) {
			break
		}

		if start, end, ok := dateRange(line); ok {
			if current != nil && current.StartDate != "" {
				flush()
			}
			if current == nil {
				current = &model.Education{ID: model.NewID()}
			}
			current.StartDate = start
			current.EndDate = end
			continue
		}

		if current == nil {
			if len(line) > minFieldLen {
				current = &model.Education{ID: model.NewID(), School: line}
			}
			continue
		}
		switch {
		case current.School == "" && len(line) > minFieldLen:
			current.School = line
		case current.Degree == "" && len(line) > minFieldLen:
			current.Degree = line
		case current.Field == "" && len(line) > minFieldLen:
			current.Field = line
		}
	}
	flush()

	return out
}
