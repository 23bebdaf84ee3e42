package quality

import (
	"strings"

	"cvbuilder-backend/cv/model"
	"cvbuilder-backend/cv/normalize"
)

// CompletenessScore computes the additive 0-100 completeness rubric.
// Experience and education score in two tiers: any entries at all, plus a
// bonus when at least one entry is fully filled in, so partial data entry is
// rewarded without requiring every entry to be complete.
func CompletenessScore(cv model.ParsedCV) int {
	score := 0

	if cv.PersonalInfo.HasFullName() {
		score += 10
	}
	if normalize.ValidateEmail(cv.PersonalInfo.Email) {
		score += 10
	}
	if normalize.ValidatePhone(cv.PersonalInfo.Phone) {
		score += 5
	}
	if location := strings.TrimSpace(cv.PersonalInfo.Location); location != "" && location != model.Placeholder {
		score += 5
	}
	if strings.TrimSpace(cv.PersonalInfo.Summary) != "" {
		score += 10
	}

	if len(cv.Experiences) > 0 {
		score += 15
		for _, exp := range cv.Experiences {
			if completeExperience(exp) {
				score += 15
				break
			}
		}
	}

	if len(cv.Educations) > 0 {
		score += 10
		for _, edu := range cv.Educations {
			if completeEducation(edu) {
				score += 10
				break
			}
		}
	}

	switch {
	case len(cv.Skills) >= 3:
		score += 10
	case len(cv.Skills) >= 1:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

func completeExperience(exp model.Experience) bool {
	return strings.TrimSpace(exp.Company) != "" &&
		strings.TrimSpace(exp.Position) != "" &&
		strings.TrimSpace(exp.StartDate) != "" &&
		strings.TrimSpace(exp.EndDate) != "" &&
		strings.TrimSpace(exp.Description) != ""
}

func completeEducation(edu model.Education) bool {
	return strings.TrimSpace(edu.School) != "" &&
		strings.TrimSpace(edu.Degree) != "" &&
		strings.TrimSpace(edu.Field) != "" &&
		strings.TrimSpace(edu.StartDate) != "" &&
		strings.TrimSpace(edu.EndDate) != ""
}
