package quality

import (
	"strings"

	"cvbuilder-backend/cv/model"
)

const warningMarker = "⚠️ "

// SuggestImprovements combines the completeness score, a handful of presence
// checks, and every validator warning into the human-readable advice list
// shown after import. Each validator warning appears verbatim behind the
// marker glyph.
func SuggestImprovements(cv model.ParsedCV) []string {
	out := []string{}

	if CompletenessScore(cv) < 50 {
		out = append(out, "Your CV is less than half complete. Fill in the missing sections to stand out.")
	}
	if strings.TrimSpace(cv.PersonalInfo.Summary) == "" {
		out = append(out, "Add a short professional summary to introduce yourself.")
	}
	if len(cv.Experiences) == 0 {
		out = append(out, "Add your work experience, starting with the most recent role.")
	} else {
		missingDescription := false
		for _, exp := range cv.Experiences {
			if strings.TrimSpace(exp.Description) == "" {
				missingDescription = true
				break
			}
		}
		if missingDescription {
			out = append(out, "Describe what you achieved in each role, not just the title.")
		}
	}
	if len(cv.Skills) < 3 {
		out = append(out, "List at least three skills relevant to the jobs you want.")
	}

	for _, warning := range ValidateCV(cv).Warnings {
		out = append(out, warningMarker+warning)
	}

	return out
}
