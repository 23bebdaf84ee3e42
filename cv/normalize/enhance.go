package normalize

import (
	"strings"

	"cvbuilder-backend/cv/model"
)

// EnhanceCV returns a new CV with every textual field cleaned, the email
// lower-cased, the phone reformatted for display, dates canonicalized, and
// the skill list de-duplicated. It performs no I/O and is idempotent.
func EnhanceCV(cv model.CV) model.CV {
	out := cv.Clone()

	out.PersonalInfo.FullName = CleanText(out.PersonalInfo.FullName)
	out.PersonalInfo.Email = strings.ToLower(CleanText(out.PersonalInfo.Email))
	out.PersonalInfo.Phone = FormatPhone(CleanText(out.PersonalInfo.Phone))
	out.PersonalInfo.Location = CleanText(out.PersonalInfo.Location)
	out.PersonalInfo.Summary = CleanText(out.PersonalInfo.Summary)

	for i := range out.Experiences {
		exp := &out.Experiences[i]
		exp.Company = CleanText(exp.Company)
		exp.Position = CleanText(exp.Position)
		exp.Description = CleanText(exp.Description)
		exp.StartDate = FormatDate(exp.StartDate)
		exp.EndDate = FormatDate(exp.EndDate)
	}

	for i := range out.Educations {
		edu := &out.Educations[i]
		edu.School = CleanText(edu.School)
		edu.Degree = CleanText(edu.Degree)
		edu.Field = CleanText(edu.Field)
		edu.StartDate = FormatDate(edu.StartDate)
		edu.EndDate = FormatDate(edu.EndDate)
	}

	out.Skills = DedupeSkills(out.Skills)
	return out
}

// DedupeSkills cleans each skill, drops empties, and removes duplicates
// while preserving first-seen order.
func DedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		cleaned := CleanText(skill)
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}
