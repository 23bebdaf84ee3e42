// Package quality inspects a structured CV and produces the validation
// report, the completeness score, and the improvement advice shown in the
// upload preview. All functions are read-only views over one CV snapshot;
// check order is fixed so the output arrays are deterministic.
package quality

import (
	"fmt"
	"strings"

	"cvbuilder-backend/cv/model"
	"cvbuilder-backend/cv/normalize"
)

// ValidateCV checks a CV snapshot. Errors block validity; warnings never do.
// Checks run personal info first, then experience, education, and skills.
func ValidateCV(cv model.ParsedCV) model.ValidationResult {
	result := model.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if !cv.PersonalInfo.HasFullName() {
		result.Errors = append(result.Errors, "Full name is required")
	}
	email := strings.TrimSpace(cv.PersonalInfo.Email)
	switch {
	case email == "":
		result.Errors = append(result.Errors, "Email is required")
	case !normalize.ValidateEmail(email):
		result.Errors = append(result.Errors, "Email is not a valid address")
	}
	phone := strings.TrimSpace(cv.PersonalInfo.Phone)
	switch {
	case phone == "":
		result.Warnings = append(result.Warnings, "Phone number is missing")
	case !normalize.ValidatePhone(phone):
		result.Warnings = append(result.Warnings, "Phone number looks invalid")
	}

	if len(cv.Experiences) == 0 {
		result.Warnings = append(result.Warnings, "No work experience listed")
	}
	for i, exp := range cv.Experiences {
		if strings.TrimSpace(exp.Company) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Experience %d is missing a company", i+1))
		}
		if strings.TrimSpace(exp.Position) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Experience %d is missing a position", i+1))
		}
		if exp.StartDate != "" && !normalize.ValidateDate(exp.StartDate) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Experience %d has an invalid start date", i+1))
		}
		if exp.EndDate != "" && !normalize.ValidateDate(exp.EndDate) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Experience %d has an invalid end date", i+1))
		}
	}

	if len(cv.Educations) == 0 {
		result.Warnings = append(result.Warnings, "No education listed")
	}
	for i, edu := range cv.Educations {
		if strings.TrimSpace(edu.School) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Education %d is missing a school", i+1))
		}
		if strings.TrimSpace(edu.Degree) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Education %d is missing a degree", i+1))
		}
	}

	if len(cv.Skills) == 0 {
		result.Warnings = append(result.Warnings, "No skills listed")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
