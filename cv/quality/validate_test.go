package quality

import (
	"reflect"
	"testing"

	"cvbuilder-backend/cv/model"
)

func completeParsedCV() model.ParsedCV {
	return model.ParsedCV{
		Title: "cv",
		PersonalInfo: model.PersonalInfo{
			FullName: "Nguyễn Văn An",
			Email:    "an@example.com",
			Phone:    "0912345678",
			Location: "Hà Nội",
			Summary:  "Backend engineer with five years of Go.",
		},
		Experiences: []model.Experience{
			{ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2021-03", EndDate: "Present", Description: "Built payment services"},
		},
		Educations: []model.Education{
			{ID: "d1", School: "HUST", Degree: "BEng", Field: "CS", StartDate: "2015-01", EndDate: "2019-01"},
		},
		Skills: []string{"Go", "SQL", "Docker"},
	}
}

func TestValidateCVCompleteIsValid(t *testing.T) {
	result := ValidateCV(completeParsedCV())

	if !result.IsValid {
		t.Fatalf("expected valid, errors = %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v, want none", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", result.Warnings)
	}
}

func TestValidateCVEmptyCV(t *testing.T) {
	result := ValidateCV(model.ParsedCV{})

	wantErrors := []string{"Full name is required", "Email is required"}
	if !reflect.DeepEqual(result.Errors, wantErrors) {
		t.Fatalf("errors = %v, want %v", result.Errors, wantErrors)
	}
	wantWarnings := []string{
		"Phone number is missing",
		"No work experience listed",
		"No education listed",
		"No skills listed",
	}
	if !reflect.DeepEqual(result.Warnings, wantWarnings) {
		t.Fatalf("warnings = %v, want %v", result.Warnings, wantWarnings)
	}
	if result.IsValid {
		t.Fatalf("expected invalid")
	}
}

func TestValidateCVPlaceholderNameIsError(t *testing.T) {
	cv := completeParsedCV()
	cv.PersonalInfo.FullName = model.Placeholder

	result := ValidateCV(cv)
	if result.IsValid {
		t.Fatalf("placeholder fullname must not validate")
	}
	if result.Errors[0] != "Full name is required" {
		t.Fatalf("errors = %v", result.Errors)
	}
}

func TestValidateCVInvalidEmailIsError(t *testing.T) {
	cv := completeParsedCV()
	cv.PersonalInfo.Email = "not-an-email"

	result := ValidateCV(cv)
	if result.IsValid {
		t.Fatalf("invalid email must not validate")
	}
	want := []string{"Email is not a valid address"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("errors = %v, want %v", result.Errors, want)
	}
}

func TestValidateCVEntryWarningsAreOrdered(t *testing.T) {
	cv := completeParsedCV()
	cv.Experiences = []model.Experience{
		{ID: "e1", StartDate: "bad-date", EndDate: "Present", Description: "x"},
	}
	cv.Educations = []model.Education{{ID: "d1"}}

	result := ValidateCV(cv)
	want := []string{
		"Experience 1 is missing a company",
		"Experience 1 is missing a position",
		"Experience 1 has an invalid start date",
		"Education 1 is missing a school",
		"Education 1 is missing a degree",
	}
	if !reflect.DeepEqual(result.Warnings, want) {
		t.Fatalf("warnings = %v, want %v", result.Warnings, want)
	}
	if !result.IsValid {
		t.Fatalf("warnings must not affect validity, errors = %v", result.Errors)
	}
}
