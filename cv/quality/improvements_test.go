package quality

import (
	"strings"
	"testing"

	"cvbuilder-backend/cv/model"
)

func TestSuggestImprovementsCompleteCVHasNone(t *testing.T) {
	if got := SuggestImprovements(completeParsedCV()); len(got) != 0 {
		t.Fatalf("suggestions = %v, want none", got)
	}
}

func TestSuggestImprovementsEmptyCV(t *testing.T) {
	got := SuggestImprovements(model.ParsedCV{})

	wantAdvice := []string{
		"Your CV is less than half complete. Fill in the missing sections to stand out.",
		"Add a short professional summary to introduce yourself.",
		"Add your work experience, starting with the most recent role.",
		"List at least three skills relevant to the jobs you want.",
	}
	if len(got) != len(wantAdvice)+4 {
		t.Fatalf("suggestions = %v", got)
	}
	for i, want := range wantAdvice {
		if got[i] != want {
			t.Fatalf("suggestion %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestSuggestImprovementsEchoesValidatorWarnings(t *testing.T) {
	cv := completeParsedCV()
	cv.PersonalInfo.Phone = ""

	got := SuggestImprovements(cv)
	found := false
	for _, s := range got {
		if s == warningMarker+"Phone number is missing" {
			found = true
		}
		if strings.HasPrefix(s, "Phone number") {
			t.Fatalf("warning %q missing its marker prefix", s)
		}
	}
	if !found {
		t.Fatalf("validator warning not echoed, suggestions = %v", got)
	}
}

func TestSuggestImprovementsMissingDescriptions(t *testing.T) {
	cv := completeParsedCV()
	cv.Experiences = append(cv.Experiences, model.Experience{
		ID: "e2", Company: "Beta Ltd", Position: "Developer", StartDate: "2019-01", EndDate: "2021-02",
	})

	got := SuggestImprovements(cv)
	want := "Describe what you achieved in each role, not just the title."
	found := false
	for _, s := range got {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions = %v, want %q present", got, want)
	}
}
