package suggest

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cvbuilder-backend/cv/model"
)

var applyNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func twoJobCV() model.CV {
	return model.CV{
		ID:     "cv-1",
		UserID: "user-1",
		ParsedCV: model.ParsedCV{
			Title: "cv",
			PersonalInfo: model.PersonalInfo{
				FullName: "Nguyễn Văn An",
				Email:    "an@example.com",
				Summary:  "Backend engineer",
			},
			Experiences: []model.Experience{
				{ID: "e1", Company: "Acme Corp", Position: "Engineer", StartDate: "2021-03", EndDate: "Present", Description: "did work"},
				{ID: "e2", Company: "Beta Ltd", Position: "Developer", StartDate: "2019-01", EndDate: "2021-02", Description: "maintained legacy systems"},
			},
			Educations: []model.Education{
				{ID: "d1", School: "HUST", Degree: "BEng", Field: "CS", StartDate: "2015-01", EndDate: "2019-01"},
			},
			Skills: []string{"Go", "SQL"},
		},
		CreatedAt: time.Unix(0, 0).UTC(),
		UpdatedAt: time.Unix(0, 0).UTC(),
	}
}

func TestApplySuggestionUnknownSection(t *testing.T) {
	cv := twoJobCV()
	snapshot := cv.Clone()

	_, err := ApplySuggestion(cv, model.Suggestion{Section: "hobbies", Suggestion: "After: 'chess'"}, applyNow)
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
	if !reflect.DeepEqual(cv, snapshot) {
		t.Fatalf("input CV was mutated on error")
	}
}

func TestApplySuggestionExperienceByCompanyMention(t *testing.T) {
	sug := model.Suggestion{
		Section:    "experience",
		Message:    "Experience at Acme Corp lacks metrics",
		Suggestion: "Before: 'did work' After: 'Increased output by 20%'",
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if out.Experiences[0].Description != "Increased output by 20%" {
		t.Fatalf("description = %q", out.Experiences[0].Description)
	}
	if out.Experiences[1].Description != "maintained legacy systems" {
		t.Fatalf("wrong entry touched: %q", out.Experiences[1].Description)
	}
	if !out.UpdatedAt.Equal(applyNow) {
		t.Fatalf("UpdatedAt = %v, want %v", out.UpdatedAt, applyNow)
	}
}

func TestApplySuggestionExperienceLineNumberWins(t *testing.T) {
	line := 1
	sug := model.Suggestion{
		Section:    "experience",
		Message:    "Experience at Acme Corp lacks metrics",
		Suggestion: "After: 'Modernized the legacy stack'",
		LineNumber: &line,
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if out.Experiences[1].Description != "Modernized the legacy stack" {
		t.Fatalf("description = %q", out.Experiences[1].Description)
	}
	if out.Experiences[0].Description != "did work" {
		t.Fatalf("line number must beat the company mention, entry 0 = %q", out.Experiences[0].Description)
	}
}

func TestApplySuggestionExperienceByBeforeText(t *testing.T) {
	sug := model.Suggestion{
		Section:    "experience",
		Message:    "This bullet is vague",
		Suggestion: "Before: 'maintained legacy systems' After: 'Cut incident volume in half'",
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if out.Experiences[1].Description != "Cut incident volume in half" {
		t.Fatalf("description = %q", out.Experiences[1].Description)
	}
}

func TestApplySuggestionExperienceFallsBackToFirstEntry(t *testing.T) {
	sug := model.Suggestion{
		Section:    "experience",
		Message:    "Add measurable outcomes",
		Suggestion: "After: 'Delivered three product launches'",
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if out.Experiences[0].Description != "Delivered three product launches" {
		t.Fatalf("description = %q", out.Experiences[0].Description)
	}
}

func TestApplySuggestionExperienceEmptyListAppends(t *testing.T) {
	cv := twoJobCV()
	cv.Experiences = nil
	sug := model.Suggestion{
		Section:    "kinh nghiệm",
		Suggestion: "After: 'Built internal tooling'",
	}

	out, err := ApplySuggestion(cv, sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if len(out.Experiences) != 1 {
		t.Fatalf("experiences = %d, want 1", len(out.Experiences))
	}
	entry := out.Experiences[0]
	if entry.Description != "Built internal tooling" || entry.EndDate != model.PresentToken || entry.ID == "" {
		t.Fatalf("appended entry = %+v", entry)
	}
}

func TestApplySuggestionEmptyAfterIsNoOp(t *testing.T) {
	sug := model.Suggestion{Section: "experience", Suggestion: "After: ''"}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	want := twoJobCV()
	if !reflect.DeepEqual(out.Experiences, want.Experiences) {
		t.Fatalf("experiences changed on empty after-content: %+v", out.Experiences)
	}
}

func TestApplySuggestionEducationOverwritesDegree(t *testing.T) {
	sug := model.Suggestion{
		Section:    "học vấn",
		Suggestion: "After: 'Master of Engineering'",
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if out.Educations[0].Degree != "Master of Engineering" {
		t.Fatalf("degree = %q", out.Educations[0].Degree)
	}
	if out.Educations[0].School != "HUST" {
		t.Fatalf("school must survive, got %q", out.Educations[0].School)
	}
}

func TestApplySuggestionSkillsUnionMerge(t *testing.T) {
	sug := model.Suggestion{
		Section:    "skills",
		Suggestion: "After: 'Recommended skills: Go, Docker, Kubernetes'",
	}

	out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	want := []string{"Go", "SQL", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(out.Skills, want) {
		t.Fatalf("skills = %v, want %v", out.Skills, want)
	}
}

func TestApplySuggestionScalarFields(t *testing.T) {
	cases := []struct {
		section string
		after   string
		read    func(model.CV) string
	}{
		{"summary", "Seasoned backend engineer", func(c model.CV) string { return c.PersonalInfo.Summary }},
		{"tóm tắt", "Kỹ sư phần mềm", func(c model.CV) string { return c.PersonalInfo.Summary }},
		{"title", "Senior Backend Engineer CV", func(c model.CV) string { return c.Title }},
		{"full name", "Nguyễn Văn Bình", func(c model.CV) string { return c.PersonalInfo.FullName }},
		{"email", "binh@example.com", func(c model.CV) string { return c.PersonalInfo.Email }},
		{"số điện thoại", "0987654321", func(c model.CV) string { return c.PersonalInfo.Phone }},
		{"địa chỉ", "Đà Nẵng", func(c model.CV) string { return c.PersonalInfo.Location }},
	}
	for _, tc := range cases {
		t.Run(tc.section, func(t *testing.T) {
			sug := model.Suggestion{Section: tc.section, Suggestion: "After: '" + tc.after + "'"}
			out, err := ApplySuggestion(twoJobCV(), sug, applyNow)
			if err != nil {
				t.Fatalf("ApplySuggestion(%q): %v", tc.section, err)
			}
			if got := tc.read(out); got != tc.after {
				t.Fatalf("section %q wrote %q, want %q", tc.section, got, tc.after)
			}
		})
	}
}

func TestApplySuggestionDoesNotMutateInput(t *testing.T) {
	cv := twoJobCV()
	snapshot := cv.Clone()
	sug := model.Suggestion{
		Section:    "experience",
		Message:    "Experience at Beta Ltd is thin",
		Suggestion: "After: 'Owned the release pipeline'",
	}

	if _, err := ApplySuggestion(cv, sug, applyNow); err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if !reflect.DeepEqual(cv, snapshot) {
		t.Fatalf("input CV was mutated")
	}
}
