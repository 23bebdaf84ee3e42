package parse

import "testing"

func TestExtractExperiencesStopsAtNextSection(t *testing.T) {
	text := "Kinh nghiệm\nAcme Corp\nEngineer\n2020-2022\nBuilt stuff\nHọc vấn\nXYZ University"

	experiences := ExtractExperiences(text)
	if len(experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(experiences))
	}

	exp := experiences[0]
	if exp.Company != "Acme Corp" {
		t.Fatalf("company = %q, want %q", exp.Company, "Acme Corp")
	}
	if exp.Position != "Engineer" {
		t.Fatalf("position = %q, want %q", exp.Position, "Engineer")
	}
	if exp.StartDate != "2020" || exp.EndDate != "2022" {
		t.Fatalf("dates = %q..%q, want 2020..2022", exp.StartDate, exp.EndDate)
	}
	if exp.Description != "Built stuff" {
		t.Fatalf("description = %q, want %q", exp.Description, "Built stuff")
	}
	for _, field := range []string{exp.Company, exp.Position, exp.Description} {
		if field == "XYZ University" {
			t.Fatalf("education content leaked into experience entry")
		}
	}
	if exp.ID == "" {
		t.Fatalf("expected a generated entry id")
	}
}

func TestExtractExperiencesDateFirstLayout(t *testing.T) {
	text := `Work History
03/2021 - 05/2023
Globex
Backend Developer
Shipped the billing service rewrite
2019
Initech
Intern`

	experiences := ExtractExperiences(text)
	if len(experiences) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(experiences))
	}

	first := experiences[0]
	if first.Company != "Globex" || first.Position != "Backend Developer" {
		t.Fatalf("first entry = %q / %q", first.Company, first.Position)
	}
	if first.StartDate != "03/2021" || first.EndDate != "05/2023" {
		t.Fatalf("first entry dates = %q..%q", first.StartDate, first.EndDate)
	}
	if first.Description != "Shipped the billing service rewrite" {
		t.Fatalf("first entry description = %q", first.Description)
	}

	second := experiences[1]
	if second.Company != "Initech" || second.Position != "Intern" {
		t.Fatalf("second entry = %q / %q", second.Company, second.Position)
	}
	if second.StartDate != "2019" || second.EndDate != "Present" {
		t.Fatalf("second entry dates = %q..%q", second.StartDate, second.EndDate)
	}
}

func TestExtractExperiencesOngoingRange(t *testing.T) {
	text := "Experience\n2022 - hiện tại\nWayne Enterprises\nSite Reliability Engineer"

	experiences := ExtractExperiences(text)
	if len(experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(experiences))
	}
	if experiences[0].StartDate != "2022" || experiences[0].EndDate != "Present" {
		t.Fatalf("dates = %q..%q, want 2022..Present", experiences[0].StartDate, experiences[0].EndDate)
	}
}

func TestExtractExperiencesNoHeader(t *testing.T) {
	text := "Nguyễn Văn An\nan@example.com\nHọc vấn\nHUST"
	if experiences := ExtractExperiences(text); len(experiences) != 0 {
		t.Fatalf("expected no experiences without a header, got %d", len(experiences))
	}
}

func TestExtractExperiencesJoinsDescriptionLines(t *testing.T) {
	text := `Experience
2020 - 2021
Acme Corp
Platform Engineer
Ran the Kubernetes migration
Cut deploy times from hours to minutes`

	experiences := ExtractExperiences(text)
	if len(experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(experiences))
	}
	want := "Ran the Kubernetes migration Cut deploy times from hours to minutes"
	if experiences[0].Description != want {
		t.Fatalf("description = %q, want %q", experiences[0].Description, want)
	}
}
