package parse

import (
	"regexp"
	"strings"

	"cvbuilder-backend/cv/model"
)

var (
	emailSearch = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// Vietnamese local or international phone, separators permitted.
	phoneSearch = regexp.MustCompile(`(?:\+84|84|0)(?:[\s.\-]?\d){9}`)
	longDigits  = regexp.MustCompile(`\d{9,}`)

	locationKeywords = []string{
		"địa chỉ",
		"nơi ở",
		"thành phố",
		"address",
		"location",
		"city",
	}
)

const (
	nameScanLines = 5
	minNameLen    = 3
	maxNameLen    = 50
)

// ExtractPersonalInfo pulls contact details out of the full text without a
// section state machine: email and phone are first-match regex scans, the
// full name is the first early line that looks like a person's name, and the
// location is the value of the first line carrying an address keyword.
// Summary and avatar are left for the user or the AI to fill in.
func ExtractPersonalInfo(text string) model.PersonalInfo {
	info := model.PersonalInfo{
		FullName: model.Placeholder,
		Location: model.Placeholder,
	}

	info.Email = emailSearch.FindString(text)
	info.Phone = strings.TrimSpace(phoneSearch.FindString(text))

	lines := splitLines(text)
	for i, line := range lines {
		if i >= nameScanLines {
			break
		}
		if looksLikeName(line) {
			info.FullName = line
			break
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, keyword := range locationKeywords {
			if strings.Contains(lower, keyword) {
				segments := strings.Split(line, ":")
				if value := strings.TrimSpace(segments[len(segments)-1]); value != "" {
					info.Location = value
				}
				return info
			}
		}
	}

	return info
}

// looksLikeName filters out titles and contact lines: a name has no email
// marker, no long digit run, a plausible length, and does not mention the
// document type.
func looksLikeName(line string) bool {
	if strings.Contains(line, "@") {
		return false
	}
	if longDigits.MatchString(line) {
		return false
	}
	if len(line) <= minNameLen || len(line) >= maxNameLen {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "cv") || strings.Contains(lower, "resume") {
		return false
	}
	return true
}
