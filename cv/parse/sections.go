// Package parse turns the plain text recovered from an uploaded document
// into a structured CV. The extractors are deterministic line scanners: a
// section begins at a recognized header line and ends at the header of a
// following section. A missing header yields an empty result, never an
// error; résumé layouts this misses degrade to placeholder fields that the
// user fixes up after import.
package parse

import (
	"regexp"
	"strings"
)

// Header keyword tables. Matching is case-insensitive substring matching,
// guarded by a length cap so body text does not register as a header.
var (
	experienceHeaders = []string{
		"kinh nghiệm",
		"quá trình làm việc",
		"quá trình công tác",
		"experience",
		"employment",
		"work history",
	}
	educationHeaders = []string{
		"học vấn",
		"đào tạo",
		"bằng cấp",
		"education",
		"academic",
		"qualifications",
	}
	skillHeaders = []string{
		"kỹ năng",
		"chuyên môn",
		"skills",
		"competencies",
		"technologies",
	}
	trailingHeaders = []string{
		"dự án",
		"projects",
		"chứng chỉ",
		"certifications",
		"sở thích",
		"interests",
		"người tham chiếu",
		"references",
		"hoạt động",
		"activities",
	}
)

const maxHeaderLen = 60

// isHeader reports whether line is a section header for any of the given
// keyword tables.
func isHeader(line string, keywordTables ...[]string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, table := range keywordTables {
		for _, keyword := range table {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// splitLines returns the trimmed, non-empty lines of text in order.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var (
	// Ordered so "2020-2022" tokenizes as two bare years while a lone
	// "2021-03" is kept whole.
	dateToken    = regexp.MustCompile(`\d{1,2}/\d{4}|\d{4}-\d{2}\b|\d{4}`)
	ongoingToken = regexp.MustCompile(`(?i)present|hiện tại|đến nay|nay|current|now`)
	// Punctuation and range words allowed between date tokens.
	dateFiller = regexp.MustCompile(`(?i)[\s\-–—~,.()/:]|đến|từ|to|from`)
)

// dateRange recognizes a line consisting only of date tokens, ongoing
// markers, and separators. It returns the first token as the start date and
// the second (or the Present token) as the end date.
func dateRange(line string) (start, end string, ok bool) {
	tokens := dateToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return "", "", false
	}

	remainder := dateToken.ReplaceAllString(line, "")
	remainder = ongoingToken.ReplaceAllString(remainder, "")
	remainder = dateFiller.ReplaceAllString(remainder, "")
	if remainder != "" {
		return "", "", false
	}

	start = tokens[0]
	switch {
	case len(tokens) > 1:
		end = tokens[1]
	case ongoingToken.MatchString(line):
		end = "Present"
	default:
		end = "Present"
	}
	return start, end, true
}
