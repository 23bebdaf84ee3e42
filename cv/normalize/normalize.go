// Package normalize holds the pure field normalizers shared by the parser,
// the enhancer, and the validator. Every function is total: unrecognized
// input passes through unchanged and is reported downstream as a validation
// warning, never as an error here.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"cvbuilder-backend/cv/model"
)

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern     = regexp.MustCompile(`^(\+?84|0)\d{9}$`)
	phoneSeparators  = regexp.MustCompile(`[\s.\-()]`)
	nonDigits        = regexp.MustCompile(`\D`)
	bareYearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthYearPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(\d{4})$`)
	yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	newlineRuns      = regexp.MustCompile(`[\r\n]+`)
	spaceRuns        = regexp.MustCompile(`[ \t]+`)
)

// ValidateEmail reports whether value is a syntactically valid email address.
func ValidateEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// ValidatePhone reports whether value is a Vietnamese-style phone number,
// with or without the +84 international prefix.
func ValidatePhone(value string) bool {
	compact := phoneSeparators.ReplaceAllString(strings.TrimSpace(value), "")
	return phonePattern.MatchString(compact)
}

// FormatPhone rewrites a recognized phone number into a grouped display
// form. Unrecognized shapes are returned unchanged.
func FormatPhone(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "84"):
		rest := digits[2:]
		return fmt.Sprintf("+84 %s-%s-%s", rest[0:3], rest[3:6], rest[6:9])
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		return fmt.Sprintf("%s-%s-%s", digits[0:3], digits[3:6], digits[6:10])
	default:
		return value
	}
}

// ValidateDate reports whether value is an accepted date form: "present"
// (any case), YYYY, M/YYYY, MM/YYYY, or YYYY-MM.
func ValidateDate(value string) bool {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, model.PresentToken) {
		return true
	}
	return bareYearPattern.MatchString(v) ||
		monthYearPattern.MatchString(v) ||
		yearMonthPattern.MatchString(v)
}

// FormatDate canonicalizes accepted date forms to YYYY-MM, padding the month
// and defaulting it to 01 for bare years. "present" maps to the Present
// token; anything else passes through unchanged.
func FormatDate(value string) string {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, model.PresentToken) {
		return model.PresentToken
	}
	if bareYearPattern.MatchString(v) {
		return v + "-01"
	}
	if m := monthYearPattern.FindStringSubmatch(v); m != nil {
		month := m[1]
		if len(month) == 1 {
			month = "0" + month
		}
		return m[2] + "-" + month
	}
	if yearMonthPattern.MatchString(v) {
		return v
	}
	return value
}

// CleanText collapses runs of spaces and tabs to one space, runs of line
// breaks to one newline, and trims the result.
func CleanText(value string) string {
	out := newlineRuns.ReplaceAllString(value, "\n")
	out = spaceRuns.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
