// Package suggest consumes the free-text improvement records produced by the
// AI service. Suggestion text may carry a loose "Before: '...' / After:
// '...'" diff convention; when no marker is present the whole text is taken
// as the proposed content, never treated as an error.
package suggest

import (
	"regexp"
	"strings"
)

var (
	afterQuoted  = regexp.MustCompile(`(?i)After:\s*'([^']*)'`)
	afterBare    = regexp.MustCompile(`(?i)After:\s*(.+)`)
	beforeQuoted = regexp.MustCompile(`(?i)Before:\s*'([^']*)'`)
)

// AfterContent extracts the proposed replacement text from a suggestion.
// Resolution order: a line starting with "After:", a quoted single-line
// capture, a quote-less capture, and finally the input itself.
func AfterContent(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 6 && strings.EqualFold(trimmed[:6], "after:") {
			return trimQuotes(strings.TrimSpace(trimmed[6:]))
		}
	}
	if m := afterQuoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := afterBare.FindStringSubmatch(text); m != nil {
		return trimQuotes(strings.TrimSpace(m[1]))
	}
	return text
}

// BeforeContent extracts the quoted "Before:" text, or "" when absent.
func BeforeContent(text string) string {
	if m := beforeQuoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// trimQuotes strips one layer of surrounding straight quotes.
func trimQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
