package parse

import (
	"regexp"
	"strings"
)

var skillDelimiters = regexp.MustCompile(`[,;•\-|]`)

const (
	minSkillLen = 2
	maxSkillLen = 50
)

// ExtractSkills collects the skill section as a flat, de-duplicated list.
// Each in-section line is split on the common résumé delimiters and length
// filtered; first-seen order is preserved.
func ExtractSkills(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	inSection := false
	for _, line := range splitLines(text) {
		if !inSection {
			if isHeader(line, skillHeaders) {
				inSection = true
			}
			continue
		}
		if isHeader(line, experienceHeaders, educationHeaders, trailingHeaders) {
			break
		}

		for _, part := range skillDelimiters.Split(line, -1) {
			skill := strings.TrimSpace(part)
			if len(skill) <= minSkillLen || len(skill) >= maxSkillLen {
				continue
			}
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			out = append(out, skill)
		}
	}

	return out
}
