package suggest

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"cvbuilder-backend/cv/model"
	"cvbuilder-backend/cv/normalize"
)

// ErrUnknownSection signals that a suggestion's section label matched no
// vocabulary entry and nothing was applied. Callers surface this as a
// user-facing "suggestion not applicable" notice.
var ErrUnknownSection = errors.New("unrecognized suggestion section")

type sectionKind int

const (
	sectionSummary sectionKind = iota
	sectionExperience
	sectionEducation
	sectionSkills
	sectionTitle
	sectionFullName
	sectionEmail
	sectionPhone
	sectionLocation
)

// sectionVocabulary maps normalized free-text section labels, English and
// Vietnamese, to a handler kind.
var sectionVocabulary = map[string]sectionKind{
	"summary":             sectionSummary,
	"personal info":       sectionSummary,
	"personal":            sectionSummary,
	"tóm tắt":             sectionSummary,
	"giới thiệu":          sectionSummary,
	"experience":          sectionExperience,
	"work experience":     sectionExperience,
	"kinh nghiệm":         sectionExperience,
	"kinh nghiệm làm việc": sectionExperience,
	"education":           sectionEducation,
	"học vấn":             sectionEducation,
	"skills":              sectionSkills,
	"skill":               sectionSkills,
	"kỹ năng":             sectionSkills,
	"title":               sectionTitle,
	"tiêu đề":             sectionTitle,
	"fullname":            sectionFullName,
	"full name":           sectionFullName,
	"name":                sectionFullName,
	"họ tên":              sectionFullName,
	"họ và tên":           sectionFullName,
	"email":               sectionEmail,
	"phone":               sectionPhone,
	"phone number":        sectionPhone,
	"số điện thoại":       sectionPhone,
	"location":            sectionLocation,
	"address":             sectionLocation,
	"địa chỉ":             sectionLocation,
}

var (
	companyMention = regexp.MustCompile(`(?i)(?:at|tại)\s+([^.]+)`)
	skillLabel     = regexp.MustCompile(`(?i)^[\p{L}\s]*skills?\s*:\s*`)
	skillSplitter  = regexp.MustCompile(`[,;•\-|\n]`)
)

// beforeMatchLen bounds the Before-text prefix used for description
// matching, mirroring the inexact matching the product has always shipped.
const beforeMatchLen = 30

// ApplySuggestion routes one suggestion to the matching CV field and returns
// a new CV stamped with now as its modification time. The input CV is never
// mutated. An unrecognized section returns ErrUnknownSection.
func ApplySuggestion(cv model.CV, sug model.Suggestion, now time.Time) (model.CV, error) {
	label := strings.ToLower(strings.TrimSpace(sug.Section))
	kind, ok := sectionVocabulary[label]
	if !ok {
		return model.CV{}, ErrUnknownSection
	}

	out := cv.Clone()
	after := strings.TrimSpace(AfterContent(sug.Suggestion))

	switch kind {
	case sectionSummary:
		if after != "" {
			out.PersonalInfo.Summary = after
		}
	case sectionExperience:
		applyToExperience(&out, sug, after)
	case sectionEducation:
		applyToEducation(&out, sug, after)
	case sectionSkills:
		out.Skills = mergeSkills(out.Skills, after)
	case sectionTitle:
		if after != "" {
			out.Title = after
		}
	case sectionFullName:
		if after != "" {
			out.PersonalInfo.FullName = after
		}
	case sectionEmail:
		if after != "" {
			out.PersonalInfo.Email = after
		}
	case sectionPhone:
		if after != "" {
			out.PersonalInfo.Phone = after
		}
	case sectionLocation:
		if after != "" {
			out.PersonalInfo.Location = after
		}
	}

	out.UpdatedAt = now
	return out, nil
}

// applyToExperience finds the entry a description suggestion is aimed at.
// Preference order: an explicit line number, a company name mentioned in the
// message, the Before-text prefix, and finally the first entry. Overwriting
// a possibly wrong entry is deliberate: a false-positive target beats
// silently dropping the suggestion, and callers needing certainty should
// send a line number.
func applyToExperience(cv *model.CV, sug model.Suggestion, after string) {
	if after == "" {
		return
	}
	if len(cv.Experiences) == 0 {
		cv.Experiences = append(cv.Experiences, model.Experience{
			ID:          model.NewID(),
			EndDate:     model.PresentToken,
			Description: after,
		})
		return
	}

	idx := 0
	switch {
	case sug.LineNumber != nil && *sug.LineNumber >= 0 && *sug.LineNumber < len(cv.Experiences):
		idx = *sug.LineNumber
	default:
		if i, ok := matchByCompany(cv.Experiences, sug.Message); ok {
			idx = i
		} else if i, ok := matchByBefore(cv.Experiences, sug.Suggestion); ok {
			idx = i
		}
	}
	cv.Experiences[idx].Description = after
}

func matchByCompany(experiences []model.Experience, message string) (int, bool) {
	m := companyMention.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	mentioned := strings.ToLower(strings.TrimSpace(m[1]))
	if mentioned == "" {
		return 0, false
	}
	for i, exp := range experiences {
		company := strings.ToLower(strings.TrimSpace(exp.Company))
		if company == "" {
			continue
		}
		if strings.Contains(company, mentioned) || strings.Contains(mentioned, company) {
			return i, true
		}
	}
	return 0, false
}

func matchByBefore(experiences []model.Experience, suggestionText string) (int, bool) {
	before := BeforeContent(suggestionText)
	if before == "" {
		return 0, false
	}
	prefix := []rune(before)
	if len(prefix) > beforeMatchLen {
		prefix = prefix[:beforeMatchLen]
	}
	needle := strings.ToLower(string(prefix))
	for i, exp := range experiences {
		if strings.Contains(strings.ToLower(exp.Description), needle) {
			return i, true
		}
	}
	return 0, false
}

// applyToEducation targets the entry at the suggestion's line number, else
// the first entry, and updates its degree; with no entries one is appended
// so the suggestion is not dropped.
func applyToEducation(cv *model.CV, sug model.Suggestion, after string) {
	if after == "" {
		return
	}
	if len(cv.Educations) == 0 {
		cv.Educations = append(cv.Educations, model.Education{
			ID:      model.NewID(),
			EndDate: model.PresentToken,
			Degree:  after,
		})
		return
	}
	idx := 0
	if sug.LineNumber != nil && *sug.LineNumber >= 0 && *sug.LineNumber < len(cv.Educations) {
		idx = *sug.LineNumber
	}
	cv.Educations[idx].Degree = after
}

// mergeSkills splits the after-content with the skill-list delimiter
// convention and unions it into the existing list; it never replaces the
// list wholesale.
func mergeSkills(existing []string, after string) []string {
	if after == "" {
		return existing
	}
	cleaned := skillLabel.ReplaceAllString(after, "")
	merged := append([]string(nil), existing...)
	for _, part := range skillSplitter.Split(cleaned, -1) {
		if skill := strings.TrimSpace(part); skill != "" {
			merged = append(merged, skill)
		}
	}
	return normalize.DedupeSkills(merged)
}
