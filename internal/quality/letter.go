package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var greetingPattern = regexp.MustCompile(`(?i)^\s*(?:dear|hello|hi|greetings|to whom it may concern)\b`)
var signoffPattern = regexp.MustCompile(`(?i)^\s*(?:sincerely|best regards|kind regards|warm regards|regards|respectfully|thank you for your (?:time|consideration)|yours)\b`)

// enforceLetterStructure enforces cover-letter shape: at most one greeting
// paragraph (always first), at most one signoff (always last), and no more
// than maxCoverParagraphs paragraphs. Interior paragraphs are merged when the
// letter runs long; greeting and signoff are never merged away.
func enforceLetterStructure(doc *types.TailoredDocument) []types.QualityIssue {
	if len(doc.CoverLetter) == 0 {
		return nil
	}

	var issues []types.QualityIssue
	var greeting, signoff string
	var body []string

	for i, para := range doc.CoverLetter {
		switch {
		case greetingPattern.MatchString(para):
			if greeting == "" {
				greeting = para
				if i != 0 {
					issues = append(issues, types.QualityIssue{
						Kind:   types.IssueStructural,
						Path:   fmtPath("cover_letter", i),
						Detail: "greeting moved to the first paragraph",
						Fixed:  true,
					})
				}
				continue
			}
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueStructural,
				Path:   fmtPath("cover_letter", i),
				Detail: "duplicate greeting paragraph removed",
				Fixed:  true,
			})
		case signoffPattern.MatchString(para):
			if signoff == "" {
				signoff = para
				continue
			}
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueStructural,
				Path:   fmtPath("cover_letter", i),
				Detail: "duplicate signoff paragraph removed",
				Fixed:  true,
			})
		default:
			body = append(body, para)
		}
	}

	// Merge interior paragraphs until the letter fits the ceiling.
	capacity := maxCoverParagraphs
	if greeting != "" {
		capacity--
	}
	if signoff != "" {
		capacity--
	}
	for len(body) > capacity && len(body) >= 2 {
		mid := len(body) / 2
		merged := strings.TrimSpace(body[mid-1]) + " " + strings.TrimSpace(body[mid])
		body = append(body[:mid-1], append([]string{merged}, body[mid+1:]...)...)
		issues = append(issues, types.QualityIssue{
			Kind:   types.IssueStructural,
			Path:   "cover_letter",
			Detail: "merged interior paragraphs to fit the paragraph ceiling",
			Fixed:  true,
		})
	}

	rebuilt := make([]string, 0, len(body)+2)
	if greeting != "" {
		rebuilt = append(rebuilt, greeting)
	}
	rebuilt = append(rebuilt, body...)
	if signoff != "" {
		rebuilt = append(rebuilt, signoff)
	}
	doc.CoverLetter = rebuilt

	return issues
}
