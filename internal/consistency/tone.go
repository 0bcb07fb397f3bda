package consistency

import (
	"regexp"

	"github.com/jonathan/resume-tailor/internal/types"
)

// toneSubstitutions rewrites discouraging phrasing into supportive phrasing.
// Applied to narrative and insight text only, never to factual fields.
var toneSubstitutions = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bweak match\b`), "opportunity for improvement"},
	{regexp.MustCompile(`(?i)\bpoor fit\b`), "developing fit"},
	{regexp.MustCompile(`(?i)\bfails to\b`), "has room to"},
	{regexp.MustCompile(`(?i)\bfalls short of\b`), "is still building toward"},
	{regexp.MustCompile(`(?i)\bunqualified\b`), "still building qualifications"},
	{regexp.MustCompile(`(?i)\bsignificant weakness\b`), "growth area"},
	{regexp.MustCompile(`(?i)\bmajor red flag\b`), "area to address"},
	{regexp.MustCompile(`(?i)\bunimpressive\b`), "understated"},
}

func softenText(text string) string {
	for _, sub := range toneSubstitutions {
		text = sub.pattern.ReplaceAllString(text, sub.replacement)
	}
	return text
}

// applyTone runs the substitution table over every narrative text field in
// place. Company names, titles, and periods are factual and left alone.
func applyTone(doc *types.TailoredDocument) {
	doc.Summary = softenText(doc.Summary)
	for i := range doc.CoverLetter {
		doc.CoverLetter[i] = softenText(doc.CoverLetter[i])
	}
	for i := range doc.RecruiterFeedback {
		doc.RecruiterFeedback[i] = softenText(doc.RecruiterFeedback[i])
	}
	for i := range doc.NextActions {
		doc.NextActions[i] = softenText(doc.NextActions[i])
	}
	for i := range doc.ExperienceGaps {
		doc.ExperienceGaps[i].Gap = softenText(doc.ExperienceGaps[i].Gap)
		doc.ExperienceGaps[i].Suggestion = softenText(doc.ExperienceGaps[i].Suggestion)
	}
	for i := range doc.KeywordChecklist {
		doc.KeywordChecklist[i].Suggestion = softenText(doc.KeywordChecklist[i].Suggestion)
	}
}
