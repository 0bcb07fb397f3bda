package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// bannedPhrases is the fixed filler/cliché list stripped from every text
// field. Matching is case-insensitive on word boundaries.
var bannedPhrases = []string{
	"team player",
	"results-driven",
	"results driven",
	"go-getter",
	"think outside the box",
	"thinking outside the box",
	"synergy",
	"self-starter",
	"detail-oriented",
	"detail oriented",
	"hard-working",
	"hard working",
	"proven track record",
	"dynamic individual",
	"passionate about",
	"fast-paced environment",
	"at the end of the day",
}

var bannedPatterns = buildBannedPatterns()

func buildBannedPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(bannedPhrases))
	for _, phrase := range bannedPhrases {
		// Optionally swallow a leading article so "a team player" does not
		// leave a stranded "a" behind.
		p := `(?i)(?:\b(?:a|an|the)\s+)?\b` + regexp.QuoteMeta(phrase) + `\b`
		patterns = append(patterns, regexp.MustCompile(p))
	}
	return patterns
}

var (
	doubleSpacePattern  = regexp.MustCompile(`\s{2,}`)
	strandedPunctuation = regexp.MustCompile(`\s+([,.;:])`)
	doubleCommaPattern  = regexp.MustCompile(`,\s*,`)
	strandedConjunction = regexp.MustCompile(`(?i)^(?:and|but|or|,)\s+`)
)

// stripBannedPhrases removes banned phrases from a single text value and
// cleans up the punctuation and whitespace left behind. Returns the cleaned
// text and the phrases that were removed.
func stripBannedPhrases(text string) (string, []string) {
	var removed []string
	cleaned := text
	for i, re := range bannedPatterns {
		if re.MatchString(cleaned) {
			cleaned = re.ReplaceAllString(cleaned, " ")
			removed = append(removed, bannedPhrases[i])
		}
	}
	if len(removed) == 0 {
		return text, nil
	}

	cleaned = doubleCommaPattern.ReplaceAllString(cleaned, ",")
	cleaned = strandedPunctuation.ReplaceAllString(cleaned, "$1")
	cleaned = doubleSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, ",;")
	cleaned = strandedConjunction.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	// Stripping must never erase a whole field; a field that was only filler
	// is left for a human to rewrite.
	if !hasContentWord(cleaned) {
		return text, nil
	}
	return cleaned, removed
}

// hasContentWord reports whether any letter or digit survives.
func hasContentWord(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return true
		}
	}
	return false
}

// removeBannedPhrases strips the banned-phrase list from every free-text
// field of the document, logging one issue per cleaned field.
func removeBannedPhrases(doc *types.TailoredDocument) []types.QualityIssue {
	var issues []types.QualityIssue

	clean := func(path string, value *string) {
		cleaned, removed := stripBannedPhrases(*value)
		if len(removed) == 0 {
			return
		}
		*value = cleaned
		issues = append(issues, types.QualityIssue{
			Kind:   types.IssueBannedPhrase,
			Path:   path,
			Detail: "removed: " + strings.Join(removed, ", "),
			Fixed:  true,
		})
	}

	clean("summary", &doc.Summary)
	clean("headline", &doc.Headline)
	for ri := range doc.Roles {
		for bi := range doc.Roles[ri].Bullets {
			clean(bulletPath(ri, bi), &doc.Roles[ri].Bullets[bi])
		}
	}
	for i := range doc.CoverLetter {
		clean(fmtPath("cover_letter", i), &doc.CoverLetter[i])
	}
	for i := range doc.RecruiterFeedback {
		clean(fmtPath("recruiter_feedback", i), &doc.RecruiterFeedback[i])
	}
	for i := range doc.NextActions {
		clean(fmtPath("next_actions", i), &doc.NextActions[i])
	}
	for i := range doc.ExperienceGaps {
		clean(fmtPath("experience_gaps", i), &doc.ExperienceGaps[i].Suggestion)
	}

	return issues
}
