// Package consistency removes contradictions between a document's narrative
// insights and its actual content, and shifts discouraging phrasing to a
// supportive register. Factual fields (company, title, period) are never
// touched.
package consistency

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// absenceClaims match insight lines that assert a term is missing from the
// document. The first capture group is the claimed-absent term.
var absenceClaims = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmissing\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)\bno\s+(.+?)\s+(?:experience|demonstrated|mentioned|shown|listed)\b`),
	regexp.MustCompile(`(?i)\blacks?\s+(?:any\s+)?(.+)`),
	regexp.MustCompile(`(?i)\bdoes not\s+(?:mention|demonstrate|show|include)\s+(.+)`),
	regexp.MustCompile(`(?i)\bcould not find\s+(.+)`),
}

// claimNoiseWords are trailing qualifiers stripped from a claimed term before
// matching ("Kubernetes experience" claims "Kubernetes").
var claimNoiseWords = []string{
	"experience", "exposure", "skills", "skill", "expertise", "knowledge",
	"background", "examples", "mention", "mentions", "usage",
}

// claimedTerm extracts the term an insight line claims is absent. Returns ""
// when the line makes no absence claim.
func claimedTerm(text string) string {
	for _, re := range absenceClaims {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		term = strings.Trim(term, `"'.,;:`)
		// Claims usually end at sentence or clause punctuation.
		if idx := strings.IndexAny(term, ".,;("); idx > 0 {
			term = strings.TrimSpace(term[:idx])
		}
		term = trimClaimNoise(term)
		if term != "" {
			return term
		}
	}
	return ""
}

func trimClaimNoise(term string) string {
	words := strings.Fields(term)
	for len(words) > 1 {
		last := strings.ToLower(words[len(words)-1])
		noisy := false
		for _, noise := range claimNoiseWords {
			if last == noise {
				noisy = true
				break
			}
		}
		if !noisy {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// Reconcile returns a copy of the document with contradicted insights
// resolved: keyword-checklist entries are flipped to found, and absence
// claims in gaps, recruiter feedback, and next actions are removed when the
// claimed term is in fact present. Tone substitutions are applied last.
func Reconcile(doc *types.TailoredDocument) (*types.TailoredDocument, []types.QualityIssue) {
	out := doc.Clone()
	var issues []types.QualityIssue

	fullText := out.FullText()
	skillsText := out.SkillsText()

	for i := range out.KeywordChecklist {
		check := &out.KeywordChecklist[i]
		if check.Found || !scoring.ContainsTermOrSynonym(fullText, check.Keyword) {
			continue
		}
		check.Found = true
		check.Suggestion = ""
		if scoring.ContainsTermOrSynonym(skillsText, check.Keyword) {
			check.Section = "skills"
		}
		issues = append(issues, types.QualityIssue{
			Kind:   types.IssueContradiction,
			Path:   "keyword_checklist[" + check.Keyword + "]",
			Detail: "checklist claimed \"" + check.Keyword + "\" was missing but it is present",
			Fixed:  true,
		})
	}

	out.ExperienceGaps, issues = filterGaps(out.ExperienceGaps, fullText, issues)
	out.RecruiterFeedback, issues = filterClaims(out.RecruiterFeedback, "recruiter_feedback", fullText, issues)
	out.NextActions, issues = filterClaims(out.NextActions, "next_actions", fullText, issues)

	applyTone(out)

	return out, issues
}

// filterGaps drops experience-gap entries whose claimed-missing term now
// appears in the document.
func filterGaps(gaps []types.ExperienceGap, fullText string, issues []types.QualityIssue) ([]types.ExperienceGap, []types.QualityIssue) {
	kept := gaps[:0]
	for _, gap := range gaps {
		term := claimedTerm(gap.Gap)
		if term != "" && scoring.ContainsTermOrSynonym(fullText, term) {
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueContradiction,
				Path:   "experience_gaps",
				Detail: "gap \"" + gap.Gap + "\" contradicted by document content",
				Fixed:  true,
			})
			continue
		}
		kept = append(kept, gap)
	}
	return kept, issues
}

// filterClaims drops free-text insight lines whose absence claim is
// contradicted by the document.
func filterClaims(lines []string, field, fullText string, issues []types.QualityIssue) ([]string, []types.QualityIssue) {
	kept := lines[:0]
	for _, line := range lines {
		term := claimedTerm(line)
		if term != "" && scoring.ContainsTermOrSynonym(fullText, term) {
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueContradiction,
				Path:   field,
				Detail: "insight \"" + line + "\" contradicted by document content",
				Fixed:  true,
			})
			continue
		}
		kept = append(kept, line)
	}
	return kept, issues
}
