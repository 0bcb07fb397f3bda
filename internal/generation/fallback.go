package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// DeterministicSource builds a tailored document purely from the candidate
// and target profiles, without any external call. It is the gateway's
// fallback and doubles as the offline/mock source. Its output goes through
// the same structural validation, quality gate, and booster as the AI path.
type DeterministicSource struct{}

// NewDeterministicSource creates the fallback source.
func NewDeterministicSource() *DeterministicSource {
	return &DeterministicSource{}
}

// Name identifies the source in logs.
func (s *DeterministicSource) Name() string {
	return "deterministic"
}

// Invoke synthesizes the raw suggestion JSON. It never fails and ignores the
// context: everything is in-memory assembly.
func (s *DeterministicSource) Invoke(_ context.Context, req *Request) (string, error) {
	doc := buildFallbackDocument(req.Candidate, req.Target)
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fallback document: %w", err)
	}
	return string(payload), nil
}

// buildFallbackDocument assembles the document: the candidate's own content,
// reframed toward the target, plus honestly computed insight collections.
func buildFallbackDocument(candidate *types.CandidateProfile, target *types.TargetProfile) *types.TailoredDocument {
	doc := candidate.AsDocument()
	candidateText := doc.FullText()

	if doc.Headline == "" {
		doc.Headline = target.RoleTitle
	}
	if strings.TrimSpace(doc.Summary) == "" {
		doc.Summary = fallbackSummary(target, candidateText)
	}

	doc.CoverLetter = fallbackCoverLetter(candidate, target)
	doc.KeywordChecklist = fallbackChecklist(target, candidateText)
	doc.ExperienceGaps = fallbackGaps(target, candidateText)
	doc.RecruiterFeedback = fallbackFeedback(doc, target)
	doc.NextActions = fallbackNextActions(target, candidateText)

	return doc
}

func fallbackSummary(target *types.TargetProfile, candidateText string) string {
	matched := matchedSkills(target.RequiredSkills, candidateText)
	role := target.RoleTitle
	if role == "" {
		role = "the target role"
	}

	if len(matched) == 0 {
		return fmt.Sprintf("Professional preparing for %s, with a track record detailed in the experience below.", role)
	}
	if len(matched) > 3 {
		matched = matched[:3]
	}
	return fmt.Sprintf("Professional targeting %s, bringing hands-on experience with %s.", role, strings.Join(matched, ", "))
}

func fallbackCoverLetter(candidate *types.CandidateProfile, target *types.TargetProfile) []string {
	company := target.Company
	if company == "" {
		company = "your company"
	}
	role := target.RoleTitle
	if role == "" {
		role = "this role"
	}
	name := candidate.Name
	if name == "" {
		name = "The Candidate"
	}

	return []string{
		"Dear Hiring Manager,",
		fmt.Sprintf("I am writing to express my interest in the %s position at %s. My background aligns with the responsibilities described in the posting, and I would welcome the chance to contribute from day one.", role, company),
		fmt.Sprintf("Across my experience I have focused on delivering measurable results, and the priorities of %s match the kind of work I do best. I would value the opportunity to discuss how my skills map to your needs.", company),
		"Sincerely,\n" + name,
	}
}

func fallbackChecklist(target *types.TargetProfile, candidateText string) []types.KeywordCheck {
	var checks []types.KeywordCheck
	for _, kw := range target.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		check := types.KeywordCheck{Keyword: kw}
		if scoring.ContainsTermOrSynonym(candidateText, kw) {
			check.Found = true
			check.Section = "document"
		} else {
			check.Suggestion = fmt.Sprintf("Add %q to your skills section or a relevant bullet.", kw)
		}
		checks = append(checks, check)
	}
	return checks
}

func fallbackGaps(target *types.TargetProfile, candidateText string) []types.ExperienceGap {
	var gaps []types.ExperienceGap
	for _, skill := range target.RequiredSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" || scoring.ContainsTermOrSynonym(candidateText, skill) {
			continue
		}
		gaps = append(gaps, types.ExperienceGap{
			Gap:        fmt.Sprintf("Missing %s experience", skill),
			Suggestion: fmt.Sprintf("Highlight any project or training involving %s.", skill),
			Severity:   "high",
		})
	}
	for _, skill := range target.PreferredSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" || scoring.ContainsTermOrSynonym(candidateText, skill) {
			continue
		}
		gaps = append(gaps, types.ExperienceGap{
			Gap:        fmt.Sprintf("Missing %s experience", skill),
			Suggestion: fmt.Sprintf("Mention %s if you have any exposure to it.", skill),
			Severity:   "medium",
		})
	}
	return gaps
}

func fallbackFeedback(doc *types.TailoredDocument, target *types.TargetProfile) []string {
	feedback := []string{
		"Your experience section carries the application; make sure each bullet states a concrete outcome.",
	}
	if doc.TotalBullets() > 0 {
		feedback = append(feedback, "Lead every bullet with a strong action verb so the first word does the selling.")
	}
	if len(target.Keywords) > 0 {
		feedback = append(feedback, "Mirror the posting's own terminology; automated screens match exact wording.")
	}
	return feedback
}

func fallbackNextActions(target *types.TargetProfile, candidateText string) []string {
	actions := []string{"Review the tailored summary and adjust anything that overstates your experience."}
	matched := matchedSkills(target.RequiredSkills, candidateText)
	if len(matched) < len(target.RequiredSkills) {
		actions = append(actions, "Close the highest-severity experience gaps before submitting.")
	}
	actions = append(actions, "Proofread the cover letter and personalize the opening paragraph.")
	return actions
}

// matchedSkills returns the skills from the list that appear in the text.
func matchedSkills(skills []string, text string) []string {
	var matched []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if scoring.ContainsTermOrSynonym(text, s) {
			matched = append(matched, s)
		}
	}
	return matched
}

var _ Source = (*DeterministicSource)(nil)
