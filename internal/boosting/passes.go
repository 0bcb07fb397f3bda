package boosting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// coreGroupNames mark skill groups that are obviously the primary technical
// bucket, checked before falling back to match counting.
var coreGroupNames = []string{"core", "technical", "languages", "technologies", "tools"}

// injectMissingSkills is pass one: add up to MaxSkillInjections missing
// required/preferred skills to the most relevant existing skill group.
func injectMissingSkills(cfg Config, doc *types.TailoredDocument, target *types.TargetProfile) (bool, string) {
	missing := missingTerms(doc, target)
	if len(missing) == 0 {
		return false, ""
	}
	if len(missing) > cfg.MaxSkillInjections {
		missing = missing[:cfg.MaxSkillInjections]
	}

	gi := relevantGroupIndex(doc, target)
	if gi < 0 {
		doc.SkillGroups = append(doc.SkillGroups, types.SkillGroup{Category: "Skills"})
		gi = len(doc.SkillGroups) - 1
	}
	doc.SkillGroups[gi].Skills = append(doc.SkillGroups[gi].Skills, missing...)

	return true, fmt.Sprintf("injected %d missing skills into %q: %s",
		len(missing), doc.SkillGroups[gi].Category, strings.Join(missing, ", "))
}

// relevantGroupIndex picks the skill group to inject into: a group with a
// recognizably core name wins; otherwise the group already containing the
// most target terms; otherwise the first group. Returns -1 when the document
// has no skill groups.
func relevantGroupIndex(doc *types.TailoredDocument, target *types.TargetProfile) int {
	if len(doc.SkillGroups) == 0 {
		return -1
	}

	for i, g := range doc.SkillGroups {
		name := strings.ToLower(g.Category)
		for _, core := range coreGroupNames {
			if strings.Contains(name, core) {
				return i
			}
		}
	}

	best, bestMatches := 0, -1
	for i, g := range doc.SkillGroups {
		groupText := strings.ToLower(strings.Join(g.Skills, " "))
		matches := 0
		for _, req := range target.RequiredSkills {
			if scoring.ContainsTermOrSynonym(groupText, req) {
				matches++
			}
		}
		if matches > bestMatches {
			best, bestMatches = i, matches
		}
	}
	return best
}

// weaveSummaryKeywords is pass two: weave the top still-missing keywords into
// the summary as a trailing clause.
func weaveSummaryKeywords(cfg Config, doc *types.TailoredDocument, target *types.TargetProfile) (bool, string) {
	missing := missingKeywords(doc, target)
	if len(missing) == 0 {
		return false, ""
	}
	if len(missing) > cfg.MaxKeywordWeave {
		missing = missing[:cfg.MaxKeywordWeave]
	}

	clause := "Hands-on with " + joinNatural(missing) + "."
	summary := strings.TrimSpace(doc.Summary)
	if summary == "" {
		doc.Summary = clause
	} else {
		if !strings.HasSuffix(summary, ".") {
			summary += "."
		}
		doc.Summary = summary + " " + clause
	}

	return true, fmt.Sprintf("wove %d keywords into the summary: %s",
		len(missing), strings.Join(missing, ", "))
}

// appendSkillBullet is pass three: append one skill-referencing bullet to the
// most recent role, respecting the bullets-per-role ceiling.
func appendSkillBullet(cfg Config, doc *types.TailoredDocument, target *types.TargetProfile) (bool, string) {
	if len(doc.Roles) == 0 {
		return false, ""
	}
	role := &doc.Roles[0] // roles are ordered most recent first
	if len(role.Bullets) >= cfg.MaxBulletsPerRole {
		return false, ""
	}

	missing := missingTerms(doc, target)
	if len(missing) == 0 {
		return false, ""
	}
	if len(missing) > 2 {
		missing = missing[:2]
	}

	bullet := "Applied " + joinNatural(missing) + " in recent project work to meet delivery goals"
	role.Bullets = append(role.Bullets, bullet)

	return true, fmt.Sprintf("appended a bullet referencing %s to the %s role",
		strings.Join(missing, ", "), role.Company)
}

// addRemainingSkillsGroup is the emergency pass: collect every remaining
// missing required/preferred skill into a dedicated group so the floor can
// still be reached.
func addRemainingSkillsGroup(doc *types.TailoredDocument, target *types.TargetProfile) (bool, string) {
	missing := missingTerms(doc, target)
	if len(missing) == 0 {
		return false, ""
	}

	doc.SkillGroups = append(doc.SkillGroups, types.SkillGroup{
		Category: "Additional Skills",
		Skills:   missing,
	})
	return true, fmt.Sprintf("emergency pass: added %d remaining skills to an Additional Skills group", len(missing))
}

// joinNatural joins terms as "a, b, and c".
func joinNatural(terms []string) string {
	switch len(terms) {
	case 0:
		return ""
	case 1:
		return terms[0]
	case 2:
		return terms[0] + " and " + terms[1]
	default:
		return strings.Join(terms[:len(terms)-1], ", ") + ", and " + terms[len(terms)-1]
	}
}
