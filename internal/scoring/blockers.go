package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// A category below this cutoff is eligible to become a blocker.
const blockerCutoff = 80

// Maximum number of blockers generated per breakdown.
const maxBlockers = 3

// Blockers synthesizes explanations for the weakest categories of a
// breakdown, worst first. Only categories scoring below the cutoff qualify;
// at most three are returned. Each blocker cites the category's own
// diagnostic signals so the remediation is concrete.
func Blockers(b *types.ScoreBreakdown) []types.Blocker {
	var blockers []types.Blocker
	for _, cat := range rankCategoriesAscending(b) {
		if len(blockers) >= maxBlockers {
			break
		}
		if cat.Score >= blockerCutoff {
			// Ascending order: every later category scores at least as high.
			break
		}
		blockers = append(blockers, buildBlocker(cat, &b.Diagnostics))
	}
	return blockers
}

func buildBlocker(cat types.CategoryScore, diag *types.ScoreDiagnostics) types.Blocker {
	switch cat.Category {
	case types.CategoryHardSkills:
		return hardSkillBlocker(cat, diag)
	case types.CategorySoftSkills:
		return types.Blocker{
			Category: cat.Category,
			Title:    "Low leadership signal",
			Why:      fmt.Sprintf("Only %d/100 of your bullets show leadership or communication verbs.", cat.Score),
			How:      "Rework bullets to open with verbs like led, mentored, coordinated, or presented where they reflect what you actually did.",
			Before:   "Worked on the migration project with the platform team",
			After:    "Led the migration project, coordinating rollout across the platform team",
		}
	case types.CategoryImpact:
		return impactBlocker(cat, diag)
	case types.CategoryKeywords:
		return keywordBlocker(cat, diag)
	case types.CategoryFormatting:
		return formattingBlocker(cat, diag)
	default:
		return types.Blocker{
			Category: cat.Category,
			Title:    "Weak category",
			Why:      fmt.Sprintf("This category scored %d/100.", cat.Score),
			How:      "Review the category's criteria and strengthen the relevant sections.",
		}
	}
}

func hardSkillBlocker(cat types.CategoryScore, diag *types.ScoreDiagnostics) types.Blocker {
	why := fmt.Sprintf("Hard-skill match scored %d/100.", cat.Score)
	how := "Add the role's required technologies where you have genuine experience with them."
	if len(diag.MissingRequired) > 0 {
		why = fmt.Sprintf("Required skills not found in your resume: %s.", strings.Join(diag.MissingRequired, ", "))
		how = fmt.Sprintf("Add %s to your skills section and reference them in relevant bullets.", strings.Join(diag.MissingRequired, ", "))
	} else if len(diag.MissingPreferred) > 0 {
		why = fmt.Sprintf("Preferred skills not found in your resume: %s.", strings.Join(diag.MissingPreferred, ", "))
		how = fmt.Sprintf("Mention %s if you have exposure to them.", strings.Join(diag.MissingPreferred, ", "))
	}
	return types.Blocker{
		Category: cat.Category,
		Title:    "Missing required skills",
		Why:      why,
		How:      how,
	}
}

func impactBlocker(cat types.CategoryScore, diag *types.ScoreDiagnostics) types.Blocker {
	blocker := types.Blocker{
		Category: cat.Category,
		Title:    "Bullets lack measurable impact",
		Why:      fmt.Sprintf("Measurable-impact density scored %d/100; most bullets carry no number a recruiter can anchor on.", cat.Score),
		How:      "Add a percentage, dollar figure, multiplier, or scale (users, requests) to each bullet where you can substantiate one.",
	}
	if diag.UnmetricedBullet != "" {
		blocker.Before = diag.UnmetricedBullet
		blocker.After = strings.TrimRight(diag.UnmetricedBullet, ".") + ", cutting processing time by 30%"
	}
	return blocker
}

func keywordBlocker(cat types.CategoryScore, diag *types.ScoreDiagnostics) types.Blocker {
	why := fmt.Sprintf("ATS keyword alignment scored %d/100.", cat.Score)
	how := "Mirror the job posting's terminology in your summary and skills section."
	if len(diag.MissingKeywords) > 0 {
		missing := diag.MissingKeywords
		if len(missing) > 5 {
			missing = missing[:5]
		}
		why = fmt.Sprintf("Job keywords absent from your resume include: %s.", strings.Join(missing, ", "))
		how = fmt.Sprintf("Work %s into your summary or skills section where they are truthful.", strings.Join(missing, ", "))
	}
	return types.Blocker{
		Category: cat.Category,
		Title:    "Keyword gaps for ATS screening",
		Why:      why,
		How:      how,
	}
}

func formattingBlocker(cat types.CategoryScore, diag *types.ScoreDiagnostics) types.Blocker {
	blocker := types.Blocker{
		Category: cat.Category,
		Title:    "Formatting and clarity issues",
		Why:      fmt.Sprintf("Formatting scored %d/100 due to overlong bullets, vague openers, or missing sections.", cat.Score),
		How:      "Keep bullets under one to two lines, open with a strong verb, and make sure summary and education sections exist.",
	}
	switch {
	case diag.VagueBullet != "":
		blocker.Before = diag.VagueBullet
		blocker.After = rewriteVagueOpener(diag.VagueBullet)
	case diag.LongBullet != "":
		blocker.Before = diag.LongBullet
	}
	return blocker
}

// rewriteVagueOpener produces the "after" example for a vague bullet by
// swapping the weak opener for a strong one.
func rewriteVagueOpener(bullet string) string {
	lower := strings.ToLower(bullet)
	for _, opener := range vagueOpeners {
		if strings.HasPrefix(lower, opener) {
			rest := strings.TrimSpace(bullet[len(opener):])
			if rest == "" {
				return bullet
			}
			return "Delivered " + rest
		}
	}
	return bullet
}
