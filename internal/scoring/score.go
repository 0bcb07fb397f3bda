package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Category weights for the aggregate score. Must sum to 1.0.
const (
	hardSkillsWeight = 0.25
	softSkillsWeight = 0.15
	impactWeight     = 0.25
	keywordsWeight   = 0.20
	formattingWeight = 0.15
)

// Label thresholds for the aggregate score.
const (
	strongThreshold   = 75
	moderateThreshold = 50
)

// Tunables for individual category scorers.
const (
	requiredTermWeight = 2.0
	otherTermWeight    = 1.0
	neutralScore       = 50

	// 30% leadership density maps to a full soft-skill score.
	softDensityCeiling = 0.30

	// ATS alignment split: presence anywhere vs. placement in the skills section.
	keywordPresenceWeight  = 80.0
	keywordPlacementWeight = 20.0

	bulletLengthCeiling = 220
	maxSkillListSize    = 30
	formattingFloor     = 10

	longBulletPenalty       = 8
	vagueBulletPenalty      = 10
	missingSummaryPenalty   = 15
	missingEducationPenalty = 10
	oversizedSkillsPenalty  = 10
)

// weightedTerm is one hard-skill matching target with its weight.
type weightedTerm struct {
	term     string
	weight   float64
	required bool
}

// Score computes the five-category breakdown for a document against a target.
// Pure and deterministic: no I/O, no randomness, no clock.
func Score(doc *types.TailoredDocument, target *types.TargetProfile) *types.ScoreBreakdown {
	fullText := doc.FullText()
	skillsText := doc.SkillsText()

	b := &types.ScoreBreakdown{}
	b.HardSkills = scoreHardSkills(fullText, target, &b.Diagnostics)
	b.SoftSkills = scoreSoftSkills(doc)
	b.Impact = scoreImpact(doc, &b.Diagnostics)
	b.Keywords = scoreKeywords(fullText, skillsText, target, &b.Diagnostics)
	b.Formatting = scoreFormatting(doc, &b.Diagnostics)

	weighted := float64(b.HardSkills)*hardSkillsWeight +
		float64(b.SoftSkills)*softSkillsWeight +
		float64(b.Impact)*impactWeight +
		float64(b.Keywords)*keywordsWeight +
		float64(b.Formatting)*formattingWeight
	b.Overall = clampScore(int(math.Round(weighted)))
	b.Label = labelFor(b.Overall)

	return b
}

// labelFor maps an aggregate score to its discrete label. Thresholds are
// monotonic: Strong ≥ 75, Moderate ≥ 50, Weak below.
func labelFor(overall int) string {
	switch {
	case overall >= strongThreshold:
		return "Strong"
	case overall >= moderateThreshold:
		return "Moderate"
	default:
		return "Weak"
	}
}

// extractTerms collects the atomic skill terms from the target's required and
// preferred lists plus its keyword set. Required terms weigh double. Terms are
// deduplicated case-insensitively, required winning over preferred/keyword.
func extractTerms(target *types.TargetProfile) []weightedTerm {
	seen := make(map[string]int) // lowercase term -> index in result
	var terms []weightedTerm

	add := func(raw string, required bool) {
		term := strings.TrimSpace(raw)
		if term == "" || !isDomainTerm(term) {
			return
		}
		key := strings.ToLower(term)
		if i, ok := seen[key]; ok {
			if required && !terms[i].required {
				terms[i].required = true
				terms[i].weight = requiredTermWeight
			}
			return
		}
		weight := otherTermWeight
		if required {
			weight = requiredTermWeight
		}
		seen[key] = len(terms)
		terms = append(terms, weightedTerm{term: term, weight: weight, required: required})
	}

	for _, s := range target.RequiredSkills {
		add(s, true)
	}
	for _, s := range target.PreferredSkills {
		add(s, false)
	}
	for _, k := range target.Keywords {
		add(k, false)
	}

	return terms
}

// scoreHardSkills is the weighted hard-skill match: matched weight over total
// weight, synonyms honored, neutral 50 when the target names no terms.
func scoreHardSkills(fullText string, target *types.TargetProfile, diag *types.ScoreDiagnostics) int {
	terms := extractTerms(target)
	if len(terms) == 0 {
		return neutralScore
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, t := range terms {
		totalWeight += t.weight
		if ContainsTermOrSynonym(fullText, t.term) {
			matchedWeight += t.weight
			continue
		}
		if t.required {
			diag.MissingRequired = append(diag.MissingRequired, t.term)
		} else {
			diag.MissingPreferred = append(diag.MissingPreferred, t.term)
		}
	}

	return clampScore(int(math.Round(matchedWeight / totalWeight * 100)))
}

// scoreSoftSkills measures leadership/communication verb density across
// bullets, scaled so softDensityCeiling maps to 100.
func scoreSoftSkills(doc *types.TailoredDocument) int {
	total := 0
	withVerb := 0
	for _, role := range doc.Roles {
		for _, bullet := range role.Bullets {
			total++
			if hasLeadershipVerb(bullet) {
				withVerb++
			}
		}
	}
	if total == 0 {
		return 0
	}

	density := float64(withVerb) / float64(total)
	return clampScore(int(math.Round(density / softDensityCeiling * 100)))
}

// scoreImpact measures the fraction of bullets carrying a metric pattern.
func scoreImpact(doc *types.TailoredDocument, diag *types.ScoreDiagnostics) int {
	total := 0
	withMetric := 0
	for _, role := range doc.Roles {
		for _, bullet := range role.Bullets {
			total++
			if hasMetric(bullet) {
				withMetric++
			} else if diag.UnmetricedBullet == "" {
				diag.UnmetricedBullet = bullet
			}
		}
	}
	if total == 0 {
		return 0
	}

	return clampScore(int(math.Round(float64(withMetric) / float64(total) * 100)))
}

// scoreKeywords is the ATS alignment score: presence of target keywords
// anywhere in the text (80%) plus a placement bonus for keywords that also
// appear in the explicit skills section (20%).
func scoreKeywords(fullText, skillsText string, target *types.TargetProfile, diag *types.ScoreDiagnostics) int {
	if len(target.Keywords) == 0 {
		return neutralScore
	}

	present := 0
	placed := 0
	for _, kw := range target.Keywords {
		if ContainsTermOrSynonym(fullText, kw) {
			present++
		} else {
			diag.MissingKeywords = append(diag.MissingKeywords, kw)
		}
		if ContainsTermOrSynonym(skillsText, kw) {
			placed++
		}
	}

	n := float64(len(target.Keywords))
	score := float64(present)/n*keywordPresenceWeight + float64(placed)/n*keywordPlacementWeight
	return clampScore(int(math.Round(score)))
}

// scoreFormatting starts at 100 and deducts for overlong bullets, vague
// openers, a missing summary, missing education, and an oversized skill list.
// Floored at formattingFloor.
func scoreFormatting(doc *types.TailoredDocument, diag *types.ScoreDiagnostics) int {
	score := 100

	for _, role := range doc.Roles {
		for _, bullet := range role.Bullets {
			if len(bullet) > bulletLengthCeiling {
				score -= longBulletPenalty
				if diag.LongBullet == "" {
					diag.LongBullet = bullet
				}
			}
			if startsVague(bullet) {
				score -= vagueBulletPenalty
				if diag.VagueBullet == "" {
					diag.VagueBullet = bullet
				}
			}
		}
	}

	if strings.TrimSpace(doc.Summary) == "" {
		score -= missingSummaryPenalty
	}
	if len(doc.Education) == 0 {
		score -= missingEducationPenalty
	}

	skillCount := 0
	for _, g := range doc.SkillGroups {
		skillCount += len(g.Skills)
	}
	if skillCount > maxSkillListSize {
		score -= oversizedSkillsPenalty
	}

	if score < formattingFloor {
		score = formattingFloor
	}
	return score
}

// rankCategoriesAscending returns the five categories sorted worst first.
// Ties break on declaration order so the ranking is deterministic.
func rankCategoriesAscending(b *types.ScoreBreakdown) []types.CategoryScore {
	cats := b.Categories()
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Score < cats[j].Score
	})
	return cats
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
