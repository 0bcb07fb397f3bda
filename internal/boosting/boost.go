// Package boosting implements the closed-loop score booster: deterministic
// content injection passes that run until the tailored document's score beats
// the candidate's baseline by a configured margin or the pass budget runs out.
package boosting

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/consistency"
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Config holds the booster tunables.
type Config struct {
	// MinGain is the minimum improvement over the candidate's baseline score.
	MinGain int
	// Floor is the minimum acceptable absolute score.
	Floor int
	// MaxPasses bounds the injection loop.
	MaxPasses int
	// MaxSkillInjections caps skills added by the first pass.
	MaxSkillInjections int
	// MaxKeywordWeave caps keywords woven into the summary by the second pass.
	MaxKeywordWeave int
	// MaxBulletsPerRole is the ceiling the third pass must respect.
	MaxBulletsPerRole int
}

// DefaultConfig returns the standard booster tuning.
func DefaultConfig() Config {
	return Config{
		MinGain:            15,
		Floor:              45,
		MaxPasses:          3,
		MaxSkillInjections: 8,
		MaxKeywordWeave:    4,
		MaxBulletsPerRole:  6,
	}
}

// Result is the outcome of a boost run. Boost is total: a Result is always
// produced, and a residual gap is observable by comparing Before and After.
type Result struct {
	Document *types.TailoredDocument
	Before   *types.ScoreBreakdown
	After    *types.ScoreBreakdown
	Actions  []string
	Issues   []types.QualityIssue
}

// Boost runs the injection passes against the tailored document until its
// score reaches max(baseline+MinGain, Floor) or all passes are spent. The
// baseline is scored from the candidate's pre-tailoring profile. After every
// pass the consistency validator runs before re-scoring, so injected content
// immediately clears any insights it contradicts.
func Boost(cfg Config, doc *types.TailoredDocument, candidate *types.CandidateProfile, target *types.TargetProfile) *Result {
	before := scoring.Score(candidate.AsDocument(), target)

	goal := before.Overall + cfg.MinGain
	if goal < cfg.Floor {
		goal = cfg.Floor
	}
	if goal > 100 {
		goal = 100
	}

	res := &Result{Before: before}

	current, issues := consistency.Reconcile(doc)
	res.Issues = append(res.Issues, issues...)
	score := scoring.Score(current, target)

	passes := []func(Config, *types.TailoredDocument, *types.TargetProfile) (bool, string){
		injectMissingSkills,
		weaveSummaryKeywords,
		appendSkillBullet,
	}

	for i := 0; i < cfg.MaxPasses && i < len(passes); i++ {
		if score.Overall >= goal {
			break
		}
		changed, action := passes[i](cfg, current, target)
		if !changed {
			continue
		}
		res.Actions = append(res.Actions, action)

		current, issues = consistency.Reconcile(current)
		res.Issues = append(res.Issues, issues...)
		score = scoring.Score(current, target)
	}

	// Emergency pass: the absolute floor still matters even when the gain
	// goal is out of reach.
	if score.Overall < cfg.Floor {
		if changed, action := addRemainingSkillsGroup(current, target); changed {
			res.Actions = append(res.Actions, action)
			current, issues = consistency.Reconcile(current)
			res.Issues = append(res.Issues, issues...)
			score = scoring.Score(current, target)
		}
	}

	res.Document = current
	res.After = score
	return res
}

// missingTerms returns the target's required then preferred skills that the
// document does not yet contain, in target order.
func missingTerms(doc *types.TailoredDocument, target *types.TargetProfile) []string {
	fullText := doc.FullText()
	seen := make(map[string]bool)
	var missing []string

	add := func(raw string) {
		term := strings.TrimSpace(raw)
		if term == "" {
			return
		}
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		if !scoring.ContainsTermOrSynonym(fullText, term) {
			missing = append(missing, term)
		}
	}

	for _, s := range target.RequiredSkills {
		add(s)
	}
	for _, s := range target.PreferredSkills {
		add(s)
	}
	return missing
}

// missingKeywords returns target keywords absent from the document, in order.
func missingKeywords(doc *types.TailoredDocument, target *types.TargetProfile) []string {
	fullText := doc.FullText()
	var missing []string
	for _, kw := range target.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if !scoring.ContainsTermOrSynonym(fullText, kw) {
			missing = append(missing, kw)
		}
	}
	return missing
}
