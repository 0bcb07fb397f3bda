package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
var whitespacePattern = regexp.MustCompile(`\s+`)

// normalizeBullet lowercases a bullet, strips punctuation, and collapses
// whitespace so near-duplicates normalize to comparable forms.
func normalizeBullet(bullet string) string {
	s := strings.ToLower(bullet)
	s = punctuationPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// wordSet returns the set of words in a normalized bullet.
func wordSet(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		set[w] = true
	}
	return set
}

// jaccard computes the Jaccard similarity of two word sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

var scaleLanguagePattern = regexp.MustCompile(`(?i)[%$]|\b\d+(?:\.\d+)?x\b|\b(?:million|billion|thousand)s?\b`)

// bulletStrength ranks a bullet for duplicate resolution: metric-bearing
// bullets outrank plain ones, longer outranks shorter.
func bulletStrength(bullet string) int {
	strength := len(bullet)
	if scaleLanguagePattern.MatchString(bullet) {
		strength += 1000
	}
	return strength
}

// dedupeBullets removes near-duplicate bullets within each role, keeping the
// stronger of each pair. Earlier bullets win ties so ordering is stable.
func dedupeBullets(doc *types.TailoredDocument) []types.QualityIssue {
	var issues []types.QualityIssue

	for ri := range doc.Roles {
		role := &doc.Roles[ri]
		if len(role.Bullets) < 2 {
			continue
		}

		sets := make([]map[string]bool, len(role.Bullets))
		for i, b := range role.Bullets {
			sets[i] = wordSet(normalizeBullet(b))
		}

		dropped := make([]bool, len(role.Bullets))
		for i := 0; i < len(role.Bullets); i++ {
			if dropped[i] {
				continue
			}
			for j := i + 1; j < len(role.Bullets); j++ {
				if dropped[j] {
					continue
				}
				if jaccard(sets[i], sets[j]) < duplicateThreshold {
					continue
				}
				// Near-duplicate pair: drop the weaker one.
				drop, keep := j, i
				if bulletStrength(role.Bullets[j]) > bulletStrength(role.Bullets[i]) {
					drop, keep = i, j
				}
				dropped[drop] = true
				issues = append(issues, types.QualityIssue{
					Kind:   types.IssueDuplicate,
					Path:   bulletPath(ri, drop),
					Detail: duplicateDetail(role.Bullets[drop], role.Bullets[keep]),
					Fixed:  true,
				})
				if drop == i {
					break
				}
			}
		}

		kept := role.Bullets[:0]
		for i, b := range role.Bullets {
			if !dropped[i] {
				kept = append(kept, b)
			}
		}
		role.Bullets = kept
	}

	return issues
}

func duplicateDetail(dropped, kept string) string {
	return "near-duplicate bullet removed: \"" + truncate(dropped, 60) + "\" (kept: \"" + truncate(kept, 60) + "\")"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
