package quality

import (
	"hash/fnv"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// endingSynonyms maps common bullet-final words to interchangeable
// replacements. Selection is a hash of the full bullet text, so the rewrite
// is deterministic for a given bullet.
var endingSynonyms = map[string][]string{
	"performance":   {"throughput", "efficiency"},
	"reliability":   {"stability", "resilience"},
	"efficiency":    {"throughput", "productivity"},
	"costs":         {"spend", "overhead"},
	"cost":          {"spend", "overhead"},
	"time":          {"turnaround", "cycle time"},
	"quality":       {"robustness", "consistency"},
	"productivity":  {"velocity", "output"},
	"experience":    {"usability", "satisfaction"},
	"growth":        {"adoption", "expansion"},
	"engagement":    {"retention", "participation"},
	"uptime":        {"availability", "stability"},
	"latency":       {"response times", "processing time"},
	"revenue":       {"income", "sales"},
	"scalability":   {"capacity", "elasticity"},
	"velocity":      {"throughput", "delivery pace"},
	"availability":  {"uptime", "resilience"},
	"satisfaction":    {"retention", "sentiment"},
	"maintainability": {"code health", "clarity"},
}

// trailingClauseOpeners mark a trailing subordinate clause that can be
// trimmed without losing the bullet's main claim.
var trailingClauseOpeners = []string{
	"which", "while", "ensuring", "allowing", "enabling", "helping", "making",
}

// endingKey returns the normalized final words of a bullet used to detect
// identical endings.
func endingKey(bullet string) string {
	words := strings.Fields(normalizeBullet(bullet))
	if len(words) == 0 {
		return ""
	}
	start := len(words) - endingWords
	if start < 0 {
		start = 0
	}
	return strings.Join(words[start:], " ")
}

// diversifyEndings rewrites bullets so no two bullets in a role end with the
// same final words. The first bullet with a given ending keeps it; later ones
// are rewritten by trimming a trailing subordinate clause or swapping the
// final word for a hash-selected synonym.
func diversifyEndings(doc *types.TailoredDocument) []types.QualityIssue {
	var issues []types.QualityIssue

	for ri := range doc.Roles {
		role := &doc.Roles[ri]
		seen := make(map[string]bool)

		for bi, bullet := range role.Bullets {
			key := endingKey(bullet)
			if key == "" || !seen[key] {
				seen[key] = true
				continue
			}

			rewritten, ok := rewriteEnding(bullet, seen)
			issue := types.QualityIssue{
				Kind:   types.IssueStructural,
				Path:   bulletPath(ri, bi),
				Detail: "bullet ends identically to an earlier bullet: \"..." + key + "\"",
				Fixed:  ok,
			}
			if ok {
				role.Bullets[bi] = rewritten
				seen[endingKey(rewritten)] = true
			}
			issues = append(issues, issue)
		}
	}

	return issues
}

// rewriteEnding attempts to change how a bullet ends, skipping any candidate
// whose ending is already taken by an earlier bullet in the role. It first
// tries to trim a trailing subordinate clause, then a synonym swap of the
// final word.
func rewriteEnding(bullet string, seen map[string]bool) (string, bool) {
	if trimmed, ok := trimTrailingClause(bullet); ok && !seen[endingKey(trimmed)] {
		return trimmed, true
	}
	return swapFinalWord(bullet, seen)
}

// trimTrailingClause drops a final ", which ..."-style clause when one exists
// and enough of the bullet remains to stand alone.
func trimTrailingClause(bullet string) (string, bool) {
	idx := strings.LastIndex(bullet, ",")
	if idx <= 0 {
		return "", false
	}

	clause := strings.TrimSpace(bullet[idx+1:])
	clauseLower := strings.ToLower(clause)
	opensClause := false
	for _, opener := range trailingClauseOpeners {
		if strings.HasPrefix(clauseLower, opener+" ") {
			opensClause = true
			break
		}
	}
	if !opensClause {
		return "", false
	}

	head := strings.TrimSpace(bullet[:idx])
	if len(strings.Fields(head)) < 4 {
		return "", false
	}
	return head, true
}

// swapFinalWord replaces the bullet's final word with a synonym chosen by the
// FNV hash of the bullet text, walking the synonym list from the hash index
// until one produces an ending not already in use. Returns false when no
// synonym group covers the final word or every synonym collides.
func swapFinalWord(bullet string, seen map[string]bool) (string, bool) {
	trimmed := strings.TrimRight(bullet, " .")
	hadPeriod := strings.HasSuffix(strings.TrimRight(bullet, " "), ".")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", false
	}

	last := strings.ToLower(fields[len(fields)-1])
	synonyms, ok := endingSynonyms[last]
	if !ok || len(synonyms) == 0 {
		return "", false
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(bullet))
	start := int(h.Sum32()) % len(synonyms)

	for i := 0; i < len(synonyms); i++ {
		fields[len(fields)-1] = synonyms[(start+i)%len(synonyms)]
		candidate := strings.Join(fields, " ")
		if hadPeriod {
			candidate += "."
		}
		if !seen[endingKey(candidate)] {
			return candidate, true
		}
	}
	return "", false
}
