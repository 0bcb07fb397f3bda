// Package scoring computes a weighted multi-category match score for a
// tailored document against a target job profile, and derives blockers from
// the weakest categories.
package scoring

import (
	"regexp"
	"strings"
	"sync"
)

var (
	termPatternMu    sync.Mutex
	termPatternCache = make(map[string]*regexp.Regexp)
)

// termPattern returns a case-insensitive word-boundary pattern for a term.
// Terms containing non-word characters ("c++", "node.js", "ci/cd") cannot use
// \b on both sides, so those edges fall back to lookaround-free anchoring on
// whitespace or string edges.
func termPattern(term string) *regexp.Regexp {
	termPatternMu.Lock()
	defer termPatternMu.Unlock()

	if re, ok := termPatternCache[term]; ok {
		return re
	}

	quoted := regexp.QuoteMeta(strings.ToLower(term))
	left, right := `\b`, `\b`
	if !startsWordChar(term) {
		left = `(?:^|\s)`
	}
	if !endsWordChar(term) {
		right = `(?:$|\s|[,.;:)])`
	}

	re := regexp.MustCompile(`(?i)` + left + quoted + right)
	termPatternCache[term] = re
	return re
}

func startsWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func endsWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// ContainsTerm reports whether text contains term as a whole word,
// case-insensitive. This is the single matching primitive shared by the
// scorer, the consistency validator, and the booster, so "present" means the
// same thing everywhere.
func ContainsTerm(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" || text == "" {
		return false
	}
	return termPattern(term).MatchString(text)
}

// ContainsTermOrSynonym reports whether text contains the term or any entry
// from its synonym group.
func ContainsTermOrSynonym(text, term string) bool {
	if ContainsTerm(text, term) {
		return true
	}
	for _, syn := range synonymsFor(term) {
		if ContainsTerm(text, syn) {
			return true
		}
	}
	return false
}
