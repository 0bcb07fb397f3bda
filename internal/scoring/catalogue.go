package scoring

import (
	"regexp"
	"strings"
)

// The rule tables below are deliberately declarative: each scorer walks its
// table rather than embedding patterns inline, so catalogues can grow without
// touching scoring logic.

// synonymGroups maps each member of a synonym group to every spelling of the
// group. Matching is symmetric: asking for any member finds the others.
var synonymGroups = [][]string{
	{"kubernetes", "k8s"},
	{"gcp", "google cloud", "google cloud platform"},
	{"aws", "amazon web services"},
	{"azure", "microsoft azure"},
	{"javascript", "js"},
	{"typescript", "ts"},
	{"golang", "go"},
	{"postgres", "postgresql"},
	{"ci/cd", "continuous integration", "continuous delivery"},
	{"ml", "machine learning"},
	{"terraform", "iac", "infrastructure as code"},
	{"grpc", "protocol buffers", "protobuf"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, group := range synonymGroups {
		for _, member := range group {
			var others []string
			for _, other := range group {
				if other != member {
					others = append(others, other)
				}
			}
			idx[member] = others
		}
	}
	return idx
}

// synonymsFor returns the other spellings of the term's synonym group, or nil.
func synonymsFor(term string) []string {
	return synonymIndex[strings.ToLower(strings.TrimSpace(term))]
}

// domainTermPattern recognizes atomic skill/tech terms inside free text such
// as the target's keyword set. A term qualifies if it looks like a technology
// token: capitalized product names, dotted/slashed tech names, or known
// lowercase tech words.
var domainTermPattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9+#./_-]*[a-z0-9+#]$|^[a-z]$`)

// knownDomainTerms whitelists common multi-word technology names that the
// single-token pattern above would miss.
var knownDomainTerms = []string{
	"google cloud", "amazon web services", "machine learning", "data engineering",
	"distributed systems", "event sourcing", "infrastructure as code",
	"site reliability", "natural language processing", "computer vision",
	"protocol buffers", "continuous integration", "continuous delivery",
}

// isDomainTerm reports whether a candidate string can be treated as an atomic
// skill/tech term for hard-skill matching.
func isDomainTerm(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	for _, known := range knownDomainTerms {
		if s == known {
			return true
		}
	}
	// Short phrases of up to three tokens still count (e.g. "unit testing");
	// longer strings are responsibilities, not skills.
	words := strings.Fields(s)
	if len(words) > 3 {
		return false
	}
	for _, w := range words {
		if !domainTermPattern.MatchString(w) {
			return false
		}
	}
	return true
}

// leadershipVerbs is the soft-skill/leadership verb table. A bullet counts
// toward soft-skill density if it contains any of these as a whole word.
var leadershipVerbs = []string{
	"led", "lead", "mentored", "coached", "managed", "directed", "coordinated",
	"championed", "drove", "facilitated", "presented", "negotiated",
	"collaborated", "partnered", "influenced", "aligned", "onboarded",
	"recruited", "advocated", "communicated", "guided", "supervised",
}

// metricPatterns match measurable-impact language in bullets: percentages,
// currency, multipliers, and scale nouns.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s?%`),
	regexp.MustCompile(`[$€£]\s?\d`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\b\d[\d,.]*\s?(?:k|m|b)?\s?(?:users|customers|requests|records|downloads|queries|transactions|engineers|teams|services|endpoints|clients)\b`),
	regexp.MustCompile(`(?i)\b(?:million|billion|thousand)s?\b`),
}

// hasMetric reports whether a bullet contains measurable-impact language.
func hasMetric(bullet string) bool {
	for _, re := range metricPatterns {
		if re.MatchString(bullet) {
			return true
		}
	}
	return false
}

// hasLeadershipVerb reports whether a bullet contains a leadership or
// communication verb as a whole word.
func hasLeadershipVerb(bullet string) bool {
	for _, verb := range leadershipVerbs {
		if ContainsTerm(bullet, verb) {
			return true
		}
	}
	return false
}

// vagueOpeners are weak or passive bullet openings penalized by the
// formatting scorer.
var vagueOpeners = []string{
	"responsible for", "helped", "worked on", "assisted", "participated in",
	"involved in", "was part of", "tasked with", "contributed to",
}

// startsVague reports whether the bullet opens with a vague or passive verb.
func startsVague(bullet string) bool {
	lower := strings.ToLower(strings.TrimSpace(bullet))
	for _, opener := range vagueOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}
