package quality

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// trailingConnectors are connector phrases that leave a bullet hanging when
// nothing concrete follows them. Longest first so compound connectors are
// stripped whole.
var trailingConnectors = []string{
	"which resulted in",
	"which led to",
	"resulting in",
	"leading to",
	"in order to",
	"contributing to",
	"such as",
	"including",
	"as well as",
	"thereby",
	"by",
	"to",
	"and",
	"with",
	"for",
}

// repairDanglingBullets truncates bullets that end in a trailing connector
// with no object after it, restoring a complete sentence.
func repairDanglingBullets(doc *types.TailoredDocument) []types.QualityIssue {
	var issues []types.QualityIssue

	for ri := range doc.Roles {
		for bi, bullet := range doc.Roles[ri].Bullets {
			repaired, connector, ok := truncateDangling(bullet)
			if !ok {
				continue
			}
			doc.Roles[ri].Bullets[bi] = repaired
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueDanglingBullet,
				Path:   bulletPath(ri, bi),
				Detail: "truncated trailing connector \"" + connector + "\"",
				Fixed:  true,
			})
		}
	}

	return issues
}

// truncateDangling strips a trailing connector (and any comma or ellipsis in
// front of it) from the end of a bullet. Repeats until the bullet no longer
// dangles, in case connectors stack ("..., leading to").
func truncateDangling(bullet string) (string, string, bool) {
	current := bullet
	first := ""
	for {
		trimmed := strings.TrimRight(strings.TrimSpace(current), ".…,")
		trimmed = strings.TrimSpace(trimmed)
		lower := strings.ToLower(trimmed)

		matched := ""
		for _, connector := range trailingConnectors {
			if lower == connector {
				// The whole bullet is a connector; nothing to salvage.
				return "", "", false
			}
			if strings.HasSuffix(lower, " "+connector) {
				matched = connector
				break
			}
		}
		if matched == "" {
			if first == "" {
				return "", "", false
			}
			return current, first, true
		}
		if first == "" {
			first = matched
		}

		cut := trimmed[:len(trimmed)-len(matched)]
		cut = strings.TrimSpace(cut)
		cut = strings.TrimRight(cut, ",")
		current = strings.TrimSpace(cut)
	}
}
