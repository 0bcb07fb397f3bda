// Package quality provides the deterministic text repair gate applied to every
// generated document: bullet deduplication, ending diversity, banned-phrase
// removal, dangling-bullet repair, cover-letter structural enforcement, and
// skills-label validation. Repair is idempotent and makes no external calls.
package quality

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Repair tunables.
const (
	// Two bullets at or above this Jaccard similarity are near-duplicates.
	duplicateThreshold = 0.85

	// Number of trailing words compared for ending diversity.
	endingWords = 3

	// Cover letter bounds.
	maxCoverParagraphs = 6

	// A skill entry longer than either limit reads as a sentence, not a label.
	maxLabelWords  = 6
	maxLabelChars  = 48
	labelKeepWords = 4
)

// Repair runs every repair stage in order and returns the repaired document
// plus the append-only issue trail. The input document is not mutated.
// Applying Repair to its own output produces no further changes.
func Repair(doc *types.TailoredDocument) (*types.TailoredDocument, []types.QualityIssue) {
	out := doc.Clone()
	var issues []types.QualityIssue

	issues = append(issues, dedupeBullets(out)...)
	issues = append(issues, diversifyEndings(out)...)
	issues = append(issues, removeBannedPhrases(out)...)
	issues = append(issues, repairDanglingBullets(out)...)
	issues = append(issues, enforceLetterStructure(out)...)
	issues = append(issues, validateSkillLabels(out)...)

	return out, issues
}

func bulletPath(role, bullet int) string {
	return fmt.Sprintf("roles[%d].bullets[%d]", role, bullet)
}

func fmtPath(field string, index int) string {
	return fmt.Sprintf("%s[%d]", field, index)
}
