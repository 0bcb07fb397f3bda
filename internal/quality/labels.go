package quality

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// validateSkillLabels truncates skill entries that read as sentences rather
// than short labels.
func validateSkillLabels(doc *types.TailoredDocument) []types.QualityIssue {
	var issues []types.QualityIssue

	for gi := range doc.SkillGroups {
		group := &doc.SkillGroups[gi]
		for si, skill := range group.Skills {
			label, ok := shortenLabel(skill)
			if !ok {
				continue
			}
			group.Skills[si] = label
			issues = append(issues, types.QualityIssue{
				Kind:   types.IssueStructural,
				Path:   fmtPath("skill_groups", gi) + "." + fmtPath("skills", si),
				Detail: "sentence-like skill entry truncated to \"" + label + "\"",
				Fixed:  true,
			})
		}
	}

	return issues
}

// shortenLabel truncates a sentence-like skill entry to its first few words.
// Returns false when the entry is already a short label.
func shortenLabel(skill string) (string, bool) {
	trimmed := strings.TrimSpace(skill)
	words := strings.Fields(trimmed)
	if len(words) <= maxLabelWords && len(trimmed) <= maxLabelChars {
		return "", false
	}

	keep := labelKeepWords
	if keep > len(words) {
		keep = len(words)
	}
	label := strings.Join(words[:keep], " ")
	label = strings.TrimRight(label, ",.;:")
	if len(label) > maxLabelChars {
		label = strings.TrimSpace(label[:maxLabelChars])
	}
	return label, true
}
