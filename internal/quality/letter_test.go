package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func letterDoc(paragraphs ...string) *types.TailoredDocument {
	return &types.TailoredDocument{
		Headline:    "Engineer",
		CoverLetter: paragraphs,
	}
}

func TestEnforceLetterStructure_DuplicateGreeting(t *testing.T) {
	doc := letterDoc(
		"Dear Hiring Manager,",
		"I am excited about this role.",
		"Dear Acme Team,",
		"Sincerely,\nJordan",
	)

	repaired, issues := Repair(doc)

	letter := repaired.CoverLetter
	require.Len(t, letter, 3)
	assert.Equal(t, "Dear Hiring Manager,", letter[0])
	assert.Equal(t, "Sincerely,\nJordan", letter[2])

	greetings := 0
	for _, para := range letter {
		if greetingPattern.MatchString(para) {
			greetings++
		}
	}
	assert.Equal(t, 1, greetings)

	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueStructural, issues[0].Kind)
}

func TestEnforceLetterStructure_GreetingMovedToFront(t *testing.T) {
	doc := letterDoc(
		"I am excited about this role.",
		"Dear Hiring Manager,",
		"Sincerely,\nJordan",
	)

	repaired, _ := Repair(doc)
	assert.Equal(t, "Dear Hiring Manager,", repaired.CoverLetter[0])
}

func TestEnforceLetterStructure_SignoffMovedToEnd(t *testing.T) {
	doc := letterDoc(
		"Dear Hiring Manager,",
		"Best regards,\nJordan",
		"One more thing about my experience.",
	)

	repaired, _ := Repair(doc)
	last := repaired.CoverLetter[len(repaired.CoverLetter)-1]
	assert.Equal(t, "Best regards,\nJordan", last)
}

func TestEnforceLetterStructure_ParagraphCeiling(t *testing.T) {
	doc := letterDoc(
		"Dear Hiring Manager,",
		"Paragraph one.",
		"Paragraph two.",
		"Paragraph three.",
		"Paragraph four.",
		"Paragraph five.",
		"Paragraph six.",
		"Sincerely,\nJordan",
	)

	repaired, _ := Repair(doc)
	assert.LessOrEqual(t, len(repaired.CoverLetter), maxCoverParagraphs)
	assert.Equal(t, "Dear Hiring Manager,", repaired.CoverLetter[0])
	assert.Equal(t, "Sincerely,\nJordan", repaired.CoverLetter[len(repaired.CoverLetter)-1])
}

func TestEnforceLetterStructure_EmptyLetter(t *testing.T) {
	repaired, issues := Repair(letterDoc())
	assert.Empty(t, repaired.CoverLetter)
	assert.Empty(t, issues)
}
