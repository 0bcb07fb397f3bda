package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestShortenLabel_ShortLabelUntouched(t *testing.T) {
	_, changed := shortenLabel("Kubernetes")
	assert.False(t, changed)

	_, changed = shortenLabel("CI/CD pipelines")
	assert.False(t, changed)
}

func TestShortenLabel_SentenceTruncated(t *testing.T) {
	label, changed := shortenLabel("Extensive experience designing and operating distributed systems at scale")
	require.True(t, changed)
	assert.Equal(t, "Extensive experience designing and", label)
}

func TestValidateSkillLabels(t *testing.T) {
	doc := &types.TailoredDocument{
		Headline: "Engineer",
		SkillGroups: []types.SkillGroup{
			{Category: "Core", Skills: []string{
				"Go",
				"I spent many years building large scale streaming platforms",
			}},
		},
	}

	repaired, issues := Repair(doc)

	assert.Equal(t, "Go", repaired.SkillGroups[0].Skills[0])
	assert.Equal(t, "I spent many years", repaired.SkillGroups[0].Skills[1])

	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueStructural, issues[0].Kind)
	assert.Equal(t, "skill_groups[0].skills[1]", issues[0].Path)
}
