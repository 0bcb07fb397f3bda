package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *TailoredDocument {
	return &TailoredDocument{
		Headline: "Senior Backend Engineer",
		Summary:  "Backend engineer focused on distributed systems.",
		SkillGroups: []SkillGroup{
			{Category: "Core", Skills: []string{"Go", "PostgreSQL"}},
		},
		Roles: []Role{
			{Company: "Acme Corp", Title: "Engineer", Period: "2020-2024", Bullets: []string{
				"Reduced API latency by 40%",
				"Led migration to Kubernetes",
			}},
		},
		Education: []Education{
			{Institution: "State University", Degree: "BS Computer Science"},
		},
		CoverLetter:       []string{"Dear Hiring Manager,", "Body paragraph.", "Sincerely,\nAlex"},
		KeywordChecklist:  []KeywordCheck{{Keyword: "Go", Found: true, Section: "skills"}},
		ExperienceGaps:    []ExperienceGap{{Gap: "Missing Terraform experience", Severity: "medium"}},
		RecruiterFeedback: []string{"Strong metrics throughout."},
		NextActions:       []string{"Add a certifications section."},
	}
}

func TestClone_DeepCopy(t *testing.T) {
	doc := sampleDocument()
	clone := doc.Clone()

	require.Equal(t, doc, clone)

	clone.Headline = "changed"
	clone.SkillGroups[0].Skills[0] = "changed"
	clone.Roles[0].Bullets[0] = "changed"
	clone.CoverLetter[0] = "changed"
	clone.KeywordChecklist[0].Found = false
	clone.ExperienceGaps[0].Gap = "changed"
	clone.RecruiterFeedback[0] = "changed"
	clone.NextActions[0] = "changed"

	assert.Equal(t, "Senior Backend Engineer", doc.Headline)
	assert.Equal(t, "Go", doc.SkillGroups[0].Skills[0])
	assert.Equal(t, "Reduced API latency by 40%", doc.Roles[0].Bullets[0])
	assert.Equal(t, "Dear Hiring Manager,", doc.CoverLetter[0])
	assert.True(t, doc.KeywordChecklist[0].Found)
	assert.Equal(t, "Missing Terraform experience", doc.ExperienceGaps[0].Gap)
	assert.Equal(t, "Strong metrics throughout.", doc.RecruiterFeedback[0])
	assert.Equal(t, "Add a certifications section.", doc.NextActions[0])
}

func TestClone_Nil(t *testing.T) {
	var doc *TailoredDocument
	assert.Nil(t, doc.Clone())
}

func TestFullText_IncludesAllSearchableFields(t *testing.T) {
	text := sampleDocument().FullText()

	assert.Contains(t, text, "senior backend engineer")
	assert.Contains(t, text, "postgresql")
	assert.Contains(t, text, "acme corp")
	assert.Contains(t, text, "reduced api latency by 40%")
	assert.Contains(t, text, "state university")
	assert.Contains(t, text, "dear hiring manager,")
	assert.Equal(t, strings.ToLower(text), text)
}

func TestFullText_Empty(t *testing.T) {
	var doc *TailoredDocument
	assert.Equal(t, "", doc.FullText())
	assert.Equal(t, "", (&TailoredDocument{}).FullText())
}

func TestSkillsText_OnlySkillsSection(t *testing.T) {
	text := sampleDocument().SkillsText()

	assert.Contains(t, text, "go")
	assert.Contains(t, text, "postgresql")
	assert.NotContains(t, text, "acme")
	assert.NotContains(t, text, "latency")
}

func TestTotalBullets(t *testing.T) {
	assert.Equal(t, 2, sampleDocument().TotalBullets())
	assert.Equal(t, 0, (&TailoredDocument{}).TotalBullets())
}

func TestAsDocument_CopiesProfileFields(t *testing.T) {
	profile := &CandidateProfile{
		Name:     "Alex Doe",
		Headline: "Backend Engineer",
		Summary:  "Builds services in Go.",
		SkillGroups: []SkillGroup{
			{Category: "Core", Skills: []string{"Go"}},
		},
		Roles: []Role{
			{Company: "Acme", Title: "Engineer", Bullets: []string{"Shipped things"}},
		},
		Education: []Education{{Institution: "State University"}},
	}

	doc := profile.AsDocument()
	assert.Equal(t, "Backend Engineer", doc.Headline)
	assert.Equal(t, "Builds services in Go.", doc.Summary)
	require.Len(t, doc.SkillGroups, 1)
	require.Len(t, doc.Roles, 1)
	require.Len(t, doc.Education, 1)

	// Mutating the document must not reach back into the profile.
	doc.SkillGroups[0].Skills[0] = "changed"
	doc.Roles[0].Bullets[0] = "changed"
	assert.Equal(t, "Go", profile.SkillGroups[0].Skills[0])
	assert.Equal(t, "Shipped things", profile.Roles[0].Bullets[0])
}

func TestAsDocument_Nil(t *testing.T) {
	var profile *CandidateProfile
	doc := profile.AsDocument()
	require.NotNil(t, doc)
	assert.Equal(t, "", doc.Headline)
}

func TestTargetProfileValidate(t *testing.T) {
	valid := &TargetProfile{RoleTitle: "Platform Engineer"}
	assert.NoError(t, valid.Validate())

	invalid := &TargetProfile{}
	assert.Error(t, invalid.Validate())
}
