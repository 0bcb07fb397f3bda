package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

func fallbackRequest() *Request {
	return &Request{
		Candidate: &types.CandidateProfile{
			Name:     "Alex Doe",
			Headline: "Backend Engineer",
			SkillGroups: []types.SkillGroup{
				{Category: "Core", Skills: []string{"Go", "PostgreSQL"}},
			},
			Roles: []types.Role{
				{Company: "Acme", Title: "Engineer", Bullets: []string{"Reduced API latency by 40%"}},
			},
		},
		Target: &types.TargetProfile{
			RoleTitle:       "Platform Engineer",
			Company:         "Initech",
			RequiredSkills:  []string{"Go", "Kubernetes"},
			PreferredSkills: []string{"Terraform"},
			Keywords:        []string{"Go", "Docker"},
		},
	}
}

func TestDeterministicSource_OutputPassesValidation(t *testing.T) {
	src := NewDeterministicSource()
	raw, err := src.Invoke(context.Background(), fallbackRequest())
	require.NoError(t, err)

	doc, err := validation.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", doc.Headline)
}

func TestDeterministicSource_Deterministic(t *testing.T) {
	src := NewDeterministicSource()
	req := fallbackRequest()

	first, err := src.Invoke(context.Background(), req)
	require.NoError(t, err)
	second, err := src.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildFallbackDocument_HonestChecklist(t *testing.T) {
	req := fallbackRequest()
	doc := buildFallbackDocument(req.Candidate, req.Target)

	require.Len(t, doc.KeywordChecklist, 2)
	assert.Equal(t, "Go", doc.KeywordChecklist[0].Keyword)
	assert.True(t, doc.KeywordChecklist[0].Found)
	assert.Empty(t, doc.KeywordChecklist[0].Suggestion)

	assert.Equal(t, "Docker", doc.KeywordChecklist[1].Keyword)
	assert.False(t, doc.KeywordChecklist[1].Found)
	assert.NotEmpty(t, doc.KeywordChecklist[1].Suggestion)
}

func TestBuildFallbackDocument_GapsOnlyForMissingSkills(t *testing.T) {
	req := fallbackRequest()
	doc := buildFallbackDocument(req.Candidate, req.Target)

	require.Len(t, doc.ExperienceGaps, 2)
	assert.Equal(t, "Missing Kubernetes experience", doc.ExperienceGaps[0].Gap)
	assert.Equal(t, "high", doc.ExperienceGaps[0].Severity)
	assert.Equal(t, "Missing Terraform experience", doc.ExperienceGaps[1].Gap)
	assert.Equal(t, "medium", doc.ExperienceGaps[1].Severity)
}

func TestBuildFallbackDocument_CoverLetterStructure(t *testing.T) {
	req := fallbackRequest()
	doc := buildFallbackDocument(req.Candidate, req.Target)

	require.GreaterOrEqual(t, len(doc.CoverLetter), 3)
	assert.Equal(t, "Dear Hiring Manager,", doc.CoverLetter[0])
	assert.Contains(t, doc.CoverLetter[1], "Platform Engineer")
	assert.Contains(t, doc.CoverLetter[1], "Initech")
	assert.Contains(t, doc.CoverLetter[len(doc.CoverLetter)-1], "Sincerely,")
	assert.Contains(t, doc.CoverLetter[len(doc.CoverLetter)-1], "Alex Doe")
}

func TestBuildFallbackDocument_DefaultsForEmptyProfile(t *testing.T) {
	doc := buildFallbackDocument(&types.CandidateProfile{}, &types.TargetProfile{RoleTitle: "Platform Engineer"})

	assert.Equal(t, "Platform Engineer", doc.Headline)
	assert.NotEmpty(t, doc.Summary)
	assert.Contains(t, doc.CoverLetter[len(doc.CoverLetter)-1], "The Candidate")
}

func TestFallbackSummary_NamesMatchedSkills(t *testing.T) {
	summary := fallbackSummary(&types.TargetProfile{
		RoleTitle:      "Platform Engineer",
		RequiredSkills: []string{"Go", "Kubernetes"},
	}, "go postgres experience")

	assert.Contains(t, summary, "Platform Engineer")
	assert.Contains(t, summary, "Go")
	assert.NotContains(t, summary, "Kubernetes")
}
