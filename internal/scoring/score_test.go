package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func fixtureTarget() *types.TargetProfile {
	return &types.TargetProfile{
		RoleTitle:       "Senior Backend Engineer",
		RequiredSkills:  []string{"Go", "Kubernetes"},
		PreferredSkills: []string{"PostgreSQL"},
		Keywords:        []string{"microservices", "Docker"},
	}
}

func fixtureDocument() *types.TailoredDocument {
	return &types.TailoredDocument{
		Headline: "Backend Engineer",
		Summary:  "Backend engineer building microservices in Go.",
		SkillGroups: []types.SkillGroup{
			{Category: "Core", Skills: []string{"Go", "Docker"}},
		},
		Roles: []types.Role{
			{
				Company: "Acme",
				Title:   "Engineer",
				Bullets: []string{
					"Led a team of 5 engineers to ship the payments platform",
					"Reduced API latency by 40%",
				},
			},
		},
		Education: []types.Education{{Institution: "State University"}},
	}
}

func TestScore_Breakdown(t *testing.T) {
	b := Score(fixtureDocument(), fixtureTarget())

	// Go (2) + microservices (1) + Docker (1) matched out of total weight 7
	// (Go 2, Kubernetes 2, PostgreSQL 1, microservices 1, Docker 1).
	assert.Equal(t, 57, b.HardSkills)
	// 1 of 2 bullets has a leadership verb; 50% density caps at 100.
	assert.Equal(t, 100, b.SoftSkills)
	// "5 engineers" and "40%" both count as metrics.
	assert.Equal(t, 100, b.Impact)
	// Both keywords present (80) + Docker placed in skills (10).
	assert.Equal(t, 90, b.Keywords)
	assert.Equal(t, 100, b.Formatting)

	assert.Equal(t, 87, b.Overall)
	assert.Equal(t, "Strong", b.Label)
	assert.ElementsMatch(t, []string{"Kubernetes"}, b.Diagnostics.MissingRequired)
	assert.ElementsMatch(t, []string{"PostgreSQL"}, b.Diagnostics.MissingPreferred)
}

func TestScore_Pure(t *testing.T) {
	doc := fixtureDocument()
	target := fixtureTarget()

	first := Score(doc, target)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(doc, target))
	}
}

func TestScore_AggregateMatchesWeightedFormula(t *testing.T) {
	b := Score(fixtureDocument(), fixtureTarget())

	weighted := float64(b.HardSkills)*hardSkillsWeight +
		float64(b.SoftSkills)*softSkillsWeight +
		float64(b.Impact)*impactWeight +
		float64(b.Keywords)*keywordsWeight +
		float64(b.Formatting)*formattingWeight
	assert.InDelta(t, weighted, float64(b.Overall), 0.5)
}

func TestScore_WeightsSumToOne(t *testing.T) {
	sum := hardSkillsWeight + softSkillsWeight + impactWeight + keywordsWeight + formattingWeight
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScore_AggregateAlwaysInRange(t *testing.T) {
	docs := []*types.TailoredDocument{
		{},
		fixtureDocument(),
		{Roles: []types.Role{{Company: "X", Title: "Y", Bullets: []string{"did things"}}}},
	}
	targets := []*types.TargetProfile{
		{},
		fixtureTarget(),
		{RequiredSkills: []string{"Rust", "Erlang", "Haskell"}},
	}

	for _, doc := range docs {
		for _, target := range targets {
			b := Score(doc, target)
			assert.GreaterOrEqual(t, b.Overall, 0)
			assert.LessOrEqual(t, b.Overall, 100)
		}
	}
}

func TestScoreHardSkills_NoTermsDefaultsToNeutral(t *testing.T) {
	b := Score(fixtureDocument(), &types.TargetProfile{RoleTitle: "Engineer"})
	assert.Equal(t, neutralScore, b.HardSkills)
}

func TestScoreHardSkills_SynonymMatch(t *testing.T) {
	doc := &types.TailoredDocument{
		Headline: "Engineer",
		Roles: []types.Role{
			{Company: "Acme", Title: "SRE", Bullets: []string{"Operated k8s clusters across three regions"}},
		},
	}
	target := &types.TargetProfile{RoleTitle: "SRE", RequiredSkills: []string{"Kubernetes"}}

	b := Score(doc, target)
	assert.Equal(t, 100, b.HardSkills)
	assert.Empty(t, b.Diagnostics.MissingRequired)
}

func TestScoreSoftSkills_NoBullets(t *testing.T) {
	b := Score(&types.TailoredDocument{Headline: "X"}, fixtureTarget())
	assert.Equal(t, 0, b.SoftSkills)
}

func TestScoreImpact_RecordsUnmetricedBullet(t *testing.T) {
	doc := fixtureDocument()
	doc.Roles[0].Bullets = []string{"Maintained the internal build system"}

	b := Score(doc, fixtureTarget())
	assert.Equal(t, 0, b.Impact)
	assert.Equal(t, "Maintained the internal build system", b.Diagnostics.UnmetricedBullet)
}

func TestScoreFormatting_Deductions(t *testing.T) {
	long := make([]byte, bulletLengthCeiling+1)
	for i := range long {
		long[i] = 'x'
	}

	doc := &types.TailoredDocument{
		Headline: "Engineer",
		Roles: []types.Role{
			{Company: "Acme", Title: "Engineer", Bullets: []string{
				"Responsible for various tasks",
				string(long),
			}},
		},
	}

	b := Score(doc, fixtureTarget())
	// 100 - vague (10) - long (8) - no summary (15) - no education (10).
	assert.Equal(t, 57, b.Formatting)
	assert.Equal(t, "Responsible for various tasks", b.Diagnostics.VagueBullet)
}

func TestScoreFormatting_Floor(t *testing.T) {
	bullets := make([]string, 12)
	for i := range bullets {
		bullets[i] = "Responsible for miscellaneous duties"
	}
	doc := &types.TailoredDocument{
		Headline: "Engineer",
		Roles:    []types.Role{{Company: "Acme", Title: "Engineer", Bullets: bullets}},
	}

	b := Score(doc, fixtureTarget())
	assert.Equal(t, formattingFloor, b.Formatting)
}

func TestLabelFor_Thresholds(t *testing.T) {
	assert.Equal(t, "Strong", labelFor(75))
	assert.Equal(t, "Strong", labelFor(100))
	assert.Equal(t, "Moderate", labelFor(74))
	assert.Equal(t, "Moderate", labelFor(50))
	assert.Equal(t, "Weak", labelFor(49))
	assert.Equal(t, "Weak", labelFor(0))
}

func TestExtractTerms_RequiredWinsOverKeyword(t *testing.T) {
	target := &types.TargetProfile{
		RequiredSkills: []string{"Go"},
		Keywords:       []string{"go"},
	}

	terms := extractTerms(target)
	require.Len(t, terms, 1)
	assert.True(t, terms[0].required)
	assert.Equal(t, requiredTermWeight, terms[0].weight)
}

func TestExtractTerms_SkipsLongPhrases(t *testing.T) {
	target := &types.TargetProfile{
		RequiredSkills: []string{"Go", "collaborate closely with product and design teams"},
	}

	terms := extractTerms(target)
	require.Len(t, terms, 1)
	assert.Equal(t, "Go", terms[0].term)
}
