package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestBlockers_ThreeWorstCategories(t *testing.T) {
	doc := &types.TailoredDocument{Headline: "Engineer"}
	target := &types.TargetProfile{
		RoleTitle:      "Platform Engineer",
		RequiredSkills: []string{"Kubernetes", "Terraform"},
		Keywords:       []string{"Kubernetes", "Terraform"},
	}

	b := Score(doc, target)
	blockers := Blockers(b)

	require.Len(t, blockers, 3)
	// Hard skills, soft skills, and impact all score 0 and rank ahead of
	// keywords and formatting in declaration order.
	assert.Equal(t, types.CategoryHardSkills, blockers[0].Category)
	assert.Equal(t, types.CategorySoftSkills, blockers[1].Category)
	assert.Equal(t, types.CategoryImpact, blockers[2].Category)

	assert.Contains(t, blockers[0].Why, "Kubernetes")
	assert.Contains(t, blockers[0].Why, "Terraform")
	assert.NotEmpty(t, blockers[0].How)
}

func TestBlockers_NoneAboveCutoff(t *testing.T) {
	b := &types.ScoreBreakdown{
		HardSkills: 90, SoftSkills: 85, Impact: 95, Keywords: 88, Formatting: 100,
	}
	assert.Empty(t, Blockers(b))
}

func TestBlockers_OnlyCategoriesBelowCutoff(t *testing.T) {
	b := &types.ScoreBreakdown{
		HardSkills: 90, SoftSkills: 40, Impact: 95, Keywords: 88, Formatting: 100,
	}

	blockers := Blockers(b)
	require.Len(t, blockers, 1)
	assert.Equal(t, types.CategorySoftSkills, blockers[0].Category)
}

func TestBlockers_ImpactIncludesBeforeAfterPair(t *testing.T) {
	b := &types.ScoreBreakdown{
		HardSkills: 90, SoftSkills: 85, Impact: 30, Keywords: 88, Formatting: 100,
		Diagnostics: types.ScoreDiagnostics{
			UnmetricedBullet: "Maintained the ingestion pipeline",
		},
	}

	blockers := Blockers(b)
	require.Len(t, blockers, 1)
	assert.Equal(t, "Maintained the ingestion pipeline", blockers[0].Before)
	assert.Contains(t, blockers[0].After, "30%")
}

func TestBlockers_WorstFirstOrdering(t *testing.T) {
	b := &types.ScoreBreakdown{
		HardSkills: 70, SoftSkills: 20, Impact: 50, Keywords: 95, Formatting: 60,
	}

	blockers := Blockers(b)
	require.Len(t, blockers, 3)
	assert.Equal(t, types.CategorySoftSkills, blockers[0].Category)
	assert.Equal(t, types.CategoryImpact, blockers[1].Category)
	assert.Equal(t, types.CategoryFormatting, blockers[2].Category)
}
