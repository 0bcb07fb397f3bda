package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestTruncateDangling_SingleConnector(t *testing.T) {
	repaired, connector, ok := truncateDangling("Automated the release pipeline, resulting in")
	require.True(t, ok)
	assert.Equal(t, "resulting in", connector)
	assert.Equal(t, "Automated the release pipeline", repaired)
}

func TestTruncateDangling_StackedConnectors(t *testing.T) {
	repaired, _, ok := truncateDangling("Migrated the data warehouse, leading to, resulting in")
	require.True(t, ok)
	assert.Equal(t, "Migrated the data warehouse", repaired)
}

func TestTruncateDangling_CompleteSentenceUntouched(t *testing.T) {
	_, _, ok := truncateDangling("Automated the release pipeline, resulting in faster deploys")
	assert.False(t, ok)
}

func TestTruncateDangling_WholeBulletIsConnector(t *testing.T) {
	_, _, ok := truncateDangling("resulting in")
	assert.False(t, ok)
}

func TestRepairDanglingBullets(t *testing.T) {
	doc := &types.TailoredDocument{
		Headline: "Engineer",
		Roles: []types.Role{
			{Company: "Acme", Title: "Engineer", Bullets: []string{
				"Rebuilt the ingestion service, which led to",
				"Shipped the new search index across 3 regions",
			}},
		},
	}

	repaired, issues := Repair(doc)

	assert.Equal(t, "Rebuilt the ingestion service", repaired.Roles[0].Bullets[0])
	assert.Equal(t, "Shipped the new search index across 3 regions", repaired.Roles[0].Bullets[1])

	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueDanglingBullet, issues[0].Kind)
	assert.Equal(t, "roles[0].bullets[0]", issues[0].Path)
}
