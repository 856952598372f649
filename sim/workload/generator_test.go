package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWorkload_IsDeterministic(t *testing.T) {
	usersA, itemsA := GenerateWorkload(7, 5, 4)
	usersB, itemsB := GenerateWorkload(7, 5, 4)

	assert.Equal(t, usersA, usersB)
	assert.Equal(t, itemsA, itemsB)
}

func TestGenerateWorkload_DiffersAcrossSeeds(t *testing.T) {
	usersA, _ := GenerateWorkload(1, 5, 4)
	usersB, _ := GenerateWorkload(2, 5, 4)

	assert.NotEqual(t, usersA, usersB)
}

func TestGenerateWorkload_PopulationSizeWithinBounds(t *testing.T) {
	cacheSize := 4
	_, items := GenerateWorkload(7, 1, cacheSize)

	assert.GreaterOrEqual(t, len(items), popSizeMinFactor*cacheSize)
	assert.LessOrEqual(t, len(items), popSizeMaxFactor*cacheSize)
}

func TestGenerateWorkload_EachUserHasRequestsPerUserEntries(t *testing.T) {
	users, _ := GenerateWorkload(7, 3, 4)
	for _, u := range users {
		assert.Len(t, u.Workload, requestsPerUser)
		for _, entry := range u.Workload {
			assert.GreaterOrEqual(t, entry.CreateTime, int64(0))
			assert.LessOrEqual(t, entry.CreateTime, int64(maxCreateTimeMs))
		}
	}
}
