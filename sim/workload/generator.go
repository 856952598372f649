package workload

import (
	"fmt"
	"math/rand"

	"github.com/cdnsim/cdnsim/sim"
)

const (
	requestsPerUser  = 20
	maxCreateTimeMs  = 10000
	popSizeMinFactor = 2
	popSizeMaxFactor = 5
	userCoordRangeKm = 1000.0
	zipfSkew         = 1.5
	zipfV            = 1.0
)

// itemPopulation draws the population of content items a workload's
// requests are sampled from: between 2x and 5x cacheSize items, per §6.
func itemPopulation(rng *rand.Rand, cacheSize int) []sim.Item {
	spread := (popSizeMaxFactor - popSizeMinFactor) * cacheSize
	n := popSizeMinFactor*cacheSize + rng.Intn(spread+1)

	items := make([]sim.Item, n)
	for i := range items {
		items[i] = sim.Item{Tag: sim.ItemTag(fmt.Sprintf("item%d", i)), Size: 1}
	}
	return items
}

// GenerateWorkload synthesizes numUsers independent users, each issuing
// requestsPerUser requests drawn from a shared item population sized off
// cacheSize, with one item weighted far more heavily than the rest via
// Zipf skew (§6's popularity-skewed access pattern). The returned items
// are the population callers should populate an Origin with; the engine
// itself never calls this package (§1's workload/engine boundary).
//
// Every user's stream, and the population itself, derives from seed
// through partitionedRNG, so a given (seed, numUsers, cacheSize) always
// reproduces byte-identical workloads.
func GenerateWorkload(seed int64, numUsers int, cacheSize int) ([]sim.User, []sim.Item) {
	partitioned := newPartitionedRNG(seed)

	population := itemPopulation(partitioned.forUser(-1), cacheSize)

	users := make([]sim.User, numUsers)
	for i := 0; i < numUsers; i++ {
		userRNG := partitioned.forUser(i)
		sampler := NewZipfPopularitySampler(userRNG, len(population), zipfSkew, zipfV)

		workload := make([]sim.WorkloadEntry, requestsPerUser)
		for j := 0; j < requestsPerUser; j++ {
			idx := sampler.Sample()
			workload[j] = sim.WorkloadEntry{
				ItemTag:    population[idx].Tag,
				CreateTime: int64(userRNG.Intn(maxCreateTimeMs + 1)),
			}
		}

		users[i] = sim.User{
			ID: sim.UserID(fmt.Sprintf("user%d", i)),
			Coords: sim.Coordinate{
				X: userRNG.Float64() * userCoordRangeKm,
				Y: userRNG.Float64() * userCoordRangeKm,
			},
			Workload: workload,
		}
	}
	return users, population
}
