// Package workload synthesizes per-user request workloads for exercising
// the CDN engine from the CLI and from tests. The engine itself (sim.User,
// sim.WorkloadEntry) never imports this package — it only consumes
// already-built values.
package workload

import (
	"hash/fnv"
	"math/rand"
)

// partitionedRNG derives an independent, deterministically-seeded *rand.Rand
// per user from one master seed, so any single user's stream can be
// reproduced without replaying the others: masterSeed XOR fnv1a64(user index).
type partitionedRNG struct {
	masterSeed int64
}

func newPartitionedRNG(masterSeed int64) *partitionedRNG {
	return &partitionedRNG{masterSeed: masterSeed}
}

// forUser returns a fresh *rand.Rand seeded deterministically for userIndex.
func (p *partitionedRNG) forUser(userIndex int) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte{
		byte(userIndex), byte(userIndex >> 8), byte(userIndex >> 16), byte(userIndex >> 24),
	})
	seed := p.masterSeed ^ int64(h.Sum64())
	return rand.New(rand.NewSource(seed))
}
