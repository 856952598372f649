package workload

import "math/rand"

// PopularitySampler draws item indices from a population of size n,
// modeling the skewed access pattern real CDN workloads exhibit.
type PopularitySampler interface {
	// Sample returns an item index in [0, n).
	Sample() int
}

// ZipfPopularitySampler draws indices from a Zipf-like distribution so a
// small number of items absorb most requests.
//
// Built directly on the standard library's rand.NewZipf (see DESIGN.md
// for why this stays on the standard library).
type ZipfPopularitySampler struct {
	zipf *rand.Zipf
}

// NewZipfPopularitySampler constructs a sampler over a population of size n
// (n must be >= 1). s and v tune the skew; s=1.5, v=1 gives a pronounced
// head-heavy popularity curve similar to real content-delivery workloads.
func NewZipfPopularitySampler(rng *rand.Rand, n int, s, v float64) *ZipfPopularitySampler {
	imax := uint64(n - 1)
	return &ZipfPopularitySampler{zipf: rand.NewZipf(rng, s, v, imax)}
}

func (z *ZipfPopularitySampler) Sample() int {
	return int(z.zipf.Uint64())
}
