package workload

import "testing"

func TestPartitionedRNG_SameUserSameSeedReproducible(t *testing.T) {
	p := newPartitionedRNG(99)
	a := p.forUser(3).Int63()
	b := p.forUser(3).Int63()
	if a != b {
		t.Fatalf("forUser(3) not reproducible: %d != %d", a, b)
	}
}

func TestPartitionedRNG_DifferentUsersDifferentStreams(t *testing.T) {
	p := newPartitionedRNG(99)
	a := p.forUser(1).Int63()
	b := p.forUser(2).Int63()
	if a == b {
		t.Fatalf("forUser(1) and forUser(2) collided: %d", a)
	}
}
