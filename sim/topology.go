package sim

import (
	"fmt"
	"math"

	"github.com/cdnsim/cdnsim/cache"
)

// Coordinate is a 2-D point in kilometers, after external scaling (§6).
type Coordinate struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between two coordinates.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Item is an immutable catalog entry. Size must be >= 1 (a cache entry's
// weight, per §3).
type Item struct {
	Tag  ItemTag
	Size int
}

// Origin owns the canonical catalog. There is exactly one Origin per
// simulation; it is immutable after setup and freely read by any handler.
type Origin struct {
	Coords  Coordinate
	content map[ItemTag]Item
}

// NewOrigin constructs an Origin from its coordinates and catalog. Items
// with duplicate tags are rejected, matching the "unique keys" invariant
// of §3.
func NewOrigin(coords Coordinate, items []Item) (*Origin, error) {
	content := make(map[ItemTag]Item, len(items))
	for _, it := range items {
		if _, exists := content[it.Tag]; exists {
			return nil, fmt.Errorf("origin: duplicate item tag %q", it.Tag)
		}
		if it.Size < 1 {
			return nil, fmt.Errorf("origin: item %q has non-positive size %d", it.Tag, it.Size)
		}
		content[it.Tag] = it
	}
	return &Origin{Coords: coords, content: content}, nil
}

// Lookup returns the item for tag and whether it exists in the catalog.
// A miss here is not an error (§7 MissingItemAtOrigin) — it propagates as
// an unfulfilled request.
func (o *Origin) Lookup(tag ItemTag) (Item, bool) {
	it, ok := o.content[tag]
	return it, ok
}

// NodeStats accumulates the per-node observations named in §3.
type NodeStats struct {
	CacheHits      int
	NumRequests    int
	MaxQueueLength int
}

// Node exclusively owns its cache and request queue. Created at setup,
// mutated only by engine event handlers. The Origin it fetches from is
// held by the owning Simulator, not the Node, since a simulation has
// exactly one Origin shared by every node.
type Node struct {
	ID     NodeID
	Coords Coordinate

	Cache *cache.Cache
	Queue *RequestQueue
	Stats NodeStats
}

// NewNode constructs a Node with an empty queue and the given cache.
func NewNode(id NodeID, coords Coordinate, c *cache.Cache) *Node {
	return &Node{
		ID:     id,
		Coords: coords,
		Cache:  c,
		Queue:  NewRequestQueue(),
	}
}

// WorkloadEntry is one (item, create_time) pair from a User's workload.
type WorkloadEntry struct {
	ItemTag    ItemTag
	CreateTime int64
}

// User owns an ordered workload and an append-only log of the requests it
// has received responses for.
type User struct {
	ID       UserID
	Coords   Coordinate
	Workload []WorkloadEntry
	Received []*Request
}
