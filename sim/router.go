package sim

// ClosestNode returns the node minimizing Euclidean distance from coords,
// with ties broken by node id ascending for determinism. Used for initial
// assignment (§4.3), where the congestion threshold does not apply.
//
// Panics if nodes is empty. SimConfig.Validate does not check the node
// list; the CLI rejects an empty one in RunRequest.Validate
// (cmd/runrequest.go).
func ClosestNode(coords Coordinate, nodes []*Node) *Node {
	if len(nodes) == 0 {
		panic("sim: ClosestNode called with no nodes")
	}
	best := nodes[0]
	bestDist := coords.DistanceTo(best.Coords)
	for _, n := range nodes[1:] {
		d := coords.DistanceTo(n.Coords)
		if d < bestDist || (d == bestDist && n.ID < best.ID) {
			best = n
			bestDist = d
		}
	}
	return best
}

// ClosestNonCongested returns the node minimizing Euclidean distance from
// coords among those whose queue depth is below threshold, ties broken by
// node id ascending. Returns nil if no node qualifies (§4.3); callers must
// handle nil by keeping the request's current node (§9 Open Questions).
func ClosestNonCongested(coords Coordinate, nodes []*Node, threshold int) *Node {
	var best *Node
	var bestDist float64
	for _, n := range nodes {
		if n.Queue.Len() >= threshold {
			continue
		}
		d := coords.DistanceTo(n.Coords)
		if best == nil || d < bestDist || (d == bestDist && n.ID < best.ID) {
			best = n
			bestDist = d
		}
	}
	return best
}
