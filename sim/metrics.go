// Tracks simulation-wide and per-node statistics for final reporting (§4.6,
// §6 output schema).

package sim

import "sort"

// NodeSummary reports one node's observed behavior over the run.
type NodeSummary struct {
	ID             NodeID
	NumRequests    int
	CacheHits      int
	CacheHitRatio  float64 // hits/num_requests, or 0.0 when num_requests == 0 (§7 EmptyWorkload)
	MaxQueueLength int
}

// RequestSummary is one human-readable request record for the output's
// `requests` list (§6).
type RequestSummary struct {
	ID          RequestID
	SourceUser  UserID
	Node        NodeID
	ItemTag     ItemTag
	CreateTime  int64
	ReceiveTime int64
	WaitTime    int64
	CacheHit    bool
	Fulfilled   bool
}

// Summary aggregates the statistics named in §6's output schema.
type Summary struct {
	Requests []RequestSummary
	PerNode  map[NodeID]NodeSummary

	TotalRequests      int
	CacheHitPercentage float64 // mean over nodes of hits/num_requests*100
	AverageRequestWait float64
	TotalWaitTime      int64
	MinRequestWait     int64
	MaxRequestWait     int64
	TotalTimeElapsed   int64
	MaxQueueLength     int
}

// Summarize collects every completed request across all users, sorted by
// create_time, and computes the aggregate statistics of §6. Safe to call
// any time after Run returns (the engine guarantees no unterminated
// requests remain when the event queue empties).
func (s *Simulator) Summarize() Summary {
	var all []*Request
	for _, u := range s.users {
		all = append(all, u.Received...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreateTime < all[j].CreateTime
	})

	summary := Summary{
		PerNode:          make(map[NodeID]NodeSummary, len(s.nodes)),
		TotalTimeElapsed: s.Clock,
	}

	if len(all) > 0 {
		summary.MinRequestWait = all[0].WaitTime()
	}

	for _, req := range all {
		wait := req.WaitTime()
		summary.TotalRequests++
		summary.TotalWaitTime += wait
		if wait < summary.MinRequestWait {
			summary.MinRequestWait = wait
		}
		if wait > summary.MaxRequestWait {
			summary.MaxRequestWait = wait
		}
		summary.Requests = append(summary.Requests, RequestSummary{
			ID:          req.ID,
			SourceUser:  req.SourceUser,
			Node:        req.Node,
			ItemTag:     req.ItemTag,
			CreateTime:  req.CreateTime,
			ReceiveTime: req.ReceiveTime,
			WaitTime:    wait,
			CacheHit:    req.CacheHit,
			Fulfilled:   req.Fulfilled(),
		})
	}
	if summary.TotalRequests > 0 {
		summary.AverageRequestWait = float64(summary.TotalWaitTime) / float64(summary.TotalRequests)
	}

	var hitRatioSum float64
	for _, n := range s.nodes {
		ratio := 0.0 // §7: guard num_requests == 0 rather than dividing unconditionally
		if n.Stats.NumRequests > 0 {
			ratio = float64(n.Stats.CacheHits) / float64(n.Stats.NumRequests)
		}
		summary.PerNode[n.ID] = NodeSummary{
			ID:             n.ID,
			NumRequests:    n.Stats.NumRequests,
			CacheHits:      n.Stats.CacheHits,
			CacheHitRatio:  ratio,
			MaxQueueLength: n.Stats.MaxQueueLength,
		}
		hitRatioSum += ratio
		if n.Stats.MaxQueueLength > summary.MaxQueueLength {
			summary.MaxQueueLength = n.Stats.MaxQueueLength
		}
	}
	if len(s.nodes) > 0 {
		summary.CacheHitPercentage = hitRatioSum / float64(len(s.nodes)) * 100
	}

	return summary
}
