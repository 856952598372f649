package sim

import (
	"fmt"
	"sort"

	"github.com/cdnsim/cdnsim/cache"
)

// Simulator is the event-driven CDN request simulator (§2). It owns a
// single monotonic logical clock and event heap; Users, Nodes, and the
// Origin are created once during setup and referenced by their stable ids.
//
// Not safe for concurrent use: the engine is a single-threaded cooperative
// loop over the logical event clock (§5). All state is mutated only from
// InitialSchedule and Run.
type Simulator struct {
	Config SimConfig

	origin *Origin
	nodes  []*Node
	users  []*User

	nodesByID map[NodeID]*Node
	usersByID map[UserID]*User
	requests  map[RequestID]*Request

	queue   *EventHeap
	Clock   int64
	nextSeq uint64
}

// NewSimulator constructs a Simulator over a fixed topology and config.
// Topology is immutable after this call; only event handlers mutate node
// queues, caches, and request records thereafter.
func NewSimulator(origin *Origin, nodes []*Node, users []*User, cfg SimConfig) *Simulator {
	nodesByID := make(map[NodeID]*Node, len(nodes))
	for _, n := range nodes {
		nodesByID[n.ID] = n
	}
	usersByID := make(map[UserID]*User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	return &Simulator{
		Config:    cfg,
		origin:    origin,
		nodes:     nodes,
		users:     users,
		nodesByID: nodesByID,
		usersByID: usersByID,
		requests:  make(map[RequestID]*Request),
		queue:     NewEventHeap(),
	}
}

// newBase stamps an event with the current clock as its schedule_time and
// the next monotonically increasing seq (§4.1).
func (s *Simulator) newBase(procTime int64, kind EventType) BaseEvent {
	s.nextSeq++
	return BaseEvent{
		procTime:     procTime,
		scheduleTime: s.Clock,
		seq:          s.nextSeq,
		kind:         kind,
	}
}

// InitialSchedule builds one Request per workload entry across all users
// and schedules its UserSend event, per §4.6. Each user's workload is
// sorted by create_time ascending first. Request ids are deterministic:
// "{user.id}.{index}".
//
// Initial node assignment uses the plain closest node (no congestion
// filter); the congestion filter applies only to runtime reroute checks.
func (s *Simulator) InitialSchedule() {
	for _, u := range s.users {
		sort.SliceStable(u.Workload, func(i, j int) bool {
			return u.Workload[i].CreateTime < u.Workload[j].CreateTime
		})

		target := ClosestNode(u.Coords, s.nodes)

		for i, entry := range u.Workload {
			req := &Request{
				ID:         RequestID(fmt.Sprintf("%s.%d", u.ID, i)),
				SourceUser: u.ID,
				Node:       target.ID,
				ItemTag:    entry.ItemTag,
				CreateTime: entry.CreateTime,
			}
			s.requests[req.ID] = req

			e := &UserSendEvent{
				BaseEvent: s.newBase(entry.CreateTime, EventTypeUserSend),
				RequestID: req.ID,
			}
			s.queue.Schedule(e)
		}
	}
}

// Run drains the event queue, advancing Clock to each event's proc_time
// before dispatching it, until no events remain (§4.6).
func (s *Simulator) Run() {
	for !s.queue.Empty() {
		e := s.queue.PopNext()
		if e.ProcTime() < s.Clock {
			panic(fmt.Sprintf("sim: clock went backwards: %d < %d", e.ProcTime(), s.Clock))
		}
		s.Clock = e.ProcTime()
		e.Execute(s)
	}
}

// --- Event handlers (§4.5) ---

func (s *Simulator) handleUserSend(e *UserSendEvent) {
	req := s.requests[e.RequestID]
	user := s.usersByID[req.SourceUser]
	node := s.nodesByID[req.Node]

	if s.Config.RerouteRequests && node.Queue.Len() >= s.Config.RerouteThreshold {
		if alt := ClosestNonCongested(user.Coords, s.nodes, s.Config.RerouteThreshold); alt != nil {
			req.Node = alt.ID
			node = alt
		}
		// else: no qualifying node, keep the original assignment (§9 Open Questions)
	}

	lat := OneWayLatency(user.Coords, node.Coords)
	s.queue.Schedule(&NodeReceiveRequestEvent{
		BaseEvent: s.newBase(s.Clock+lat, EventTypeNodeReceiveRequest),
		RequestID: req.ID,
	})
}

func (s *Simulator) handleNodeReceiveRequest(e *NodeReceiveRequestEvent) {
	req := s.requests[e.RequestID]
	node := s.nodesByID[req.Node]

	wasEmpty := node.Queue.Len() == 0
	node.Queue.Enqueue(req.ID)
	if node.Queue.Len() > node.Stats.MaxQueueLength {
		node.Stats.MaxQueueLength = node.Queue.Len()
	}

	if wasEmpty {
		s.queue.Schedule(&NodeServeEvent{
			BaseEvent: s.newBase(s.Clock+s.Config.ServiceGap(), EventTypeNodeServe),
			NodeID:    node.ID,
		})
	}
}

func (s *Simulator) handleNodeServe(e *NodeServeEvent) {
	node := s.nodesByID[e.NodeID]
	reqID, ok := node.Queue.Dequeue()
	if !ok {
		return
	}
	req := s.requests[reqID]
	user := s.usersByID[req.SourceUser]

	node.Stats.NumRequests++

	if v, hit := node.Cache.Get(cache.ItemTag(req.ItemTag)); hit {
		node.Stats.CacheHits++
		req.CacheHit = true
		item := v.(Item)
		req.Item = &item

		lat := OneWayLatency(user.Coords, node.Coords)
		s.queue.Schedule(&UserReceiveEvent{
			BaseEvent: s.newBase(s.Clock+lat, EventTypeUserReceive),
			RequestID: req.ID,
		})
	} else {
		lat := OneWayLatency(node.Coords, s.origin.Coords)
		s.queue.Schedule(&OriginReceiveEvent{
			BaseEvent: s.newBase(s.Clock+lat, EventTypeOriginReceive),
			RequestID: req.ID,
		})
	}

	if node.Queue.Len() > 0 {
		s.queue.Schedule(&NodeServeEvent{
			BaseEvent: s.newBase(s.Clock+s.Config.ServiceGap(), EventTypeNodeServe),
			NodeID:    node.ID,
		})
	}
}

func (s *Simulator) handleOriginReceive(e *OriginReceiveEvent) {
	req := s.requests[e.RequestID]
	node := s.nodesByID[req.Node]

	if item, ok := s.origin.Lookup(req.ItemTag); ok {
		req.Item = &item
	}
	// else: MissingItemAtOrigin (§7) — not an error, req.Item stays nil.

	lat := OneWayLatency(node.Coords, s.origin.Coords)
	s.queue.Schedule(&NodeReceiveItemEvent{
		BaseEvent: s.newBase(s.Clock+lat, EventTypeNodeReceiveItem),
		RequestID: req.ID,
	})
}

func (s *Simulator) handleNodeReceiveItem(e *NodeReceiveItemEvent) {
	req := s.requests[e.RequestID]
	node := s.nodesByID[req.Node]
	user := s.usersByID[req.SourceUser]

	if req.Item != nil && req.Item.Size <= node.Cache.MaxSize() {
		node.Cache.Insert(cache.ItemTag(req.Item.Tag), *req.Item, req.Item.Size)
	}

	lat := OneWayLatency(user.Coords, node.Coords)
	s.queue.Schedule(&UserReceiveEvent{
		BaseEvent: s.newBase(s.Clock+lat, EventTypeUserReceive),
		RequestID: req.ID,
	})
}

func (s *Simulator) handleUserReceive(e *UserReceiveEvent) {
	req := s.requests[e.RequestID]
	req.ReceiveTime = s.Clock
	req.ReceiveTimeSet = true

	user := s.usersByID[req.SourceUser]
	user.Received = append(user.Received, req)
}
