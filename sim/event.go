package sim

// Event represents one scheduled transition of the request state machine.
// seq is assigned by the Simulator at schedule time and exists solely to
// make the ordering in event_heap.go total and deterministic (§4.1).
type Event interface {
	ProcTime() int64
	ScheduleTime() int64
	Seq() uint64
	Kind() EventType
	Execute(s *Simulator)
}

// BaseEvent provides the fields common to every event variant.
type BaseEvent struct {
	procTime     int64
	scheduleTime int64
	seq          uint64
	kind         EventType
}

func (e *BaseEvent) ProcTime() int64     { return e.procTime }
func (e *BaseEvent) ScheduleTime() int64 { return e.scheduleTime }
func (e *BaseEvent) Seq() uint64         { return e.seq }
func (e *BaseEvent) Kind() EventType     { return e.kind }

// UserSendEvent: a user dispatches a request toward its assigned node.
type UserSendEvent struct {
	BaseEvent
	RequestID RequestID
}

func (e *UserSendEvent) Execute(s *Simulator) { s.handleUserSend(e) }

// NodeReceiveRequestEvent: a request arrives at a node and is enqueued.
type NodeReceiveRequestEvent struct {
	BaseEvent
	RequestID RequestID
}

func (e *NodeReceiveRequestEvent) Execute(s *Simulator) { s.handleNodeReceiveRequest(e) }

// NodeServeEvent: a node dequeues and services one request.
type NodeServeEvent struct {
	BaseEvent
	NodeID NodeID
}

func (e *NodeServeEvent) Execute(s *Simulator) { s.handleNodeServe(e) }

// OriginReceiveEvent: the origin looks up an item for a cache-miss request.
type OriginReceiveEvent struct {
	BaseEvent
	RequestID RequestID
}

func (e *OriginReceiveEvent) Execute(s *Simulator) { s.handleOriginReceive(e) }

// NodeReceiveItemEvent: the node receives the origin's response and caches it.
type NodeReceiveItemEvent struct {
	BaseEvent
	RequestID RequestID
}

func (e *NodeReceiveItemEvent) Execute(s *Simulator) { s.handleNodeReceiveItem(e) }

// UserReceiveEvent: the user receives the final response, completing the request.
type UserReceiveEvent struct {
	BaseEvent
	RequestID RequestID
}

func (e *UserReceiveEvent) Execute(s *Simulator) { s.handleUserReceive(e) }
