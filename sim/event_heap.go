package sim

import "container/heap"

// EventHeap is a priority queue of Events with deterministic ordering:
// (proc_time, schedule_time, seq) lexicographically ascending (§4.1).
// No cancellation — once scheduled, an event always fires.
type EventHeap struct {
	events []Event
}

// NewEventHeap creates an empty EventHeap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{events: make([]Event, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int { return len(h.events) }

// Less implements heap.Interface with the (proc_time, schedule_time, seq)
// lexicographic ordering that keeps the heap a strict total order.
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]

	if ei.ProcTime() != ej.ProcTime() {
		return ei.ProcTime() < ej.ProcTime()
	}
	if ei.ScheduleTime() != ej.ScheduleTime() {
		return ei.ScheduleTime() < ej.ScheduleTime()
	}
	return ei.Seq() < ej.Seq()
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) { h.events[i], h.events[j] = h.events[j], h.events[i] }

// Push implements heap.Interface.
func (h *EventHeap) Push(x interface{}) { h.events = append(h.events, x.(Event)) }

// Pop implements heap.Interface.
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[:n-1]
	return item
}

// Schedule adds an event to the heap. O(log n).
func (h *EventHeap) Schedule(e Event) { heap.Push(h, e) }

// PopNext removes and returns the next event in order. O(log n). Returns
// nil if the heap is empty.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(Event)
}

// Empty reports whether the heap has no pending events.
func (h *EventHeap) Empty() bool { return h.Len() == 0 }
