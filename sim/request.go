// Defines the Request struct that models a single item request's
// progression through the CDN: user -> node -> (cache hit | origin ->
// node) -> user.

package sim

// Request tracks one workload entry's lifecycle. One Request is created
// per workload entry during initial scheduling and mutated in place as it
// advances through the state machine in simulator.go.
type Request struct {
	ID         RequestID
	SourceUser UserID
	Node       NodeID // mutable: may change on congestion reroute (§4.5)
	ItemTag    ItemTag

	Item *Item // nil until fulfilled; stays nil if the origin lacks the item

	CreateTime int64

	ReceiveTime    int64 // only meaningful when ReceiveTimeSet
	ReceiveTimeSet bool

	CacheHit bool
}

// Fulfilled reports whether the origin (or a node cache) ever supplied the
// item for this request. An unfulfilled request still completes — it just
// carries Item == nil (§7 MissingItemAtOrigin).
func (r *Request) Fulfilled() bool {
	return r.Item != nil
}

// WaitTime returns the elapsed time between creation and receipt. Only
// valid once ReceiveTimeSet is true.
func (r *Request) WaitTime() int64 {
	return r.ReceiveTime - r.CreateTime
}
