package sim

// SimConfig groups every parameter that shapes engine behavior into one
// immutable value, constructed once and threaded through the Simulator.
// There is no process-wide mutable state anywhere in this package.
type SimConfig struct {
	CachePolicy          CachePolicyType
	CacheSize            int // total capacity weight per node (§6 cacheSize)
	MaxRequestsPerSecond int // derives ServiceGap (§4.5)
	RerouteRequests      bool
	RerouteThreshold     int // queue depth at/above which a request is rerouted (§4.3)
}

// ServiceGap returns the fixed inter-service interval at a node, in
// milliseconds: floor(1000 / MaxRequestsPerSecond) (§4.5).
func (c SimConfig) ServiceGap() int64 {
	return int64(1000 / c.MaxRequestsPerSecond)
}

// Validate reports a ConfigError for any malformed field (§7). Called
// before engine construction; the engine itself never re-validates.
func (c SimConfig) Validate() error {
	if c.CacheSize <= 0 {
		return NewConfigError("cacheSize", "must be a positive integer")
	}
	if c.MaxRequestsPerSecond <= 0 {
		return NewConfigError("maxConcurrentRequests", "must be a positive integer")
	}
	switch c.CachePolicy {
	case CachePolicyLRU, CachePolicyFIFO, CachePolicyLFU:
	default:
		return NewConfigError("cachePolicy", "must be 0 (LRU), 1 (FIFO), or 2 (LFU)")
	}
	if c.RerouteRequests && c.RerouteThreshold <= 0 {
		return NewConfigError("rerouteThreshold", "must be a positive integer when rerouteRequests is enabled")
	}
	return nil
}
