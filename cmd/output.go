package cmd

import (
	"github.com/google/uuid"

	"github.com/cdnsim/cdnsim/sim"
)

// Output is the JSON-shaped result of a run, echoing the input locations
// alongside the computed statistics (§6's output schema).
type Output struct {
	RunID          uuid.UUID            `json:"runId"`
	Requests       []sim.RequestSummary `json:"requests"`
	UserLocations  []point              `json:"user_locations"`
	OriginLocation point                `json:"origin_location"`
	NodeLocations  []point              `json:"node_locations"`

	CacheHitPercentage float64 `json:"cache_hit_percentage"`
	TotalRequests      int     `json:"total_requests"`
	AverageRequestWait float64 `json:"average_request_wait_time"`
	TotalWaitTime      int64   `json:"total_wait_time"`
	MinRequestWait     int64   `json:"min_request_wait_time"`
	MaxRequestWait     int64   `json:"max_wait_time"`
	TotalTimeElapsed   int64   `json:"total_time_elapsed"`
	MaxQueueLength     int     `json:"max_queue_length"`
}

// BuildOutput assembles an Output from a finished run's summary plus the
// original request's echoed locations.
func BuildOutput(req *RunRequest, summary sim.Summary) Output {
	return Output{
		RunID:              req.RunID,
		Requests:           summary.Requests,
		UserLocations:      req.UserCoordinates,
		OriginLocation:     req.Coordinates,
		NodeLocations:      req.NodeCoordinates,
		CacheHitPercentage: summary.CacheHitPercentage,
		TotalRequests:      summary.TotalRequests,
		AverageRequestWait: summary.AverageRequestWait,
		TotalWaitTime:      summary.TotalWaitTime,
		MinRequestWait:     summary.MinRequestWait,
		MaxRequestWait:     summary.MaxRequestWait,
		TotalTimeElapsed:   summary.TotalTimeElapsed,
		MaxQueueLength:     summary.MaxQueueLength,
	}
}
