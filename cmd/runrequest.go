package cmd

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/cdnsim/cdnsim/sim"
)

// coordScale is the factor a RunRequest's pre-normalized 0-100 coordinates
// are multiplied by to obtain kilometers (§6).
const coordScale = 400.0

// point is a [x, y] pair as it arrives over JSON.
type point [2]float64

func (p point) toCoordinate() sim.Coordinate {
	return sim.Coordinate{X: p[0] * coordScale, Y: p[1] * coordScale}
}

// RunRequest is the JSON-shaped input record described by §6: a CDN
// topology plus the config knobs the engine needs. RunID is a supplemental
// addition (not in §6) stamped on output to correlate a given invocation
// across logs; it is independent of the deterministic per-request
// "{user.id}.{index}" ids the engine assigns internally.
type RunRequest struct {
	RunID                 uuid.UUID           `json:"runId"`
	Coordinates           point               `json:"coordinates"`
	NodeCoordinates       []point             `json:"nodeCoordinates"`
	UserCoordinates       []point             `json:"userCoordinates"`
	CachePolicy           sim.CachePolicyType `json:"cachePolicy"`
	CacheSize             int                 `json:"cacheSize"`
	MaxConcurrentRequests int                 `json:"maxConcurrentRequests"`
	RerouteRequests       bool                `json:"rerouteRequests"`
}

// LoadRunRequest decodes a RunRequest from a JSON file and assigns a fresh
// RunID if the caller left it zero-valued.
func LoadRunRequest(path string) (*RunRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req RunRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, sim.NewConfigError("body", err.Error())
	}
	if req.RunID == uuid.Nil {
		req.RunID = uuid.New()
	}
	return &req, nil
}

// Validate enforces §6/§7's ConfigError conditions: malformed input never
// reaches the engine.
func (r *RunRequest) Validate() error {
	if len(r.NodeCoordinates) == 0 {
		return sim.NewConfigError("nodeCoordinates", "must contain at least one node")
	}
	if r.CacheSize <= 0 {
		return sim.NewConfigError("cacheSize", "must be positive")
	}
	if r.MaxConcurrentRequests <= 0 {
		return sim.NewConfigError("maxConcurrentRequests", "must be positive")
	}
	switch r.CachePolicy {
	case sim.CachePolicyLRU, sim.CachePolicyFIFO, sim.CachePolicyLFU:
	default:
		return sim.NewConfigError("cachePolicy", "unknown cache policy")
	}
	return nil
}
