package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdnsim/cdnsim/sim"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunRequest_AssignsRunIDWhenMissing(t *testing.T) {
	path := writeTempFile(t, "req.json", `{
		"coordinates": [50, 50],
		"nodeCoordinates": [[40, 50]],
		"userCoordinates": [[0, 0]],
		"cachePolicy": 0,
		"cacheSize": 7,
		"maxConcurrentRequests": 100,
		"rerouteRequests": false
	}`)

	req, err := LoadRunRequest(path)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", req.RunID.String())
}

func TestRunRequest_Validate_RejectsNonPositiveCacheSize(t *testing.T) {
	req := &RunRequest{
		NodeCoordinates:       []point{{0, 0}},
		CacheSize:             0,
		MaxConcurrentRequests: 10,
		CachePolicy:           sim.CachePolicyLRU,
	}
	err := req.Validate()
	require.Error(t, err)
	var cfgErr *sim.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRunRequest_Validate_RejectsEmptyNodeList(t *testing.T) {
	req := &RunRequest{CacheSize: 7, MaxConcurrentRequests: 10, CachePolicy: sim.CachePolicyLRU}
	assert.Error(t, req.Validate())
}

func TestRunRequest_Validate_RejectsUnknownCachePolicy(t *testing.T) {
	req := &RunRequest{
		NodeCoordinates:       []point{{0, 0}},
		CacheSize:             7,
		MaxConcurrentRequests: 10,
		CachePolicy:           sim.CachePolicyType(99),
	}
	assert.Error(t, req.Validate())
}

func TestRunRequest_Validate_AcceptsWellFormedRequest(t *testing.T) {
	req := &RunRequest{
		NodeCoordinates:       []point{{0, 0}},
		CacheSize:             7,
		MaxConcurrentRequests: 10,
		CachePolicy:           sim.CachePolicyLRU,
	}
	assert.NoError(t, req.Validate())
}

func TestPoint_ToCoordinate_AppliesScale(t *testing.T) {
	p := point{10, 20}
	got := p.toCoordinate()
	assert.Equal(t, sim.Coordinate{X: 4000, Y: 8000}, got)
}
