package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimConfig_ServiceGap(t *testing.T) {
	c := SimConfig{MaxRequestsPerSecond: 100}
	assert.Equal(t, int64(10), c.ServiceGap())
}

func TestSimConfig_Validate_RejectsNonPositiveCacheSize(t *testing.T) {
	c := SimConfig{CacheSize: 0, MaxRequestsPerSecond: 10, CachePolicy: CachePolicyLRU}
	err := c.Validate()
	assert.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "cacheSize", cfgErr.Field)
}

func TestSimConfig_Validate_RejectsUnknownCachePolicy(t *testing.T) {
	c := SimConfig{CacheSize: 7, MaxRequestsPerSecond: 10, CachePolicy: CachePolicyType(99)}
	err := c.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_RequiresThresholdWhenRerouting(t *testing.T) {
	c := SimConfig{CacheSize: 7, MaxRequestsPerSecond: 10, CachePolicy: CachePolicyLRU, RerouteRequests: true}
	err := c.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_AcceptsWellFormedConfig(t *testing.T) {
	c := SimConfig{
		CacheSize:            7,
		MaxRequestsPerSecond: 100,
		CachePolicy:          CachePolicyLRU,
		RerouteRequests:      true,
		RerouteThreshold:     40,
	}
	assert.NoError(t, c.Validate())
}
