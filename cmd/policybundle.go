package cmd

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle carries the defaults a RunRequest doesn't specify: reroute
// threshold and an optional metrics export address.
type PolicyBundle struct {
	RerouteThreshold int    `yaml:"reroute_threshold"`
	MetricsAddr      string `yaml:"metrics_addr"`
}

// defaultPolicyBundle is used when no --policy file is given.
func defaultPolicyBundle() PolicyBundle {
	return PolicyBundle{RerouteThreshold: 40}
}

// LoadPolicyBundle parses a policy bundle YAML file with strict field
// checking, so a typo'd key fails loudly rather than silently no-op'ing.
func LoadPolicyBundle(path string) (PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PolicyBundle{}, err
	}
	bundle := defaultPolicyBundle()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return PolicyBundle{}, err
	}
	return bundle, nil
}
