// Package primitives provides versioning utilities for TourConfig.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for TourConfig.
// Priority: user-provided config.Version, else SHA256(config JSON)[:8].
func ComputeVersion(config *TourConfig) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		// TourConfig holds only strings; Marshal cannot fail in practice.
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
