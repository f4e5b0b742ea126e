package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// MetricsConfig holds metrics collection and exposure settings
type MetricsConfig struct {
	// Enabled mounts the Prometheus handler on the API router at /metrics
	Enabled bool `env:"METRICS_ENABLED" yaml:"metrics_enabled" default:"true"`

	// Port runs a dedicated metrics listener when non-zero
	Port int `env:"METRICS_PORT" yaml:"metrics_port"`
}

// Validate checks MetricsConfig for valid port range when a dedicated listener is used
func (m MetricsConfig) Validate() error {
	var result error
	if m.Port != 0 && (m.Port < 1 || m.Port > 65535) {
		result = multierror.Append(result, fmt.Errorf("metrics port must be between 1-65535, got %d", m.Port))
	}
	return result
}
