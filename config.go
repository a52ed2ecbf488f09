package goJWT

import (
	"fmt"

	"github.com/MrEthical07/goJWT/algorithm"
)

// Config defines the tunables of a [Codec].
//
// A Config is a plain value. Build copies it, so changing a Config after
// Build has no effect on the codec.
type Config struct {
	// DefaultAlgorithm is used by Encode. It must be registered in the
	// codec's registry.
	DefaultAlgorithm string
	Serializer       SerializerConfig
	Metrics          MetricsConfig
}

/*
====================================
SERIALIZER CONFIG
====================================
*/

// SerializerConfig controls how claims are decoded.
type SerializerConfig struct {
	// UseNumber decodes JSON numbers as json.Number instead of float64.
	UseNumber bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines which codec metrics are recorded.
//
// EnableLatencyHistograms requires Enabled.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULTS
====================================
*/

// DefaultConfig returns the configuration used by [New] and by the
// package-level helpers: HS256, float64 numbers, metrics off.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		DefaultAlgorithm: algorithm.NameHS256,
		Serializer: SerializerConfig{
			UseNumber: false,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks settings that do not depend on a registry. Build
// additionally checks DefaultAlgorithm against the configured registry.
func (c *Config) Validate() error {
	if c.DefaultAlgorithm == "" {
		return fmt.Errorf("%w: DefaultAlgorithm must not be empty", ErrInvalidConfig)
	}
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return fmt.Errorf("%w: latency histograms require metrics to be enabled", ErrInvalidConfig)
	}
	return nil
}
