package goJWT

import (
	"fmt"

	"github.com/MrEthical07/goJWT/algorithm"
	"github.com/MrEthical07/goJWT/internal/flows"
	"github.com/MrEthical07/goJWT/serializer"
	"github.com/rs/zerolog"
)

// Builder assembles a [Codec].
//
// The With* methods mutate the builder in place and return it for chaining.
// A Builder is not safe for concurrent use and can be built once; the
// resulting Codec copies the configuration and does not observe later calls.
type Builder struct {
	config     Config
	registry   *algorithm.Registry
	serializer serializer.Serializer
	logger     *zerolog.Logger

	built bool
}

// New returns a builder seeded with [DefaultConfig] and the default HMAC
// registry.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRegistry sets the algorithm registry. A nil registry selects
// [algorithm.Default].
func (b *Builder) WithRegistry(r *algorithm.Registry) *Builder {
	b.registry = r
	return b
}

// WithSerializer overrides the claims serializer. When unset, Build uses
// serializer.JSON configured from Config.Serializer.
func (b *Builder) WithSerializer(s serializer.Serializer) *Builder {
	b.serializer = s
	return b
}

// WithLogger sets the logger used for debug-level failure events. The key and
// the token are never logged.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.logger = &l
	return b
}

// WithMetricsEnabled toggles the codec counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles encode/decode latency histograms. Requires
// metrics to be enabled.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// WithDefaultAlgorithm sets the algorithm used by [Codec.Encode].
func (b *Builder) WithDefaultAlgorithm(alg string) *Builder {
	b.config.DefaultAlgorithm = alg
	return b
}

// Build validates the configuration and returns an immutable codec. A builder
// can be built once.
func (b *Builder) Build() (*Codec, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := b.registry
	if registry == nil {
		registry = algorithm.Default()
	}
	if !registry.Supports(cfg.DefaultAlgorithm) {
		return nil, fmt.Errorf("%w: default algorithm %q is not registered", ErrInvalidConfig, cfg.DefaultAlgorithm)
	}

	ser := b.serializer
	if ser == nil {
		ser = serializer.JSON{UseNumber: cfg.Serializer.UseNumber}
	}

	logger := zerolog.Nop()
	if b.logger != nil {
		logger = *b.logger
	}

	b.built = true

	return &Codec{
		config: cfg,
		deps: flows.Deps{
			Registry:   registry,
			Serializer: ser,
		},
		logger:  logger,
		metrics: NewMetrics(cfg.Metrics),
	}, nil
}
