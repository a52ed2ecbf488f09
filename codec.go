package goJWT

import (
	"fmt"
	"time"

	"github.com/MrEthical07/goJWT/internal/flows"
	"github.com/rs/zerolog"
)

// Codec encodes and decodes compact HMAC tokens. Build one with [New].
//
// A Codec is immutable and safe for concurrent use. Keys are borrowed for the
// duration of a call and never retained or logged.
type Codec struct {
	config  Config
	deps    flows.Deps
	logger  zerolog.Logger
	metrics *Metrics
}

// Encode signs claims with the configured default algorithm.
func (c *Codec) Encode(claims Claims, key []byte) (string, error) {
	return c.EncodeWithAlgorithm(claims, key, c.config.DefaultAlgorithm)
}

// EncodeWithAlgorithm signs claims with alg, which must be registered. A nil
// claims map encodes as an empty object.
func (c *Codec) EncodeWithAlgorithm(claims Claims, key []byte, alg string) (string, error) {
	if c.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { c.metrics.Observe(MetricEncodeLatency, time.Since(start)) }()
	}

	res := flows.RunEncode(c.deps, claims, key, alg)
	if res.Failure != flows.FailureNone {
		c.logger.Debug().
			Str("op", "encode").
			Str("alg", alg).
			Stringer("failure", res.Failure).
			Msg("token encode failed")
		c.metrics.Inc(encodeFailureMetric(res.Failure))
		return "", mapFailure(res.Failure, res.Err)
	}

	c.metrics.Inc(MetricEncodeSuccess)
	return res.Token, nil
}

// Decode verifies token with key and returns its claims.
func (c *Codec) Decode(token string, key []byte) (Claims, error) {
	t, err := c.Parse(token, key, true)
	if err != nil {
		return nil, err
	}
	return t.Claims, nil
}

// DecodeUnverified returns the claims of token without checking its
// signature. The header algorithm must still be registered.
func (c *Codec) DecodeUnverified(token string) (Claims, error) {
	t, err := c.Parse(token, nil, false)
	if err != nil {
		return nil, err
	}
	return t.Claims, nil
}

// Parse decodes token into its header and claims, checking the signature
// when verify is set. On failure no partial token is returned.
func (c *Codec) Parse(token string, key []byte, verify bool) (*Token, error) {
	if c.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { c.metrics.Observe(MetricDecodeLatency, time.Since(start)) }()
	}

	res := flows.RunDecode(c.deps, token, key, verify)
	if res.Failure != flows.FailureNone {
		c.logger.Debug().
			Str("op", "decode").
			Bool("verify", verify).
			Stringer("failure", res.Failure).
			Msg("token decode failed")
		c.metrics.Inc(decodeFailureMetric(res.Failure))
		return nil, mapFailure(res.Failure, res.Err)
	}

	if res.Verified {
		c.metrics.Inc(MetricDecodeSuccess)
	} else {
		c.metrics.Inc(MetricDecodeUnverified)
	}

	return &Token{
		Header:   res.Header,
		Claims:   res.Claims,
		Verified: res.Verified,
	}, nil
}

// DecodeHeader returns the header of token without verification or
// registry lookup. Input without a '.' is treated as a lone header segment.
func (c *Codec) DecodeHeader(token string) (Header, error) {
	res := flows.RunHeader(c.deps, token)
	if res.Failure != flows.FailureNone {
		c.logger.Debug().
			Str("op", "header").
			Stringer("failure", res.Failure).
			Msg("token header decode failed")
		c.metrics.Inc(MetricHeaderInvalidEncoding)
		return Header{}, mapFailure(res.Failure, res.Err)
	}

	c.metrics.Inc(MetricHeaderDecoded)
	return res.Header, nil
}

// Algorithms lists the algorithm names this codec accepts, sorted.
func (c *Codec) Algorithms() []string {
	return c.deps.Registry.Algorithms()
}

// DefaultAlgorithm returns the algorithm used by Encode.
func (c *Codec) DefaultAlgorithm() string {
	return c.config.DefaultAlgorithm
}

// MetricsSnapshot returns a copy of the codec counters. The result is empty
// when metrics are disabled.
func (c *Codec) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

func mapFailure(kind flows.FailureKind, err error) error {
	var sentinel error
	switch kind {
	case flows.FailureMalformed:
		sentinel = ErrMalformedToken
	case flows.FailureEncoding:
		sentinel = ErrInvalidSegmentEncoding
	case flows.FailureUnsupportedAlgorithm:
		sentinel = ErrUnsupportedAlgorithm
	case flows.FailureSignatureMismatch:
		sentinel = ErrSignatureMismatch
	case flows.FailureInvalidClaims:
		sentinel = ErrInvalidClaims
	default:
		sentinel = ErrMalformedToken
	}

	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func encodeFailureMetric(kind flows.FailureKind) MetricID {
	if kind == flows.FailureInvalidClaims {
		return MetricEncodeInvalidClaims
	}
	return MetricEncodeUnsupportedAlgorithm
}

func decodeFailureMetric(kind flows.FailureKind) MetricID {
	switch kind {
	case flows.FailureEncoding:
		return MetricDecodeInvalidEncoding
	case flows.FailureUnsupportedAlgorithm:
		return MetricDecodeUnsupportedAlgorithm
	case flows.FailureSignatureMismatch:
		return MetricDecodeSignatureMismatch
	default:
		return MetricDecodeMalformed
	}
}
