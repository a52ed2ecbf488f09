package goJWT

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a codec counter or histogram.
type MetricID uint16

const (
	// MetricEncodeSuccess counts tokens produced.
	MetricEncodeSuccess MetricID = iota
	// MetricEncodeUnsupportedAlgorithm counts encodes rejected for an unregistered algorithm.
	MetricEncodeUnsupportedAlgorithm
	// MetricEncodeInvalidClaims counts encodes rejected because claims could not be serialized.
	MetricEncodeInvalidClaims
	// MetricDecodeSuccess counts verified decodes.
	MetricDecodeSuccess
	// MetricDecodeUnverified counts decodes that skipped signature verification.
	MetricDecodeUnverified
	// MetricDecodeMalformed counts tokens without three segments.
	MetricDecodeMalformed
	// MetricDecodeInvalidEncoding counts tokens with undecodable segments.
	MetricDecodeInvalidEncoding
	// MetricDecodeUnsupportedAlgorithm counts tokens naming an unregistered algorithm.
	MetricDecodeUnsupportedAlgorithm
	// MetricDecodeSignatureMismatch counts tokens failing signature verification.
	MetricDecodeSignatureMismatch
	// MetricHeaderDecoded counts header-only extractions.
	MetricHeaderDecoded
	// MetricHeaderInvalidEncoding counts header-only extractions with an undecodable header.
	MetricHeaderInvalidEncoding
	// MetricEncodeLatency is the encode latency histogram.
	MetricEncodeLatency
	// MetricDecodeLatency is the decode latency histogram.
	MetricDecodeLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters and latency histograms for one [Codec].
//
// Its configuration is fixed by [NewMetrics]; Inc, Observe and Snapshot are
// safe for concurrent use.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all counters and histograms.
// Histogram buckets are non-cumulative.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics creates a metrics set. With cfg.Enabled false every method is a
// no-op.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether latency histograms are recorded.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc increments a counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a latency sample for a histogram metric. Samples for
// counter IDs are dropped.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || !isHistogram(id) {
		return
	}

	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns the current value of a counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies the current state. A disabled set yields empty maps.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 2),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if isHistogram(id) {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		for _, id := range []MetricID{MetricEncodeLatency, MetricDecodeLatency} {
			buckets := make([]uint64, histBucketCount)
			for i := 0; i < histBucketCount; i++ {
				buckets[i] = atomic.LoadUint64(&m.histograms[id].buckets[i])
			}
			s.Histograms[id] = buckets
		}
	}

	return s
}

func isHistogram(id MetricID) bool {
	return id == MetricEncodeLatency || id == MetricDecodeLatency
}

// bucketIndex maps a duration onto the fixed bounds
// 10µs, 25µs, 50µs, 100µs, 250µs, 500µs, 1ms, +Inf.
func bucketIndex(d time.Duration) int {
	us := d.Microseconds()

	switch {
	case us <= 10:
		return 0
	case us <= 25:
		return 1
	case us <= 50:
		return 2
	case us <= 100:
		return 3
	case us <= 250:
		return 4
	case us <= 500:
		return 5
	case us <= 1000:
		return 6
	default:
		return 7
	}
}
