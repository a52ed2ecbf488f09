// Package prometheus exposes goJWT codec metrics to Prometheus.
//
// [NewPrometheusExporter] wraps a [goJWT.Codec] in a prometheus.Collector.
// Counters are named gojwt_*_total; the latency histograms are
// gojwt_encode_latency_seconds and gojwt_decode_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in the global Prometheus registry. Callers either mount
//     Handler or register the exporter with their own registry.
//   - Mutate codec state.
package prometheus
