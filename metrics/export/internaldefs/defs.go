package internaldefs

import (
	goJWT "github.com/MrEthical07/goJWT"
)

// CounterDef binds a codec counter to its exported name.
type CounterDef struct {
	ID   goJWT.MetricID
	Name string
	Help string
}

// HistogramDef binds a codec latency histogram to its exported name.
type HistogramDef struct {
	ID   goJWT.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported codec counter in output order.
var CounterDefs = []CounterDef{
	{ID: goJWT.MetricEncodeSuccess, Name: "gojwt_encode_success_total", Help: "Tokens encoded."},
	{ID: goJWT.MetricEncodeUnsupportedAlgorithm, Name: "gojwt_encode_unsupported_algorithm_total", Help: "Encodes rejected for an unregistered algorithm."},
	{ID: goJWT.MetricEncodeInvalidClaims, Name: "gojwt_encode_invalid_claims_total", Help: "Encodes rejected because claims could not be serialized."},
	{ID: goJWT.MetricDecodeSuccess, Name: "gojwt_decode_success_total", Help: "Tokens decoded with a verified signature."},
	{ID: goJWT.MetricDecodeUnverified, Name: "gojwt_decode_unverified_total", Help: "Tokens decoded without signature verification."},
	{ID: goJWT.MetricDecodeMalformed, Name: "gojwt_decode_malformed_total", Help: "Tokens rejected for missing segments."},
	{ID: goJWT.MetricDecodeInvalidEncoding, Name: "gojwt_decode_invalid_encoding_total", Help: "Tokens rejected for undecodable segments."},
	{ID: goJWT.MetricDecodeUnsupportedAlgorithm, Name: "gojwt_decode_unsupported_algorithm_total", Help: "Tokens rejected for an unregistered header algorithm."},
	{ID: goJWT.MetricDecodeSignatureMismatch, Name: "gojwt_decode_signature_mismatch_total", Help: "Tokens rejected by signature verification."},
	{ID: goJWT.MetricHeaderDecoded, Name: "gojwt_header_decoded_total", Help: "Header-only extractions."},
	{ID: goJWT.MetricHeaderInvalidEncoding, Name: "gojwt_header_invalid_encoding_total", Help: "Header-only extractions rejected for an undecodable header."},
}

// HistogramDefs lists the exported latency histograms.
var HistogramDefs = []HistogramDef{
	{ID: goJWT.MetricEncodeLatency, Name: "gojwt_encode_latency_seconds", Help: "Encode latency histogram."},
	{ID: goJWT.MetricDecodeLatency, Name: "gojwt_decode_latency_seconds", Help: "Decode latency histogram."},
}

// HistogramBounds are the bucket upper bounds in seconds, as rendered in the
// le label.
var HistogramBounds = []string{
	"1e-05",
	"2.5e-05",
	"5e-05",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"+Inf",
}

// HistogramUpperBounds holds the finite bounds of HistogramBounds.
var HistogramUpperBounds = []float64{
	0.00001,
	0.000025,
	0.00005,
	0.0001,
	0.00025,
	0.0005,
	0.001,
}

// HistogramBoundSuffix names the bounds for exporters that encode them in
// instrument names.
var HistogramBoundSuffix = []string{
	"10us",
	"25us",
	"50us",
	"100us",
	"250us",
	"500us",
	"1ms",
	"inf",
}

// NormalizeBuckets copies raw into a fixed eight-bucket array, zero-filling
// missing buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
