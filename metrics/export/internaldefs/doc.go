// Package internaldefs holds the metric names, help texts and bucket bounds
// shared by the exporter packages, so the Prometheus and OTel views of a codec
// always agree.
//
// # What this package must NOT do
//
//   - Import any exporter package.
//   - Perform I/O.
package internaldefs
