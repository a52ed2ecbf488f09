// Package internal holds packages that are private to goJWT.
//
// # Sub-packages
//
//   - cli: cobra commands behind the gojwt binary
//   - config: koanf-backed configuration for the gojwt binary
//   - flows: pure encode/decode pipelines used by the public Codec
//   - logging: zerolog construction for the gojwt binary
//
// # What this package must NOT do
//
//   - Export types that appear in the public goJWT API.
//   - Be imported by any package outside the goJWT module.
package internal
