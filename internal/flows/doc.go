// Package flows contains the pure encode and decode pipelines behind every
// Codec operation.
//
// Each flow function (RunEncode, RunDecode, RunHeader) accepts a [Deps] value
// and returns a result carrying either the output or a classified
// [FailureKind]. The root package maps failure kinds to its public sentinel
// errors, records metrics, and logs; flows do none of that.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import goJWT (to avoid import cycles).
//   - Perform I/O, log, or retain key material.
package flows
