// Package goJWT encodes and decodes compact JSON Web Tokens authenticated with
// HMAC (HS256, HS384, HS512).
//
// A token is base64url(JSON(header)) "." base64url(JSON(claims)) "."
// base64url(signature), with the header fixed to {"typ":"JWT","alg":...}.
// Decoding verifies the signature in constant time unless explicitly asked not
// to, and rejects any algorithm that is not registered, verified or not.
//
// # Architecture boundaries
//
// goJWT is the public surface. It exposes [Codec], [Builder], [Config], the
// sentinel errors and [Metrics]. Segment encoding lives in base64url,
// signers in algorithm, JSON handling in serializer and the encode/decode
// pipelines under internal/flows.
//
// # What this package must NOT do
//
//   - Perform I/O, block, or start goroutines in encode or decode.
//   - Retain or log keys or tokens.
//   - Validate claim semantics such as exp or aud; callers inspect the returned map.
//
// # Concurrency
//
// A [Codec] is immutable after [Builder.Build] and safe for concurrent use.
// The package-level helpers share one lazily built default codec.
package goJWT
