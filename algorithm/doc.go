// Package algorithm holds the registry of named signing functions a codec may
// use to authenticate tokens.
//
// A [Registry] is built once, at process start, from a fixed list of
// [Signer] values and is never mutated afterwards. Lookups are exact and
// case-sensitive. [Default] returns the shared registry with the three HMAC
// algorithms HS256, HS384 and HS512.
//
// HMAC signers reuse the hash metadata of the golang-jwt signing methods, so a
// token signed here verifies under github.com/golang-jwt/jwt/v5 and the other
// way around. [FromSigningMethod] adapts any other golang-jwt method that
// accepts []byte keys.
//
// # What this package must NOT do
//
//   - Expose a way to add or replace entries after [NewRegistry] returns.
//   - Retain key material past a single Sign call.
package algorithm
