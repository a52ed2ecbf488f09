// Package base64url implements the unpadded URL-safe base64 encoding used for
// every token segment.
//
// [Encode] never emits '=' padding. [Decode] accepts input with or without
// trailing padding, restores it to a multiple of four characters, and decodes
// strictly: characters outside the URL-safe alphabet, internal padding,
// impossible lengths, and non-zero trailing bits are all rejected.
//
// # What this package must NOT do
//
//   - Accept the standard ('+', '/') alphabet.
//   - Allocate beyond the returned buffer.
package base64url
