// Package serializer turns token headers and claims into JSON text and back.
//
// The codec never hand-writes JSON; it delegates to a [Serializer]. The
// default, [JSON], is backed by github.com/goccy/go-json and writes map keys
// in sorted order, so equal claim maps always produce identical bytes and
// therefore identical signatures.
package serializer
