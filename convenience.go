package goJWT

import "sync"

// defaultCodec backs the package-level helpers: default registry, HS256,
// float64 numbers, metrics off, no logging.
var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := New().Build()
	if err != nil {
		panic("goJWT: default codec: " + err.Error())
	}
	return c
})

// Encode signs claims with HS256 using the default codec.
func Encode(claims Claims, key []byte) (string, error) {
	return defaultCodec().Encode(claims, key)
}

// EncodeWithAlgorithm signs claims with alg using the default codec.
func EncodeWithAlgorithm(claims Claims, key []byte, alg string) (string, error) {
	return defaultCodec().EncodeWithAlgorithm(claims, key, alg)
}

// Decode verifies token with key using the default codec.
func Decode(token string, key []byte) (Claims, error) {
	return defaultCodec().Decode(token, key)
}

// DecodeUnverified returns token's claims without signature verification.
func DecodeUnverified(token string) (Claims, error) {
	return defaultCodec().DecodeUnverified(token)
}

// Parse decodes token with the default codec. See [Codec.Parse].
func Parse(token string, key []byte, verify bool) (*Token, error) {
	return defaultCodec().Parse(token, key, verify)
}

// DecodeHeader returns token's header without verification.
func DecodeHeader(token string) (Header, error) {
	return defaultCodec().DecodeHeader(token)
}
