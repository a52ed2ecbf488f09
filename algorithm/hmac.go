package algorithm

import (
	"crypto/hmac"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HMAC signs with a keyed hash. The hash and name come from a golang-jwt
// HMAC signing method.
type HMAC struct {
	method *jwt.SigningMethodHMAC
}

var (
	// HS256 is HMAC-SHA256.
	HS256 = NewHMAC(jwt.SigningMethodHS256)
	// HS384 is HMAC-SHA384.
	HS384 = NewHMAC(jwt.SigningMethodHS384)
	// HS512 is HMAC-SHA512.
	HS512 = NewHMAC(jwt.SigningMethodHS512)
)

// NewHMAC wraps a golang-jwt HMAC method.
func NewHMAC(method *jwt.SigningMethodHMAC) HMAC {
	return HMAC{method: method}
}

// Alg returns the algorithm name, e.g. "HS256".
func (h HMAC) Alg() string {
	if h.method == nil {
		return ""
	}
	return h.method.Name
}

// Sign returns HMAC(key, message). Empty keys are accepted.
func (h HMAC) Sign(message, key []byte) ([]byte, error) {
	if h.method == nil {
		return nil, fmt.Errorf("%w: hmac signer without method", ErrInvalidSigner)
	}
	if !h.method.Hash.Available() {
		return nil, fmt.Errorf("%s: %w", h.method.Name, jwt.ErrHashUnavailable)
	}

	mac := hmac.New(h.method.Hash.New, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// Equal compares two digests in constant time.
func Equal(a, b []byte) bool {
	return hmac.Equal(a, b)
}
