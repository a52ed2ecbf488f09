package algorithm

import (
	"github.com/golang-jwt/jwt/v5"
)

type signingMethod struct {
	method jwt.SigningMethod
}

// FromSigningMethod adapts a golang-jwt signing method whose Sign accepts a
// []byte key. The message is passed to the method as the signing string.
func FromSigningMethod(method jwt.SigningMethod) Signer {
	if method == nil {
		return nil
	}
	return signingMethod{method: method}
}

func (s signingMethod) Alg() string {
	return s.method.Alg()
}

func (s signingMethod) Sign(message, key []byte) ([]byte, error) {
	return s.method.Sign(string(message), key)
}
