package flows

import (
	"fmt"
	"strings"

	"github.com/MrEthical07/goJWT/base64url"
	"github.com/MrEthical07/goJWT/token"
)

// EncodeResult holds either a compact token or a classified failure.
type EncodeResult struct {
	Token   string
	Failure FailureKind
	Err     error
}

var emptyClaims = []byte("{}")

// maxDigestSegment is the encoded length of a 64-byte HS512 digest.
const maxDigestSegment = 86

// RunEncode serializes header and claims, signs the signing input with the
// signer registered under alg, and joins the three segments.
func RunEncode(deps Deps, claims token.Claims, key []byte, alg string) EncodeResult {
	signer, ok := deps.Registry.Lookup(alg)
	if !ok {
		return EncodeResult{Failure: FailureUnsupportedAlgorithm, Err: fmt.Errorf("%q is not registered", alg)}
	}

	headerJSON, err := deps.Serializer.Marshal(token.NewHeader(alg))
	if err != nil {
		return EncodeResult{Failure: FailureInvalidClaims, Err: fmt.Errorf("header: %w", err)}
	}

	payloadJSON := emptyClaims
	if claims != nil {
		payloadJSON, err = deps.Serializer.Marshal(claims)
		if err != nil {
			return EncodeResult{Failure: FailureInvalidClaims, Err: err}
		}
	}

	headerSeg := base64url.Encode(headerJSON)
	payloadSeg := base64url.Encode(payloadJSON)

	var b strings.Builder
	b.Grow(len(headerSeg) + len(payloadSeg) + 2 + maxDigestSegment)
	b.WriteString(headerSeg)
	b.WriteByte('.')
	b.WriteString(payloadSeg)
	signingInput := b.String()

	sig, err := signer.Sign([]byte(signingInput), key)
	if err != nil {
		return EncodeResult{Failure: FailureUnsupportedAlgorithm, Err: fmt.Errorf("%s: %w", alg, err)}
	}

	b.WriteByte('.')
	b.WriteString(base64url.Encode(sig))

	return EncodeResult{Token: b.String()}
}
