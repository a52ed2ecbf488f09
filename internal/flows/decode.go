package flows

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrEthical07/goJWT/algorithm"
	"github.com/MrEthical07/goJWT/base64url"
	"github.com/MrEthical07/goJWT/serializer"
	"github.com/MrEthical07/goJWT/token"
)

var (
	errNoSignatureSeparator = errors.New("no separator before signature segment")
	errNoPayloadSeparator   = errors.New("no separator between header and payload segments")
	errNotAnObject          = errors.New("segment is not a JSON object")
)

// DecodeResult holds either the decoded header and claims or a classified
// failure. On failure Header and Claims are zero.
type DecodeResult struct {
	Header   token.Header
	Claims   token.Claims
	Verified bool
	Failure  FailureKind
	Err      error
}

// RunDecode splits, decodes, gates on the header algorithm and, when verify
// is set, checks the signature in constant time.
func RunDecode(deps Deps, raw string, key []byte, verify bool) DecodeResult {
	dot := strings.LastIndexByte(raw, '.')
	if dot < 0 {
		return decodeFailure(FailureMalformed, errNoSignatureSeparator)
	}
	signingInput, sigSeg := raw[:dot], raw[dot+1:]

	headerSeg, payloadSeg, ok := strings.Cut(signingInput, ".")
	if !ok {
		return decodeFailure(FailureMalformed, errNoPayloadSeparator)
	}

	header, err := decodeHeader(deps.Serializer, headerSeg)
	if err != nil {
		return decodeFailure(FailureEncoding, fmt.Errorf("header: %w", err))
	}

	claims, err := decodeClaims(deps.Serializer, payloadSeg)
	if err != nil {
		return decodeFailure(FailureEncoding, fmt.Errorf("payload: %w", err))
	}

	sig, err := base64url.Decode(sigSeg)
	if err != nil {
		return decodeFailure(FailureEncoding, fmt.Errorf("signature: %w", err))
	}

	signer, ok := deps.Registry.Lookup(header.Alg)
	if !ok {
		return decodeFailure(FailureUnsupportedAlgorithm, fmt.Errorf("%q is not registered", header.Alg))
	}

	if verify {
		expected, err := signer.Sign([]byte(signingInput), key)
		if err != nil {
			return decodeFailure(FailureUnsupportedAlgorithm, fmt.Errorf("%s: %w", header.Alg, err))
		}
		if !algorithm.Equal(expected, sig) {
			return decodeFailure(FailureSignatureMismatch, nil)
		}
	}

	return DecodeResult{Header: header, Claims: claims, Verified: verify}
}

func decodeFailure(kind FailureKind, err error) DecodeResult {
	return DecodeResult{Failure: kind, Err: err}
}

// decodeHeader reads the header as a generic object so that "alg" and "typ"
// are matched exactly; a non-string alg resolves to no algorithm at all.
// Remaining members are kept in Extra.
func decodeHeader(s serializer.Serializer, seg string) (token.Header, error) {
	fields, err := decodeObject(s, seg)
	if err != nil {
		return token.Header{}, err
	}

	var h token.Header
	h.Typ, _ = fields["typ"].(string)
	h.Alg, _ = fields["alg"].(string)

	for k, v := range fields {
		if k == "typ" || k == "alg" {
			continue
		}
		if h.Extra == nil {
			h.Extra = make(map[string]any, len(fields))
		}
		h.Extra[k] = v
	}
	return h, nil
}

func decodeClaims(s serializer.Serializer, seg string) (token.Claims, error) {
	fields, err := decodeObject(s, seg)
	if err != nil {
		return nil, err
	}
	return token.Claims(fields), nil
}

func decodeObject(s serializer.Serializer, seg string) (map[string]any, error) {
	raw, err := base64url.Decode(seg)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := s.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotAnObject
	}
	return fields, nil
}
