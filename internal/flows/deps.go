package flows

import (
	"github.com/MrEthical07/goJWT/algorithm"
	"github.com/MrEthical07/goJWT/serializer"
)

// Deps groups the read-only collaborators shared by every flow. The root
// codec builds this once and passes it by value.
type Deps struct {
	Registry   *algorithm.Registry
	Serializer serializer.Serializer
}

// FailureKind classifies flow failures for root-level mapping.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureMalformed
	FailureEncoding
	FailureUnsupportedAlgorithm
	FailureSignatureMismatch
	FailureInvalidClaims
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureMalformed:
		return "malformed"
	case FailureEncoding:
		return "invalid_encoding"
	case FailureUnsupportedAlgorithm:
		return "unsupported_algorithm"
	case FailureSignatureMismatch:
		return "signature_mismatch"
	case FailureInvalidClaims:
		return "invalid_claims"
	default:
		return "unknown"
	}
}
