package goJWT

import "errors"

var (
	// ErrMalformedToken is returned when a token does not split into header, payload and signature segments.
	ErrMalformedToken = errors.New("not enough segments")
	// ErrInvalidSegmentEncoding is returned when a segment is not valid base64url or its JSON is not an object.
	ErrInvalidSegmentEncoding = errors.New("invalid segment encoding")
	// ErrUnsupportedAlgorithm is returned when an algorithm is absent from the codec registry.
	ErrUnsupportedAlgorithm = errors.New("algorithm not supported")
	// ErrSignatureMismatch is returned when the recomputed signature differs from the token's.
	ErrSignatureMismatch = errors.New("signature verification failed")
	// ErrInvalidClaims is returned when claims cannot be serialized to JSON.
	ErrInvalidClaims = errors.New("claims are not JSON-serializable")
	// ErrInvalidConfig is returned by Build and Config.Validate for unusable settings.
	ErrInvalidConfig = errors.New("invalid codec configuration")
	// ErrBuilderUsed is returned when Build is called twice on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
)
