package base64url

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEncoding is returned by [Decode] for any input that is not valid
// URL-safe base64.
var ErrInvalidEncoding = errors.New("invalid base64url encoding")

var strictURLEncoding = base64.URLEncoding.Strict()

// Encode returns the URL-safe base64 form of src with all padding stripped.
func Encode(src []byte) string {
	return base64.RawURLEncoding.EncodeToString(src)
}

// Decode reverses [Encode]. Trailing '=' characters are tolerated and
// re-added as needed before decoding.
func Decode(s string) ([]byte, error) {
	// the stdlib decoder silently skips line breaks
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line break in input", ErrInvalidEncoding)
	}

	s = strings.TrimRight(s, "=")
	if rem := len(s) % 4; rem != 0 {
		// a single dangling character can never encode a whole byte
		if rem == 1 {
			return nil, fmt.Errorf("%w: illegal length %d", ErrInvalidEncoding, len(s))
		}
		s += strings.Repeat("=", 4-rem)
	}

	out, err := strictURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return out, nil
}
