package flows

import (
	"fmt"
	"strings"

	"github.com/MrEthical07/goJWT/token"
)

// HeaderResult holds either a decoded header or a classified failure.
type HeaderResult struct {
	Header  token.Header
	Failure FailureKind
	Err     error
}

// RunHeader decodes the segment before the first '.' (the whole input when
// there is none) as a header. It neither verifies nor consults the registry.
func RunHeader(deps Deps, raw string) HeaderResult {
	headerSeg, _, _ := strings.Cut(raw, ".")

	header, err := decodeHeader(deps.Serializer, headerSeg)
	if err != nil {
		return HeaderResult{Failure: FailureEncoding, Err: fmt.Errorf("header: %w", err)}
	}
	return HeaderResult{Header: header}
}
