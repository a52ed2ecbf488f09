package goJWT

import (
	"github.com/MrEthical07/goJWT/algorithm"
	"github.com/MrEthical07/goJWT/token"
)

// Claims is the decoded or to-be-encoded token payload.
type Claims = token.Claims

// Header is the decoded first token segment.
type Header = token.Header

// Supported algorithm names of the default registry.
const (
	HS256 = algorithm.NameHS256
	HS384 = algorithm.NameHS384
	HS512 = algorithm.NameHS512
)

// Token is the result of [Codec.Parse]: the decoded header and claims, and
// whether the signature was checked.
type Token struct {
	Header   Header
	Claims   Claims
	Verified bool
}
