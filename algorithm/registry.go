package algorithm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

const (
	// NameHS256 identifies HMAC-SHA256.
	NameHS256 = "HS256"
	// NameHS384 identifies HMAC-SHA384.
	NameHS384 = "HS384"
	// NameHS512 identifies HMAC-SHA512.
	NameHS512 = "HS512"
)

var (
	// ErrInvalidSigner is returned when a nil signer or one without a name is registered.
	ErrInvalidSigner = errors.New("invalid signer")
	// ErrDuplicateAlgorithm is returned when two signers share a name.
	ErrDuplicateAlgorithm = errors.New("duplicate algorithm")
)

// Signer computes the authentication digest of a message under a key.
//
// Implementations must be pure: the same message and key always yield the
// same digest, and the key must not be retained after Sign returns.
type Signer interface {
	Alg() string
	Sign(message, key []byte) ([]byte, error)
}

// Registry is an immutable mapping from algorithm name to [Signer].
// It is safe for concurrent use.
type Registry struct {
	signers map[string]Signer
}

var defaultRegistry = mustRegistry(HS256, HS384, HS512)

// Default returns the shared registry holding HS256, HS384 and HS512.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from signers. Names must be non-empty and
// unique.
func NewRegistry(signers ...Signer) (*Registry, error) {
	r := &Registry{signers: make(map[string]Signer, len(signers))}

	for i, s := range signers {
		if s == nil {
			return nil, fmt.Errorf("%w: signer %d is nil", ErrInvalidSigner, i)
		}
		name := s.Alg()
		if name == "" {
			return nil, fmt.Errorf("%w: signer %d has no name", ErrInvalidSigner, i)
		}
		if _, exists := r.signers[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, name)
		}
		r.signers[name] = s
	}

	return r, nil
}

// Extend returns a new registry holding the entries of r plus signers.
// r itself is left untouched.
func (r *Registry) Extend(signers ...Signer) (*Registry, error) {
	all := make([]Signer, 0, r.Len()+len(signers))
	for _, name := range r.Algorithms() {
		all = append(all, r.signers[name])
	}
	return NewRegistry(append(all, signers...)...)
}

// Lookup returns the signer registered under name.
func (r *Registry) Lookup(name string) (Signer, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.signers[name]
	return s, ok
}

// Supports reports whether name is registered.
func (r *Registry) Supports(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Algorithms returns the registered names in sorted order.
func (r *Registry) Algorithms() []string {
	if r == nil {
		return nil
	}
	names := lo.Keys(r.signers)
	slices.Sort(names)
	return names
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.signers)
}

func mustRegistry(signers ...Signer) *Registry {
	r, err := NewRegistry(signers...)
	if err != nil {
		panic(err)
	}
	return r
}
