// Package token defines the wire-level types of a compact token: the fixed
// header record and the open claims map.
package token

// TypeJWT is the only header "typ" value the encoder writes.
const TypeJWT = "JWT"

// Header is the first token segment. Field order is the serialized order.
//
// Extra holds the decoded members other than typ and alg (for example kid)
// and is nil when there are none. The encoder never writes it.
type Header struct {
	Typ   string         `json:"typ"`
	Alg   string         `json:"alg"`
	Extra map[string]any `json:"-" yaml:"-"`
}

// Fields returns the header as one object: typ, alg and every Extra member.
func (h Header) Fields() map[string]any {
	out := make(map[string]any, len(h.Extra)+2)
	for k, v := range h.Extra {
		out[k] = v
	}
	out["typ"] = h.Typ
	out["alg"] = h.Alg
	return out
}

// NewHeader returns the header the encoder writes for alg.
func NewHeader(alg string) Header {
	return Header{Typ: TypeJWT, Alg: alg}
}

// Claims is the token payload: string keys mapped to JSON-compatible values
// (string, float64 or json.Number, bool, nil, []any, map[string]any).
// No key is required; claim semantics are the caller's business.
type Claims map[string]any

// Clone returns a deep copy of c. Nested maps and slices are copied; scalar
// values are shared.
func (c Claims) Clone() Claims {
	if c == nil {
		return nil
	}
	out := make(Claims, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

// GetString returns the value of a string claim.
func (c Claims) GetString(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case Claims:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}
