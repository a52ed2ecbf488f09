package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/MrEthical07/goJWT/internal/config"
)

// decodedView is the json/yaml shape of a decoded token.
type decodedView struct {
	Header   map[string]any `json:"header"   yaml:"header"`
	Claims   goJWT.Claims   `json:"claims"   yaml:"claims"`
	Verified bool           `json:"verified" yaml:"verified"`
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: unsupported output format %q", config.ErrConfiguration, format)
	}
}

func writeHeaderText(w io.Writer, h goJWT.Header) error {
	line, err := headerLine(h)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, line)

	return err
}

// headerLine renders alg and typ followed by any extra members in key order,
// values as JSON.
func headerLine(h goJWT.Header) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "alg=%s typ=%s", h.Alg, h.Typ)

	keys := lo.Keys(h.Extra)
	slices.Sort(keys)

	for _, k := range keys {
		val, err := json.Marshal(h.Extra[k])
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, " %s=%s", k, val)
	}

	return b.String(), nil
}

func writeTokenText(w io.Writer, tok *goJWT.Token) error {
	var b strings.Builder

	header, err := headerLine(tok.Header)
	if err != nil {
		return err
	}

	fmt.Fprintf(&b, "Header:   %s\n", header)
	fmt.Fprintf(&b, "Verified: %t\n", tok.Verified)
	b.WriteString("Claims:\n")

	keys := lo.Keys(tok.Claims)
	slices.Sort(keys)

	for _, k := range keys {
		val, err := json.Marshal(tok.Claims[k])
		if err != nil {
			return err
		}

		fmt.Fprintf(&b, "  %s = %s\n", k, val)
	}

	_, err = io.WriteString(w, b.String())

	return err
}

// writeQuery prints the claim value selected by a gjson path.
func writeQuery(w io.Writer, format string, claims goJWT.Claims, path string) error {
	data, err := json.Marshal(claims)
	if err != nil {
		return err
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return fmt.Errorf("%w: %q", ErrNoMatch, path)
	}

	switch format {
	case config.OutputJSON:
		_, err = fmt.Fprintln(w, result.Raw)
	case config.OutputYAML:
		err = writeStructured(w, format, result.Value())
	default:
		_, err = fmt.Fprintln(w, result.String())
	}

	return err
}
