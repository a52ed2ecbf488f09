package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MrEthical07/goJWT/internal/config"
)

const (
	flagNoVerify = "no-verify"
	flagQuery    = "query"
)

// ErrNoMatch is returned when --query selects nothing.
var ErrNoMatch = errors.New("query matched no claim")

// NewDecodeCommand represents "gojwt decode".
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [TOKEN|-]",
		Short: "Verify a token and print its header and claims",
		Example: `  gojwt decode --key secret eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9...
  gojwt decode --no-verify -o json < token.txt
  gojwt decode --key secret --query request.pay.currencyCode "$TOKEN"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDecode,
	}

	cmd.Flags().Bool(flagNoVerify, false, "Skip signature verification")
	cmd.Flags().String(flagQuery, "", "Print only the claim at this path (gjson syntax)")
	addKeyFlags(cmd)
	addOutputFlag(cmd)

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	noVerify, _ := cmd.Flags().GetBool(flagNoVerify)

	var key []byte
	if !noVerify {
		if key, err = rt.conf.ReadKey(); err != nil {
			return err
		}
	}

	tok, err := rt.codec.Parse(raw, key, !noVerify)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if query, _ := cmd.Flags().GetString(flagQuery); len(query) != 0 {
		return writeQuery(out, rt.conf.Output, tok.Claims, query)
	}

	if rt.conf.Output == config.OutputText {
		return writeTokenText(out, tok)
	}

	return writeStructured(out, rt.conf.Output, decodedView{
		Header:   tok.Header.Fields(),
		Claims:   tok.Claims,
		Verified: tok.Verified,
	})
}
