package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/MrEthical07/goJWT/serializer"
)

const (
	flagClaims = "claims"
	flagIAT    = "iat"
	flagTTL    = "ttl"
	flagJTI    = "jti"
)

var claimsDecoder = serializer.JSON{UseNumber: true}

// NewEncodeCommand represents "gojwt encode".
func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Sign a JSON claims object into a compact token",
		Example: `  gojwt encode --key secret --claims '{"iss":"Google","aud":"M1"}' --iat --ttl 1h
  echo '{"sub":"42"}' | gojwt encode --alg HS512 --key-file ./secret`,
		Args: cobra.NoArgs,
		RunE: runEncode,
	}

	cmd.Flags().String(flagAlgorithm, "", "Signing algorithm (HS256, HS384, HS512)")
	cmd.Flags().String(flagClaims, "-", "Claims as a JSON object, or - to read stdin")
	cmd.Flags().Bool(flagIAT, false, "Set iat to the current unix time")
	cmd.Flags().Duration(flagTTL, 0, "Set exp to iat plus this duration")
	cmd.Flags().Bool(flagJTI, false, "Set jti to a random UUID")
	addKeyFlags(cmd)

	return cmd
}

func runEncode(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	claimsArg, _ := cmd.Flags().GetString(flagClaims)

	raw, err := readInput(cmd, []string{claimsArg})
	if err != nil {
		return err
	}

	claims, err := parseClaims(raw)
	if err != nil {
		return err
	}

	ttl := rt.conf.TTL
	if f := cmd.Flags().Lookup(flagTTL); f != nil && f.Changed {
		ttl, _ = cmd.Flags().GetDuration(flagTTL)
	}
	withIAT, _ := cmd.Flags().GetBool(flagIAT)
	withJTI, _ := cmd.Flags().GetBool(flagJTI)

	stampClaims(claims, withIAT, ttl, withJTI)

	key, err := rt.conf.ReadKey()
	if err != nil {
		return err
	}

	token, err := rt.codec.Encode(claims, key)
	if err != nil {
		return err
	}

	rt.logger.Debug().Str("alg", rt.codec.DefaultAlgorithm()).Int("claims", len(claims)).Msg("token encoded")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

	return err
}

// parseClaims keeps numbers as json.Number so they are re-encoded with their
// original text.
func parseClaims(raw string) (goJWT.Claims, error) {
	var claims goJWT.Claims
	if err := claimsDecoder.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("%w: claims must be a JSON object: %w", goJWT.ErrInvalidClaims, err)
	}

	if claims == nil {
		return nil, fmt.Errorf("%w: claims must be a JSON object", goJWT.ErrInvalidClaims)
	}

	return claims, nil
}

// stampClaims adds iat, exp and jti. A positive ttl implies iat.
func stampClaims(claims goJWT.Claims, withIAT bool, ttl time.Duration, withJTI bool) {
	issued := now().Unix()

	if withIAT || ttl > 0 {
		claims["iat"] = issued
	}

	if ttl > 0 {
		claims["exp"] = issued + int64(ttl/time.Second)
	}

	if withJTI {
		claims["jti"] = uuid.NewString()
	}
}
