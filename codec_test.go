package goJWT

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/MrEthical07/goJWT/base64url"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const merchantToken = "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9." +
	"eyJhdWQiOiJNMSIsImV4cCI6NDYwMCwiaWF0IjoxMDAwLCJpc3MiOiJHb29nbGUifQ." +
	"r8HMSlg0u_ORhUXyKm0zzJ7XEOnLjNwaOTzaAGs6jEw"

func merchantClaims() Claims {
	return Claims{"iss": "Google", "aud": "M1", "iat": 1000, "exp": 4600}
}

func newTestCodec(t testing.TB) *Codec {
	t.Helper()
	c, err := New().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return c
}

func TestEncodeMerchantRequestIsStable(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Encode(merchantClaims(), []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, merchantToken, tok)

	again, err := c.Encode(merchantClaims(), []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, tok, again)
}

func TestDecodeMerchantRequest(t *testing.T) {
	c := newTestCodec(t)

	claims, err := c.Decode(merchantToken, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, Claims{
		"iss": "Google",
		"aud": "M1",
		"iat": float64(1000),
		"exp": float64(4600),
	}, claims)

	_, err = c.Decode(merchantToken, []byte("wrong"))
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	unverified, err := c.DecodeUnverified(merchantToken)
	require.NoError(t, err)
	assert.Equal(t, claims, unverified)
}

func TestRoundTripEveryAlgorithm(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("a shared secret of reasonable length")
	in := Claims{
		"sub":    "user-1",
		"admin":  true,
		"scopes": []any{"read", "write"},
		"nested": map[string]any{"n": 1.5, "nil": nil},
		"name":   "Zoë <&>",
	}

	for _, alg := range []string{HS256, HS384, HS512} {
		t.Run(alg, func(t *testing.T) {
			tok, err := c.EncodeWithAlgorithm(in, key, alg)
			require.NoError(t, err)
			assert.Equal(t, 2, strings.Count(tok, "."))

			parsed, err := c.Parse(tok, key, true)
			require.NoError(t, err)
			assert.True(t, parsed.Verified)
			assert.Equal(t, Header{Typ: "JWT", Alg: alg}, parsed.Header)
			assert.Equal(t, in, parsed.Claims)
		})
	}
}

func TestEncodeNilClaims(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Encode(nil, []byte("k"))
	require.NoError(t, err)

	claims, err := c.Decode(tok, []byte("k"))
	require.NoError(t, err)
	assert.Empty(t, claims)
	assert.NotNil(t, claims)
}

func TestEncodeAcceptsEmptyKey(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Encode(Claims{"a": "b"}, nil)
	require.NoError(t, err)

	_, err = c.Decode(tok, []byte{})
	require.NoError(t, err)
}

func TestEncodeRejectsUnknownAlgorithm(t *testing.T) {
	c := newTestCodec(t)

	for _, alg := range []string{"", "none", "hs256", "RS256", "HS1024"} {
		_, err := c.EncodeWithAlgorithm(Claims{}, []byte("k"), alg)
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm, alg)
	}
}

func TestEncodeRejectsUnserializableClaims(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Encode(Claims{"ch": make(chan int)}, []byte("k"))
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestDecodeSegmentCount(t *testing.T) {
	c := newTestCodec(t)

	for _, raw := range []string{"", "abc", "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9"} {
		_, err := c.Decode(raw, []byte("secret"))
		assert.ErrorIs(t, err, ErrMalformedToken, raw)
		assert.True(t, strings.HasPrefix(err.Error(), "not enough segments"), err.Error())
	}

	parts := strings.Split(merchantToken, ".")
	_, err := c.Decode(parts[0]+"."+parts[1], []byte("secret"))
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, err = c.Decode(merchantToken+".extra", []byte("secret"))
	assert.ErrorIs(t, err, ErrInvalidSegmentEncoding)
	assert.NotErrorIs(t, err, ErrMalformedToken)
}

func TestDecodeInvalidEncoding(t *testing.T) {
	c := newTestCodec(t)
	parts := strings.Split(merchantToken, ".")

	cases := map[string]string{
		"header alphabet":    "e$J." + parts[1] + "." + parts[2],
		"payload alphabet":   parts[0] + ".**." + parts[2],
		"signature alphabet": parts[0] + "." + parts[1] + ".+/",
		"header not json":    base64url.Encode([]byte("not json")) + "." + parts[1] + "." + parts[2],
		"payload array":      parts[0] + "." + base64url.Encode([]byte(`[1,2]`)) + "." + parts[2],
		"payload string":     parts[0] + "." + base64url.Encode([]byte(`"s"`)) + "." + parts[2],
		"impossible length":  parts[0] + "." + parts[1] + ".A",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.DecodeUnverified(raw)
			assert.ErrorIs(t, err, ErrInvalidSegmentEncoding)
		})
	}
}

func TestDecodeAlgorithmGate(t *testing.T) {
	c := newTestCodec(t)
	payload := base64url.Encode([]byte(`{"sub":"x"}`))

	for _, header := range []string{
		`{"typ":"JWT","alg":"none"}`,
		`{"typ":"JWT","alg":"RS256"}`,
		`{"typ":"JWT","alg":"hs256"}`,
		`{"typ":"JWT"}`,
		`{"typ":"JWT","alg":256}`,
	} {
		raw := base64url.Encode([]byte(header)) + "." + payload + "."

		_, err := c.DecodeUnverified(raw)
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm, header)

		_, err = c.Decode(raw, []byte("secret"))
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm, header)
	}
}

func TestDecodeUnverifiedIgnoresSignatureBytes(t *testing.T) {
	c := newTestCodec(t)
	parts := strings.Split(merchantToken, ".")

	claims, err := c.DecodeUnverified(parts[0] + "." + parts[1] + ".")
	require.NoError(t, err)
	assert.Equal(t, "Google", claims["iss"])

	parsed, err := c.Parse(parts[0]+"."+parts[1]+"."+base64url.Encode([]byte("junk")), nil, false)
	require.NoError(t, err)
	assert.False(t, parsed.Verified)
}

func TestDecodeDetectsEveryBitFlip(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("secret")

	tok, err := c.EncodeWithAlgorithm(Claims{"sub": "u", "n": 7}, key, HS384)
	require.NoError(t, err)
	parts := strings.Split(tok, ".")

	for seg := range parts {
		raw, err := base64url.Decode(parts[seg])
		require.NoError(t, err)

		for i := range raw {
			for bit := 0; bit < 8; bit++ {
				flipped := append([]byte(nil), raw...)
				flipped[i] ^= 1 << bit

				tampered := append([]string(nil), parts...)
				tampered[seg] = base64url.Encode(flipped)

				_, err := c.Decode(strings.Join(tampered, "."), key)
				if err == nil {
					t.Fatalf("segment %d byte %d bit %d: tampered token accepted", seg, i, bit)
				}
			}
		}
	}
}

func TestDecodeRejectsTruncatedSignature(t *testing.T) {
	c := newTestCodec(t)
	parts := strings.Split(merchantToken, ".")
	sig, err := base64url.Decode(parts[2])
	require.NoError(t, err)

	short := parts[0] + "." + parts[1] + "." + base64url.Encode(sig[:len(sig)-1])
	_, err = c.Decode(short, []byte("secret"))
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestDecodeHeader(t *testing.T) {
	c := newTestCodec(t)

	h, err := c.DecodeHeader(merchantToken)
	require.NoError(t, err)
	assert.Equal(t, Header{Typ: "JWT", Alg: HS256}, h)

	lone, err := c.DecodeHeader(strings.Split(merchantToken, ".")[0])
	require.NoError(t, err)
	assert.Equal(t, h, lone)

	foreign := base64url.Encode([]byte(`{"alg":"RS256","kid":"k1"}`)) + ".x.y"
	h, err = c.DecodeHeader(foreign)
	require.NoError(t, err)
	assert.Equal(t, "RS256", h.Alg)
	assert.Equal(t, map[string]any{"kid": "k1"}, h.Extra)

	_, err = c.DecodeHeader("!!!")
	assert.ErrorIs(t, err, ErrInvalidSegmentEncoding)
}

func TestHeaderKeepsExtraMembers(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("interop-secret")

	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	jt.Header["kid"] = "key-2024"
	signed, err := jt.SignedString(key)
	require.NoError(t, err)

	h, err := c.DecodeHeader(signed)
	require.NoError(t, err)
	assert.Equal(t, HS256, h.Alg)
	assert.Equal(t, "JWT", h.Typ)
	assert.Equal(t, map[string]any{"kid": "key-2024"}, h.Extra)
	assert.Equal(t, map[string]any{"typ": "JWT", "alg": HS256, "kid": "key-2024"}, h.Fields())

	parsed, err := c.Parse(signed, key, true)
	require.NoError(t, err)
	assert.Equal(t, h, parsed.Header)

	// tokens written here carry only typ and alg
	tok, err := c.Encode(Claims{"sub": "u1"}, key)
	require.NoError(t, err)
	h, err = c.DecodeHeader(tok)
	require.NoError(t, err)
	assert.Nil(t, h.Extra)
}

func TestUseNumberConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Serializer.UseNumber = true
	c, err := New().WithConfig(cfg).Build()
	require.NoError(t, err)

	claims, err := c.Decode(merchantToken, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "4600", fmt.Sprint(claims["exp"]))
	_, isFloat := claims["exp"].(float64)
	assert.False(t, isFloat)
}

func TestInteropGolangJWTToCodec(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("interop-secret")

	methods := map[string]*jwt.SigningMethodHMAC{
		HS256: jwt.SigningMethodHS256,
		HS384: jwt.SigningMethodHS384,
		HS512: jwt.SigningMethodHS512,
	}
	for alg, m := range methods {
		t.Run(alg, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(m, jwt.MapClaims{"sub": "u1", "n": 3}).SignedString(key)
			require.NoError(t, err)

			parsed, err := c.Parse(signed, key, true)
			require.NoError(t, err)
			assert.Equal(t, alg, parsed.Header.Alg)
			assert.Equal(t, "u1", parsed.Claims["sub"])
			assert.Equal(t, float64(3), parsed.Claims["n"])
		})
	}
}

func TestInteropCodecToGolangJWT(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("interop-secret")

	for _, alg := range []string{HS256, HS384, HS512} {
		t.Run(alg, func(t *testing.T) {
			tok, err := c.EncodeWithAlgorithm(Claims{"sub": "u1", "iat": 1000}, key, alg)
			require.NoError(t, err)

			parsed, err := jwt.Parse(tok, func(*jwt.Token) (any, error) { return key, nil },
				jwt.WithValidMethods([]string{alg}),
				jwt.WithoutClaimsValidation(),
			)
			require.NoError(t, err)
			assert.True(t, parsed.Valid)
			assert.Equal(t, "JWT", parsed.Header["typ"])

			mc, ok := parsed.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, "u1", mc["sub"])
		})
	}
}

func TestCodecConcurrentUse(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("secret")

	const goroutines = 16
	const perG = 200

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				tok, err := c.Encode(Claims{"g": g, "i": i}, key)
				if err != nil {
					errs <- err
					return
				}
				claims, err := c.Decode(tok, key)
				if err != nil {
					errs <- err
					return
				}
				if claims["i"] != float64(i) {
					errs <- fmt.Errorf("goroutine %d: got claim %v want %d", g, claims["i"], i)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func TestEncodeDoesNotMutateKey(t *testing.T) {
	c := newTestCodec(t)
	key := []byte("secret")
	orig := append([]byte(nil), key...)

	tok, err := c.Encode(merchantClaims(), key)
	require.NoError(t, err)
	_, err = c.Decode(tok, key)
	require.NoError(t, err)

	assert.Equal(t, orig, key)
}

func FuzzCodecDecode(f *testing.F) {
	c := newTestCodec(f)
	key := []byte("secret")

	f.Add(merchantToken)
	f.Add("")
	f.Add("not.a.jwt")
	f.Add("a.b.c.d")
	f.Add("....")
	f.Add("eyJ0eXAiOiJKV1QiLCJhbGciOiJub25lIn0.e30.")

	f.Fuzz(func(t *testing.T, raw string) {
		parsed, err := c.Parse(raw, key, true)
		if err != nil {
			if parsed != nil {
				t.Fatal("partial result returned with error")
			}
			return
		}
		if parsed.Claims == nil || !parsed.Verified {
			t.Fatalf("accepted token without verified claims: %q", raw)
		}
		if !c.deps.Registry.Supports(parsed.Header.Alg) {
			t.Fatalf("accepted unregistered algorithm %q", parsed.Header.Alg)
		}
	})
}

func BenchmarkEncodeHS256(b *testing.B) {
	c := newTestCodec(b)
	key := []byte("secret")
	claims := merchantClaims()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(claims, key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeHS256(b *testing.B) {
	c := newTestCodec(b)
	key := []byte("secret")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(merchantToken, key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeParallel(b *testing.B) {
	c := newTestCodec(b)
	key := []byte("secret")
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Decode(merchantToken, key); err != nil {
				b.Fatal(err)
			}
		}
	})
}
