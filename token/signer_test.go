package token_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-session-server/token"
	"github.com/stretchr/testify/require"
)

func TestNewHMACSigner(t *testing.T) {
	s, err := token.NewHMACSigner("", "secret")
	require.NoError(t, err)
	require.Equal(t, "HS256", s.GetSigningMethod().Alg())

	s, err = token.NewHMACSigner("HS512", "secret")
	require.NoError(t, err)
	require.Equal(t, "HS512", s.GetSigningMethod().Alg())

	_, err = token.NewHMACSigner("RS256", "secret")
	require.Error(t, err)

	_, err = token.NewHMACSigner("HS256", "")
	require.Error(t, err)
}

func TestHMACSignerRoundTrip(t *testing.T) {
	s, err := token.NewHMACSigner("HS384", "secret")
	require.NoError(t, err)

	raw, err := s.Sign(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(raw, s.GetVerificationKey)
	require.NoError(t, err)
	require.True(t, parsed.Valid)
}

func TestHMACSignerRejectsOtherAlgorithms(t *testing.T) {
	hs256, err := token.NewHMACSigner("HS256", "secret")
	require.NoError(t, err)
	hs512, err := token.NewHMACSigner("HS512", "secret")
	require.NoError(t, err)

	raw, err := hs512.Sign(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	_, err = jwt.Parse(raw, hs256.GetVerificationKey)
	require.Error(t, err, "same secret but different algorithm must not verify")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = jwt.Parse(unsigned, hs256.GetVerificationKey)
	require.Error(t, err)
}

func TestHMACSignerRejectsWrongSecret(t *testing.T) {
	a, err := token.NewHMACSigner("HS256", "secret-a")
	require.NoError(t, err)
	b, err := token.NewHMACSigner("HS256", "secret-b")
	require.NoError(t, err)

	raw, err := a.Sign(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	_, err = jwt.Parse(raw, b.GetVerificationKey)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
