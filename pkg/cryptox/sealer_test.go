package cryptox_test

import (
	"testing"

	"github.com/aussiebroadwan/dancereel/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestTokenSealerRoundTrip(t *testing.T) {
	sealer, err := cryptox.NewTokenSealer("test-secret")
	require.NoError(t, err)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	sealed1, err := sealer.Seal(token)
	require.NoError(t, err)
	sealed2, err := sealer.Seal(token)
	require.NoError(t, err)

	require.NotEqual(t, token, sealed1, "sealed value should differ from plaintext")
	require.NotEqual(t, sealed1, sealed2, "each seal uses a fresh nonce")

	for _, sealed := range []string{sealed1, sealed2} {
		opened, err := sealer.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, token, opened)
	}
}

func TestTokenSealerRejectsForeignSecret(t *testing.T) {
	a, err := cryptox.NewTokenSealer("secret-a")
	require.NoError(t, err)
	b, err := cryptox.NewTokenSealer("secret-b")
	require.NoError(t, err)

	sealed, err := a.Seal("token")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	require.Error(t, err)
}

func TestTokenSealerRejectsMalformedInput(t *testing.T) {
	sealer, err := cryptox.NewTokenSealer("test-secret")
	require.NoError(t, err)

	sealed, err := sealer.Seal("token")
	require.NoError(t, err)

	tampered := []byte(sealed)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!"},
		{"too short", "AAAA"},
		{"tampered", string(tampered)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sealer.Open(tt.input)
			require.Error(t, err)
		})
	}

	_, err = sealer.Open("AAAA")
	require.ErrorIs(t, err, cryptox.ErrSealedTooShort)
}
