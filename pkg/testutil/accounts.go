package testutil

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/code-payments/zebec-go/pkg/common"
)

func GenerateSolanaKeypair(t testing.TB) ed25519.PrivateKey {
	_, p, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return p
}

func GenerateSolanaKeys(t testing.TB, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

// NewRandomAccount returns an account that can sign.
func NewRandomAccount(t testing.TB) *common.Account {
	account, err := common.NewRandomAccount()
	require.NoError(t, err)

	return account
}

// NewRandomPublicAccount returns an account without a private key.
func NewRandomPublicAccount(t testing.TB) *common.Account {
	account, err := common.NewAccountFromPublicKeyBytes(GenerateSolanaKeys(t, 1)[0])
	require.NoError(t, err)

	return account
}
