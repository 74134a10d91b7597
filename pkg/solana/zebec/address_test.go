package zebec

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/system"
	"github.com/code-payments/zebec-go/pkg/solana/token"
)

var (
	testSender   = mustBase58Decode("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")
	testReceiver = mustBase58Decode("8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh")
	testMint     = mustBase58Decode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
)

func TestProgramConstants(t *testing.T) {
	assert.Len(t, PROGRAM_ID, ed25519.PublicKeySize)
	assert.Equal(t, "AknC341xog56SrnoK6j3mUvaD1Y7tYayx1sxUGpeYWdX", base58.Encode(PROGRAM_ID))
	assert.Equal(t, "EsDV3m3xUZ7g8QKa1kFdbZT18nNz8ddGJRcTK84WDQ7k", base58.Encode(FEE_RECEIVER_ID))

	assert.EqualValues(t, system.ProgramKey, SYSTEM_PROGRAM_ID)
	assert.EqualValues(t, system.RentSysVar, SYSVAR_RENT_PUBKEY)
	assert.EqualValues(t, token.ProgramKey, SPL_TOKEN_PROGRAM_ID)
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, ASSOCIATED_TOKEN_PROGRAM_ID)
}

func TestDeriveAddresses(t *testing.T) {
	for _, tc := range []struct {
		name     string
		derive   func() (ed25519.PublicKey, uint8, error)
		expected string
		bump     uint8
	}{
		{
			name: "deposit",
			derive: func() (ed25519.PublicKey, uint8, error) {
				return GetDepositAddress(&GetDepositAddressArgs{Owner: testSender})
			},
			expected: "4UYCu1FWYS5dTNRX4NaQuyj2WfjbV37yNk5KXi7cysrp",
			bump:     254,
		},
		{
			name: "native withdraw data",
			derive: func() (ed25519.PublicKey, uint8, error) {
				return GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{Owner: testSender})
			},
			expected: "Gf3MaiQ5f3nmZ3c6pnKR57SC9NkDC3MsV8Pa5KBpmK67",
			bump:     253,
		},
		{
			name: "token withdraw data",
			derive: func() (ed25519.PublicKey, uint8, error) {
				return GetTokenWithdrawDataAddress(&GetTokenWithdrawDataAddressArgs{Owner: testSender, Mint: testMint})
			},
			expected: "44JwPq4fLZE8RdWrbB1Lftx3rUESTRBApueXb84zXMqu",
			bump:     255,
		},
		{
			name: "multisig safe",
			derive: func() (ed25519.PublicKey, uint8, error) {
				return GetMultisigSafeAddress(&GetMultisigSafeAddressArgs{Owner: testSender})
			},
			expected: "FyQ9zGGnfbDVLxUp7Ts9hi113UjhfiTXZ8BqEyUMAjUP",
			bump:     253,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			address, bump, err := tc.derive()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, base58.Encode(address))
			assert.Equal(t, tc.bump, bump)

			// Deterministic
			again, againBump, err := tc.derive()
			require.NoError(t, err)
			assert.EqualValues(t, address, again)
			assert.Equal(t, bump, againBump)
		})
	}
}

func TestDeriveAddress_SeedSensitive(t *testing.T) {
	withdrawSol, _, err := DeriveAddress(WithdrawSolPrefix, testSender)
	require.NoError(t, err)

	deposit, _, err := DeriveAddress(testSender)
	require.NoError(t, err)
	assert.NotEqual(t, withdrawSol, deposit)

	other, _, err := DeriveAddress(WithdrawSolPrefix, testReceiver)
	require.NoError(t, err)
	assert.NotEqual(t, withdrawSol, other)

	reordered, _, err := DeriveAddress(testSender, WithdrawSolPrefix)
	require.NoError(t, err)
	assert.NotEqual(t, withdrawSol, reordered)
}

func TestDeriveAddress_Errors(t *testing.T) {
	_, _, err := DeriveAddress(make([]byte, 33))
	require.Error(t, err)

	var derivationErr *DerivationError
	require.ErrorAs(t, err, &derivationErr)
	assert.Len(t, derivationErr.Seeds, 1)
	assert.ErrorIs(t, err, solana.ErrMaxSeedLengthExceeded)

	seeds := make([][]byte, 17)
	for i := range seeds {
		seeds[i] = []byte{byte(i)}
	}
	_, _, err = DeriveAddress(seeds...)
	require.ErrorAs(t, err, &derivationErr)
}

func TestGetAssociatedTokenAddress(t *testing.T) {
	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{Owner: testSender})
	require.NoError(t, err)

	for _, tc := range []struct {
		wallet   ed25519.PublicKey
		expected string
	}{
		{deposit, "4FkdarWtLUtiqZm2pxJffdTtkWKsjtcZWcuF7eCjXQBL"},
		{testSender, "BGDSeeSBbHKvgtUiz1oqv3rJtDJvTwc8ToDqiRiSJpYj"},
		{testReceiver, "5hVW8wPHdQGFs4ZYpdSCCCJvVMHrvWCMhMAAviJVQFq8"},
		{FEE_RECEIVER_ID, "vgxKmLWqChfD7RvaMh63xsRYU4EKMkfAJYgZgu8sAjg"},
	} {
		actual, err := GetAssociatedTokenAddress(tc.wallet, testMint)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, base58.Encode(actual))
	}
}
