package common

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountWithPublicKey(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var accounts []*Account

	account, err := NewAccountFromPublicKeyBytes(publicKey)
	require.NoError(t, err)
	accounts = append(accounts, account)

	account, err = NewAccountFromPublicKeyString(base58.Encode(publicKey))
	require.NoError(t, err)
	accounts = append(accounts, account)

	for _, account := range accounts {
		assert.EqualValues(t, publicKey, account.PublicKey().ToBytes())
		assert.Nil(t, account.PrivateKey())
		assert.False(t, account.HasPrivateKey())
		assert.True(t, account.IsOnCurve())
		assert.Equal(t, base58.Encode(publicKey), account.String())

		_, err = account.Sign([]byte("message"))
		assert.Error(t, err)
	}
}

func TestAccountWithPrivateKey(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var accounts []*Account

	account, err := NewAccountFromPrivateKeyBytes(privateKey)
	require.NoError(t, err)
	accounts = append(accounts, account)

	account, err = NewAccountFromPrivateKeyString(base58.Encode(privateKey))
	require.NoError(t, err)
	accounts = append(accounts, account)

	for _, account := range accounts {
		assert.EqualValues(t, publicKey, account.PublicKey().ToBytes())
		assert.EqualValues(t, privateKey, account.PrivateKey().ToBytes())
		assert.True(t, account.HasPrivateKey())

		message := []byte("message")
		signature, err := account.Sign(message)
		require.NoError(t, err)
		assert.Equal(t, ed25519.Sign(privateKey, message), signature)
	}

	_, err = NewAccountFromPrivateKeyBytes(publicKey)
	assert.Error(t, err)
}

func TestInvalidAccount(t *testing.T) {
	_, err := NewAccountFromPublicKeyString("invalid")
	assert.Error(t, err)

	_, privateKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	_, err = NewAccountFromPublicKeyBytes(privateKey)
	assert.Error(t, err)

	var nilAccount *Account
	assert.Error(t, nilAccount.Validate())
}

func TestGetStreamAccounts(t *testing.T) {
	sender, err := NewAccountFromPublicKeyString("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")
	require.NoError(t, err)
	mint, err := NewAccountFromPublicKeyString("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)

	native, err := sender.GetStreamAccounts(nil)
	require.NoError(t, err)
	assert.Equal(t, "4UYCu1FWYS5dTNRX4NaQuyj2WfjbV37yNk5KXi7cysrp", native.Deposit.String())
	assert.EqualValues(t, 254, native.DepositBump)
	assert.Equal(t, "Gf3MaiQ5f3nmZ3c6pnKR57SC9NkDC3MsV8Pa5KBpmK67", native.NativeWithdrawData.String())
	assert.EqualValues(t, 253, native.NativeWithdrawDataBump)
	assert.Nil(t, native.Mint)
	assert.Nil(t, native.TokenWithdrawData)
	assert.Nil(t, native.DepositAta)

	token, err := sender.GetStreamAccounts(mint)
	require.NoError(t, err)
	assert.Equal(t, native.Deposit.String(), token.Deposit.String())
	assert.Equal(t, "44JwPq4fLZE8RdWrbB1Lftx3rUESTRBApueXb84zXMqu", token.TokenWithdrawData.String())
	assert.EqualValues(t, 255, token.TokenWithdrawDataBump)
	assert.Equal(t, "4FkdarWtLUtiqZm2pxJffdTtkWKsjtcZWcuF7eCjXQBL", token.DepositAta.String())
	assert.Equal(t, "BGDSeeSBbHKvgtUiz1oqv3rJtDJvTwc8ToDqiRiSJpYj", token.OwnerAta.String())

	for _, pda := range []*Account{token.Deposit, token.NativeWithdrawData, token.TokenWithdrawData} {
		assert.False(t, pda.IsOnCurve(), pda.String())
	}
	assert.True(t, sender.IsOnCurve())

	safe, err := sender.ToMultisigSafeAccount()
	require.NoError(t, err)
	assert.Equal(t, "FyQ9zGGnfbDVLxUp7Ts9hi113UjhfiTXZ8BqEyUMAjUP", safe.String())

	deposit, err := sender.ToDepositAccount()
	require.NoError(t, err)
	assert.True(t, deposit.PublicKey().Equals(token.Deposit.PublicKey()))
}
