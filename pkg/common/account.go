package common

import (
	"bytes"
	"crypto/ed25519"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	"github.com/code-payments/zebec-go/pkg/solana/zebec"
)

type Account struct {
	publicKey  *Key
	privateKey *Key // Optional
}

// StreamAccounts are the program derived accounts owned by a stream sender.
// Token fields are only set when a mint was provided.
type StreamAccounts struct {
	Owner *Account

	Deposit     *Account
	DepositBump uint8

	NativeWithdrawData     *Account
	NativeWithdrawDataBump uint8

	Mint                  *Account
	TokenWithdrawData     *Account
	TokenWithdrawDataBump uint8
	DepositAta            *Account
	OwnerAta              *Account
}

func NewAccountFromPublicKey(publicKey *Key) (*Account, error) {
	account := &Account{
		publicKey: publicKey,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

func NewAccountFromPublicKeyBytes(publicKey []byte) (*Account, error) {
	key, err := NewKeyFromBytes(publicKey)
	if err != nil {
		return nil, err
	}

	return NewAccountFromPublicKey(key)
}

func NewAccountFromPublicKeyString(publicKey string) (*Account, error) {
	key, err := NewKeyFromString(publicKey)
	if err != nil {
		return nil, err
	}

	return NewAccountFromPublicKey(key)
}

func NewAccountFromPrivateKey(privateKey *Key) (*Account, error) {
	if err := privateKey.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating private key")
	}
	if privateKey.IsPublic() {
		return nil, errors.New("private key isn't private")
	}

	publicKeyBytes := ed25519.PrivateKey(privateKey.ToBytes()).Public().(ed25519.PublicKey)
	publicKey, err := NewKeyFromBytes(publicKeyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "error creating public key from private key")
	}

	account := &Account{
		publicKey:  publicKey,
		privateKey: privateKey,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

func NewAccountFromPrivateKeyBytes(privateKey []byte) (*Account, error) {
	key, err := NewKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}

	return NewAccountFromPrivateKey(key)
}

func NewAccountFromPrivateKeyString(privateKey string) (*Account, error) {
	key, err := NewKeyFromString(privateKey)
	if err != nil {
		return nil, err
	}

	return NewAccountFromPrivateKey(key)
}

func NewRandomAccount() (*Account, error) {
	key, err := NewRandomKey()
	if err != nil {
		return nil, err
	}

	account, err := NewAccountFromPrivateKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account")
	}

	return account, nil
}

func (a *Account) PublicKey() *Key {
	return a.publicKey
}

func (a *Account) PrivateKey() *Key {
	return a.privateKey
}

func (a *Account) HasPrivateKey() bool {
	return a.privateKey != nil
}

func (a *Account) Sign(message []byte) ([]byte, error) {
	if a.privateKey == nil {
		return nil, errors.New("private key not available")
	}

	signature := ed25519.Sign(a.privateKey.ToBytes(), message)
	return signature, nil
}

func (a *Account) ToAssociatedTokenAccount(mint *Account) (*Account, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating owner account")
	}

	ata, err := zebec.GetAssociatedTokenAddress(a.PublicKey().ToBytes(), mint.PublicKey().ToBytes())
	if err != nil {
		return nil, err
	}

	return NewAccountFromPublicKeyBytes(ata)
}

func (a *Account) ToDepositAccount() (*Account, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating owner account")
	}

	address, _, err := zebec.GetDepositAddress(&zebec.GetDepositAddressArgs{
		Owner: a.PublicKey().ToBytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error getting deposit address")
	}
	return NewAccountFromPublicKeyBytes(address)
}

func (a *Account) ToMultisigSafeAccount() (*Account, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating owner account")
	}

	address, _, err := zebec.GetMultisigSafeAddress(&zebec.GetMultisigSafeAddressArgs{
		Owner: a.PublicKey().ToBytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error getting multisig safe address")
	}
	return NewAccountFromPublicKeyBytes(address)
}

// GetStreamAccounts derives the deposit and withdraw data accounts for a
// stream sender. Token accounts are derived when mint is non-nil.
func (a *Account) GetStreamAccounts(mint *Account) (*StreamAccounts, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating owner account")
	}

	depositAddress, depositBump, err := zebec.GetDepositAddress(&zebec.GetDepositAddressArgs{
		Owner: a.PublicKey().ToBytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error getting deposit address")
	}

	withdrawAddress, withdrawBump, err := zebec.GetNativeWithdrawDataAddress(&zebec.GetNativeWithdrawDataAddressArgs{
		Owner: a.PublicKey().ToBytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error getting native withdraw data address")
	}

	deposit, err := NewAccountFromPublicKeyBytes(depositAddress)
	if err != nil {
		return nil, err
	}

	withdrawData, err := NewAccountFromPublicKeyBytes(withdrawAddress)
	if err != nil {
		return nil, err
	}

	res := &StreamAccounts{
		Owner: a,

		Deposit:     deposit,
		DepositBump: depositBump,

		NativeWithdrawData:     withdrawData,
		NativeWithdrawDataBump: withdrawBump,
	}

	if mint == nil {
		return res, nil
	}

	tokenWithdrawAddress, tokenWithdrawBump, err := zebec.GetTokenWithdrawDataAddress(&zebec.GetTokenWithdrawDataAddressArgs{
		Owner: a.PublicKey().ToBytes(),
		Mint:  mint.PublicKey().ToBytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error getting token withdraw data address")
	}

	res.Mint = mint
	res.TokenWithdrawDataBump = tokenWithdrawBump
	res.TokenWithdrawData, err = NewAccountFromPublicKeyBytes(tokenWithdrawAddress)
	if err != nil {
		return nil, err
	}

	res.DepositAta, err = deposit.ToAssociatedTokenAccount(mint)
	if err != nil {
		return nil, errors.Wrap(err, "error getting deposit ata")
	}

	res.OwnerAta, err = a.ToAssociatedTokenAccount(mint)
	if err != nil {
		return nil, errors.Wrap(err, "error getting owner ata")
	}

	return res, nil
}

// IsOnCurve reports whether the public key is a valid ed25519 point. Program
// derived addresses never are, so they can't sign.
func (a *Account) IsOnCurve() bool {
	return isOnCurve(a.PublicKey().ToBytes())
}

func (a *Account) Validate() error {
	if a == nil {
		return errors.New("account is nil")
	}

	if err := a.PublicKey().Validate(); err != nil {
		return errors.Wrap(err, "error validating public key")
	}

	if !a.PublicKey().IsPublic() {
		return errors.New("public key isn't public")
	}

	// Private keys are optional
	if a.privateKey == nil {
		return nil
	}

	if err := a.privateKey.Validate(); err != nil {
		return errors.Wrap(err, "error validating private key")
	}

	if a.privateKey.IsPublic() {
		return errors.New("private key isn't private")
	}

	expectedPublicKey := ed25519.PrivateKey(a.privateKey.ToBytes()).Public().(ed25519.PublicKey)
	if !bytes.Equal(a.PublicKey().ToBytes(), expectedPublicKey) {
		return errors.New("private key doesn't map to public key")
	}

	return nil
}

func (a *Account) String() string {
	return a.PublicKey().ToBase58()
}

func isOnCurve(pubKey ed25519.PublicKey) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}

	_, err := new(edwards25519.Point).SetBytes(pubKey)
	return err == nil
}
