package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/token"
)

var (
	WithdrawSolPrefix   = []byte("withdraw_sol")
	WithdrawTokenPrefix = []byte("withdraw_token")
	MultisigSafePrefix  = []byte("multisig_safe")
)

// DeriveAddress finds the program address and bump for seeds under PROGRAM_ID.
func DeriveAddress(seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddressAndBump(PROGRAM_ID, seeds...)
	if err != nil {
		return nil, 0, &DerivationError{
			Seeds: seeds,
			Err:   err,
		}
	}
	return address, bump, nil
}

type GetDepositAddressArgs struct {
	Owner ed25519.PublicKey
}

// GetDepositAddress returns the account that holds an owner's deposited
// balance.
func GetDepositAddress(args *GetDepositAddressArgs) (ed25519.PublicKey, uint8, error) {
	return DeriveAddress(
		args.Owner,
	)
}

type GetNativeWithdrawDataAddressArgs struct {
	Owner ed25519.PublicKey
}

func GetNativeWithdrawDataAddress(args *GetNativeWithdrawDataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return DeriveAddress(
		WithdrawSolPrefix,
		args.Owner,
	)
}

type GetTokenWithdrawDataAddressArgs struct {
	Owner ed25519.PublicKey
	Mint  ed25519.PublicKey
}

func GetTokenWithdrawDataAddress(args *GetTokenWithdrawDataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return DeriveAddress(
		WithdrawTokenPrefix,
		args.Owner,
		args.Mint,
	)
}

type GetMultisigSafeAddressArgs struct {
	Owner ed25519.PublicKey
}

func GetMultisigSafeAddress(args *GetMultisigSafeAddressArgs) (ed25519.PublicKey, uint8, error) {
	return DeriveAddress(
		MultisigSafePrefix,
		args.Owner,
	)
}

// GetAssociatedTokenAddress returns the SPL associated token account of
// wallet for mint. Wallet may itself be a program address.
func GetAssociatedTokenAddress(wallet, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, err := token.GetAssociatedAccount(wallet, mint)
	if err != nil {
		return nil, &DerivationError{
			Seeds: [][]byte{wallet, token.ProgramKey, mint},
			Err:   err,
		}
	}
	return address, nil
}
