package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
)

type WithdrawSolInstructionArgs struct {
	Amount uint64
}

type WithdrawSolInstructionAccounts struct {
	Owner ed25519.PublicKey
}

type WithdrawTokenInstructionArgs struct {
	Amount uint64
}

type WithdrawTokenInstructionAccounts struct {
	Owner ed25519.PublicKey
	Mint  ed25519.PublicKey
}

func EncodeWithdrawSolInstructionData(args *WithdrawSolInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawSol, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawSol, args.Amount), nil
}

func EncodeWithdrawTokenInstructionData(args *WithdrawTokenInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawToken, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawToken, args.Amount), nil
}

// NewWithdrawSolInstruction returns unstreamed lamports from the owner's
// deposit account back to the owner.
func NewWithdrawSolInstruction(
	accounts *WithdrawSolInstructionAccounts,
	args *WithdrawSolInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeWithdrawSol, "missing accounts")
	}
	if err := checkKey(InstructionTypeWithdrawSol, "owner", accounts.Owner); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeWithdrawSolInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
		Owner: accounts.Owner,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{
		Owner: accounts.Owner,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Owner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  withdrawData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, nil
}

// NewWithdrawTokenInstruction returns unstreamed tokens from the owner's
// deposit token account to the owner's associated token account.
func NewWithdrawTokenInstruction(
	accounts *WithdrawTokenInstructionAccounts,
	args *WithdrawTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeWithdrawToken, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeWithdrawToken,
		namedKey{"owner", accounts.Owner},
		namedKey{"mint", accounts.Mint},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeWithdrawTokenInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
		Owner: accounts.Owner,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetTokenWithdrawDataAddress(&GetTokenWithdrawDataAddressArgs{
		Owner: accounts.Owner,
		Mint:  accounts.Mint,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	ownerAta, err := GetAssociatedTokenAddress(accounts.Owner, accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	depositAta, err := GetAssociatedTokenAddress(deposit, accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Owner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  ownerAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  withdrawData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  depositAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, nil
}

func WithdrawSolInstructionFromBinary(data []byte) (*WithdrawSolInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawSol, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawSolInstructionArgs{Amount: amount}, nil
}

func WithdrawTokenInstructionFromBinary(data []byte) (*WithdrawTokenInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawToken, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawTokenInstructionArgs{Amount: amount}, nil
}
