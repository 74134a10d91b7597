package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
)

type DepositSolInstructionArgs struct {
	Amount uint64
}

type DepositSolInstructionAccounts struct {
	Owner ed25519.PublicKey
}

type DepositTokenInstructionArgs struct {
	Amount uint64
}

type DepositTokenInstructionAccounts struct {
	Owner ed25519.PublicKey
	Mint  ed25519.PublicKey
}

func EncodeDepositSolInstructionData(args *DepositSolInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeDepositSol, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeDepositSol, args.Amount), nil
}

func EncodeDepositTokenInstructionData(args *DepositTokenInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeDepositToken, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeDepositToken, args.Amount), nil
}

// NewDepositSolInstruction moves lamports from the owner into their deposit
// account, from which streams are paid.
func NewDepositSolInstruction(
	accounts *DepositSolInstructionAccounts,
	args *DepositSolInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeDepositSol, "missing accounts")
	}
	if err := checkKey(InstructionTypeDepositSol, "owner", accounts.Owner); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeDepositSolInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
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
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, nil
}

// NewDepositTokenInstruction moves tokens from the owner's associated token
// account into the deposit account's associated token account.
func NewDepositTokenInstruction(
	accounts *DepositTokenInstructionAccounts,
	args *DepositTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeDepositToken, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeDepositToken,
		namedKey{"owner", accounts.Owner},
		namedKey{"mint", accounts.Mint},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeDepositTokenInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
		Owner: accounts.Owner,
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
				PublicKey:  deposit,
				IsWritable: false,
				IsSigner:   false,
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
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  ownerAta,
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
			{
				PublicKey:  ASSOCIATED_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, nil
}

func DepositSolInstructionFromBinary(data []byte) (*DepositSolInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeDepositSol, data)
	if err != nil {
		return nil, err
	}
	return &DepositSolInstructionArgs{Amount: amount}, nil
}

func DepositTokenInstructionFromBinary(data []byte) (*DepositTokenInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeDepositToken, data)
	if err != nil {
		return nil, err
	}
	return &DepositTokenInstructionArgs{Amount: amount}, nil
}
