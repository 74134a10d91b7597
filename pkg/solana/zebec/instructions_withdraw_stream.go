package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
)

type WithdrawSolStreamInstructionArgs struct {
	Amount uint64
}

type WithdrawSolStreamInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Receiver   ed25519.PublicKey
	StreamData ed25519.PublicKey
}

type WithdrawTokenStreamInstructionArgs struct {
	Amount uint64
}

type WithdrawTokenStreamInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Receiver   ed25519.PublicKey
	Mint       ed25519.PublicKey
	StreamData ed25519.PublicKey
}

func EncodeWithdrawSolStreamInstructionData(args *WithdrawSolStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawSolStream, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawSolStream, args.Amount), nil
}

func EncodeWithdrawTokenStreamInstructionData(args *WithdrawTokenStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawTokenStream, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawTokenStream, args.Amount), nil
}

// NewWithdrawSolStreamInstruction moves vested lamports to the receiver, who
// signs.
func NewWithdrawSolStreamInstruction(
	accounts *WithdrawSolStreamInstructionAccounts,
	args *WithdrawSolStreamInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeWithdrawSolStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeWithdrawSolStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeWithdrawSolStreamInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
		Owner: accounts.Sender,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{
		Owner: accounts.Sender,
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
				PublicKey:  accounts.Sender,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Receiver,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StreamData,
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
			{
				PublicKey:  FEE_RECEIVER_ID,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}, nil
}

// NewWithdrawTokenStreamInstruction moves vested tokens from the sender's
// deposit token account to the receiver's associated token account.
func NewWithdrawTokenStreamInstruction(
	accounts *WithdrawTokenStreamInstructionAccounts,
	args *WithdrawTokenStreamInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeWithdrawTokenStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeWithdrawTokenStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"mint", accounts.Mint},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeWithdrawTokenStreamInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	stream, err := getTokenStreamAddresses(accounts.Sender, accounts.Receiver, accounts.Mint)
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
				PublicKey:  accounts.Sender,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Receiver,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  stream.deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StreamData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.withdrawData,
				IsWritable: true,
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
				PublicKey:  stream.depositAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.receiverAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  ASSOCIATED_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  FEE_RECEIVER_ID,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.feeAta,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}, nil
}

func WithdrawSolStreamInstructionFromBinary(data []byte) (*WithdrawSolStreamInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawSolStream, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawSolStreamInstructionArgs{Amount: amount}, nil
}

func WithdrawTokenStreamInstructionFromBinary(data []byte) (*WithdrawTokenStreamInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawTokenStream, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawTokenStreamInstructionArgs{Amount: amount}, nil
}

// tokenStreamAddresses are the derived accounts shared by token stream
// withdraw and cancel.
type tokenStreamAddresses struct {
	deposit      ed25519.PublicKey
	withdrawData ed25519.PublicKey
	depositAta   ed25519.PublicKey
	receiverAta  ed25519.PublicKey
	feeAta       ed25519.PublicKey
}

func getTokenStreamAddresses(sender, receiver, mint ed25519.PublicKey) (*tokenStreamAddresses, error) {
	var res tokenStreamAddresses
	var err error

	res.deposit, _, err = GetDepositAddress(&GetDepositAddressArgs{
		Owner: sender,
	})
	if err != nil {
		return nil, err
	}

	res.withdrawData, _, err = GetTokenWithdrawDataAddress(&GetTokenWithdrawDataAddressArgs{
		Owner: sender,
		Mint:  mint,
	})
	if err != nil {
		return nil, err
	}

	res.depositAta, err = GetAssociatedTokenAddress(res.deposit, mint)
	if err != nil {
		return nil, err
	}

	res.receiverAta, err = GetAssociatedTokenAddress(receiver, mint)
	if err != nil {
		return nil, err
	}

	res.feeAta, err = GetAssociatedTokenAddress(FEE_RECEIVER_ID, mint)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
