package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	FundStreamInstructionArgsSize = (8 + // end_time
		8) // amount

	FundStreamInstructionSize = InstructionTypeSize + FundStreamInstructionArgsSize
)

type FundSolInstructionArgs struct {
	EndTime uint64
	Amount  uint64
}

type FundSolInstructionAccounts struct {
	Sender     ed25519.PublicKey
	StreamData ed25519.PublicKey
}

type FundTokenInstructionArgs struct {
	EndTime uint64
	Amount  uint64
}

type FundTokenInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Mint       ed25519.PublicKey
	StreamData ed25519.PublicKey
}

func EncodeFundSolInstructionData(args *FundSolInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeFundSol, "missing args")
	}
	return encodeFundStream(InstructionTypeFundSol, args.EndTime, args.Amount), nil
}

func EncodeFundTokenInstructionData(args *FundTokenInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeFundToken, "missing args")
	}
	return encodeFundStream(InstructionTypeFundToken, args.EndTime, args.Amount), nil
}

func encodeFundStream(ix InstructionType, endTime, amount uint64) []byte {
	w := binary.NewWriter(FundStreamInstructionSize)
	putInstructionType(w, ix)
	w.PutUint64(endTime).
		PutUint64(amount)
	return w.Bytes()
}

// NewFundSolInstruction tops up a native stream and moves its end time.
func NewFundSolInstruction(
	accounts *FundSolInstructionAccounts,
	args *FundSolInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeFundSol, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeFundSol,
		namedKey{"sender", accounts.Sender},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeFundSolInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{
		Owner: accounts.Sender,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return newFundStreamInstruction(data, accounts.Sender, accounts.StreamData, withdrawData), nil
}

// NewFundTokenInstruction tops up a token stream and moves its end time.
func NewFundTokenInstruction(
	accounts *FundTokenInstructionAccounts,
	args *FundTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeFundToken, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeFundToken,
		namedKey{"sender", accounts.Sender},
		namedKey{"mint", accounts.Mint},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeFundTokenInstructionData(args)
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetTokenWithdrawDataAddress(&GetTokenWithdrawDataAddressArgs{
		Owner: accounts.Sender,
		Mint:  accounts.Mint,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return newFundStreamInstruction(data, accounts.Sender, accounts.StreamData, withdrawData), nil
}

func newFundStreamInstruction(data []byte, sender, streamData, withdrawData ed25519.PublicKey) solana.Instruction {
	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  sender,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  streamData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  withdrawData,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}

func FundSolInstructionFromBinary(data []byte) (*FundSolInstructionArgs, error) {
	endTime, amount, err := decodeFundStream(InstructionTypeFundSol, data)
	if err != nil {
		return nil, err
	}
	return &FundSolInstructionArgs{
		EndTime: endTime,
		Amount:  amount,
	}, nil
}

func FundTokenInstructionFromBinary(data []byte) (*FundTokenInstructionArgs, error) {
	endTime, amount, err := decodeFundStream(InstructionTypeFundToken, data)
	if err != nil {
		return nil, err
	}
	return &FundTokenInstructionArgs{
		EndTime: endTime,
		Amount:  amount,
	}, nil
}

func decodeFundStream(ix InstructionType, data []byte) (endTime, amount uint64, err error) {
	if err := checkInstructionHeader(ix, data, FundStreamInstructionSize); err != nil {
		return 0, 0, err
	}

	offset := InstructionTypeSize
	binary.GetUint64(data, &endTime, &offset)
	binary.GetUint64(data, &amount, &offset)
	return endTime, amount, nil
}
