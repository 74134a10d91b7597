package zebec

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/pkg/errors"

	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	InitializeStreamInstructionArgsSize = (8 + // start_time
		8 + // end_time
		8) // amount

	InitializeStreamInstructionSize = InstructionTypeSize + InitializeStreamInstructionArgsSize
)

type InitializeSolStreamInstructionArgs struct {
	StartTime uint64
	EndTime   uint64
	Amount    uint64
}

type InitializeSolStreamInstructionAccounts struct {
	Sender   ed25519.PublicKey
	Receiver ed25519.PublicKey
}

type InitializeTokenStreamInstructionArgs struct {
	StartTime uint64
	EndTime   uint64
	Amount    uint64
}

type InitializeTokenStreamInstructionAccounts struct {
	Sender   ed25519.PublicKey
	Receiver ed25519.PublicKey
	Mint     ed25519.PublicKey
}

func EncodeInitializeSolStreamInstructionData(args *InitializeSolStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeInitializeSolStream, "missing args")
	}
	return encodeInitializeStream(InstructionTypeInitializeSolStream, args.StartTime, args.EndTime, args.Amount), nil
}

func EncodeInitializeTokenStreamInstructionData(args *InitializeTokenStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeInitializeTokenStream, "missing args")
	}
	return encodeInitializeStream(InstructionTypeInitializeTokenStream, args.StartTime, args.EndTime, args.Amount), nil
}

func encodeInitializeStream(ix InstructionType, startTime, endTime, amount uint64) []byte {
	w := binary.NewWriter(InitializeStreamInstructionSize)
	putInstructionType(w, ix)
	w.PutUint64(startTime).
		PutUint64(endTime).
		PutUint64(amount)
	return w.Bytes()
}

// NewInitializeSolStreamInstruction starts a native stream from sender to
// receiver. The stream's data lives in a fresh account whose private key is
// returned, and which must co-sign the transaction.
func NewInitializeSolStreamInstruction(
	accounts *InitializeSolStreamInstructionAccounts,
	args *InitializeSolStreamInstructionArgs,
) (solana.Instruction, ed25519.PrivateKey, error) {
	if accounts == nil {
		return solana.Instruction{}, nil, newEncodingError(InstructionTypeInitializeSolStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeInitializeSolStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
	); err != nil {
		return solana.Instruction{}, nil, err
	}

	// Instruction args
	data, err := EncodeInitializeSolStreamInstructionData(args)
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	withdrawData, _, err := GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{
		Owner: accounts.Sender,
	})
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	streamData, streamDataKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return solana.Instruction{}, nil, errors.Wrap(err, "error generating stream data account")
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Sender,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Receiver,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  streamData,
				IsWritable: true,
				IsSigner:   true,
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
	}, streamDataKey, nil
}

// NewInitializeTokenStreamInstruction is the SPL token equivalent of
// NewInitializeSolStreamInstruction.
func NewInitializeTokenStreamInstruction(
	accounts *InitializeTokenStreamInstructionAccounts,
	args *InitializeTokenStreamInstructionArgs,
) (solana.Instruction, ed25519.PrivateKey, error) {
	if accounts == nil {
		return solana.Instruction{}, nil, newEncodingError(InstructionTypeInitializeTokenStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeInitializeTokenStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"mint", accounts.Mint},
	); err != nil {
		return solana.Instruction{}, nil, err
	}

	// Instruction args
	data, err := EncodeInitializeTokenStreamInstructionData(args)
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	withdrawData, _, err := GetTokenWithdrawDataAddress(&GetTokenWithdrawDataAddressArgs{
		Owner: accounts.Sender,
		Mint:  accounts.Mint,
	})
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	streamData, streamDataKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return solana.Instruction{}, nil, errors.Wrap(err, "error generating stream data account")
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Sender,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Receiver,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  streamData,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  withdrawData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, streamDataKey, nil
}

func InitializeSolStreamInstructionFromBinary(data []byte) (*InitializeSolStreamInstructionArgs, error) {
	startTime, endTime, amount, err := decodeInitializeStream(InstructionTypeInitializeSolStream, data)
	if err != nil {
		return nil, err
	}
	return &InitializeSolStreamInstructionArgs{
		StartTime: startTime,
		EndTime:   endTime,
		Amount:    amount,
	}, nil
}

func InitializeTokenStreamInstructionFromBinary(data []byte) (*InitializeTokenStreamInstructionArgs, error) {
	startTime, endTime, amount, err := decodeInitializeStream(InstructionTypeInitializeTokenStream, data)
	if err != nil {
		return nil, err
	}
	return &InitializeTokenStreamInstructionArgs{
		StartTime: startTime,
		EndTime:   endTime,
		Amount:    amount,
	}, nil
}

func decodeInitializeStream(ix InstructionType, data []byte) (startTime, endTime, amount uint64, err error) {
	if err := checkInstructionHeader(ix, data, InitializeStreamInstructionSize); err != nil {
		return 0, 0, 0, err
	}

	offset := InstructionTypeSize
	binary.GetUint64(data, &startTime, &offset)
	binary.GetUint64(data, &endTime, &offset)
	binary.GetUint64(data, &amount, &offset)
	return startTime, endTime, amount, nil
}
