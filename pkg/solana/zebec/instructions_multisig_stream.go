package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	multisigStreamLeadingSize = (8 + // start_time
		8 + // end_time
		8 + // paused
		8 + // withdraw_limit
		8 + // amount
		32 + // sender
		32) // recipient

	multisigStreamTrailingSize = (32 + // multisig_safe
		1) // can_cancel
)

type InitializeMultisigSolStreamInstructionArgs struct {
	StartTime     uint64
	EndTime       uint64
	Paused        uint64
	WithdrawLimit uint64
	Amount        uint64
	Sender        ed25519.PublicKey
	Recipient     ed25519.PublicKey
	Whitelist     []WhitelistEntry
	MultisigSafe  ed25519.PublicKey
	CanCancel     bool
}

type InitializeMultisigTokenStreamInstructionArgs struct {
	StartTime     uint64
	EndTime       uint64
	Paused        uint64
	WithdrawLimit uint64
	Amount        uint64
	Sender        ed25519.PublicKey
	Recipient     ed25519.PublicKey
	Mint          ed25519.PublicKey
	Whitelist     []WhitelistEntry
	MultisigSafe  ed25519.PublicKey
	CanCancel     bool
}

type WithdrawMultisigSolStreamInstructionArgs struct {
	Amount uint64
}

type WithdrawMultisigTokenStreamInstructionArgs struct {
	Amount uint64
}

func GetInitializeMultisigSolStreamInstructionSize(entries int) int {
	return InstructionTypeSize + multisigStreamLeadingSize + getWhitelistSize(entries) + multisigStreamTrailingSize
}

func GetInitializeMultisigTokenStreamInstructionSize(entries int) int {
	return GetInitializeMultisigSolStreamInstructionSize(entries) + 32 // mint
}

func EncodeInitializeMultisigSolStreamInstructionData(args *InitializeMultisigSolStreamInstructionArgs) ([]byte, error) {
	ix := InstructionTypeInitializeMultisigSolStream
	if args == nil {
		return nil, newEncodingError(ix, "missing args")
	}
	if err := checkKeys(
		ix,
		namedKey{"sender", args.Sender},
		namedKey{"recipient", args.Recipient},
		namedKey{"multisig safe", args.MultisigSafe},
	); err != nil {
		return nil, err
	}
	if err := validateWhitelist(ix, args.Whitelist); err != nil {
		return nil, err
	}

	w := binary.NewWriter(GetInitializeMultisigSolStreamInstructionSize(len(args.Whitelist)))
	putInstructionType(w, ix)
	w.PutUint64(args.StartTime).
		PutUint64(args.EndTime).
		PutUint64(args.Paused).
		PutUint64(args.WithdrawLimit).
		PutUint64(args.Amount).
		PutKey32(args.Sender).
		PutKey32(args.Recipient)
	putWhitelist(w, args.Whitelist)
	w.PutKey32(args.MultisigSafe).
		PutBool(args.CanCancel)
	return w.Bytes(), nil
}

func EncodeInitializeMultisigTokenStreamInstructionData(args *InitializeMultisigTokenStreamInstructionArgs) ([]byte, error) {
	ix := InstructionTypeInitializeMultisigTokenStream
	if args == nil {
		return nil, newEncodingError(ix, "missing args")
	}
	if err := checkKeys(
		ix,
		namedKey{"sender", args.Sender},
		namedKey{"recipient", args.Recipient},
		namedKey{"mint", args.Mint},
		namedKey{"multisig safe", args.MultisigSafe},
	); err != nil {
		return nil, err
	}
	if err := validateWhitelist(ix, args.Whitelist); err != nil {
		return nil, err
	}

	w := binary.NewWriter(GetInitializeMultisigTokenStreamInstructionSize(len(args.Whitelist)))
	putInstructionType(w, ix)
	w.PutUint64(args.StartTime).
		PutUint64(args.EndTime).
		PutUint64(args.Paused).
		PutUint64(args.WithdrawLimit).
		PutUint64(args.Amount).
		PutKey32(args.Sender).
		PutKey32(args.Recipient).
		PutKey32(args.Mint)
	putWhitelist(w, args.Whitelist)
	w.PutKey32(args.MultisigSafe).
		PutBool(args.CanCancel)
	return w.Bytes(), nil
}

func EncodeWithdrawMultisigSolStreamInstructionData(args *WithdrawMultisigSolStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawMultisigSolStream, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawMultisigSolStream, args.Amount), nil
}

func EncodeWithdrawMultisigTokenStreamInstructionData(args *WithdrawMultisigTokenStreamInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeWithdrawMultisigTokenStream, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeWithdrawMultisigTokenStream, args.Amount), nil
}

func EncodeCancelMultisigSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeCancelMultisigSolStream)
}

func EncodePauseMultisigSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypePauseMultisigSolStream)
}

func EncodeResumeMultisigSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeResumeMultisigSolStream)
}

func EncodeRejectMultisigSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeRejectMultisigSolStream)
}

func EncodeCancelMultisigTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeCancelMultisigTokenStream)
}

func EncodePauseMultisigTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypePauseMultisigTokenStream)
}

func EncodeResumeMultisigTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeResumeMultisigTokenStream)
}

func EncodeRejectMultisigTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeRejectMultisigTokenStream)
}

func InitializeMultisigSolStreamInstructionFromBinary(data []byte) (*InitializeMultisigSolStreamInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeInitializeMultisigSolStream, data, -1); err != nil {
		return nil, err
	}
	if len(data) < InstructionTypeSize+multisigStreamLeadingSize {
		return nil, ErrInvalidInstructionData
	}

	var args InitializeMultisigSolStreamInstructionArgs
	offset := InstructionTypeSize
	binary.GetUint64(data, &args.StartTime, &offset)
	binary.GetUint64(data, &args.EndTime, &offset)
	binary.GetUint64(data, &args.Paused, &offset)
	binary.GetUint64(data, &args.WithdrawLimit, &offset)
	binary.GetUint64(data, &args.Amount, &offset)
	binary.GetKey32(data, &args.Sender, &offset)
	binary.GetKey32(data, &args.Recipient, &offset)
	if err := getWhitelist(data, &args.Whitelist, multisigStreamTrailingSize, &offset); err != nil {
		return nil, err
	}
	binary.GetKey32(data, &args.MultisigSafe, &offset)
	binary.GetBool(data, &args.CanCancel, &offset)
	return &args, nil
}

func InitializeMultisigTokenStreamInstructionFromBinary(data []byte) (*InitializeMultisigTokenStreamInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeInitializeMultisigTokenStream, data, -1); err != nil {
		return nil, err
	}
	if len(data) < InstructionTypeSize+multisigStreamLeadingSize+32 {
		return nil, ErrInvalidInstructionData
	}

	var args InitializeMultisigTokenStreamInstructionArgs
	offset := InstructionTypeSize
	binary.GetUint64(data, &args.StartTime, &offset)
	binary.GetUint64(data, &args.EndTime, &offset)
	binary.GetUint64(data, &args.Paused, &offset)
	binary.GetUint64(data, &args.WithdrawLimit, &offset)
	binary.GetUint64(data, &args.Amount, &offset)
	binary.GetKey32(data, &args.Sender, &offset)
	binary.GetKey32(data, &args.Recipient, &offset)
	binary.GetKey32(data, &args.Mint, &offset)
	if err := getWhitelist(data, &args.Whitelist, multisigStreamTrailingSize, &offset); err != nil {
		return nil, err
	}
	binary.GetKey32(data, &args.MultisigSafe, &offset)
	binary.GetBool(data, &args.CanCancel, &offset)
	return &args, nil
}

func WithdrawMultisigSolStreamInstructionFromBinary(data []byte) (*WithdrawMultisigSolStreamInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawMultisigSolStream, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawMultisigSolStreamInstructionArgs{Amount: amount}, nil
}

func WithdrawMultisigTokenStreamInstructionFromBinary(data []byte) (*WithdrawMultisigTokenStreamInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeWithdrawMultisigTokenStream, data)
	if err != nil {
		return nil, err
	}
	return &WithdrawMultisigTokenStreamInstructionArgs{Amount: amount}, nil
}

func CancelMultisigSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeCancelMultisigSolStream, data)
}

func PauseMultisigSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypePauseMultisigSolStream, data)
}

func ResumeMultisigSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeResumeMultisigSolStream, data)
}

func RejectMultisigSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeRejectMultisigSolStream, data)
}

func CancelMultisigTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeCancelMultisigTokenStream, data)
}

func PauseMultisigTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypePauseMultisigTokenStream, data)
}

func ResumeMultisigTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeResumeMultisigTokenStream, data)
}

func RejectMultisigTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeRejectMultisigTokenStream, data)
}
