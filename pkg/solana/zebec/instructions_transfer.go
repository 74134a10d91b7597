package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	transferLeadingSize = (32 + // sender
		32) // recipient

	transferSolTrailingSize = (32 + // multisig_safe
		8) // amount

	transferTokenTrailingSize = (transferSolTrailingSize +
		32) // mint
)

// TransferSolInstructionArgs proposes a one-off transfer out of a multisig
// safe, pending approval by the whitelist.
type TransferSolInstructionArgs struct {
	Sender       ed25519.PublicKey
	Recipient    ed25519.PublicKey
	Whitelist    []WhitelistEntry
	MultisigSafe ed25519.PublicKey
	Amount       uint64
}

type TransferTokenInstructionArgs struct {
	Sender       ed25519.PublicKey
	Recipient    ed25519.PublicKey
	Whitelist    []WhitelistEntry
	MultisigSafe ed25519.PublicKey
	Amount       uint64
	Mint         ed25519.PublicKey
}

func GetTransferSolInstructionSize(entries int) int {
	return InstructionTypeSize + transferLeadingSize + getWhitelistSize(entries) + transferSolTrailingSize
}

func GetTransferTokenInstructionSize(entries int) int {
	return InstructionTypeSize + transferLeadingSize + getWhitelistSize(entries) + transferTokenTrailingSize
}

func EncodeTransferSolInstructionData(args *TransferSolInstructionArgs) ([]byte, error) {
	ix := InstructionTypeTransferSol
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

	w := binary.NewWriter(GetTransferSolInstructionSize(len(args.Whitelist)))
	putInstructionType(w, ix)
	w.PutKey32(args.Sender).
		PutKey32(args.Recipient)
	putWhitelist(w, args.Whitelist)
	w.PutKey32(args.MultisigSafe).
		PutUint64(args.Amount)
	return w.Bytes(), nil
}

func EncodeTransferTokenInstructionData(args *TransferTokenInstructionArgs) ([]byte, error) {
	ix := InstructionTypeTransferToken
	if args == nil {
		return nil, newEncodingError(ix, "missing args")
	}
	if err := checkKeys(
		ix,
		namedKey{"sender", args.Sender},
		namedKey{"recipient", args.Recipient},
		namedKey{"multisig safe", args.MultisigSafe},
		namedKey{"mint", args.Mint},
	); err != nil {
		return nil, err
	}
	if err := validateWhitelist(ix, args.Whitelist); err != nil {
		return nil, err
	}

	w := binary.NewWriter(GetTransferTokenInstructionSize(len(args.Whitelist)))
	putInstructionType(w, ix)
	w.PutKey32(args.Sender).
		PutKey32(args.Recipient)
	putWhitelist(w, args.Whitelist)
	w.PutKey32(args.MultisigSafe).
		PutUint64(args.Amount).
		PutKey32(args.Mint)
	return w.Bytes(), nil
}

func EncodeRejectTransferSolInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeRejectTransferSol)
}

func EncodeRejectTransferTokenInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeRejectTransferToken)
}

func TransferSolInstructionFromBinary(data []byte) (*TransferSolInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeTransferSol, data, -1); err != nil {
		return nil, err
	}
	if len(data) < InstructionTypeSize+transferLeadingSize {
		return nil, ErrInvalidInstructionData
	}

	var args TransferSolInstructionArgs
	offset := InstructionTypeSize
	binary.GetKey32(data, &args.Sender, &offset)
	binary.GetKey32(data, &args.Recipient, &offset)
	if err := getWhitelist(data, &args.Whitelist, transferSolTrailingSize, &offset); err != nil {
		return nil, err
	}
	binary.GetKey32(data, &args.MultisigSafe, &offset)
	binary.GetUint64(data, &args.Amount, &offset)
	return &args, nil
}

func TransferTokenInstructionFromBinary(data []byte) (*TransferTokenInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeTransferToken, data, -1); err != nil {
		return nil, err
	}
	if len(data) < InstructionTypeSize+transferLeadingSize {
		return nil, ErrInvalidInstructionData
	}

	var args TransferTokenInstructionArgs
	offset := InstructionTypeSize
	binary.GetKey32(data, &args.Sender, &offset)
	binary.GetKey32(data, &args.Recipient, &offset)
	if err := getWhitelist(data, &args.Whitelist, transferTokenTrailingSize, &offset); err != nil {
		return nil, err
	}
	binary.GetKey32(data, &args.MultisigSafe, &offset)
	binary.GetUint64(data, &args.Amount, &offset)
	binary.GetKey32(data, &args.Mint, &offset)
	return &args, nil
}

func RejectTransferSolInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeRejectTransferSol, data)
}

func RejectTransferTokenInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeRejectTransferToken, data)
}
