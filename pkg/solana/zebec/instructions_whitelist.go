package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	createWhitelistTrailingSize = (1 + // required_signatures
		32) // multisig_safe
)

type CreateWhitelistInstructionArgs struct {
	Whitelist          []WhitelistEntry
	RequiredSignatures uint8
	MultisigSafe       ed25519.PublicKey
}

func GetCreateWhitelistInstructionSize(entries int) int {
	return InstructionTypeSize + getWhitelistSize(entries) + createWhitelistTrailingSize
}

func EncodeCreateWhitelistInstructionData(args *CreateWhitelistInstructionArgs) ([]byte, error) {
	ix := InstructionTypeCreateWhitelist
	if args == nil {
		return nil, newEncodingError(ix, "missing args")
	}
	if err := validateWhitelist(ix, args.Whitelist); err != nil {
		return nil, err
	}
	if err := checkKey(ix, "multisig safe", args.MultisigSafe); err != nil {
		return nil, err
	}

	w := binary.NewWriter(GetCreateWhitelistInstructionSize(len(args.Whitelist)))
	putInstructionType(w, ix)
	putWhitelist(w, args.Whitelist)
	w.PutUint8(args.RequiredSignatures).
		PutKey32(args.MultisigSafe)
	return w.Bytes(), nil
}

func CreateWhitelistInstructionFromBinary(data []byte) (*CreateWhitelistInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeCreateWhitelist, data, -1); err != nil {
		return nil, err
	}

	var args CreateWhitelistInstructionArgs
	offset := InstructionTypeSize
	if err := getWhitelist(data, &args.Whitelist, createWhitelistTrailingSize, &offset); err != nil {
		return nil, err
	}
	binary.GetUint8(data, &args.RequiredSignatures, &offset)
	binary.GetKey32(data, &args.MultisigSafe, &offset)
	return &args, nil
}
