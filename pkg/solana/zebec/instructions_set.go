package zebec

import (
	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	SetInstructionArgsSize = 8 // value

	SetInstructionSize = InstructionTypeSize + SetInstructionArgsSize
)

type SetInstructionArgs struct {
	Value uint64
}

func EncodeSetInstructionData(args *SetInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeSet, "missing args")
	}

	w := binary.NewWriter(SetInstructionSize)
	putInstructionType(w, InstructionTypeSet)
	w.PutUint64(args.Value)
	return w.Bytes(), nil
}

func EncodeExecuteInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeExecute)
}

func SetInstructionFromBinary(data []byte) (*SetInstructionArgs, error) {
	if err := checkInstructionHeader(InstructionTypeSet, data, SetInstructionSize); err != nil {
		return nil, err
	}

	var args SetInstructionArgs
	offset := InstructionTypeSize
	binary.GetUint64(data, &args.Value, &offset)
	return &args, nil
}

func ExecuteInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeExecute, data)
}
