package zebec

import (
	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	AmountInstructionArgsSize = 8 // amount

	AmountInstructionSize     = InstructionTypeSize + AmountInstructionArgsSize
	OpcodeOnlyInstructionSize = InstructionTypeSize
)

func encodeOpcodeOnlyInstruction(ix InstructionType) []byte {
	w := binary.NewWriter(OpcodeOnlyInstructionSize)
	putInstructionType(w, ix)
	return w.Bytes()
}

func decodeOpcodeOnlyInstruction(ix InstructionType, data []byte) error {
	return checkInstructionHeader(ix, data, OpcodeOnlyInstructionSize)
}

func encodeAmountInstruction(ix InstructionType, amount uint64) []byte {
	w := binary.NewWriter(AmountInstructionSize)
	putInstructionType(w, ix)
	w.PutUint64(amount)
	return w.Bytes()
}

func decodeAmountInstruction(ix InstructionType, data []byte) (uint64, error) {
	if err := checkInstructionHeader(ix, data, AmountInstructionSize); err != nil {
		return 0, err
	}

	var amount uint64
	offset := InstructionTypeSize
	binary.GetUint64(data, &amount, &offset)
	return amount, nil
}

// checkInstructionHeader verifies data is exactly size bytes and starts
// with ix. A negative size only checks the prefix.
func checkInstructionHeader(ix InstructionType, data []byte, size int) error {
	if size >= 0 && len(data) != size {
		return ErrInvalidInstructionData
	}
	if len(data) < InstructionTypeSize {
		return ErrInvalidInstructionData
	}

	var actual InstructionType
	var offset int
	getInstructionType(data, &actual, &offset)
	if actual != ix {
		return ErrInvalidInstructionData
	}
	return nil
}
