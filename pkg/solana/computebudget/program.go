package compute_budget

import (
	"crypto/ed25519"
	"errors"

	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

// ComputeBudget111111111111111111111111111111
var ProgramKey = ed25519.PublicKey{3, 6, 70, 111, 229, 33, 23, 50, 255, 236, 173, 186, 114, 195, 155, 231, 188, 140, 229, 187, 197, 247, 18, 107, 44, 67, 155, 58, 64, 0, 0, 0}

const (
	commandRequestUnits uint8 = iota
	commandRequestHeapFrame
	commandSetComputeUnitLimit
	commandSetComputeUnitPrice
)

// SetComputeUnitLimit caps the compute units the transaction may consume.
func SetComputeUnitLimit(computeUnitLimit uint32) solana.Instruction {
	data := binary.NewWriter(1 + 4).
		PutUint8(commandSetComputeUnitLimit).
		PutUint32(computeUnitLimit).
		Bytes()

	return solana.NewInstruction(
		ProgramKey[:],
		data,
	)
}

// SetComputeUnitPrice sets the priority fee, in micro-lamports per compute unit.
func SetComputeUnitPrice(computeUnitPrice uint64) solana.Instruction {
	data := binary.NewWriter(1 + 8).
		PutUint8(commandSetComputeUnitPrice).
		PutUint64(computeUnitPrice).
		Bytes()

	return solana.NewInstruction(
		ProgramKey[:],
		data,
	)
}

func ParseSetComputeUnitLimitIxnData(data []byte) (uint32, error) {
	if len(data) != 5 {
		return 0, errors.New("invalid length")
	}

	if data[0] != commandSetComputeUnitLimit {
		return 0, errors.New("invalid instruction")
	}

	var offset = 1
	var limit uint32
	binary.GetUint32(data, &limit, &offset)
	return limit, nil
}

func ParseSetComputeUnitPriceIxnData(data []byte) (uint64, error) {
	if len(data) != 9 {
		return 0, errors.New("invalid length")
	}

	if data[0] != commandSetComputeUnitPrice {
		return 0, errors.New("invalid instruction")
	}

	var offset = 1
	var price uint64
	binary.GetUint64(data, &price, &offset)
	return price, nil
}
