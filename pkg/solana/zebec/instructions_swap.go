package zebec

type SwapSolInstructionArgs struct {
	Amount uint64
}

type SwapTokenInstructionArgs struct {
	Amount uint64
}

func EncodeSwapSolInstructionData(args *SwapSolInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeSwapSol, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeSwapSol, args.Amount), nil
}

func EncodeSwapTokenInstructionData(args *SwapTokenInstructionArgs) ([]byte, error) {
	if args == nil {
		return nil, newEncodingError(InstructionTypeSwapToken, "missing args")
	}
	return encodeAmountInstruction(InstructionTypeSwapToken, args.Amount), nil
}

func SwapSolInstructionFromBinary(data []byte) (*SwapSolInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeSwapSol, data)
	if err != nil {
		return nil, err
	}
	return &SwapSolInstructionArgs{Amount: amount}, nil
}

func SwapTokenInstructionFromBinary(data []byte) (*SwapTokenInstructionArgs, error) {
	amount, err := decodeAmountInstruction(InstructionTypeSwapToken, data)
	if err != nil {
		return nil, err
	}
	return &SwapTokenInstructionArgs{Amount: amount}, nil
}
