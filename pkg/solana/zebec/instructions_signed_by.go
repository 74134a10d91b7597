package zebec

// Multisig approvals carry no arguments. The approving signer and the
// pending stream or transfer are identified by the accounts alone.

func EncodeSignedByInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeSignedBy)
}

func EncodeSignedByTokenInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeSignedByToken)
}

func EncodeSignedByTransferSolInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeSignedByTransferSol)
}

func EncodeSignedByTransferTokenInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeSignedByTransferToken)
}

func SignedByInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeSignedBy, data)
}

func SignedByTokenInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeSignedByToken, data)
}

func SignedByTransferSolInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeSignedByTransferSol, data)
}

func SignedByTransferTokenInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeSignedByTransferToken, data)
}
