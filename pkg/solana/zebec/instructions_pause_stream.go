package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
)

// StreamControlInstructionAccounts are the accounts for pausing or resuming
// a stream. The sender signs.
type StreamControlInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Receiver   ed25519.PublicKey
	StreamData ed25519.PublicKey
}

type (
	PauseSolStreamInstructionAccounts    = StreamControlInstructionAccounts
	ResumeSolStreamInstructionAccounts   = StreamControlInstructionAccounts
	PauseTokenStreamInstructionAccounts  = StreamControlInstructionAccounts
	ResumeTokenStreamInstructionAccounts = StreamControlInstructionAccounts
)

func EncodePauseSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypePauseSolStream)
}

func EncodeResumeSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeResumeSolStream)
}

func EncodePauseTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypePauseTokenStream)
}

func EncodeResumeTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeResumeTokenStream)
}

func NewPauseSolStreamInstruction(accounts *PauseSolStreamInstructionAccounts) (solana.Instruction, error) {
	return newStreamControlInstruction(InstructionTypePauseSolStream, accounts)
}

func NewResumeSolStreamInstruction(accounts *ResumeSolStreamInstructionAccounts) (solana.Instruction, error) {
	return newStreamControlInstruction(InstructionTypeResumeSolStream, accounts)
}

func NewPauseTokenStreamInstruction(accounts *PauseTokenStreamInstructionAccounts) (solana.Instruction, error) {
	return newStreamControlInstruction(InstructionTypePauseTokenStream, accounts)
}

func NewResumeTokenStreamInstruction(accounts *ResumeTokenStreamInstructionAccounts) (solana.Instruction, error) {
	return newStreamControlInstruction(InstructionTypeResumeTokenStream, accounts)
}

func newStreamControlInstruction(ix InstructionType, accounts *StreamControlInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(ix, "missing accounts")
	}
	if err := checkKeys(
		ix,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: encodeOpcodeOnlyInstruction(ix),

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
				PublicKey:  accounts.StreamData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}, nil
}

func PauseSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypePauseSolStream, data)
}

func ResumeSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeResumeSolStream, data)
}

func PauseTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypePauseTokenStream, data)
}

func ResumeTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeResumeTokenStream, data)
}
