package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana"
)

type CancelSolStreamInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Receiver   ed25519.PublicKey
	StreamData ed25519.PublicKey
}

type CancelTokenStreamInstructionAccounts struct {
	Sender     ed25519.PublicKey
	Receiver   ed25519.PublicKey
	Mint       ed25519.PublicKey
	StreamData ed25519.PublicKey
}

func EncodeCancelSolStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeCancelSolStream)
}

func EncodeCancelTokenStreamInstructionData() []byte {
	return encodeOpcodeOnlyInstruction(InstructionTypeCancelTokenStream)
}

// NewCancelSolStreamInstruction stops a native stream. Vested lamports go to
// the receiver and the rest is returned to the sender's deposit.
func NewCancelSolStreamInstruction(accounts *CancelSolStreamInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeCancelSolStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeCancelSolStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	deposit, _, err := GetDepositAddress(&GetDepositAddressArgs{
		Owner: accounts.Sender,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	withdrawData, _, err := GetNativeWithdrawDataAddress(&GetNativeWithdrawDataAddressArgs{
		Owner: accounts.Sender,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: EncodeCancelSolStreamInstructionData(),

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
				PublicKey:  deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StreamData,
				IsWritable: true,
				IsSigner:   false,
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
			{
				PublicKey:  FEE_RECEIVER_ID,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}, nil
}

// NewCancelTokenStreamInstruction is the SPL token equivalent of
// NewCancelSolStreamInstruction.
func NewCancelTokenStreamInstruction(accounts *CancelTokenStreamInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, newEncodingError(InstructionTypeCancelTokenStream, "missing accounts")
	}
	if err := checkKeys(
		InstructionTypeCancelTokenStream,
		namedKey{"sender", accounts.Sender},
		namedKey{"receiver", accounts.Receiver},
		namedKey{"mint", accounts.Mint},
		namedKey{"stream data", accounts.StreamData},
	); err != nil {
		return solana.Instruction{}, err
	}

	stream, err := getTokenStreamAddresses(accounts.Sender, accounts.Receiver, accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: EncodeCancelTokenStreamInstructionData(),

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
				// The program signs for its deposit account itself
				PublicKey:  stream.deposit,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StreamData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.withdrawData,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.receiverAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.depositAta,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  ASSOCIATED_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  FEE_RECEIVER_ID,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  stream.feeAta,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}, nil
}

func CancelSolStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeCancelSolStream, data)
}

func CancelTokenStreamInstructionFromBinary(data []byte) error {
	return decodeOpcodeOnlyInstruction(InstructionTypeCancelTokenStream, data)
}
