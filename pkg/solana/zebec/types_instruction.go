package zebec

import (
	"fmt"

	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

// InstructionType is the leading byte of every instruction sent to the
// streaming program. Values are fixed by the deployed program and must never
// be renumbered.
type InstructionType uint8

const (
	InstructionTypeInitializeSolStream InstructionType = iota
	InstructionTypeWithdrawSolStream
	InstructionTypeCancelSolStream
	InstructionTypeInitializeTokenStream
	InstructionTypePauseSolStream
	InstructionTypeResumeSolStream
	InstructionTypeWithdrawTokenStream
	InstructionTypeDepositSol
	InstructionTypeCancelTokenStream
	InstructionTypePauseTokenStream
	InstructionTypeResumeTokenStream
	InstructionTypeDepositToken
	InstructionTypeFundSol
	InstructionTypeFundToken
	InstructionTypeWithdrawSol
	InstructionTypeWithdrawToken

	InstructionTypeCreateWhitelist
	InstructionTypeSwapSol
	InstructionTypeSwapToken
	InstructionTypeSignedBy

	InstructionTypeInitializeMultisigSolStream
	InstructionTypeWithdrawMultisigSolStream
	InstructionTypeCancelMultisigSolStream
	InstructionTypePauseMultisigSolStream
	InstructionTypeResumeMultisigSolStream
	InstructionTypeRejectMultisigSolStream

	InstructionTypeInitializeMultisigTokenStream
	InstructionTypeWithdrawMultisigTokenStream
	InstructionTypeCancelMultisigTokenStream
	InstructionTypePauseMultisigTokenStream
	InstructionTypeResumeMultisigTokenStream
	InstructionTypeRejectMultisigTokenStream
	InstructionTypeSignedByToken

	InstructionTypeTransferSol
	InstructionTypeSignedByTransferSol
	InstructionTypeTransferToken
	InstructionTypeSignedByTransferToken
	InstructionTypeRejectTransferSol
	InstructionTypeRejectTransferToken

	InstructionTypeSet
	InstructionTypeExecute
)

const (
	InstructionTypeSize = 1
)

var instructionTypeNames = map[InstructionType]string{
	InstructionTypeInitializeSolStream:           "Initialize Sol Stream",
	InstructionTypeWithdrawSolStream:             "Withdraw Sol Stream",
	InstructionTypeCancelSolStream:               "Cancel Sol Stream",
	InstructionTypeInitializeTokenStream:         "Initialize Token Stream",
	InstructionTypePauseSolStream:                "Pause Sol Stream",
	InstructionTypeResumeSolStream:               "Resume Sol Stream",
	InstructionTypeWithdrawTokenStream:           "Withdraw Token Stream",
	InstructionTypeDepositSol:                    "Deposit Sol",
	InstructionTypeCancelTokenStream:             "Cancel Token Stream",
	InstructionTypePauseTokenStream:              "Pause Token Stream",
	InstructionTypeResumeTokenStream:             "Resume Token Stream",
	InstructionTypeDepositToken:                  "Deposit Token",
	InstructionTypeFundSol:                       "Fund Sol",
	InstructionTypeFundToken:                     "Fund Token",
	InstructionTypeWithdrawSol:                   "Withdraw Sol",
	InstructionTypeWithdrawToken:                 "Withdraw Token",
	InstructionTypeCreateWhitelist:               "Create Whitelist",
	InstructionTypeSwapSol:                       "Swap Sol",
	InstructionTypeSwapToken:                     "Swap Token",
	InstructionTypeSignedBy:                      "Signed By",
	InstructionTypeInitializeMultisigSolStream:   "Initialize Multisig Sol Stream",
	InstructionTypeWithdrawMultisigSolStream:     "Withdraw Multisig Sol Stream",
	InstructionTypeCancelMultisigSolStream:       "Cancel Multisig Sol Stream",
	InstructionTypePauseMultisigSolStream:        "Pause Multisig Sol Stream",
	InstructionTypeResumeMultisigSolStream:       "Resume Multisig Sol Stream",
	InstructionTypeRejectMultisigSolStream:       "Reject Multisig Sol Stream",
	InstructionTypeInitializeMultisigTokenStream: "Initialize Multisig Token Stream",
	InstructionTypeWithdrawMultisigTokenStream:   "Withdraw Multisig Token Stream",
	InstructionTypeCancelMultisigTokenStream:     "Cancel Multisig Token Stream",
	InstructionTypePauseMultisigTokenStream:      "Pause Multisig Token Stream",
	InstructionTypeResumeMultisigTokenStream:     "Resume Multisig Token Stream",
	InstructionTypeRejectMultisigTokenStream:     "Reject Multisig Token Stream",
	InstructionTypeSignedByToken:                 "Signed By Token",
	InstructionTypeTransferSol:                   "Transfer Sol",
	InstructionTypeSignedByTransferSol:           "Signed By Transfer Sol",
	InstructionTypeTransferToken:                 "Transfer Token",
	InstructionTypeSignedByTransferToken:         "Signed By Transfer Token",
	InstructionTypeRejectTransferSol:             "Reject Transfer Sol",
	InstructionTypeRejectTransferToken:           "Reject Transfer Token",
	InstructionTypeSet:                           "Set",
	InstructionTypeExecute:                       "Execute",
}

func (t InstructionType) String() string {
	if name, ok := instructionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// IsValid reports whether t is a known instruction.
func (t InstructionType) IsValid() bool {
	_, ok := instructionTypeNames[t]
	return ok
}

// GetInstructionType returns the instruction type encoded in the first byte
// of data.
func GetInstructionType(data []byte) (InstructionType, error) {
	if len(data) < InstructionTypeSize {
		return 0, ErrInvalidInstructionData
	}

	t := InstructionType(data[0])
	if !t.IsValid() {
		return 0, ErrInvalidInstructionData
	}
	return t, nil
}

func putInstructionType(w *binary.Writer, v InstructionType) {
	w.PutUint8(uint8(v))
}

func getInstructionType(src []byte, dst *InstructionType, offset *int) {
	var v uint8
	binary.GetUint8(src, &v, offset)
	*dst = InstructionType(v)
}
