package zebec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionType_Values(t *testing.T) {
	assert.EqualValues(t, 0, InstructionTypeInitializeSolStream)
	assert.EqualValues(t, 8, InstructionTypeCancelTokenStream)
	assert.EqualValues(t, 16, InstructionTypeCreateWhitelist)
	assert.EqualValues(t, 20, InstructionTypeInitializeMultisigSolStream)
	assert.EqualValues(t, 26, InstructionTypeInitializeMultisigTokenStream)
	assert.EqualValues(t, 32, InstructionTypeSignedByToken)
	assert.EqualValues(t, 33, InstructionTypeTransferSol)
	assert.EqualValues(t, 39, InstructionTypeSet)
	assert.EqualValues(t, 40, InstructionTypeExecute)
}

func TestInstructionType_String(t *testing.T) {
	assert.Equal(t, "Initialize Sol Stream", InstructionTypeInitializeSolStream.String())
	assert.Equal(t, "Signed By Transfer Token", InstructionTypeSignedByTransferToken.String())
	assert.Equal(t, "Execute", InstructionTypeExecute.String())
	assert.Equal(t, "Unknown(41)", InstructionType(41).String())
	assert.Equal(t, "Unknown(255)", InstructionType(255).String())
}

func TestInstructionType_IsValid(t *testing.T) {
	for i := 0; i <= 40; i++ {
		assert.True(t, InstructionType(i).IsValid(), i)
	}
	for i := 41; i < 256; i++ {
		assert.False(t, InstructionType(i).IsValid(), i)
	}
}

func TestGetInstructionType(t *testing.T) {
	actual, err := GetInstructionType([]byte{7, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, InstructionTypeDepositSol, actual)

	_, err = GetInstructionType(nil)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = GetInstructionType([]byte{41})
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestStreamState(t *testing.T) {
	assert.Equal(t, "active", StreamStateActive.String())
	assert.False(t, StreamStateActive.IsTerminal())
	assert.False(t, StreamStatePaused.IsTerminal())
	assert.True(t, StreamStateCancelled.IsTerminal())
	assert.True(t, StreamStateCompleted.IsTerminal())

	assert.True(t, StreamStateActive.AcceptsFunds())
	assert.True(t, StreamStatePaused.AcceptsFunds())
	assert.False(t, StreamStateCancelled.AcceptsFunds())
	assert.False(t, StreamStateCompleted.AcceptsFunds())
}
