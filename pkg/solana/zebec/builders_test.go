package zebec

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/zebec-go/pkg/solana"
)

var (
	testDeposit           = mustBase58Decode("4UYCu1FWYS5dTNRX4NaQuyj2WfjbV37yNk5KXi7cysrp")
	testWithdrawSolData   = mustBase58Decode("Gf3MaiQ5f3nmZ3c6pnKR57SC9NkDC3MsV8Pa5KBpmK67")
	testWithdrawTokenData = mustBase58Decode("44JwPq4fLZE8RdWrbB1Lftx3rUESTRBApueXb84zXMqu")
	testDepositAta        = mustBase58Decode("4FkdarWtLUtiqZm2pxJffdTtkWKsjtcZWcuF7eCjXQBL")
	testSenderAta         = mustBase58Decode("BGDSeeSBbHKvgtUiz1oqv3rJtDJvTwc8ToDqiRiSJpYj")
	testReceiverAta       = mustBase58Decode("5hVW8wPHdQGFs4ZYpdSCCCJvVMHrvWCMhMAAviJVQFq8")
	testFeeAta            = mustBase58Decode("vgxKmLWqChfD7RvaMh63xsRYU4EKMkfAJYgZgu8sAjg")
)

func writable(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: true}
}

func writableSigner(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: true, IsSigner: true}
}

func readonly(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key}
}

func assertInstruction(t *testing.T, ix solana.Instruction, data []byte, expected ...solana.AccountMeta) {
	assert.EqualValues(t, PROGRAM_ID, ix.Program)
	assert.Equal(t, data, ix.Data)

	require.Len(t, ix.Accounts, len(expected))
	for i := range expected {
		assert.EqualValues(t, expected[i].PublicKey, ix.Accounts[i].PublicKey, "account %d", i)
		assert.Equal(t, expected[i].IsWritable, ix.Accounts[i].IsWritable, "account %d", i)
		assert.Equal(t, expected[i].IsSigner, ix.Accounts[i].IsSigner, "account %d", i)
	}
}

func TestNewInitializeSolStreamInstruction(t *testing.T) {
	args := &InitializeSolStreamInstructionArgs{
		StartTime: 1700000000,
		EndTime:   1700001200,
		Amount:    1000000000,
	}
	ix, streamDataKey, err := NewInitializeSolStreamInstruction(
		&InitializeSolStreamInstructionAccounts{
			Sender:   testSender,
			Receiver: testReceiver,
		},
		args,
	)
	require.NoError(t, err)
	require.Len(t, streamDataKey, ed25519.PrivateKeySize)

	streamData := streamDataKey.Public().(ed25519.PublicKey)
	data, err := EncodeInitializeSolStreamInstructionData(args)
	require.NoError(t, err)

	assertInstruction(t, ix, data,
		writableSigner(testSender),
		writable(testReceiver),
		writableSigner(streamData),
		writable(testWithdrawSolData),
		readonly(SYSTEM_PROGRAM_ID),
	)

	// Every call uses a fresh stream data account
	_, other, err := NewInitializeSolStreamInstruction(
		&InitializeSolStreamInstructionAccounts{
			Sender:   testSender,
			Receiver: testReceiver,
		},
		args,
	)
	require.NoError(t, err)
	assert.NotEqual(t, streamDataKey, other)
}

func TestNewInitializeTokenStreamInstruction(t *testing.T) {
	args := &InitializeTokenStreamInstructionArgs{StartTime: 1, EndTime: 2, Amount: 3}
	ix, streamDataKey, err := NewInitializeTokenStreamInstruction(
		&InitializeTokenStreamInstructionAccounts{
			Sender:   testSender,
			Receiver: testReceiver,
			Mint:     testMint,
		},
		args,
	)
	require.NoError(t, err)

	data, err := EncodeInitializeTokenStreamInstructionData(args)
	require.NoError(t, err)

	assertInstruction(t, ix, data,
		writableSigner(testSender),
		writable(testReceiver),
		writableSigner(streamDataKey.Public().(ed25519.PublicKey)),
		writable(testWithdrawTokenData),
		readonly(SPL_TOKEN_PROGRAM_ID),
		readonly(SYSTEM_PROGRAM_ID),
		readonly(testMint),
	)
}

func TestNewWithdrawStreamInstructions(t *testing.T) {
	streamData := generateKey(t)

	ix, err := NewWithdrawSolStreamInstruction(
		&WithdrawSolStreamInstructionAccounts{
			Sender:     testSender,
			Receiver:   testReceiver,
			StreamData: streamData,
		},
		&WithdrawSolStreamInstructionArgs{Amount: 500},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeWithdrawSolStream, 500),
		writable(testSender),
		writableSigner(testReceiver),
		writable(testDeposit),
		writable(streamData),
		writable(testWithdrawSolData),
		readonly(SYSTEM_PROGRAM_ID),
		writable(FEE_RECEIVER_ID),
	)

	ix, err = NewWithdrawTokenStreamInstruction(
		&WithdrawTokenStreamInstructionAccounts{
			Sender:     testSender,
			Receiver:   testReceiver,
			Mint:       testMint,
			StreamData: streamData,
		},
		&WithdrawTokenStreamInstructionArgs{Amount: 500},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeWithdrawTokenStream, 500),
		writable(testSender),
		writableSigner(testReceiver),
		writable(testDeposit),
		writable(streamData),
		writable(testWithdrawTokenData),
		readonly(SPL_TOKEN_PROGRAM_ID),
		writable(testMint),
		readonly(SYSVAR_RENT_PUBKEY),
		writable(testDepositAta),
		writable(testReceiverAta),
		readonly(ASSOCIATED_TOKEN_PROGRAM_ID),
		readonly(SYSTEM_PROGRAM_ID),
		writable(FEE_RECEIVER_ID),
		writable(testFeeAta),
	)
}

func TestNewCancelStreamInstructions(t *testing.T) {
	streamData := generateKey(t)

	ix, err := NewCancelSolStreamInstruction(&CancelSolStreamInstructionAccounts{
		Sender:     testSender,
		Receiver:   testReceiver,
		StreamData: streamData,
	})
	require.NoError(t, err)
	assertInstruction(t, ix, []byte{byte(InstructionTypeCancelSolStream)},
		writableSigner(testSender),
		writable(testReceiver),
		writable(testDeposit),
		writable(streamData),
		writable(testWithdrawSolData),
		readonly(SYSTEM_PROGRAM_ID),
		writable(FEE_RECEIVER_ID),
	)

	ix, err = NewCancelTokenStreamInstruction(&CancelTokenStreamInstructionAccounts{
		Sender:     testSender,
		Receiver:   testReceiver,
		Mint:       testMint,
		StreamData: streamData,
	})
	require.NoError(t, err)
	assertInstruction(t, ix, []byte{byte(InstructionTypeCancelTokenStream)},
		writableSigner(testSender),
		writable(testReceiver),
		writable(testDeposit),
		writable(streamData),
		writable(testWithdrawTokenData),
		readonly(SPL_TOKEN_PROGRAM_ID),
		writable(testMint),
		readonly(SYSVAR_RENT_PUBKEY),
		writable(testReceiverAta),
		writable(testDepositAta),
		readonly(ASSOCIATED_TOKEN_PROGRAM_ID),
		readonly(SYSTEM_PROGRAM_ID),
		writable(FEE_RECEIVER_ID),
		writable(testFeeAta),
	)
}

func TestNewStreamControlInstructions(t *testing.T) {
	accounts := &StreamControlInstructionAccounts{
		Sender:     testSender,
		Receiver:   testReceiver,
		StreamData: generateKey(t),
	}

	for _, tc := range []struct {
		build    func(*StreamControlInstructionAccounts) (solana.Instruction, error)
		expected InstructionType
	}{
		{NewPauseSolStreamInstruction, InstructionTypePauseSolStream},
		{NewResumeSolStreamInstruction, InstructionTypeResumeSolStream},
		{NewPauseTokenStreamInstruction, InstructionTypePauseTokenStream},
		{NewResumeTokenStreamInstruction, InstructionTypeResumeTokenStream},
	} {
		ix, err := tc.build(accounts)
		require.NoError(t, err)
		assertInstruction(t, ix, []byte{byte(tc.expected)},
			writableSigner(testSender),
			writable(testReceiver),
			writable(accounts.StreamData),
			readonly(SYSTEM_PROGRAM_ID),
		)
	}
}

func TestNewFundInstructions(t *testing.T) {
	streamData := generateKey(t)

	ix, err := NewFundSolInstruction(
		&FundSolInstructionAccounts{
			Sender:     testSender,
			StreamData: streamData,
		},
		&FundSolInstructionArgs{EndTime: 10, Amount: 20},
	)
	require.NoError(t, err)
	assert.Len(t, ix.Data, FundStreamInstructionSize)
	assertInstruction(t, ix, ix.Data,
		writableSigner(testSender),
		writable(streamData),
		writable(testWithdrawSolData),
	)

	ix, err = NewFundTokenInstruction(
		&FundTokenInstructionAccounts{
			Sender:     testSender,
			Mint:       testMint,
			StreamData: streamData,
		},
		&FundTokenInstructionArgs{EndTime: 10, Amount: 20},
	)
	require.NoError(t, err)
	args, err := FundTokenInstructionFromBinary(ix.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 10, args.EndTime)
	assert.EqualValues(t, 20, args.Amount)
	assertInstruction(t, ix, ix.Data,
		writableSigner(testSender),
		writable(streamData),
		writable(testWithdrawTokenData),
	)
}

func TestNewDepositInstructions(t *testing.T) {
	ix, err := NewDepositSolInstruction(
		&DepositSolInstructionAccounts{Owner: testSender},
		&DepositSolInstructionArgs{Amount: 1},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeDepositSol, 1),
		writableSigner(testSender),
		writable(testDeposit),
		readonly(SYSTEM_PROGRAM_ID),
	)

	ix, err = NewDepositTokenInstruction(
		&DepositTokenInstructionAccounts{Owner: testSender, Mint: testMint},
		&DepositTokenInstructionArgs{Amount: 1},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeDepositToken, 1),
		writableSigner(testSender),
		readonly(testDeposit),
		readonly(SPL_TOKEN_PROGRAM_ID),
		writable(testMint),
		readonly(SYSVAR_RENT_PUBKEY),
		writable(testSenderAta),
		writable(testDepositAta),
		readonly(SYSTEM_PROGRAM_ID),
		readonly(ASSOCIATED_TOKEN_PROGRAM_ID),
	)
}

func TestNewWithdrawInstructions(t *testing.T) {
	ix, err := NewWithdrawSolInstruction(
		&WithdrawSolInstructionAccounts{Owner: testSender},
		&WithdrawSolInstructionArgs{Amount: 2},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeWithdrawSol, 2),
		writableSigner(testSender),
		writable(testDeposit),
		writable(testWithdrawSolData),
		readonly(SYSTEM_PROGRAM_ID),
	)

	ix, err = NewWithdrawTokenInstruction(
		&WithdrawTokenInstructionAccounts{Owner: testSender, Mint: testMint},
		&WithdrawTokenInstructionArgs{Amount: 2},
	)
	require.NoError(t, err)
	assertInstruction(t, ix, encodeAmountInstruction(InstructionTypeWithdrawToken, 2),
		writableSigner(testSender),
		readonly(SPL_TOKEN_PROGRAM_ID),
		writable(testMint),
		writable(testSenderAta),
		writable(testDeposit),
		writable(testWithdrawTokenData),
		writable(testDepositAta),
		readonly(SYSTEM_PROGRAM_ID),
	)
}

func TestBuilders_InvalidAccounts(t *testing.T) {
	_, _, err := NewInitializeSolStreamInstruction(nil, &InitializeSolStreamInstructionArgs{})
	assertEncodingError(t, err, InstructionTypeInitializeSolStream)

	_, _, err = NewInitializeTokenStreamInstruction(
		&InitializeTokenStreamInstructionAccounts{Sender: testSender, Receiver: testReceiver},
		&InitializeTokenStreamInstructionArgs{},
	)
	assertEncodingError(t, err, InstructionTypeInitializeTokenStream)

	_, err = NewWithdrawSolStreamInstruction(
		&WithdrawSolStreamInstructionAccounts{Sender: testSender, Receiver: testReceiver, StreamData: make([]byte, 31)},
		&WithdrawSolStreamInstructionArgs{},
	)
	assertEncodingError(t, err, InstructionTypeWithdrawSolStream)

	_, err = NewPauseSolStreamInstruction(&PauseSolStreamInstructionAccounts{Sender: testSender})
	assertEncodingError(t, err, InstructionTypePauseSolStream)

	_, err = NewDepositSolInstruction(&DepositSolInstructionAccounts{Owner: testSender}, nil)
	assertEncodingError(t, err, InstructionTypeDepositSol)
}
