package stream

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/zebec-go/pkg/common"
	"github.com/code-payments/zebec-go/pkg/sol"
	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/zebec"
)

// DepositNative moves lamports from owner into their deposit vault.
func (c *Client) DepositNative(ctx context.Context, owner *common.Account, lamports uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "DepositNative",
		sender:   owner,
		feePayer: owner,
		accounts: []*common.Account{owner},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewDepositSolInstruction(
				&zebec.DepositSolInstructionAccounts{
					Owner: owner.PublicKey().ToBytes(),
				},
				&zebec.DepositSolInstructionArgs{
					Amount: lamports,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"owner":    accountString(owner),
			"lamports": lamports,
			"sol":      sol.StrFromLamports(lamports),
		},
	})
}

// WithdrawNative moves lamports from owner's deposit vault back to owner.
func (c *Client) WithdrawNative(ctx context.Context, owner *common.Account, lamports uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "WithdrawNative",
		sender:   owner,
		feePayer: owner,
		accounts: []*common.Account{owner},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewWithdrawSolInstruction(
				&zebec.WithdrawSolInstructionAccounts{
					Owner: owner.PublicKey().ToBytes(),
				},
				&zebec.WithdrawSolInstructionArgs{
					Amount: lamports,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"owner":    accountString(owner),
			"lamports": lamports,
			"sol":      sol.StrFromLamports(lamports),
		},
	})
}

// InitializeNativeStream starts a stream of lamports from sender to receiver
// between the start and end unix timestamps. The new stream data account is
// returned in the result.
func (c *Client) InitializeNativeStream(ctx context.Context, sender, receiver *common.Account, start, end, lamports uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "InitializeNativeStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, receiver},
		build: func() (solana.Instruction, *common.Account, error) {
			c.warnIfOffCurve(receiver)

			ixn, key, err := zebec.NewInitializeSolStreamInstruction(
				&zebec.InitializeSolStreamInstructionAccounts{
					Sender:   sender.PublicKey().ToBytes(),
					Receiver: receiver.PublicKey().ToBytes(),
				},
				&zebec.InitializeSolStreamInstructionArgs{
					StartTime: start,
					EndTime:   end,
					Amount:    lamports,
				},
			)
			if err != nil {
				return solana.Instruction{}, nil, err
			}

			streamData, err := common.NewAccountFromPrivateKeyBytes(key)
			if err != nil {
				return solana.Instruction{}, nil, err
			}
			return ixn, streamData, nil
		},
		fields: logrus.Fields{
			"sender":   accountString(sender),
			"receiver": accountString(receiver),
			"start":    start,
			"end":      end,
			"lamports": lamports,
			"sol":      sol.StrFromLamports(lamports),
		},
	})
}

// WithdrawNativeStream withdraws lamports that have streamed to receiver.
// The receiver pays for and signs the transaction.
func (c *Client) WithdrawNativeStream(ctx context.Context, sender, receiver, streamData *common.Account, lamports uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "WithdrawNativeStream",
		sender:   sender,
		feePayer: receiver,
		accounts: []*common.Account{sender, receiver, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewWithdrawSolStreamInstruction(
				&zebec.WithdrawSolStreamInstructionAccounts{
					Sender:     sender.PublicKey().ToBytes(),
					Receiver:   receiver.PublicKey().ToBytes(),
					StreamData: streamData.PublicKey().ToBytes(),
				},
				&zebec.WithdrawSolStreamInstructionArgs{
					Amount: lamports,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"sender":      accountString(sender),
			"receiver":    accountString(receiver),
			"stream_data": accountString(streamData),
			"lamports":    lamports,
			"sol":         sol.StrFromLamports(lamports),
		},
	})
}

// CancelNativeStream stops the stream, settling what has streamed so far to
// receiver and returning the rest to sender's vault.
func (c *Client) CancelNativeStream(ctx context.Context, sender, receiver, streamData *common.Account) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "CancelNativeStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, receiver, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewCancelSolStreamInstruction(&zebec.CancelSolStreamInstructionAccounts{
				Sender:     sender.PublicKey().ToBytes(),
				Receiver:   receiver.PublicKey().ToBytes(),
				StreamData: streamData.PublicKey().ToBytes(),
			})
			return ixn, nil, err
		},
		fields: streamFields(sender, receiver, streamData),
	})
}

func (c *Client) PauseNativeStream(ctx context.Context, sender, receiver, streamData *common.Account) (*Result, error) {
	return c.streamControl(ctx, "PauseNativeStream", zebec.NewPauseSolStreamInstruction, sender, receiver, streamData)
}

func (c *Client) ResumeNativeStream(ctx context.Context, sender, receiver, streamData *common.Account) (*Result, error) {
	return c.streamControl(ctx, "ResumeNativeStream", zebec.NewResumeSolStreamInstruction, sender, receiver, streamData)
}

// FundNativeStream adds lamports to an existing stream and moves its end time.
func (c *Client) FundNativeStream(ctx context.Context, sender, streamData *common.Account, end, lamports uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "FundNativeStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewFundSolInstruction(
				&zebec.FundSolInstructionAccounts{
					Sender:     sender.PublicKey().ToBytes(),
					StreamData: streamData.PublicKey().ToBytes(),
				},
				&zebec.FundSolInstructionArgs{
					EndTime: end,
					Amount:  lamports,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"sender":      accountString(sender),
			"stream_data": accountString(streamData),
			"end":         end,
			"lamports":    lamports,
			"sol":         sol.StrFromLamports(lamports),
		},
	})
}

type streamControlBuilder func(*zebec.StreamControlInstructionAccounts) (solana.Instruction, error)

// streamControl submits a pause or resume, which share an account layout
// across native and token streams.
func (c *Client) streamControl(ctx context.Context, method string, builder streamControlBuilder, sender, receiver, streamData *common.Account, extra ...*common.Account) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   method,
		sender:   sender,
		feePayer: sender,
		accounts: append([]*common.Account{sender, receiver, streamData}, extra...),
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := builder(&zebec.StreamControlInstructionAccounts{
				Sender:     sender.PublicKey().ToBytes(),
				Receiver:   receiver.PublicKey().ToBytes(),
				StreamData: streamData.PublicKey().ToBytes(),
			})
			return ixn, nil, err
		},
		fields: streamFields(sender, receiver, streamData),
	})
}

func streamFields(sender, receiver, streamData *common.Account) logrus.Fields {
	return logrus.Fields{
		"sender":      accountString(sender),
		"receiver":    accountString(receiver),
		"stream_data": accountString(streamData),
	}
}

// accountString is nil safe, since log fields are collected before accounts
// are validated.
func accountString(account *common.Account) string {
	if account == nil || account.PublicKey() == nil {
		return ""
	}
	return account.String()
}
