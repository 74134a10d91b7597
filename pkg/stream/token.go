package stream

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/zebec-go/pkg/common"
	"github.com/code-payments/zebec-go/pkg/solana"
	"github.com/code-payments/zebec-go/pkg/solana/zebec"
)

// DepositToken moves amount base units of mint from owner's associated token
// account into their deposit vault.
func (c *Client) DepositToken(ctx context.Context, owner, mint *common.Account, amount uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "DepositToken",
		sender:   owner,
		feePayer: owner,
		accounts: []*common.Account{owner, mint},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewDepositTokenInstruction(
				&zebec.DepositTokenInstructionAccounts{
					Owner: owner.PublicKey().ToBytes(),
					Mint:  mint.PublicKey().ToBytes(),
				},
				&zebec.DepositTokenInstructionArgs{
					Amount: amount,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"owner":  accountString(owner),
			"mint":   accountString(mint),
			"amount": amount,
		},
	})
}

func (c *Client) WithdrawToken(ctx context.Context, owner, mint *common.Account, amount uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "WithdrawToken",
		sender:   owner,
		feePayer: owner,
		accounts: []*common.Account{owner, mint},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewWithdrawTokenInstruction(
				&zebec.WithdrawTokenInstructionAccounts{
					Owner: owner.PublicKey().ToBytes(),
					Mint:  mint.PublicKey().ToBytes(),
				},
				&zebec.WithdrawTokenInstructionArgs{
					Amount: amount,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"owner":  accountString(owner),
			"mint":   accountString(mint),
			"amount": amount,
		},
	})
}

// InitializeTokenStream starts a stream of mint from sender to receiver. The
// new stream data account is returned in the result.
func (c *Client) InitializeTokenStream(ctx context.Context, sender, receiver, mint *common.Account, start, end, amount uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "InitializeTokenStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, receiver, mint},
		build: func() (solana.Instruction, *common.Account, error) {
			c.warnIfOffCurve(receiver)

			ixn, key, err := zebec.NewInitializeTokenStreamInstruction(
				&zebec.InitializeTokenStreamInstructionAccounts{
					Sender:   sender.PublicKey().ToBytes(),
					Receiver: receiver.PublicKey().ToBytes(),
					Mint:     mint.PublicKey().ToBytes(),
				},
				&zebec.InitializeTokenStreamInstructionArgs{
					StartTime: start,
					EndTime:   end,
					Amount:    amount,
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
			"mint":     accountString(mint),
			"start":    start,
			"end":      end,
			"amount":   amount,
		},
	})
}

// WithdrawTokenStream withdraws tokens that have streamed to receiver into
// their associated token account, creating it if needed. The receiver pays
// for and signs the transaction.
func (c *Client) WithdrawTokenStream(ctx context.Context, sender, receiver, mint, streamData *common.Account, amount uint64) (*Result, error) {
	fields := streamFields(sender, receiver, streamData)
	fields["mint"] = accountString(mint)
	fields["amount"] = amount

	return c.execute(ctx, &operation{
		method:   "WithdrawTokenStream",
		sender:   sender,
		feePayer: receiver,
		accounts: []*common.Account{sender, receiver, mint, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewWithdrawTokenStreamInstruction(
				&zebec.WithdrawTokenStreamInstructionAccounts{
					Sender:     sender.PublicKey().ToBytes(),
					Receiver:   receiver.PublicKey().ToBytes(),
					Mint:       mint.PublicKey().ToBytes(),
					StreamData: streamData.PublicKey().ToBytes(),
				},
				&zebec.WithdrawTokenStreamInstructionArgs{
					Amount: amount,
				},
			)
			return ixn, nil, err
		},
		fields: fields,
	})
}

func (c *Client) CancelTokenStream(ctx context.Context, sender, receiver, mint, streamData *common.Account) (*Result, error) {
	fields := streamFields(sender, receiver, streamData)
	fields["mint"] = accountString(mint)

	return c.execute(ctx, &operation{
		method:   "CancelTokenStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, receiver, mint, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewCancelTokenStreamInstruction(&zebec.CancelTokenStreamInstructionAccounts{
				Sender:     sender.PublicKey().ToBytes(),
				Receiver:   receiver.PublicKey().ToBytes(),
				Mint:       mint.PublicKey().ToBytes(),
				StreamData: streamData.PublicKey().ToBytes(),
			})
			return ixn, nil, err
		},
		fields: fields,
	})
}

// PauseTokenStream pauses the stream. The mint is validated but is not part
// of the instruction's accounts.
func (c *Client) PauseTokenStream(ctx context.Context, sender, receiver, mint, streamData *common.Account) (*Result, error) {
	return c.streamControl(ctx, "PauseTokenStream", zebec.NewPauseTokenStreamInstruction, sender, receiver, streamData, mint)
}

func (c *Client) ResumeTokenStream(ctx context.Context, sender, receiver, mint, streamData *common.Account) (*Result, error) {
	return c.streamControl(ctx, "ResumeTokenStream", zebec.NewResumeTokenStreamInstruction, sender, receiver, streamData, mint)
}

// FundTokenStream adds tokens to an existing stream and moves its end time.
func (c *Client) FundTokenStream(ctx context.Context, sender, mint, streamData *common.Account, end, amount uint64) (*Result, error) {
	return c.execute(ctx, &operation{
		method:   "FundTokenStream",
		sender:   sender,
		feePayer: sender,
		accounts: []*common.Account{sender, mint, streamData},
		build: func() (solana.Instruction, *common.Account, error) {
			ixn, err := zebec.NewFundTokenInstruction(
				&zebec.FundTokenInstructionAccounts{
					Sender:     sender.PublicKey().ToBytes(),
					Mint:       mint.PublicKey().ToBytes(),
					StreamData: streamData.PublicKey().ToBytes(),
				},
				&zebec.FundTokenInstructionArgs{
					EndTime: end,
					Amount:  amount,
				},
			)
			return ixn, nil, err
		},
		fields: logrus.Fields{
			"sender":      accountString(sender),
			"mint":        accountString(mint),
			"stream_data": accountString(streamData),
			"end":         end,
			"amount":      amount,
		},
	})
}
