package stream

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/zebec-go/pkg/common"
	"github.com/code-payments/zebec-go/pkg/metrics"
	"github.com/code-payments/zebec-go/pkg/solana"
)

const (
	rpcGetBalance             = "getBalance"
	rpcGetTokenAccountBalance = "getTokenAccountBalance"
)

// GetDepositBalance returns the lamports held in owner's deposit vault. A
// vault that has never been funded has a zero balance.
func (c *Client) GetDepositBalance(ctx context.Context, owner *common.Account) (balance uint64, err error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetDepositBalance")
	defer tracer.End()
	defer func() {
		tracer.OnError(err)
	}()

	deposit, err := owner.ToDepositAccount()
	if err != nil {
		return 0, err
	}

	if err := c.limiter.Wait(ctx, rpcGetBalance); err != nil {
		return 0, err
	}
	balance, err = c.sc.GetBalance(deposit.PublicKey().ToBytes())
	if err == solana.ErrNoBalance {
		return 0, nil
	} else if err != nil {
		c.log.WithError(err).WithField("deposit", deposit.String()).Warn("failure getting deposit balance")
		return 0, errors.Wrap(err, "error getting deposit balance")
	}
	return balance, nil
}

// GetDepositTokenBalance returns the base units of mint held by owner's
// deposit vault. ErrNoBalance from the RPC node, meaning the vault's token
// account doesn't exist yet, is reported as a zero balance.
func (c *Client) GetDepositTokenBalance(ctx context.Context, owner, mint *common.Account) (balance uint64, err error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetDepositTokenBalance")
	defer tracer.End()
	defer func() {
		tracer.OnError(err)
	}()

	if err := mint.Validate(); err != nil {
		return 0, errors.Wrap(err, "invalid mint")
	}

	accounts, err := owner.GetStreamAccounts(mint)
	if err != nil {
		return 0, err
	}

	if err := c.limiter.Wait(ctx, rpcGetTokenAccountBalance); err != nil {
		return 0, err
	}
	balance, _, err = c.sc.GetTokenAccountBalance(accounts.DepositAta.PublicKey().ToBytes())
	if err == solana.ErrNoBalance {
		return 0, nil
	} else if err != nil {
		c.log.WithError(err).WithField("deposit_ata", accounts.DepositAta.String()).Warn("failure getting deposit token balance")
		return 0, errors.Wrap(err, "error getting deposit token balance")
	}
	return balance, nil
}
