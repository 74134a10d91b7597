package stream

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	xrate "golang.org/x/time/rate"

	"github.com/code-payments/zebec-go/pkg/common"
	"github.com/code-payments/zebec-go/pkg/metrics"
	"github.com/code-payments/zebec-go/pkg/rate"
	"github.com/code-payments/zebec-go/pkg/retry"
	"github.com/code-payments/zebec-go/pkg/retry/backoff"
	"github.com/code-payments/zebec-go/pkg/solana"
	compute_budget "github.com/code-payments/zebec-go/pkg/solana/computebudget"
	"github.com/code-payments/zebec-go/pkg/sync"
)

const (
	metricsStructName = "stream.client"

	submittedEventName        = "StreamTransactionSubmitted"
	rejectedCountMetricName   = "StreamTransactionRejected"
	confirmationLatencyMetric = "StreamTransactionConfirmationLatency"

	senderLockStripes = 64

	// maxComputeUnitLimit is the most compute units a transaction may request
	maxComputeUnitLimit = 1_400_000
)

// Rate limiter keys, one per RPC method
const (
	rpcGetLatestBlockhash   = "getLatestBlockhash"
	rpcSendTransaction      = "sendTransaction"
	rpcGetSignatureStatuses = "getSignatureStatuses"
)

var (
	ErrMissingPrivateKey   = errors.New("account is missing a private key")
	ErrConfirmationTimeout = errors.New("timed out waiting for transaction confirmation")

	errNotConfirmed = errors.New("transaction not yet confirmed")
)

// Client submits Zebec stream instructions to a Solana cluster.
//
// Client is safe for concurrent use. Operations sharing a sender are
// serialized, since they contend on the same deposit vault and withdraw data
// accounts.
type Client struct {
	log     *logrus.Entry
	conf    *conf
	sc      solana.Client
	limiter rate.Limiter

	senderLocks *sync.StripedLock
}

func NewClient(sc solana.Client, configProvider ConfigProvider) *Client {
	conf := configProvider()

	return &Client{
		log:         logrus.StandardLogger().WithField("type", "stream/client"),
		conf:        conf,
		sc:          sc,
		limiter:     newRpcLimiter(conf.maxRpcRequestsPerSecond.Get(context.Background())),
		senderLocks: sync.NewStripedLock(senderLockStripes),
	}
}

// newRpcLimiter returns a limiter allowing maxPerSecond calls per RPC method.
// Zero disables limiting.
func newRpcLimiter(maxPerSecond uint64) rate.Limiter {
	if maxPerSecond == 0 {
		return &rate.NoLimiter{}
	}
	return rate.NewLocalRateLimiter(xrate.Limit(maxPerSecond))
}

// operation describes a single instruction submission.
type operation struct {
	method string

	// sender owns the deposit vault the instruction touches
	sender *common.Account

	// feePayer signs and pays for the transaction
	feePayer *common.Account

	// accounts must all be valid, but are not required to sign
	accounts []*common.Account

	build func() (solana.Instruction, *common.Account, error)

	fields logrus.Fields
}

// execute builds, signs and submits the operation's transaction, then waits
// for confirmation if configured to. Once the transaction has been handed to
// the RPC node, the Result is returned even when an error is, since the
// transaction may still land.
func (c *Client) execute(ctx context.Context, op *operation) (res *Result, err error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, op.method)
	defer tracer.End()
	defer func() {
		if err != nil {
			tracer.OnError(err)
		}
	}()

	log := c.log.WithField("method", op.method).WithFields(op.fields)

	if err := requireSigner(op.feePayer); err != nil {
		return nil, err
	}
	for _, account := range op.accounts {
		if err := account.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid account")
		}
	}

	commitment := c.getCommitment(ctx, log)

	ixn, streamData, err := op.build()
	if err != nil {
		log.WithError(err).Warn("failure building instruction")
		return nil, err
	}

	// The sender's stripe is only held until the transaction is submitted, so
	// other operations for the sender aren't blocked on confirmation.
	unlock, err := c.senderLocks.LockAllContext(ctx, op.sender.PublicKey().ToBytes())
	if err != nil {
		return nil, err
	}
	sig, submitted, err := c.submit(ctx, log, op, ixn, streamData, commitment)
	unlock()

	if !submitted {
		return nil, err
	}

	res = &Result{
		Signature:         base58.Encode(sig[:]),
		StreamDataAddress: streamData,
	}
	log = log.WithField("signature", res.Signature)
	if streamData != nil {
		log = log.WithField("stream_data", streamData.String())
	}

	if err != nil {
		if _, ok := err.(solana.TransactionError); ok {
			metrics.RecordCount(ctx, rejectedCountMetricName, 1)
		}
		log.WithError(err).Warn("failure submitting transaction")
		return res, err
	}

	metrics.RecordEvent(ctx, submittedEventName, map[string]interface{}{
		"method":    op.method,
		"signature": res.Signature,
	})

	if !c.conf.waitForConfirmation.Get(ctx) {
		log.Debug("transaction submitted")
		return res, nil
	}

	start := time.Now()
	if err := c.waitForConfirmation(ctx, sig, commitment); err != nil {
		log.WithError(err).Warn("failure confirming transaction")
		return res, err
	}
	metrics.RecordDuration(ctx, confirmationLatencyMetric, time.Since(start))

	log.Debug("transaction confirmed")
	return res, nil
}

// submit assembles, signs and sends the transaction. submitted reports whether
// SubmitTransaction was called, in which case sig identifies the transaction
// regardless of err.
func (c *Client) submit(
	ctx context.Context,
	log *logrus.Entry,
	op *operation,
	ixn solana.Instruction,
	streamData *common.Account,
	commitment solana.Commitment,
) (sig solana.Signature, submitted bool, err error) {
	if err := c.limiter.Wait(ctx, rpcGetLatestBlockhash); err != nil {
		return sig, false, err
	}
	blockhash, err := c.sc.GetLatestBlockhash()
	if err != nil {
		log.WithError(err).Warn("failure getting latest blockhash")
		return sig, false, errors.Wrap(err, "error getting latest blockhash")
	}

	var ixns []solana.Instruction
	if price := c.conf.computeUnitPrice.Get(ctx); price > 0 {
		if limit := c.getComputeUnitLimit(ctx, log); limit > 0 {
			ixns = append(ixns, compute_budget.SetComputeUnitLimit(limit))
		}
		ixns = append(ixns, compute_budget.SetComputeUnitPrice(price))
	}
	ixns = append(ixns, ixn)

	txn := solana.NewTransaction(op.feePayer.PublicKey().ToBytes(), ixns...)
	txn.SetBlockhash(blockhash)

	signers := []ed25519.PrivateKey{op.feePayer.PrivateKey().ToBytes()}
	if streamData != nil {
		signers = append(signers, streamData.PrivateKey().ToBytes())
	}
	if err := txn.Sign(signers...); err != nil {
		return sig, false, errors.Wrap(err, "error signing transaction")
	}

	if err := c.limiter.Wait(ctx, rpcSendTransaction); err != nil {
		return sig, false, err
	}
	copy(sig[:], txn.Signature())

	_, err = c.sc.SubmitTransaction(txn, commitment)
	return sig, true, err
}

// waitForConfirmation polls the signature status until it reaches commitment,
// the transaction is found to have failed, or the confirmation timeout passes.
func (c *Client) waitForConfirmation(ctx context.Context, sig solana.Signature, commitment solana.Commitment) error {
	var txnErr *solana.TransactionError

	_, err := retry.Retry(
		func() error {
			if err := c.limiter.Wait(ctx, rpcGetSignatureStatuses); err != nil {
				return err
			}

			statuses, err := c.sc.GetSignatureStatuses([]solana.Signature{sig})
			if err != nil {
				return err
			}

			if len(statuses) == 0 || statuses[0] == nil {
				return solana.ErrSignatureNotFound
			}

			status := statuses[0]
			if status.ErrorResult != nil {
				txnErr = status.ErrorResult
				return nil
			}

			if !hasReachedCommitment(status, commitment) {
				return errNotConfirmed
			}
			return nil
		},
		retry.Context(ctx),
		retry.Backoff(backoff.Constant(solana.PollRate), solana.PollRate),
		retry.Deadline(time.Now().Add(c.conf.confirmationTimeout.Get(ctx))),
	)
	if txnErr != nil {
		metrics.RecordCount(ctx, rejectedCountMetricName, 1)
		return *txnErr
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrConfirmationTimeout
	}
	return nil
}

func hasReachedCommitment(status *solana.SignatureStatus, commitment solana.Commitment) bool {
	switch commitment {
	case solana.CommitmentFinalized:
		return status.Finalized()
	case solana.CommitmentConfirmed:
		return status.Confirmed()
	default:
		return true
	}
}

// getComputeUnitLimit returns the configured limit, capped at the runtime's
// per-transaction maximum.
func (c *Client) getComputeUnitLimit(ctx context.Context, log *logrus.Entry) uint32 {
	limit := c.conf.computeUnitLimit.Get(ctx)
	if limit > maxComputeUnitLimit {
		log.WithField("compute_unit_limit", limit).Warn("compute unit limit exceeds maximum, capping")
		return maxComputeUnitLimit
	}
	return uint32(limit)
}

func (c *Client) getCommitment(ctx context.Context, log *logrus.Entry) solana.Commitment {
	value := c.conf.commitment.Get(ctx)
	commitment, err := solana.CommitmentFromString(value)
	if err != nil {
		log.WithError(err).WithField("commitment", value).Warn("invalid commitment, using confirmed")
		return solana.CommitmentConfirmed
	}
	return commitment
}

// requireSigner checks that account can sign a transaction.
func requireSigner(account *common.Account) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "invalid signer")
	}
	if !account.HasPrivateKey() {
		return ErrMissingPrivateKey
	}
	return nil
}

func (c *Client) warnIfOffCurve(receiver *common.Account) {
	if !receiver.IsOnCurve() {
		c.log.WithField("receiver", receiver.PublicKey().ToBase58()).Warn("stream receiver is off curve and cannot sign withdrawals")
	}
}
