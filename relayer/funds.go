package relayer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkmesh/relay/logging"
	"github.com/zkmesh/relay/shared"
)

// ensureFunds makes sure the account holds at least the submission
// threshold before a proof is sent. If the balance is short, a single
// top-up is issued and the settlement delay is waited out. The re-queried
// balance is logged for operators but does not gate the submission: the
// accepted top-up transaction is treated as the success signal, even when
// the ledger is still behind after the delay.
func (r *Relayer) ensureFunds(ctx context.Context, account shared.AccountID) error {
	logger := logging.FromContext(ctx).With(zap.Stringer("account", account))

	balance, err := r.client.Balance(ctx, account)
	if err != nil {
		return fmt.Errorf("querying balance: %w", err)
	}
	if balance >= r.cfg.SubmissionThreshold {
		logger.Debug("balance sufficient for submission", zap.Float64("balance", balance))
		return nil
	}

	logger.Info(
		"balance below submission threshold, topping up",
		zap.Float64("balance", balance),
		zap.Float64("threshold", r.cfg.SubmissionThreshold),
	)
	receipt, err := r.client.TopUp(ctx, account, r.cfg.SubmissionThreshold)
	if err != nil {
		return fmt.Errorf("topping up: %w", err)
	}
	topUpsMetric.Inc()
	if receipt != nil {
		logger.Info("top-up issued", zap.String("tx", receipt.TxHash), zap.Float64("amount", receipt.Amount))
	}

	// Give the remote ledger time to reflect the top-up.
	r.sleep(r.cfg.SettlementDelay)

	balance, err = r.client.Balance(ctx, account)
	switch {
	case err != nil:
		logger.Warn("could not re-query balance after top-up", zap.Error(err))
	case balance < r.cfg.SubmissionThreshold:
		logger.Warn(
			"proceeding with submission despite shortfall",
			zap.Float64("balance", balance),
			zap.Float64("threshold", r.cfg.SubmissionThreshold),
			zap.Error(ErrInsufficientFunds),
		)
	default:
		logger.Debug("top-up settled", zap.Float64("balance", balance))
	}
	return nil
}
