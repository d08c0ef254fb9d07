package relayer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkmesh/relay/logging"
	"github.com/zkmesh/relay/shared"
)

// resolveAccount picks the billing account for a submission. An account
// given explicitly with the request wins over the configured one, which
// wins over accounts already known to the gateway. When the gateway
// knows no account either, a fresh one is created.
func (r *Relayer) resolveAccount(ctx context.Context, explicit string) (shared.AccountID, error) {
	logger := logging.FromContext(ctx)

	if explicit != "" {
		return shared.ParseAccountID(explicit)
	}
	if r.cfg.Account != "" {
		return shared.ParseAccountID(r.cfg.Account)
	}

	accounts, err := r.client.Accounts(ctx)
	if err != nil {
		return shared.AccountID{}, fmt.Errorf("listing accounts: %w", err)
	}
	if len(accounts) > 0 {
		logger.Debug("using first account known to the gateway", zap.Stringer("account", accounts[0]))
		return accounts[0], nil
	}

	account, err := r.client.CreateAccount(ctx)
	if err != nil {
		return shared.AccountID{}, fmt.Errorf("creating account: %w", err)
	}
	logger.Info("created new billing account", zap.Stringer("account", account))
	return account, nil
}
