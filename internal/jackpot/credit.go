package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// Credit tops up a ledger account so it can deposit. It stands in for the
// external wallet and is restricted to the administrator.
func (s *service) Credit(ctx context.Context, caller, account domain.Identity, amount uint64) (balance uint64, err error) {
	ctx, span := s.startSpan(ctx, SpanCredit, 0)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgCreditCalled, "caller", caller, "account", account, "amount", amount)

	if account.IsZero() {
		return 0, fmt.Errorf("%w: account is required", domain.ErrInvalidInput)
	}
	if account == s.vault.Address() {
		return 0, fmt.Errorf("%w: the vault cannot be credited", domain.ErrInvalidInput)
	}

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		if _, err := s.lockAdmin(ctx, tx, caller); err != nil {
			return err
		}
		balance, err = tx.Credit(ctx, account, amount)
		if err != nil {
			if domain.ErrorKind(err) != "internal" {
				return err
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info(LogMsgAccountCredited, "account", account, "amount", amount, "balance", balance)
	s.publish(ctx, event.NewLedgerCreditedEvent(account, amount, balance))
	return balance, nil
}
