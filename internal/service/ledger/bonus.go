package ledger

import (
	"context"
	"fmt"
	"time"

	"wager_backend/internal/model"
)

// ClaimBonus начисляет ежедневный бонус, не чаще одного раза за период.
func (s *serv) ClaimBonus(ctx context.Context, account int64) (int64, error) {
	const op = "service.ledger.ClaimBonus"

	if account == model.HouseAccount {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	var balance int64

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureAccount(ctx, account); err != nil {
			return err
		}

		// Отметка двигается атомарной операцией хранилища: она же и
		// отсекает повторный клейм внутри периода.
		now := time.Now()
		if err := s.repo.MarkBonusClaimed(ctx, account, now, now.Add(-s.bonusCfg.Period())); err != nil {
			return err
		}

		var err error
		balance, _, err = s.ApplyDelta(ctx, account, s.bonusCfg.Amount(), model.TxBonusCredit)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

func (s *serv) TopBalances(ctx context.Context, n int) ([]model.BalanceEntry, error) {
	const op = "service.ledger.TopBalances"

	if n <= 0 {
		n = 20
	}

	top, err := s.repo.TopBalances(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return top, nil
}

func (s *serv) Stats(ctx context.Context, account int64) (*model.AccountStats, error) {
	const op = "service.ledger.Stats"

	stats, err := s.repo.Stats(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}
