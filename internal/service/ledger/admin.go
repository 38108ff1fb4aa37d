package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wager_backend/internal/model"
)

// Grant начисляет счету amount от дома (историческая команда /give).
func (s *serv) Grant(ctx context.Context, account, amount int64) (int64, error) {
	const op = "service.ledger.Grant"

	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	balance, _, err := s.ApplyDelta(ctx, account, amount, model.TxHouseGrant)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("balance granted",
		zap.Int64("account", account),
		zap.Int64("amount", amount),
		zap.Int64("balance", balance))

	return balance, nil
}

// Confiscate списывает amount в пользу дома (/take). Списание ниже нуля
// отвергается.
func (s *serv) Confiscate(ctx context.Context, account, amount int64) (int64, error) {
	const op = "service.ledger.Confiscate"

	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	balance, _, err := s.ApplyDelta(ctx, account, -amount, model.TxHouseConfiscate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("balance confiscated",
		zap.Int64("account", account),
		zap.Int64("amount", amount),
		zap.Int64("balance", balance))

	return balance, nil
}

// SetBalance выставляет счет на заданное значение, записывая разницу как
// grant либо confiscate (/setbalance).
func (s *serv) SetBalance(ctx context.Context, account, amount int64) (int64, error) {
	const op = "service.ledger.SetBalance"

	if amount < 0 || account == model.HouseAccount {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	var balance int64

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetBalance(ctx, account)
		if err != nil {
			return err
		}

		diff := amount - current
		if diff == 0 {
			balance = current
			return nil
		}

		kind := model.TxHouseGrant
		if diff < 0 {
			kind = model.TxHouseConfiscate
		}
		balance, _, err = s.ApplyDelta(ctx, account, diff, kind)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}
