package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wager_backend/internal/model"
)

// Transfer переводит amount от одного игрока другому. Обе ноги — списание и
// начисление — выполняются в одной транзакции менеджера: либо видны обе,
// либо ни одной.
func (s *serv) Transfer(ctx context.Context, from, to, amount int64) (int64, int64, error) {
	const op = "service.ledger.Transfer"

	if amount <= 0 || from == to ||
		from == model.HouseAccount || to == model.HouseAccount {
		return 0, 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	var fromBalance, toBalance int64

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureAccount(ctx, from); err != nil {
			return err
		}
		if err := s.repo.EnsureAccount(ctx, to); err != nil {
			return err
		}

		var err error
		fromBalance, err = s.repo.AddToBalance(ctx, from, -amount)
		if err != nil {
			return err
		}
		toBalance, err = s.repo.AddToBalance(ctx, to, amount)
		if err != nil {
			return err
		}

		now := time.Now()
		debit := &model.Transaction{
			ID:          uuid.NewString(),
			FromAccount: from,
			ToAccount:   model.HouseAccount,
			Amount:      amount,
			Kind:        model.TxPeerTransfer,
			CreatedAt:   now,
		}
		credit := &model.Transaction{
			ID:          uuid.NewString(),
			FromAccount: model.HouseAccount,
			ToAccount:   to,
			Amount:      amount,
			Kind:        model.TxPeerTransfer,
			CreatedAt:   now,
		}
		if err = s.repo.InsertTransaction(ctx, debit); err != nil {
			return err
		}
		return s.repo.InsertTransaction(ctx, credit)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	return fromBalance, toBalance, nil
}
