package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wager_backend/internal/model"
)

func (s *serv) GetBalance(ctx context.Context, account int64) (int64, error) {
	const op = "service.ledger.GetBalance"

	if account == model.HouseAccount {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	balance, err := s.repo.GetBalance(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return balance, nil
}

// ApplyDelta атомарно меняет баланс счета и пишет парную транзакцию.
// Знак delta задает направление: минус — списание в пользу дома, плюс —
// начисление от дома. Уход баланса в минус отвергается на уровне хранилища.
func (s *serv) ApplyDelta(ctx context.Context, account int64, delta int64, kind model.TxKind) (int64, *model.Transaction, error) {
	const op = "service.ledger.ApplyDelta"

	if account == model.HouseAccount || delta == 0 {
		return 0, nil, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	var (
		balance int64
		record  *model.Transaction
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureAccount(ctx, account); err != nil {
			return err
		}

		var err error
		balance, err = s.repo.AddToBalance(ctx, account, delta)
		if err != nil {
			return err
		}

		record = deltaTransaction(account, delta, kind)
		return s.repo.InsertTransaction(ctx, record)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	return balance, record, nil
}

// deltaTransaction строит запись журнала для одиночного изменения баланса.
// Amount всегда положительный, знак кодируется направлением.
func deltaTransaction(account int64, delta int64, kind model.TxKind) *model.Transaction {
	tx := &model.Transaction{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if delta > 0 {
		tx.FromAccount = model.HouseAccount
		tx.ToAccount = account
		tx.Amount = delta
	} else {
		tx.FromAccount = account
		tx.ToAccount = model.HouseAccount
		tx.Amount = -delta
	}
	return tx
}

func (s *serv) History(ctx context.Context, account int64, limit int) ([]model.Transaction, error) {
	const op = "service.ledger.History"

	if limit <= 0 {
		limit = 50
	}

	history, err := s.repo.History(ctx, account, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return history, nil
}
