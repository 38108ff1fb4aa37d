package ledger_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wager_backend/internal/model"
	"wager_backend/internal/repository"
)

const (
	accountsTable   = "accounts"
	colID           = "id"
	colBalance      = "balance"
	colBonusClaimed = "bonus_claimed_at"
	colCreatedAt    = "created_at"

	txTable        = "transactions"
	colTxID        = "id"
	colFromAccount = "from_account"
	colToAccount   = "to_account"
	colAmount      = "amount"
	colKind        = "kind"
)

// psql — билдер с плейсхолдерами $N под pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewLedgerRepository создает pg-реализацию журнала. Запросы выполняются
// через ctx getter транзакционного менеджера, чтобы участвовать в
// транзакции сервиса.
func NewLedgerRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) EnsureAccount(ctx context.Context, account int64) error {
	const op = "repository.ledger.EnsureAccount"

	query := psql.Insert(accountsTable).
		Columns(colID, colBalance, colCreatedAt).
		Values(account, 0, time.Now()).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return nil
}

// GetBalance возвращает 0 для неизвестного счета.
func (r *repo) GetBalance(ctx context.Context, account int64) (int64, error) {
	const op = "repository.ledger.GetBalance"

	query := psql.Select(colBalance).
		From(accountsTable).
		Where(sq.Eq{colID: account})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return balance, nil
}

// AddToBalance атомарно прибавляет delta. Условие balance + delta >= 0
// прямо в UPDATE: отсутствие строки после EnsureAccount означает нехватку
// средств, а не отсутствие счета.
func (r *repo) AddToBalance(ctx context.Context, account int64, delta int64) (int64, error) {
	const op = "repository.ledger.AddToBalance"

	query := psql.Update(accountsTable).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: account}).
		Where(sq.Expr(colBalance+" + ? >= 0", delta)).
		Suffix("RETURNING " + colBalance)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, model.ErrInsufficientFunds)
		}
		return 0, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return balance, nil
}

func (r *repo) InsertTransaction(ctx context.Context, tx *model.Transaction) error {
	const op = "repository.ledger.InsertTransaction"

	query := psql.Insert(txTable).
		Columns(colTxID, colFromAccount, colToAccount, colAmount, colKind, colCreatedAt).
		Values(tx.ID, tx.FromAccount, tx.ToAccount, tx.Amount, string(tx.Kind), tx.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return nil
}

func (r *repo) History(ctx context.Context, account int64, limit int) ([]model.Transaction, error) {
	const op = "repository.ledger.History"

	query := psql.Select(colTxID, colFromAccount, colToAccount, colAmount, colKind, colCreatedAt).
		From(txTable).
		Where(sq.Or{sq.Eq{colFromAccount: account}, sq.Eq{colToAccount: account}}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}
	defer rows.Close()

	var history []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var kind string
		if err = rows.Scan(&tx.ID, &tx.FromAccount, &tx.ToAccount, &tx.Amount, &kind, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
		}
		tx.Kind = model.TxKind(kind)
		history = append(history, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return history, nil
}

// MarkBonusClaimed сдвигает отметку бонуса guarded-апдейтом: условие по
// прошлой отметке стоит прямо в UPDATE, так что проверка и запись — одна
// строка под блокировкой строки, гонка двух клеймов невозможна.
func (r *repo) MarkBonusClaimed(ctx context.Context, account int64, now, cutoff time.Time) error {
	const op = "repository.ledger.MarkBonusClaimed"

	query := psql.Update(accountsTable).
		Set(colBonusClaimed, now).
		Where(sq.Eq{colID: account}).
		Where(sq.Or{
			sq.Eq{colBonusClaimed: nil},
			sq.LtOrEq{colBonusClaimed: cutoff},
		})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrBonusNotReady)
	}

	return nil
}

func (r *repo) TopBalances(ctx context.Context, n int) ([]model.BalanceEntry, error) {
	const op = "repository.ledger.TopBalances"

	query := psql.Select(colID, colBalance).
		From(accountsTable).
		Where(sq.NotEq{colID: model.HouseAccount}).
		OrderBy(colBalance + " DESC").
		Limit(uint64(n))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}
	defer rows.Close()

	var top []model.BalanceEntry
	for rows.Next() {
		var entry model.BalanceEntry
		if err = rows.Scan(&entry.Account, &entry.Balance); err != nil {
			return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
		}
		top = append(top, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return top, nil
}

func (r *repo) Stats(ctx context.Context, account int64) (*model.AccountStats, error) {
	const op = "repository.ledger.Stats"

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	stats := &model.AccountStats{Account: account}

	countQ := psql.Select("COUNT(*)").
		From(txTable).
		Where(sq.Or{sq.Eq{colFromAccount: account}, sq.Eq{colToAccount: account}})
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.QueryRow(ctx, sqlStr, args...).Scan(&stats.Transactions); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	receivedQ := psql.Select("COALESCE(SUM(" + colAmount + "), 0)").
		From(txTable).
		Where(sq.Eq{colToAccount: account})
	sqlStr, args, err = receivedQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.QueryRow(ctx, sqlStr, args...).Scan(&stats.TotalReceived); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	sentQ := psql.Select("COALESCE(SUM(" + colAmount + "), 0)").
		From(txTable).
		Where(sq.Eq{colFromAccount: account})
	sqlStr, args, err = sentQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.QueryRow(ctx, sqlStr, args...).Scan(&stats.TotalSent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorageFailure, err))
	}

	return stats, nil
}
