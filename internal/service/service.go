package service

import (
	"context"

	"wager_backend/internal/model"
)

type LedgerService interface {
	GetBalance(ctx context.Context, account int64) (int64, error)
	// ApplyDelta атомарно меняет баланс и пишет ровно одну транзакцию.
	// Отрицательная delta — списание в пользу дома, положительная —
	// начисление от дома.
	ApplyDelta(ctx context.Context, account int64, delta int64, kind model.TxKind) (int64, *model.Transaction, error)
	// Transfer — перевод между игроками, обе ноги в одной транзакции.
	Transfer(ctx context.Context, from, to, amount int64) (fromBalance, toBalance int64, err error)
	History(ctx context.Context, account int64, limit int) ([]model.Transaction, error)

	// Админские операции (исторические /give, /take, /setbalance).
	Grant(ctx context.Context, account, amount int64) (int64, error)
	Confiscate(ctx context.Context, account, amount int64) (int64, error)
	SetBalance(ctx context.Context, account, amount int64) (int64, error)

	ClaimBonus(ctx context.Context, account int64) (int64, error)
	TopBalances(ctx context.Context, n int) ([]model.BalanceEntry, error)
	Stats(ctx context.Context, account int64) (*model.AccountStats, error)
}

type MinesService interface {
	Start(ctx context.Context, owner, stake int64, gridW, gridH, mineCount int) (*model.MinesState, error)
	Reveal(ctx context.Context, sessionID string, caller int64, cell int) (*model.RevealResult, error)
	CashOut(ctx context.Context, sessionID string, caller int64) (*model.MinesSettlement, error)
	Cancel(ctx context.Context, sessionID string, caller int64) error
	Describe(sessionID string, caller int64) (*model.MinesState, error)
}

type RouletteService interface {
	// PlaceBet распознает токен ставки и сразу списывает сумму.
	PlaceBet(ctx context.Context, account, amount int64, token string) (*model.Bet, int64, error)
	PendingBets(account int64) []model.Bet
	// ClearBets снимает все отложенные ставки счета и возвращает их сумму
	// одним начислением.
	ClearBets(ctx context.Context, account int64) (int64, error)
	// Spin запускает раунд: один бросок колеса против ставок всех счетов.
	Spin(ctx context.Context) (*model.RouletteSpin, error)
}
