package repository

import (
	"context"
	"time"

	"wager_backend/internal/model"
)

// LedgerRepository — хранилище счетов и журнала транзакций.
// Семантика общая для pg и in-memory реализаций: неизвестный счет читается
// как нулевой баланс, AddToBalance атомарен относительно счета и не дает
// балансу уйти в минус.
type LedgerRepository interface {
	// EnsureAccount создает запись счета с нулевым балансом, если ее нет.
	EnsureAccount(ctx context.Context, account int64) error
	GetBalance(ctx context.Context, account int64) (int64, error)
	// AddToBalance прибавляет delta (может быть отрицательной) и возвращает
	// новый баланс. Если итог был бы отрицательным — model.ErrInsufficientFunds,
	// баланс не меняется.
	AddToBalance(ctx context.Context, account int64, delta int64) (int64, error)
	InsertTransaction(ctx context.Context, tx *model.Transaction) error
	// History возвращает транзакции счета, новые первыми.
	History(ctx context.Context, account int64, limit int) ([]model.Transaction, error)

	// MarkBonusClaimed атомарно переводит отметку бонуса на now, но только
	// если прошлая отметка пуста или не позже cutoff. Иначе —
	// model.ErrBonusNotReady; сама проверка и запись неделимы, поэтому два
	// одновременных клейма не проходят оба.
	MarkBonusClaimed(ctx context.Context, account int64, now, cutoff time.Time) error

	TopBalances(ctx context.Context, n int) ([]model.BalanceEntry, error)
	Stats(ctx context.Context, account int64) (*model.AccountStats, error)
}

// MinesRegistry — реестр активных сессий. Mutate сериализует изменения
// по одной сессии; сессию, оставшуюся после fn в терминальном статусе,
// реестр удаляет сам, поэтому повторное обращение по тому же id дает
// model.ErrSessionNotFound.
type MinesRegistry interface {
	Add(s *model.MinesSession)
	Mutate(id string, fn func(s *model.MinesSession) error) error
	// View выполняет fn под той же блокировкой, без изменения статуса.
	View(id string, fn func(s *model.MinesSession)) error
	Len() int
}

// RouletteBetsRepository — отложенные ставки рулетки, по счетам.
type RouletteBetsRepository interface {
	Add(account int64, bet model.Bet)
	List(account int64) []model.Bet
	// ClearWith отдает fn все ставки счета под блокировкой набора и по
	// успеху снимает их. Ошибка fn оставляет набор нетронутым; параллельные
	// Add/DrainAll не могут вклиниться между решением fn и снятием.
	ClearWith(account int64, fn func(bets []model.Bet) error) error
	// DrainAll снимает ставки всех счетов разом (запуск раунда).
	DrainAll() map[int64][]model.Bet
}
