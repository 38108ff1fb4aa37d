package ledger_mem_repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wager_backend/internal/model"
	"wager_backend/internal/repository"
)

type account struct {
	mu             sync.Mutex
	balance        int64
	bonusClaimedAt *time.Time
}

// MemRepo — in-memory реализация журнала. Используется в тестах и в
// standalone-режиме без postgres. Блокировка на счет, а не на весь
// репозиторий: операции по разным счетам друг друга не ждут.
type MemRepo struct {
	mu       sync.RWMutex
	accounts map[int64]*account

	logMu sync.Mutex
	log   []model.Transaction
}

func NewLedgerRepository() *MemRepo {
	return &MemRepo{
		accounts: make(map[int64]*account),
	}
}

var _ repository.LedgerRepository = (*MemRepo)(nil)

func (r *MemRepo) acc(id int64) *account {
	r.mu.RLock()
	a, ok := r.accounts[id]
	r.mu.RUnlock()
	if ok {
		return a
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok = r.accounts[id]; ok {
		return a
	}
	a = &account{}
	r.accounts[id] = a
	return a
}

func (r *MemRepo) EnsureAccount(_ context.Context, id int64) error {
	r.acc(id)
	return nil
}

func (r *MemRepo) GetBalance(_ context.Context, id int64) (int64, error) {
	a := r.acc(id)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, nil
}

func (r *MemRepo) AddToBalance(_ context.Context, id int64, delta int64) (int64, error) {
	const op = "repository.ledger_mem.AddToBalance"

	a := r.acc(id)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance+delta < 0 {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInsufficientFunds)
	}
	a.balance += delta
	return a.balance, nil
}

func (r *MemRepo) InsertTransaction(_ context.Context, tx *model.Transaction) error {
	r.logMu.Lock()
	defer r.logMu.Unlock()
	r.log = append(r.log, *tx)
	return nil
}

func (r *MemRepo) History(_ context.Context, id int64, limit int) ([]model.Transaction, error) {
	r.logMu.Lock()
	defer r.logMu.Unlock()

	var history []model.Transaction
	for i := len(r.log) - 1; i >= 0 && len(history) < limit; i-- {
		tx := r.log[i]
		if tx.FromAccount == id || tx.ToAccount == id {
			history = append(history, tx)
		}
	}
	return history, nil
}

// MarkBonusClaimed проверяет и сдвигает отметку бонуса под мьютексом счета:
// из двух одновременных клеймов пройдет ровно один.
func (r *MemRepo) MarkBonusClaimed(_ context.Context, id int64, now, cutoff time.Time) error {
	const op = "repository.ledger_mem.MarkBonusClaimed"

	a := r.acc(id)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.bonusClaimedAt != nil && a.bonusClaimedAt.After(cutoff) {
		return fmt.Errorf("%s: %w", op, model.ErrBonusNotReady)
	}
	claimed := now
	a.bonusClaimedAt = &claimed
	return nil
}

func (r *MemRepo) TopBalances(_ context.Context, n int) ([]model.BalanceEntry, error) {
	r.mu.RLock()
	entries := make([]model.BalanceEntry, 0, len(r.accounts))
	for id, a := range r.accounts {
		if id == model.HouseAccount {
			continue
		}
		a.mu.Lock()
		entries = append(entries, model.BalanceEntry{Account: id, Balance: a.balance})
		a.mu.Unlock()
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Balance > entries[j].Balance })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func (r *MemRepo) Stats(_ context.Context, id int64) (*model.AccountStats, error) {
	r.logMu.Lock()
	defer r.logMu.Unlock()

	stats := &model.AccountStats{Account: id}
	for _, tx := range r.log {
		switch {
		case tx.ToAccount == id:
			stats.Transactions++
			stats.TotalReceived += tx.Amount
		case tx.FromAccount == id:
			stats.Transactions++
			stats.TotalSent += tx.Amount
		}
	}
	return stats, nil
}
