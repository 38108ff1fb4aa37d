package bets_repo

import (
	"sync"

	"wager_backend/internal/model"
)

// Repo — отложенные ставки рулетки до запуска раунда. Чисто оперативное
// состояние: за пределами раунда не живет, поэтому хранится в памяти.
type Repo struct {
	mu   sync.Mutex
	bets map[int64][]model.Bet
}

func NewRouletteBetsRepository() *Repo {
	return &Repo{
		bets: make(map[int64][]model.Bet),
	}
}

func (r *Repo) Add(account int64, bet model.Bet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bets[account] = append(r.bets[account], bet)
}

func (r *Repo) List(account int64) []model.Bet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Bet(nil), r.bets[account]...)
}

// ClearWith держит блокировку набора на время fn: решение о снятии и само
// снятие неделимы относительно Add, DrainAll и других ClearWith.
func (r *Repo) ClearWith(account int64, fn func(bets []model.Bet) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fn(r.bets[account]); err != nil {
		return err
	}
	delete(r.bets, account)
	return nil
}

func (r *Repo) DrainAll() map[int64][]model.Bet {
	r.mu.Lock()
	defer r.mu.Unlock()
	drained := r.bets
	r.bets = make(map[int64][]model.Bet)
	return drained
}
