package bets_repo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wager_backend/internal/model"
	"wager_backend/internal/repository/bets_repo"
)

func bet(amount int64, token string) model.Bet {
	return model.Bet{Amount: amount, Spec: model.BetSpec{Kind: model.BetNumber}, Token: token}
}

func TestAddAndList(t *testing.T) {
	r := bets_repo.NewRouletteBetsRepository()

	r.Add(1, bet(50, "14"))
	r.Add(1, bet(30, "red"))
	r.Add(2, bet(10, "odd"))

	bets := r.List(1)
	require.Len(t, bets, 2)
	assert.Equal(t, int64(50), bets[0].Amount)

	// List отдает копию: правки снаружи набор не трогают.
	bets[0].Amount = 999
	assert.Equal(t, int64(50), r.List(1)[0].Amount)

	assert.Empty(t, r.List(3))
}

func TestClearWithRemovesOnSuccess(t *testing.T) {
	r := bets_repo.NewRouletteBetsRepository()

	r.Add(1, bet(50, "14"))
	r.Add(1, bet(30, "red"))

	var seen []model.Bet
	err := r.ClearWith(1, func(bets []model.Bet) error {
		seen = append([]model.Bet(nil), bets...)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Empty(t, r.List(1))

	// Пустой набор тоже проходит без ошибки.
	err = r.ClearWith(1, func(bets []model.Bet) error {
		assert.Empty(t, bets)
		return nil
	})
	require.NoError(t, err)
}

func TestClearWithKeepsBetsOnError(t *testing.T) {
	r := bets_repo.NewRouletteBetsRepository()

	r.Add(1, bet(50, "14"))

	boom := errors.New("refund rejected")
	err := r.ClearWith(1, func([]model.Bet) error { return boom })
	require.ErrorIs(t, err, boom)

	require.Len(t, r.List(1), 1)
	assert.Equal(t, int64(50), r.List(1)[0].Amount)
}

func TestDrainAllSwapsEverything(t *testing.T) {
	r := bets_repo.NewRouletteBetsRepository()

	r.Add(1, bet(50, "14"))
	r.Add(2, bet(30, "red"))

	pending := r.DrainAll()
	require.Len(t, pending, 2)
	assert.Len(t, pending[1], 1)
	assert.Len(t, pending[2], 1)

	assert.Empty(t, r.List(1))
	assert.Empty(t, r.DrainAll())
}
