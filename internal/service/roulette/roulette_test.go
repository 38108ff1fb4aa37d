package roulette_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wager_backend/internal/model"
	"wager_backend/internal/repository/bets_repo"
	"wager_backend/internal/repository/ledger_mem_repo"
	"wager_backend/internal/service"
	"wager_backend/internal/service/ledger"
	"wager_backend/internal/service/roulette"
)

type rouletteCfg struct{}

func (rouletteCfg) MinBet() int64 { return 1 }
func (rouletteCfg) MaxBet() int64 { return 1000 }

type bonusCfg struct{}

func (bonusCfg) Amount() int64         { return 100 }
func (bonusCfg) Period() time.Duration { return 24 * time.Hour }

// fixedGen всегда выбрасывает одно и то же число.
type fixedGen struct {
	wheel int
}

func (g fixedGen) DrawWheel() int { return g.wheel }

func (g fixedGen) DrawMinePositions(int, int) ([]int, error) { return nil, nil }

func newServices(t *testing.T, wheel int) (service.RouletteService, service.LedgerService) {
	t.Helper()
	repo := ledger_mem_repo.NewLedgerRepository()
	ledgerServ := ledger.NewLedgerService(repo, ledger_mem_repo.NewNopManager(), bonusCfg{}, zap.NewNop())
	rouletteServ := roulette.NewRouletteService(rouletteCfg{}, bets_repo.NewRouletteBetsRepository(), ledgerServ, fixedGen{wheel: wheel}, zap.NewNop())
	return rouletteServ, ledgerServ
}

func fund(t *testing.T, ledgerServ service.LedgerService, account, amount int64) {
	t.Helper()
	_, err := ledgerServ.Grant(context.Background(), account, amount)
	require.NoError(t, err)
}

func TestParseBetSpec(t *testing.T) {
	cases := []struct {
		token string
		want  model.BetSpec
	}{
		{"14", model.BetSpec{Kind: model.BetNumber, Number: 14}},
		{"0", model.BetSpec{Kind: model.BetNumber, Number: 0}},
		{" RED ", model.BetSpec{Kind: model.BetColor, Color: model.Red}},
		{"black", model.BetSpec{Kind: model.BetColor, Color: model.Black}},
		{"красное", model.BetSpec{Kind: model.BetColor, Color: model.Red}},
		{"even", model.BetSpec{Kind: model.BetEvenOdd, Parity: model.Even}},
		{"нечет", model.BetSpec{Kind: model.BetEvenOdd, Parity: model.Odd}},
		{"1-18", model.BetSpec{Kind: model.BetRange, Low: 1, High: 18}},
		{"0-36", model.BetSpec{Kind: model.BetRange, Low: 0, High: 36}},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			spec, err := roulette.ParseBetSpec(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec)
		})
	}
}

func TestParseBetSpecRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "37", "-1", "5-5", "18-1", "1-37", "x-3", "banana"} {
		t.Run(token, func(t *testing.T) {
			_, err := roulette.ParseBetSpec(token)
			assert.ErrorIs(t, err, model.ErrInvalidBet)
		})
	}
}

func TestClassifyWheelResult(t *testing.T) {
	out := roulette.ClassifyWheelResult(0)
	assert.True(t, out.IsZero)
	assert.False(t, out.IsRed)
	assert.False(t, out.IsBlack)
	assert.False(t, out.IsEven)

	out = roulette.ClassifyWheelResult(14)
	assert.True(t, out.IsRed)
	assert.True(t, out.IsEven)

	out = roulette.ClassifyWheelResult(17)
	assert.True(t, out.IsBlack)
	assert.False(t, out.IsEven)
}

func TestPayout(t *testing.T) {
	mustSpec := func(token string) model.BetSpec {
		spec, err := roulette.ParseBetSpec(token)
		require.NoError(t, err)
		return spec
	}

	cases := []struct {
		name  string
		token string
		wheel int
		stake int64
		want  int64
	}{
		{"number hit", "14", 14, 50, 1800},
		{"number miss", "14", 15, 50, 0},
		{"red hit", "red", 14, 50, 100},
		{"red miss", "red", 17, 50, 0},
		{"color on zero", "red", 0, 50, 0},
		{"even hit", "even", 14, 50, 100},
		{"even on zero", "even", 0, 50, 0},
		{"odd hit", "odd", 17, 50, 100},
		{"range hit", "1-18", 9, 90, 180},
		{"range on zero", "1-18", 0, 90, 0},
		{"full range", "0-36", 21, 37, 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roulette.Payout(mustSpec(tc.token), tc.wheel, tc.stake))
		})
	}
}

func TestResolveRoundSumsStakesAndPayouts(t *testing.T) {
	specOf := func(token string) model.BetSpec {
		spec, err := roulette.ParseBetSpec(token)
		require.NoError(t, err)
		return spec
	}

	bets := []model.Bet{
		{Amount: 50, Spec: specOf("14"), Token: "14"},
		{Amount: 30, Spec: specOf("black"), Token: "black"},
		{Amount: 20, Spec: specOf("even"), Token: "even"},
	}

	res := roulette.ResolveRound(bets, 14)
	assert.Equal(t, int64(100), res.TotalStake)
	assert.Equal(t, int64(50*36+0+40), res.TotalPayout)
	require.Len(t, res.Bets, 3)
	assert.Equal(t, int64(1800), res.Bets[0].Payout)
	assert.Equal(t, int64(0), res.Bets[1].Payout)
	assert.Equal(t, int64(40), res.Bets[2].Payout)
}

func TestPlaceBetDebitsImmediately(t *testing.T) {
	rouletteServ, ledgerServ := newServices(t, 14)
	ctx := context.Background()
	fund(t, ledgerServ, 7, 1000)

	bet, balance, err := rouletteServ.PlaceBet(ctx, 7, 50, "red")
	require.NoError(t, err)
	assert.Equal(t, int64(950), balance)
	assert.Equal(t, model.BetColor, bet.Spec.Kind)

	pending := rouletteServ.PendingBets(7)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(50), pending[0].Amount)
}

func TestPlaceBetRejectsBadInput(t *testing.T) {
	rouletteServ, ledgerServ := newServices(t, 14)
	ctx := context.Background()
	fund(t, ledgerServ, 7, 1000)

	_, _, err := rouletteServ.PlaceBet(ctx, 7, 0, "red")
	assert.ErrorIs(t, err, model.ErrInvalidParameters)

	_, _, err = rouletteServ.PlaceBet(ctx, 7, 50, "banana")
	assert.ErrorIs(t, err, model.ErrInvalidBet)

	_, _, err = rouletteServ.PlaceBet(ctx, 7, 2000, "red")
	require.Error(t, err)

	// Отклоненные ставки не попадают в набор и не трогают баланс.
	assert.Empty(t, rouletteServ.PendingBets(7))
	balance, err := ledgerServ.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestClearBetsRefundsEverything(t *testing.T) {
	rouletteServ, ledgerServ := newServices(t, 14)
	ctx := context.Background()
	fund(t, ledgerServ, 7, 1000)

	_, _, err := rouletteServ.PlaceBet(ctx, 7, 50, "red")
	require.NoError(t, err)
	_, _, err = rouletteServ.PlaceBet(ctx, 7, 30, "17")
	require.NoError(t, err)

	refund, err := rouletteServ.ClearBets(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(80), refund)
	assert.Empty(t, rouletteServ.PendingBets(7))

	balance, err := ledgerServ.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	// Пустой набор — нулевой возврат без ошибки.
	refund, err = rouletteServ.ClearBets(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, refund)
}

func TestSpinResolvesAllAccounts(t *testing.T) {
	rouletteServ, ledgerServ := newServices(t, 14)
	ctx := context.Background()
	fund(t, ledgerServ, 1, 1000)
	fund(t, ledgerServ, 2, 1000)

	_, _, err := rouletteServ.PlaceBet(ctx, 1, 50, "14")
	require.NoError(t, err)
	_, _, err = rouletteServ.PlaceBet(ctx, 2, 30, "black")
	require.NoError(t, err)

	spin, err := rouletteServ.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, spin.Outcome.Number)
	assert.True(t, spin.Outcome.IsRed)
	require.Len(t, spin.Accounts, 2)

	// Счета в детерминированном порядке.
	assert.Equal(t, int64(1), spin.Accounts[0].Account)
	assert.Equal(t, int64(1800), spin.Accounts[0].Result.TotalPayout)
	assert.Equal(t, int64(950+1800), spin.Accounts[0].Balance)

	assert.Equal(t, int64(2), spin.Accounts[1].Account)
	assert.Zero(t, spin.Accounts[1].Result.TotalPayout)
	assert.Equal(t, int64(970), spin.Accounts[1].Balance)

	// Ставки разыграны и сняты с очереди.
	assert.Empty(t, rouletteServ.PendingBets(1))
	assert.Empty(t, rouletteServ.PendingBets(2))
}

func TestSpinWithNoBets(t *testing.T) {
	rouletteServ, _ := newServices(t, 0)

	spin, err := rouletteServ.Spin(context.Background())
	require.NoError(t, err)
	assert.True(t, spin.Outcome.IsZero)
	assert.Empty(t, spin.Accounts)
}
