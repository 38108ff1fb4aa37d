package ledger_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wager_backend/internal/model"
	"wager_backend/internal/repository/ledger_mem_repo"
	"wager_backend/internal/service"
	"wager_backend/internal/service/ledger"
)

type bonusCfg struct {
	amount int64
	period time.Duration
}

func (c bonusCfg) Amount() int64         { return c.amount }
func (c bonusCfg) Period() time.Duration { return c.period }

func newService(t *testing.T) (service.LedgerService, *ledger_mem_repo.MemRepo) {
	t.Helper()
	repo := ledger_mem_repo.NewLedgerRepository()
	serv := ledger.NewLedgerService(repo, ledger_mem_repo.NewNopManager(), bonusCfg{amount: 100, period: 24 * time.Hour}, zap.NewNop())
	return serv, repo
}

func TestApplyDeltaCreditAndDebit(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	balance, tx, err := serv.ApplyDelta(ctx, 7, 500, model.TxHouseGrant)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	require.NotNil(t, tx)
	assert.Equal(t, model.HouseAccount, tx.FromAccount)
	assert.Equal(t, int64(7), tx.ToAccount)
	assert.Equal(t, int64(500), tx.Amount)

	balance, tx, err = serv.ApplyDelta(ctx, 7, -200, model.TxStakeDebit)
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)
	assert.Equal(t, int64(7), tx.FromAccount)
	assert.Equal(t, model.HouseAccount, tx.ToAccount)
	assert.Equal(t, int64(200), tx.Amount)
}

func TestApplyDeltaRejectsOverdraft(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, _, err := serv.ApplyDelta(ctx, 7, 100, model.TxHouseGrant)
	require.NoError(t, err)

	_, _, err = serv.ApplyDelta(ctx, 7, -101, model.TxStakeDebit)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err := serv.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestApplyDeltaRejectsHouseAndZero(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, _, err := serv.ApplyDelta(ctx, model.HouseAccount, 100, model.TxHouseGrant)
	assert.ErrorIs(t, err, model.ErrInvalidParameters)

	_, _, err = serv.ApplyDelta(ctx, 7, 0, model.TxHouseGrant)
	assert.ErrorIs(t, err, model.ErrInvalidParameters)
}

func TestBalanceEqualsSignedHistorySum(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	deltas := []int64{500, -120, 75, -30, 200}
	for _, d := range deltas {
		kind := model.TxHouseGrant
		if d < 0 {
			kind = model.TxStakeDebit
		}
		_, _, err := serv.ApplyDelta(ctx, 7, d, kind)
		require.NoError(t, err)
	}

	history, err := serv.History(ctx, 7, 100)
	require.NoError(t, err)
	require.Len(t, history, len(deltas))

	var sum int64
	for _, tx := range history {
		if tx.ToAccount == 7 {
			sum += tx.Amount
		} else {
			sum -= tx.Amount
		}
	}

	balance, err := serv.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, balance, sum)
}

func TestHistoryNewestFirstWithLimit(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		_, _, err := serv.ApplyDelta(ctx, 7, i, model.TxHouseGrant)
		require.NoError(t, err)
	}

	history, err := serv.History(ctx, 7, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(5), history[0].Amount)
	assert.Equal(t, int64(4), history[1].Amount)
	assert.Equal(t, int64(3), history[2].Amount)
}

func TestTransferMovesFundsBothLegs(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, _, err := serv.ApplyDelta(ctx, 1, 300, model.TxHouseGrant)
	require.NoError(t, err)

	fromBalance, toBalance, err := serv.Transfer(ctx, 1, 2, 120)
	require.NoError(t, err)
	assert.Equal(t, int64(180), fromBalance)
	assert.Equal(t, int64(120), toBalance)

	history, err := serv.History(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.TxPeerTransfer, history[0].Kind)
	assert.Equal(t, model.HouseAccount, history[0].FromAccount)
}

func TestTransferRejectsBadArguments(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, _, err := serv.ApplyDelta(ctx, 1, 300, model.TxHouseGrant)
	require.NoError(t, err)

	cases := []struct {
		name             string
		from, to, amount int64
	}{
		{"zero amount", 1, 2, 0},
		{"negative amount", 1, 2, -5},
		{"self transfer", 1, 1, 10},
		{"from house", model.HouseAccount, 2, 10},
		{"to house", 1, model.HouseAccount, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := serv.Transfer(ctx, tc.from, tc.to, tc.amount)
			assert.ErrorIs(t, err, model.ErrInvalidParameters)
		})
	}

	_, _, err = serv.Transfer(ctx, 1, 2, 301)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err := serv.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)
}

func TestConcurrentDeltasKeepTotal(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, _, err := serv.ApplyDelta(ctx, 7, 1, model.TxHouseGrant)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := serv.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), balance)

	history, err := serv.History(ctx, 7, workers+1)
	require.NoError(t, err)
	assert.Len(t, history, workers)
}

func TestClaimBonusOncePerPeriod(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	balance, err := serv.ClaimBonus(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	_, err = serv.ClaimBonus(ctx, 7)
	assert.ErrorIs(t, err, model.ErrBonusNotReady)

	balance, err = serv.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestConcurrentBonusClaimsCreditOnce(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	const claimers = 20

	var (
		wg      sync.WaitGroup
		granted atomic.Int64
	)
	wg.Add(claimers)
	for range claimers {
		go func() {
			defer wg.Done()
			if _, err := serv.ClaimBonus(ctx, 7); err == nil {
				granted.Add(1)
			} else {
				assert.ErrorIs(t, err, model.ErrBonusNotReady)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), granted.Load())

	balance, err := serv.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestClaimBonusAfterPeriod(t *testing.T) {
	repo := ledger_mem_repo.NewLedgerRepository()
	serv := ledger.NewLedgerService(repo, ledger_mem_repo.NewNopManager(), bonusCfg{amount: 100, period: time.Millisecond}, zap.NewNop())
	ctx := context.Background()

	_, err := serv.ClaimBonus(ctx, 7)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	balance, err := serv.ClaimBonus(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(200), balance)
}

func TestAdminGrantConfiscateSetBalance(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	balance, err := serv.Grant(ctx, 7, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance)

	balance, err = serv.Confiscate(ctx, 7, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)

	_, err = serv.Confiscate(ctx, 7, 1000)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err = serv.SetBalance(ctx, 7, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	balance, err = serv.SetBalance(ctx, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)

	// Установка в текущее значение не плодит записей.
	before, err := serv.History(ctx, 7, 100)
	require.NoError(t, err)
	balance, err = serv.SetBalance(ctx, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
	after, err := serv.History(ctx, 7, 100)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestTopBalancesExcludesHouse(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, err := serv.Grant(ctx, 1, 10)
	require.NoError(t, err)
	_, err = serv.Grant(ctx, 2, 30)
	require.NoError(t, err)
	_, err = serv.Grant(ctx, 3, 20)
	require.NoError(t, err)

	top, err := serv.TopBalances(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].Account)
	assert.Equal(t, int64(30), top[0].Balance)
	assert.Equal(t, int64(3), top[1].Account)
}

func TestStatsCountsBothDirections(t *testing.T) {
	serv, _ := newService(t)
	ctx := context.Background()

	_, err := serv.Grant(ctx, 7, 500)
	require.NoError(t, err)
	_, _, err = serv.Transfer(ctx, 7, 8, 200)
	require.NoError(t, err)

	stats, err := serv.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(500), stats.TotalReceived)
	assert.Equal(t, int64(200), stats.TotalSent)
	assert.Equal(t, 2, stats.Transactions)
}
