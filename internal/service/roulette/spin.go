package roulette

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wager_backend/internal/model"
)

// Spin запускает раунд: один бросок колеса разыгрывается против отложенных
// ставок всех счетов. Начисления по счетам независимы и идут параллельно.
func (s *serv) Spin(ctx context.Context) (*model.RouletteSpin, error) {
	const op = "service.roulette.Spin"

	pending := s.repo.DrainAll()

	wheel := s.gen.DrawWheel()
	spin := &model.RouletteSpin{Outcome: ClassifyWheelResult(wheel)}

	accounts := make([]int64, 0, len(pending))
	for account := range pending {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	rounds := make([]model.AccountRound, len(accounts))

	g, ctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		g.Go(func() error {
			result := ResolveRound(pending[account], wheel)

			var balance int64
			var err error
			if result.TotalPayout > 0 {
				balance, _, err = s.ledger.ApplyDelta(ctx, account, result.TotalPayout, model.TxPayoutCredit)
			} else {
				balance, err = s.ledger.GetBalance(ctx, account)
			}
			if err != nil {
				return err
			}

			rounds[i] = model.AccountRound{
				Account: account,
				Result:  result,
				Balance: balance,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	spin.Accounts = rounds

	s.log.Info("roulette round resolved",
		zap.Int("number", wheel),
		zap.Int("accounts", len(rounds)))

	return spin, nil
}
