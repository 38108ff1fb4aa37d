package roulette

import (
	"context"
	"fmt"

	"wager_backend/internal/model"
)

// PlaceBet принимает ставку и сразу списывает сумму: отложенный набор
// всегда уже оплачен.
func (s *serv) PlaceBet(ctx context.Context, account, amount int64, token string) (*model.Bet, int64, error) {
	const op = "service.roulette.PlaceBet"

	if amount < s.cfg.MinBet() || amount > s.cfg.MaxBet() {
		return nil, 0, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	spec, err := ParseBetSpec(token)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	balance, _, err := s.ledger.ApplyDelta(ctx, account, -amount, model.TxStakeDebit)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	bet := model.Bet{Amount: amount, Spec: spec, Token: token}
	s.repo.Add(account, bet)

	return &bet, balance, nil
}

func (s *serv) PendingBets(account int64) []model.Bet {
	return s.repo.List(account)
}

// ClearBets снимает отложенные ставки счета и возвращает всю сумму одним
// начислением. Возврат идет внутри ClearWith: при отказе журнала набор
// остается как был, а параллельный Spin не может забрать ставки между
// начислением и снятием.
func (s *serv) ClearBets(ctx context.Context, account int64) (int64, error) {
	const op = "service.roulette.ClearBets"

	var refund int64

	err := s.repo.ClearWith(account, func(bets []model.Bet) error {
		if len(bets) == 0 {
			return nil
		}

		var total int64
		for _, bet := range bets {
			total += bet.Amount
		}

		if _, _, err := s.ledger.ApplyDelta(ctx, account, total, model.TxPayoutCredit); err != nil {
			return err
		}
		refund = total
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return refund, nil
}
