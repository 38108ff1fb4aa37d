package mines

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wager_backend/internal/model"
)

// CashOut закрывает сессию с выплатой по текущему множителю. Начисление
// идет до терминального перехода: если журнал отказал, сессия остается
// активной и попытку можно повторить.
func (s *serv) CashOut(ctx context.Context, sessionID string, caller int64) (*model.MinesSettlement, error) {
	const op = "service.mines.CashOut"

	var settlement *model.MinesSettlement

	err := s.registry.Mutate(sessionID, func(sess *model.MinesSession) error {
		if sess.Owner != caller {
			return model.ErrNotOwner
		}

		payout := sess.Payout()
		balance, _, err := s.ledger.ApplyDelta(ctx, sess.Owner, payout, model.TxPayoutCredit)
		if err != nil {
			return err
		}

		sess.Status = model.SessionCashedOut
		settlement = &model.MinesSettlement{
			SessionID:  sess.ID,
			Stake:      sess.Stake,
			Multiplier: float64(sess.Multiplier) / 100,
			Payout:     payout,
			Profit:     payout - sess.Stake,
			Balance:    balance,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("mines session cashed out",
		zap.String("session_id", settlement.SessionID),
		zap.Int64("owner", caller),
		zap.Int64("payout", settlement.Payout),
		zap.Int64("profit", settlement.Profit))

	return settlement, nil
}
