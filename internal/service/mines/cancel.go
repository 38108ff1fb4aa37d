package mines

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wager_backend/internal/model"
)

// Cancel явно прекращает партию. По умолчанию ставка остается у дома;
// возврат включается конфигурацией (исторические ревизии игры вели себя
// по-разному, конфискация выбрана как базовое поведение).
func (s *serv) Cancel(ctx context.Context, sessionID string, caller int64) error {
	const op = "service.mines.Cancel"

	err := s.registry.Mutate(sessionID, func(sess *model.MinesSession) error {
		if sess.Owner != caller {
			return model.ErrNotOwner
		}

		if s.cfg.RefundOnCancel() {
			if _, _, err := s.ledger.ApplyDelta(ctx, sess.Owner, sess.Stake, model.TxPayoutCredit); err != nil {
				return err
			}
		}

		sess.Status = model.SessionCancelled
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("mines session cancelled",
		zap.String("session_id", sessionID),
		zap.Int64("owner", caller),
		zap.Bool("refunded", s.cfg.RefundOnCancel()))

	return nil
}
