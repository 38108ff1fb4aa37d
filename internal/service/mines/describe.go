package mines

import (
	"fmt"

	"wager_backend/internal/model"
)

// Describe возвращает снимок активной сессии для отображения. Позиции мин
// не раскрываются, чужая сессия не показывается.
func (s *serv) Describe(sessionID string, caller int64) (*model.MinesState, error) {
	const op = "service.mines.Describe"

	var (
		state    *model.MinesState
		notOwner bool
	)

	err := s.registry.View(sessionID, func(sess *model.MinesSession) {
		if sess.Owner != caller {
			notOwner = true
			return
		}
		state = snapshot(sess)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if notOwner {
		return nil, fmt.Errorf("%s: %w", op, model.ErrNotOwner)
	}

	return state, nil
}

func snapshot(sess *model.MinesSession) *model.MinesState {
	return &model.MinesState{
		SessionID:  sess.ID,
		Owner:      sess.Owner,
		Stake:      sess.Stake,
		GridWidth:  sess.GridWidth,
		GridHeight: sess.GridHeight,
		MineCount:  sess.MineCount,
		Revealed:   append([]int(nil), sess.Revealed...),
		Status:     sess.Status,
		Multiplier: float64(sess.Multiplier) / 100,
		Payout:     sess.Payout(),
		SafeLeft:   sess.SafeLeft(),
		CreatedAt:  sess.CreatedAt,
	}
}
