package mines

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wager_backend/internal/model"
)

// Start принимает и эскроуирует ставку, после чего создает сессию.
// Валидация идет до списания: при отказе баланс не трогается.
func (s *serv) Start(ctx context.Context, owner, stake int64, gridW, gridH, mineCount int) (*model.MinesState, error) {
	const op = "service.mines.Start"

	if owner == model.HouseAccount {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}
	if stake < s.cfg.MinStake() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}
	if gridW < 2 || gridH < 2 || gridW > s.cfg.MaxGridWidth() || gridH > s.cfg.MaxGridHeight() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	cells := gridW * gridH
	if mineCount < 1 || mineCount >= cells {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidParameters)
	}

	// Розыгрыш мин идет до списания: отказ генератора не трогает баланс.
	positions, err := s.gen.DrawMinePositions(cells, mineCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Эскроу: ставка уходит дому до появления сессии.
	if _, _, err := s.ledger.ApplyDelta(ctx, owner, -stake, model.TxStakeDebit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	mineSet := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		mineSet[p] = struct{}{}
	}

	sess := &model.MinesSession{
		ID:            uuid.NewString(),
		Owner:         owner,
		Stake:         stake,
		GridWidth:     gridW,
		GridHeight:    gridH,
		MineCount:     mineCount,
		MinePositions: mineSet,
		Status:        model.SessionActive,
		Multiplier:    100,
		CreatedAt:     time.Now(),
	}
	s.registry.Add(sess)

	s.log.Info("mines session started",
		zap.String("session_id", sess.ID),
		zap.Int64("owner", owner),
		zap.Int64("stake", stake),
		zap.Int("cells", cells),
		zap.Int("mines", mineCount))

	return snapshot(sess), nil
}
