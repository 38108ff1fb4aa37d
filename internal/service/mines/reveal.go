package mines

import (
	"context"
	"fmt"
	"sort"

	"wager_backend/internal/model"
)

// Reveal открывает одну ячейку. Попадание на мину закрывает сессию со
// статусом lost; дополнительных движений по журналу нет — списание ставки
// на старте уже представляет проигрыш.
func (s *serv) Reveal(ctx context.Context, sessionID string, caller int64, cell int) (*model.RevealResult, error) {
	const op = "service.mines.Reveal"

	var res *model.RevealResult

	err := s.registry.Mutate(sessionID, func(sess *model.MinesSession) error {
		if sess.Owner != caller {
			return model.ErrNotOwner
		}
		if cell < 0 || cell >= sess.Cells() {
			return model.ErrInvalidCell
		}
		if sess.IsRevealed(cell) {
			return model.ErrCellAlreadyRevealed
		}

		if sess.IsMine(cell) {
			sess.Status = model.SessionLost
			res = &model.RevealResult{
				SessionID:     sess.ID,
				Cell:          cell,
				Hit:           true,
				Status:        sess.Status,
				Revealed:      append([]int(nil), sess.Revealed...),
				MinePositions: minePositions(sess),
				Multiplier:    float64(sess.Multiplier) / 100,
			}
			return nil
		}

		sess.Revealed = append(sess.Revealed, cell)
		sess.Multiplier = multiplierFor(s.cfg.MultiplierTable(), len(sess.Revealed))

		// Пустая доска не закрывает сессию: кэшаут остается за игроком.
		res = &model.RevealResult{
			SessionID:  sess.ID,
			Cell:       cell,
			Status:     sess.Status,
			Revealed:   append([]int(nil), sess.Revealed...),
			Multiplier: float64(sess.Multiplier) / 100,
			Payout:     sess.Payout(),
			SafeLeft:   sess.SafeLeft(),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// multiplierFor возвращает множитель после revealed открытых ячеек.
// За концом таблицы множитель не растет.
func multiplierFor(table []int64, revealed int) int64 {
	if revealed >= len(table) {
		return table[len(table)-1]
	}
	return table[revealed]
}

func minePositions(sess *model.MinesSession) []int {
	positions := make([]int, 0, len(sess.MinePositions))
	for p := range sess.MinePositions {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions
}
