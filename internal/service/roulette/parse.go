package roulette

import (
	"fmt"
	"strconv"
	"strings"

	"wager_backend/internal/model"
)

// ParseBetSpec распознает токен ставки: точное число 0..36, цвет,
// чет/нечет или включительный диапазон "a-b" с 0 <= a < b <= 36.
// Нераспознанный токен — ошибка, а не нулевая ставка.
func ParseBetSpec(token string) (model.BetSpec, error) {
	const op = "service.roulette.ParseBetSpec"

	t := strings.ToLower(strings.TrimSpace(token))

	switch t {
	case "red", "красное", "красный":
		return model.BetSpec{Kind: model.BetColor, Color: model.Red}, nil
	case "black", "черное", "черный":
		return model.BetSpec{Kind: model.BetColor, Color: model.Black}, nil
	case "even", "чет":
		return model.BetSpec{Kind: model.BetEvenOdd, Parity: model.Even}, nil
	case "odd", "нечет":
		return model.BetSpec{Kind: model.BetEvenOdd, Parity: model.Odd}, nil
	}

	if n, err := strconv.Atoi(t); err == nil {
		if n < 0 || n > 36 {
			return model.BetSpec{}, fmt.Errorf("%s: %w", op, model.ErrInvalidBet)
		}
		return model.BetSpec{Kind: model.BetNumber, Number: n}, nil
	}

	if low, high, ok := parseRange(t); ok {
		return model.BetSpec{Kind: model.BetRange, Low: low, High: high}, nil
	}

	return model.BetSpec{}, fmt.Errorf("%s: %w", op, model.ErrInvalidBet)
}

func parseRange(t string) (int, int, bool) {
	parts := strings.SplitN(t, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	high, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if low < 0 || high > 36 || low >= high {
		return 0, 0, false
	}
	return low, high, true
}
