package roulette

import "wager_backend/internal/model"

// redNumbers — красные сектора европейского колеса. Все остальные числа
// 1..36 черные, ноль вне обоих цветов.
var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// ClassifyWheelResult классифицирует выпавшее число. Четность ноль не
// засчитывает.
func ClassifyWheelResult(number int) model.WheelOutcome {
	out := model.WheelOutcome{Number: number}
	if number == 0 {
		out.IsZero = true
		return out
	}
	if _, ok := redNumbers[number]; ok {
		out.IsRed = true
	} else {
		out.IsBlack = true
	}
	out.IsEven = number%2 == 0
	return out
}

// Payout — единственный источник истины по коэффициентам: число x36,
// цвет и чет/нечет x2, диапазон floor(stake*36/ширина).
func Payout(spec model.BetSpec, wheel int, stake int64) int64 {
	out := ClassifyWheelResult(wheel)

	switch spec.Kind {
	case model.BetNumber:
		if spec.Number == wheel {
			return stake * 36
		}
	case model.BetColor:
		if (spec.Color == model.Red && out.IsRed) ||
			(spec.Color == model.Black && out.IsBlack) {
			return stake * 2
		}
	case model.BetEvenOdd:
		if out.IsZero {
			return 0
		}
		if (spec.Parity == model.Even && out.IsEven) ||
			(spec.Parity == model.Odd && !out.IsEven) {
			return stake * 2
		}
	case model.BetRange:
		if wheel >= spec.Low && wheel <= spec.High {
			return stake * 36 / int64(spec.High-spec.Low+1)
		}
	}
	return 0
}

// ResolveRound разрешает набор ставок против одного общего броска.
// Журнал не затрагивается: ставки уже списаны при приеме, начисление
// итоговой суммы — на вызывающей стороне.
func ResolveRound(bets []model.Bet, wheel int) model.RoundResult {
	res := model.RoundResult{}
	for _, bet := range bets {
		payout := Payout(bet.Spec, wheel, bet.Amount)
		res.TotalStake += bet.Amount
		res.TotalPayout += payout
		res.Bets = append(res.Bets, model.BetResult{Bet: bet, Payout: payout})
	}
	return res
}
