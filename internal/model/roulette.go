package model

type BetKind string

const (
	BetNumber  BetKind = "number"
	BetColor   BetKind = "color"
	BetEvenOdd BetKind = "evenodd"
	BetRange   BetKind = "range"
)

type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

type Parity string

const (
	Even Parity = "even"
	Odd  Parity = "odd"
)

// BetSpec — распознанная ставка без суммы. Заполнены только поля,
// относящиеся к Kind.
type BetSpec struct {
	Kind   BetKind
	Number int
	Color  Color
	Parity Parity
	Low    int
	High   int
}

// Bet — принятая ставка. Сумма уже списана с баланса в момент приема.
type Bet struct {
	Amount int64
	Spec   BetSpec
	Token  string
}

// WheelOutcome — классификация выпавшего числа.
// Ноль не красный, не черный и не четный.
type WheelOutcome struct {
	Number  int
	IsZero  bool
	IsRed   bool
	IsBlack bool
	IsEven  bool
}

type BetResult struct {
	Bet    Bet
	Payout int64
}

// RoundResult — разрешение набора ставок одного счета против общего броска.
type RoundResult struct {
	TotalStake  int64
	TotalPayout int64
	Bets        []BetResult
}

// AccountRound — итог раунда для одного счета, с балансом после начисления.
type AccountRound struct {
	Account int64
	Result  RoundResult
	Balance int64
}

// RouletteSpin — итог одного запуска колеса по всем счетам с отложенными
// ставками.
type RouletteSpin struct {
	Outcome  WheelOutcome
	Accounts []AccountRound
}
