package model

import "time"

// HouseAccount — счет оператора. Реальной записи баланса у него нет:
// в транзакциях обозначает сторону казино, списания/начисления "дому"
// отражаются только строкой транзакции.
const HouseAccount int64 = 0

type TxKind string

const (
	TxStakeDebit      TxKind = "stake_debit"
	TxPayoutCredit    TxKind = "payout_credit"
	TxHouseGrant      TxKind = "house_grant"
	TxHouseConfiscate TxKind = "house_confiscate"
	TxPeerTransfer    TxKind = "peer_transfer"
	TxBonusCredit     TxKind = "bonus_credit"
)

type Account struct {
	ID             int64
	Balance        int64
	BonusClaimedAt *time.Time
	CreatedAt      time.Time
}

// Transaction — неизменяемая запись движения средств.
// Amount всегда > 0, направление задается парой FromAccount -> ToAccount.
type Transaction struct {
	ID          string
	FromAccount int64
	ToAccount   int64
	Amount      int64
	Kind        TxKind
	CreatedAt   time.Time
}

type AccountStats struct {
	Account       int64
	Transactions  int
	TotalReceived int64
	TotalSent     int64
}

type BalanceEntry struct {
	Account int64
	Balance int64
}
