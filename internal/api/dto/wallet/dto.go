package wallet

import "time"

type BalanceResponse struct {
	Account int64 `json:"account"`
	Balance int64 `json:"balance"` // Баланс в минимальных единицах
}

type TransferRequest struct {
	From   int64 `json:"from" validate:"required"`
	To     int64 `json:"to" validate:"required"`
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type TransferResponse struct {
	FromBalance int64 `json:"from_balance"`
	ToBalance   int64 `json:"to_balance"`
}

type Transaction struct {
	ID        string    `json:"id"`
	From      int64     `json:"from"` // 0 = дом
	To        int64     `json:"to"`
	Amount    int64     `json:"amount"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// AdjustRequest — админские /give и /take.
type AdjustRequest struct {
	Account int64 `json:"account" validate:"required"`
	Amount  int64 `json:"amount" validate:"required,gt=0"`
}

type SetBalanceRequest struct {
	Account int64 `json:"account" validate:"required"`
	Amount  int64 `json:"amount" validate:"gte=0"`
}

type BonusRequest struct {
	Account int64 `json:"account" validate:"required"`
}

type TopEntry struct {
	Account int64 `json:"account"`
	Balance int64 `json:"balance"`
}

type TopResponse struct {
	Entries []TopEntry `json:"entries"`
}

type StatsResponse struct {
	Account       int64 `json:"account"`
	Transactions  int   `json:"transactions"`
	TotalReceived int64 `json:"total_received"`
	TotalSent     int64 `json:"total_sent"`
}
