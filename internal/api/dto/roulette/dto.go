package roulette

type PlaceBetRequest struct {
	Account int64  `json:"account" validate:"required"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Bet     string `json:"bet" validate:"required"` // "14", "red", "even", "1-18"
}

type PlaceBetResponse struct {
	Bet     BetInfo `json:"bet"`
	Balance int64   `json:"balance"`
}

type BetInfo struct {
	Amount int64  `json:"amount"`
	Kind   string `json:"kind"`
	Token  string `json:"token"`
}

type PendingRequest struct {
	Account int64 `json:"account" validate:"required"`
}

type PendingResponse struct {
	Bets  []BetInfo `json:"bets"`
	Total int64     `json:"total"`
}

type ClearResponse struct {
	Refunded int64 `json:"refunded"`
}

type BetResult struct {
	Bet    BetInfo `json:"bet"`
	Payout int64   `json:"payout"`
}

type AccountRound struct {
	Account     int64       `json:"account"`
	TotalStake  int64       `json:"total_stake"`
	TotalPayout int64       `json:"total_payout"`
	Bets        []BetResult `json:"bets"`
	Balance     int64       `json:"balance"`
}

type SpinResponse struct {
	Number   int            `json:"number"`
	IsZero   bool           `json:"is_zero"`
	IsRed    bool           `json:"is_red"`
	IsBlack  bool           `json:"is_black"`
	IsEven   bool           `json:"is_even"`
	Accounts []AccountRound `json:"accounts"`
}
