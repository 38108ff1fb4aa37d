package mines

import "time"

type StartRequest struct {
	Account    int64 `json:"account" validate:"required"`
	Stake      int64 `json:"stake" validate:"required,gt=0"`
	GridWidth  int   `json:"grid_width" validate:"required,min=2"`
	GridHeight int   `json:"grid_height" validate:"required,min=2"`
	MineCount  int   `json:"mine_count" validate:"required,min=1"`
}

type RevealRequest struct {
	Account   int64  `json:"account" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
	Cell      int    `json:"cell" validate:"gte=0"`
}

type SessionRequest struct {
	Account   int64  `json:"account" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

type StateResponse struct {
	SessionID  string    `json:"session_id"`
	Stake      int64     `json:"stake"`
	GridWidth  int       `json:"grid_width"`
	GridHeight int       `json:"grid_height"`
	MineCount  int       `json:"mine_count"`
	Revealed   []int     `json:"revealed"`
	Status     string    `json:"status"`
	Multiplier float64   `json:"multiplier"`
	Payout     int64     `json:"payout"` // Выплата при кэшауте сейчас
	SafeLeft   int       `json:"safe_left"`
	CreatedAt  time.Time `json:"created_at"`
}

type RevealResponse struct {
	SessionID     string  `json:"session_id"`
	Cell          int     `json:"cell"`
	Hit           bool    `json:"hit"`
	Status        string  `json:"status"`
	Revealed      []int   `json:"revealed"`
	MinePositions []int   `json:"mine_positions,omitempty"` // Только при проигрыше
	Multiplier    float64 `json:"multiplier"`
	Payout        int64   `json:"payout"`
	SafeLeft      int     `json:"safe_left"`
}

type SettlementResponse struct {
	SessionID  string  `json:"session_id"`
	Stake      int64   `json:"stake"`
	Multiplier float64 `json:"multiplier"`
	Payout     int64   `json:"payout"`
	Profit     int64   `json:"profit"`
	Balance    int64   `json:"balance"`
}
