package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionLost      SessionStatus = "lost"
	SessionCashedOut SessionStatus = "cashed_out"
	SessionCancelled SessionStatus = "cancelled"
)

// MinesSession — состояние одной партии в мины. Ставка списана в момент
// создания; до терминального перехода сессией владеет реестр.
// Multiplier хранится в сотых долях (100 = x1.00), выплата считается
// целочисленно: Stake*Multiplier/100.
type MinesSession struct {
	ID            string
	Owner         int64
	Stake         int64
	GridWidth     int
	GridHeight    int
	MineCount     int
	MinePositions map[int]struct{}
	Revealed      []int
	Status        SessionStatus
	Multiplier    int64
	CreatedAt     time.Time
}

func (s *MinesSession) Cells() int {
	return s.GridWidth * s.GridHeight
}

func (s *MinesSession) IsMine(cell int) bool {
	_, ok := s.MinePositions[cell]
	return ok
}

func (s *MinesSession) IsRevealed(cell int) bool {
	for _, c := range s.Revealed {
		if c == cell {
			return true
		}
	}
	return false
}

// Payout — текущая выплата при кэшауте.
func (s *MinesSession) Payout() int64 {
	return s.Stake * s.Multiplier / 100
}

// SafeLeft — сколько безопасных ячеек еще не открыто.
func (s *MinesSession) SafeLeft() int {
	return s.Cells() - s.MineCount - len(s.Revealed)
}

// RevealResult — итог открытия одной ячейки.
// MinePositions заполняется только при попадании на мину.
type RevealResult struct {
	SessionID     string
	Cell          int
	Hit           bool
	Status        SessionStatus
	Revealed      []int
	MinePositions []int
	Multiplier    float64
	Payout        int64
	SafeLeft      int
}

// MinesSettlement — итог кэшаута.
type MinesSettlement struct {
	SessionID  string
	Stake      int64
	Multiplier float64
	Payout     int64
	Profit     int64
	Balance    int64
}

// MinesState — снимок сессии для отображения. Позиции мин не раскрывает.
type MinesState struct {
	SessionID  string
	Owner      int64
	Stake      int64
	GridWidth  int
	GridHeight int
	MineCount  int
	Revealed   []int
	Status     SessionStatus
	Multiplier float64
	Payout     int64
	SafeLeft   int
	CreatedAt  time.Time
}
