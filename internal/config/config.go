package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type MinesConfig interface {
	MinStake() int64
	MaxGridWidth() int
	MaxGridHeight() int
	// MultiplierTable — фиксированная таблица множителей в сотых долях,
	// индекс = количество открытых безопасных ячеек. За пределами таблицы
	// множитель держится на последнем значении.
	MultiplierTable() []int64
	// RefundOnCancel — возвращать ли ставку при явной отмене партии.
	// Исторически игра конфисковала ставку, поэтому по умолчанию false.
	RefundOnCancel() bool
	SessionTTL() time.Duration
}

type RouletteConfig interface {
	MinBet() int64
	MaxBet() int64
}

type BonusConfig interface {
	Amount() int64
	Period() time.Duration
}
