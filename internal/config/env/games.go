package env

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wager_backend/internal/config"
)

// defaultMultipliers — историческая таблица выплат для мин (x1.00 до
// открытия первой ячейки). Значения заданы перечислением, а не формулой:
// так сохраняется точное соответствие выплат прошлым раундам.
var defaultMultipliers = []float64{
	1.00, 1.25, 1.60, 2.10, 2.75, 3.60, 4.70, 6.10, 7.90, 10.25,
	13.30, 17.20, 22.20, 28.70, 37.00, 47.80, 61.70, 79.60, 100.00,
}

type gamesFile struct {
	Mines struct {
		MinStake       int64     `yaml:"min_stake"`
		MaxGridWidth   int       `yaml:"max_grid_width"`
		MaxGridHeight  int       `yaml:"max_grid_height"`
		Multipliers    []float64 `yaml:"multipliers"`
		RefundOnCancel bool      `yaml:"refund_on_cancel"`
		SessionTTL     string    `yaml:"session_ttl"`
	} `yaml:"mines"`
	Roulette struct {
		MinBet int64 `yaml:"min_bet"`
		MaxBet int64 `yaml:"max_bet"`
	} `yaml:"roulette"`
	Bonus struct {
		Amount int64  `yaml:"amount"`
		Period string `yaml:"period"`
	} `yaml:"bonus"`
}

type minesConfig struct {
	minStake       int64
	maxGridWidth   int
	maxGridHeight  int
	multipliers    []int64
	refundOnCancel bool
	sessionTTL     time.Duration
}

func (c *minesConfig) MinStake() int64          { return c.minStake }
func (c *minesConfig) MaxGridWidth() int        { return c.maxGridWidth }
func (c *minesConfig) MaxGridHeight() int       { return c.maxGridHeight }
func (c *minesConfig) MultiplierTable() []int64 { return c.multipliers }
func (c *minesConfig) RefundOnCancel() bool     { return c.refundOnCancel }
func (c *minesConfig) SessionTTL() time.Duration {
	return c.sessionTTL
}

type rouletteConfig struct {
	minBet int64
	maxBet int64
}

func (c *rouletteConfig) MinBet() int64 { return c.minBet }
func (c *rouletteConfig) MaxBet() int64 { return c.maxBet }

type bonusConfig struct {
	amount int64
	period time.Duration
}

func (c *bonusConfig) Amount() int64         { return c.amount }
func (c *bonusConfig) Period() time.Duration { return c.period }

// NewGamesConfig читает игровые настройки из YAML. Отсутствующий файл или
// отдельные поля заменяются значениями по умолчанию.
func NewGamesConfig(path string) (config.MinesConfig, config.RouletteConfig, config.BonusConfig, error) {
	var file gamesFile

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, nil, fmt.Errorf("games config: %w", err)
		}
	case os.IsNotExist(err):
		// Работаем на дефолтах.
	default:
		return nil, nil, nil, fmt.Errorf("games config: %w", err)
	}

	mines := &minesConfig{
		minStake:       file.Mines.MinStake,
		maxGridWidth:   file.Mines.MaxGridWidth,
		maxGridHeight:  file.Mines.MaxGridHeight,
		refundOnCancel: file.Mines.RefundOnCancel,
		sessionTTL:     10 * time.Minute,
	}
	if mines.minStake <= 0 {
		mines.minStake = 10
	}
	if mines.maxGridWidth <= 0 {
		mines.maxGridWidth = 10
	}
	if mines.maxGridHeight <= 0 {
		mines.maxGridHeight = 10
	}
	if file.Mines.SessionTTL != "" {
		ttl, err := time.ParseDuration(file.Mines.SessionTTL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("games config: invalid session_ttl: %w", err)
		}
		mines.sessionTTL = ttl
	}

	multipliers := file.Mines.Multipliers
	if len(multipliers) == 0 {
		multipliers = defaultMultipliers
	}
	mines.multipliers, err = toHundredths(multipliers)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("games config: %w", err)
	}

	roulette := &rouletteConfig{
		minBet: file.Roulette.MinBet,
		maxBet: file.Roulette.MaxBet,
	}
	if roulette.minBet <= 0 {
		roulette.minBet = 1
	}
	if roulette.maxBet <= 0 {
		roulette.maxBet = 1_000_000
	}

	bonus := &bonusConfig{
		amount: file.Bonus.Amount,
		period: 24 * time.Hour,
	}
	if bonus.amount <= 0 {
		bonus.amount = 100
	}
	if file.Bonus.Period != "" {
		period, err := time.ParseDuration(file.Bonus.Period)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("games config: invalid bonus period: %w", err)
		}
		bonus.period = period
	}

	return mines, roulette, bonus, nil
}

// toHundredths переводит множители в сотые доли и проверяет, что таблица
// начинается с x1.00 и строго растет.
func toHundredths(multipliers []float64) ([]int64, error) {
	table := make([]int64, len(multipliers))
	for i, m := range multipliers {
		table[i] = int64(math.Round(m * 100))
	}
	if table[0] != 100 {
		return nil, fmt.Errorf("multiplier table must start at 1.00, got %.2f", multipliers[0])
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			return nil, fmt.Errorf("multiplier table must be strictly increasing at index %d", i)
		}
	}
	return table, nil
}
