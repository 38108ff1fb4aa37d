package env_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wager_backend/internal/config/env"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGamesConfigDefaultsWhenFileMissing(t *testing.T) {
	mines, roulette, bonus, err := env.NewGamesConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), mines.MinStake())
	assert.Equal(t, 10, mines.MaxGridWidth())
	assert.Equal(t, 10, mines.MaxGridHeight())
	assert.False(t, mines.RefundOnCancel())
	assert.Equal(t, 10*time.Minute, mines.SessionTTL())

	table := mines.MultiplierTable()
	require.NotEmpty(t, table)
	assert.Equal(t, int64(100), table[0])
	assert.Equal(t, int64(210), table[3])

	assert.Equal(t, int64(1), roulette.MinBet())
	assert.Equal(t, int64(1_000_000), roulette.MaxBet())

	assert.Equal(t, int64(100), bonus.Amount())
	assert.Equal(t, 24*time.Hour, bonus.Period())
}

func TestGamesConfigReadsFile(t *testing.T) {
	path := writeConfig(t, `
mines:
  min_stake: 25
  max_grid_width: 8
  max_grid_height: 6
  multipliers: [1.00, 1.50, 2.25]
  refund_on_cancel: true
  session_ttl: 5m
roulette:
  min_bet: 5
  max_bet: 500
bonus:
  amount: 250
  period: 12h
`)

	mines, roulette, bonus, err := env.NewGamesConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(25), mines.MinStake())
	assert.Equal(t, 8, mines.MaxGridWidth())
	assert.Equal(t, 6, mines.MaxGridHeight())
	assert.True(t, mines.RefundOnCancel())
	assert.Equal(t, 5*time.Minute, mines.SessionTTL())
	assert.Equal(t, []int64{100, 150, 225}, mines.MultiplierTable())

	assert.Equal(t, int64(5), roulette.MinBet())
	assert.Equal(t, int64(500), roulette.MaxBet())

	assert.Equal(t, int64(250), bonus.Amount())
	assert.Equal(t, 12*time.Hour, bonus.Period())
}

func TestGamesConfigRejectsBadMultiplierTable(t *testing.T) {
	cases := []struct {
		name  string
		table string
	}{
		{"does not start at one", "[1.50, 2.00]"},
		{"not increasing", "[1.00, 2.00, 2.00]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "mines:\n  multipliers: "+tc.table+"\n")
			_, _, _, err := env.NewGamesConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestGamesConfigRejectsBadDurations(t *testing.T) {
	path := writeConfig(t, "mines:\n  session_ttl: tomorrow\n")
	_, _, _, err := env.NewGamesConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, "bonus:\n  period: soon\n")
	_, _, _, err = env.NewGamesConfig(path)
	assert.Error(t, err)
}
