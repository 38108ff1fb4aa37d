package roulette

import (
	"go.uber.org/zap"

	"wager_backend/internal/config"
	"wager_backend/internal/repository"
	"wager_backend/internal/service"
	"wager_backend/pkg/rng"
)

type serv struct {
	cfg    config.RouletteConfig
	repo   repository.RouletteBetsRepository
	ledger service.LedgerService
	gen    rng.Generator
	log    *zap.Logger
}

// NewRouletteService создает сервис рулетки.
func NewRouletteService(
	cfg config.RouletteConfig,
	repo repository.RouletteBetsRepository,
	ledger service.LedgerService,
	gen rng.Generator,
	log *zap.Logger,
) service.RouletteService {
	return &serv{
		cfg:    cfg,
		repo:   repo,
		ledger: ledger,
		gen:    gen,
		log:    log,
	}
}
