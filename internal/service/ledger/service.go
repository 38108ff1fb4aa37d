package ledger

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"wager_backend/internal/config"
	"wager_backend/internal/repository"
	"wager_backend/internal/service"
)

type serv struct {
	repo      repository.LedgerRepository
	txManager trm.Manager
	bonusCfg  config.BonusConfig
	log       *zap.Logger
}

// NewLedgerService создает сервис журнала балансов.
func NewLedgerService(
	repo repository.LedgerRepository,
	txManager trm.Manager,
	bonusCfg config.BonusConfig,
	log *zap.Logger,
) service.LedgerService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		bonusCfg:  bonusCfg,
		log:       log,
	}
}
