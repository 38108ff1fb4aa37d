package mines

import (
	"context"

	"go.uber.org/zap"

	"wager_backend/internal/config"
	"wager_backend/internal/model"
	"wager_backend/internal/repository"
	"wager_backend/internal/repository/mines_repo"
	"wager_backend/internal/service"
	"wager_backend/pkg/rng"
)

type serv struct {
	cfg      config.MinesConfig
	registry repository.MinesRegistry
	ledger   service.LedgerService
	gen      rng.Generator
	log      *zap.Logger
}

// NewMinesService создает движок мин. Реестр сессий принадлежит движку и
// наружу не отдается: адаптер работает только через операции сервиса.
func NewMinesService(
	cfg config.MinesConfig,
	ledger service.LedgerService,
	gen rng.Generator,
	log *zap.Logger,
) service.MinesService {
	s := &serv{
		cfg:    cfg,
		ledger: ledger,
		gen:    gen,
		log:    log,
	}
	s.registry = mines_repo.NewMinesRegistry(cfg.SessionTTL(), s.settleExpired)
	return s
}

// settleExpired вызывается джанитором реестра для партии, брошенной до
// терминального перехода. Статус к этому моменту уже cancelled; остается
// решить судьбу ставки по той же политике, что и у явной отмены.
func (s *serv) settleExpired(sess *model.MinesSession) {
	if s.cfg.RefundOnCancel() {
		if _, _, err := s.ledger.ApplyDelta(context.Background(), sess.Owner, sess.Stake, model.TxPayoutCredit); err != nil {
			s.log.Error("failed to refund expired mines session",
				zap.String("session_id", sess.ID),
				zap.Int64("owner", sess.Owner),
				zap.Error(err))
			return
		}
	}

	s.log.Info("mines session expired",
		zap.String("session_id", sess.ID),
		zap.Int64("owner", sess.Owner),
		zap.Int64("stake", sess.Stake),
		zap.Bool("refunded", s.cfg.RefundOnCancel()))
}
