package app

import (
	"context"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	minesAPI "wager_backend/internal/api/mines"
	rouletteAPI "wager_backend/internal/api/roulette"
	walletAPI "wager_backend/internal/api/wallet"
	"wager_backend/internal/config"
	"wager_backend/internal/config/env"
	"wager_backend/internal/repository"
	"wager_backend/internal/repository/bets_repo"
	"wager_backend/internal/repository/ledger_mem_repo"
	"wager_backend/internal/repository/ledger_repo"
	"wager_backend/internal/service"
	"wager_backend/internal/service/ledger"
	"wager_backend/internal/service/mines"
	"wager_backend/internal/service/roulette"
	"wager_backend/pkg/logger"
	"wager_backend/pkg/rng"
)

type ServiceProvider struct {
	log *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Ledger bits
	bonusCfg   config.BonusConfig
	ledgerRepo repository.LedgerRepository
	ledgerServ service.LedgerService
	walletHand *walletAPI.Handler

	// Mines bits
	minesCfg  config.MinesConfig
	minesServ service.MinesService
	minesHand *minesAPI.Handler

	// Roulette bits
	rouletteCfg  config.RouletteConfig
	betsRepo     repository.RouletteBetsRepository
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Source of randomness, shared by games
	gen rng.Generator

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(logger.Config{
			Level: os.Getenv("LOG_LEVEL"),
			Dir:   "logs",
			App:   "wager_backend",
			File:  os.Getenv("LOG_FILE") == "true",
		})
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// LedgerRepo выбирает хранилище: Postgres при заданном PG_DSN, иначе
// память. Менеджер транзакций подбирается под то же хранилище, поэтому
// оба инициализируются здесь парой.
func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if len(os.Getenv("PG_DSN")) > 0 {
			sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx))
			sp.txManager = sp.pgTXManager(ctx)
		} else {
			sp.Logger().Info("PG_DSN is not set, using in-memory ledger")
			sp.ledgerRepo = ledger_mem_repo.NewLedgerRepository()
			sp.txManager = ledger_mem_repo.NewNopManager()
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		sp.LedgerRepo(ctx)
	}
	return sp.txManager
}

func (sp *ServiceProvider) pgTXManager(ctx context.Context) trm.Manager {
	m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
	if err != nil {
		panic("failed to create tx manager: " + err.Error())
	}
	return m
}

func (sp *ServiceProvider) gamesCfg() {
	minesCfg, rouletteCfg, bonusCfg, err := env.NewGamesConfig("config.yaml")
	if err != nil {
		panic("failed to get games config: " + err.Error())
	}
	sp.minesCfg = minesCfg
	sp.rouletteCfg = rouletteCfg
	sp.bonusCfg = bonusCfg
}

func (sp *ServiceProvider) MinesCfg() config.MinesConfig {
	if sp.minesCfg == nil {
		sp.gamesCfg()
	}
	return sp.minesCfg
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		sp.gamesCfg()
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) BonusCfg() config.BonusConfig {
	if sp.bonusCfg == nil {
		sp.gamesCfg()
	}
	return sp.bonusCfg
}

func (sp *ServiceProvider) Generator() rng.Generator {
	if sp.gen == nil {
		sp.gen = rng.New()
	}
	return sp.gen
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.LedgerRepo(ctx), sp.TXManager(ctx), sp.BonusCfg(), sp.Logger())
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv: sp.LedgerService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) MinesService(ctx context.Context) service.MinesService {
	if sp.minesServ == nil {
		sp.minesServ = mines.NewMinesService(sp.MinesCfg(), sp.LedgerService(ctx), sp.Generator(), sp.Logger())
	}
	return sp.minesServ
}

func (sp *ServiceProvider) MinesHandler(ctx context.Context) *minesAPI.Handler {
	if sp.minesHand == nil {
		sp.minesHand = minesAPI.NewHandler(minesAPI.HandlerDeps{
			Serv: sp.MinesService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.minesHand
}

func (sp *ServiceProvider) BetsRepo() repository.RouletteBetsRepository {
	if sp.betsRepo == nil {
		sp.betsRepo = bets_repo.NewRouletteBetsRepository()
	}
	return sp.betsRepo
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(sp.RouletteCfg(), sp.BetsRepo(), sp.LedgerService(ctx), sp.Generator(), sp.Logger())
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Get("/{account}/balance", walletHandler.Balance)
			rr.Get("/{account}/history", walletHandler.History)
			rr.Get("/{account}/stats", walletHandler.Stats)
			rr.Get("/top", walletHandler.Top)
			rr.Post("/transfer", walletHandler.Transfer)
			rr.Post("/bonus", walletHandler.Bonus)
			rr.Post("/grant", walletHandler.Grant)
			rr.Post("/confiscate", walletHandler.Confiscate)
			rr.Post("/set-balance", walletHandler.SetBalance)
		})

		// Mines endpoints
		minesHandler := sp.MinesHandler(ctx)
		r.Route("/mines", func(rr chi.Router) {
			rr.Post("/start", minesHandler.Start)
			rr.Post("/reveal", minesHandler.Reveal)
			rr.Post("/cashout", minesHandler.CashOut)
			rr.Post("/cancel", minesHandler.Cancel)
			rr.Post("/state", minesHandler.State)
		})

		// Roulette endpoints
		rouletteHandler := sp.RouletteHandler(ctx)
		r.Route("/roulette", func(rr chi.Router) {
			rr.Post("/bet", rouletteHandler.PlaceBet)
			rr.Post("/pending", rouletteHandler.Pending)
			rr.Post("/clear", rouletteHandler.Clear)
			rr.Post("/spin", rouletteHandler.Spin)
		})

		sp.router = r
	}

	return sp.router
}
