package app

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"wager_backend/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	lg := s.ServiceProvider.Logger()
	defer lg.Sync() //nolint:errcheck

	lg.Info("starting server", zap.String("address", s.ServiceProvider.HTTPCfg().Address()))
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
