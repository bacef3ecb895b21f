package cmd

import (
	"context"
	"fairhold/api"
	"fairhold/internal/logger"
	"fairhold/internal/repository"
	"fairhold/internal/service"
	"fairhold/internal/util"
	"fmt"
)

func CloseDependencies(handler *api.ApiHandler) {
	// stderr sync fails on some terminals; nothing useful to do about it
	_ = handler.Logger.Sync()
}

func InitializeDependencies() (*api.ApiHandler, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()

	var emailRepository repository.EmailRepository
	if cfg.Report.EmailTo != "" {
		emailRepository, err = repository.NewEmailRepository(
			context.Background(),
			cfg.Report.AwsRegion,
			cfg.Report.EmailFrom,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
	}

	suiteService := service.NewSuiteService(
		*cfg,
		service.DefaultChecks(*cfg),
		emailRepository,
	)

	apiHandler := &api.ApiHandler{
		Cfg:                    *cfg,
		Logger:                 log,
		SuiteService:           suiteService,
		YieldSimulationService: service.NewYieldSimulationService(),
	}

	return apiHandler, nil
}
