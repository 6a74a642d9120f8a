package main

import (
	"context"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/application"
	dashboardpg "github.com/cristianortiz/auctionDashboard/internal/dashboard/infra/repository/postgres"
	"github.com/cristianortiz/auctionDashboard/internal/dashboard/infra/rest"
	"github.com/cristianortiz/auctionDashboard/internal/shared/config"
	"github.com/cristianortiz/auctionDashboard/internal/shared/db"
	"github.com/cristianortiz/auctionDashboard/internal/shared/db/migrations"
	"github.com/cristianortiz/auctionDashboard/internal/shared/httpserver"
	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	userapp "github.com/cristianortiz/auctionDashboard/internal/user/application"
	userpg "github.com/cristianortiz/auctionDashboard/internal/user/infra/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	logger := logger.GetLogger()
	defer logger.Sync()

	logger.Info("Starting AuctionDashboard server...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Running database migrations...")
	if err := migrations.RunMigrations(cfg); err != nil {
		logger.Fatal("Database migration failed", zap.Error(err))
	}
	logger.Info("Database migrations completed successfully.")

	ctx := context.Background()
	pool, err := db.GetPostgresDBPool(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	// repositories
	bidRepo := dashboardpg.NewBidRepository(pool)
	settlementRepo := dashboardpg.NewSettlementRepository(pool)
	txRepo := dashboardpg.NewTransactionRepository(pool)
	directory, err := userapp.NewDirectory(userpg.NewUserRepository(pool), cfg.UserCacheSize)
	if err != nil {
		logger.Fatal("User directory setup failed", zap.Error(err))
	}

	// use cases
	service := application.NewDashboardService(
		application.NewGetBidHistoryUseCase(bidRepo),
		application.NewGetWonAuctionsUseCase(bidRepo, settlementRepo),
		application.NewGetTransactionsUseCase(txRepo),
		application.NewGetAuctionStandingUseCase(bidRepo, directory),
		application.NewAdvanceSettlementUseCase(settlementRepo, pool),
	)

	server := httpserver.NewServer(rest.NewDashboardHandler(service, cfg.DefaultPageSize, cfg.MaxPageSize))
	if err := server.Start(cfg.HTTPAddr); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
