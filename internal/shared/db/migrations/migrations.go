package migrations

import (
	"errors"

	"github.com/cristianortiz/auctionDashboard/internal/shared/config"
	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// RunMigrations applies every pending migration found under cfg.MigrationsPath
func RunMigrations(cfg *config.Config) error {
	log.Info("RunMigrations",
		zap.String("source", cfg.MigrationsPath),
		zap.String("dbHost", cfg.DB.Host),
		zap.String("dbName", cfg.DB.Name))
	m, err := migrate.New(cfg.MigrationsPath, cfg.DB.DSN())
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
