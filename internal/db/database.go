package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

// Service owns the process-wide database handle. It is constructed once at
// startup and injected into repos; per-request work runs through scoped
// gorm sessions/transactions on this handle.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

type Config struct {
	Driver       string // "postgres" or "sqlite"
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SqlitePath   string
	MaxOpenConns int
	MaxIdleConns int
}

func New(cfg Config, baseLog *logger.Logger) (*Service, error) {
	serviceLog := baseLog.With("service", "DatabaseService")

	var (
		handle *gorm.DB
		err    error
	)
	switch cfg.Driver {
	case "sqlite":
		serviceLog.Info("Connecting to sqlite...", "path", cfg.SqlitePath)
		handle, err = gorm.Open(sqlite.Open(cfg.SqlitePath), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "db", cfg.Name)
		handle, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := handle.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return &Service{db: handle, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.HeatCenter{},
		&types.DemandSite{},
		&types.Route{},
		&types.SystemConfig{},
		&types.HeatCenterMetrics{},
		&types.DemandSiteMetrics{},
		&types.RouteMetrics{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
