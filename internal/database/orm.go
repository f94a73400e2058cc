package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/deppfellow/chinook/internal/config"
	loggerConfig "github.com/deppfellow/chinook/internal/logger"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ORM wraps the gorm session.
type ORM struct {
	DB    *gorm.DB
	sqlDB *sql.DB
	log   *zerolog.Logger
}

// NewORM opens a gorm session over the same connection settings as New.
//
// The underlying *sql.DB is capped at one open connection: the tool never
// holds more than one session.
func NewORM(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*ORM, error) {
	connCfg, err := connConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               loggerConfig.NewGormLogger(logger, cfg.Logging),
		DisableAutomaticPing: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open orm session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug().Str("database", connCfg.Database).Msg("opened orm session")

	return &ORM{DB: gdb, sqlDB: sqlDB, log: logger}, nil
}

// WrapORM wraps an already open gorm handle, e.g. one over SQLite in tests.
func WrapORM(gdb *gorm.DB, logger *zerolog.Logger) (*ORM, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access orm connection: %w", err)
	}
	return &ORM{DB: gdb, sqlDB: sqlDB, log: logger}, nil
}

// Close releases the session's connection.
func (o *ORM) Close() error {
	o.log.Debug().Msg("closing orm session")
	if err := o.sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close orm session: %w", err)
	}
	return nil
}
