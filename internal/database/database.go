// Package database contains the logic for establishing
// connections to the PostgreSQL chinook database.
//
// A command works with exactly one session at a time:
//   - a driver session, a single pgx connection (Database)
//   - an ORM session, a gorm handle limited to one connection (ORM)
//
// It handles:
//   - parsing the connection string from config
//   - wiring query tracing/logging (pgx tracelog + pgx-zerolog) in "local" env
//   - pinging with a timeout so a missing database fails fast
//   - running the embedded table migrations (tern)
package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/chinook/internal/config"
	loggerConfig "github.com/deppfellow/chinook/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Database wraps the single driver connection and a logger.
type Database struct {
	Conn *pgx.Conn
	log  *zerolog.Logger
}

// connConfig parses the configured URL and, in the local env, attaches
// an SQL trace logger to it.
func connConfig(cfg *config.Config, logger *zerolog.Logger) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	// Very noisy, which is why it is only on in local.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		connCfg.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}
	}

	return connCfg, nil
}

// New opens the driver connection and pings it.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	connCfg, err := connConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug().Str("database", connCfg.Database).Msg("connected to the database")

	return &Database{
		Conn: conn,
		log:  logger,
	}, nil
}

// Close closes the driver connection.
func (db *Database) Close(ctx context.Context) error {
	db.log.Debug().Msg("closing database connection")
	if err := db.Conn.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
