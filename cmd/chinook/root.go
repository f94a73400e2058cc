package main

import (
	"context"

	"github.com/deppfellow/chinook/internal/config"
	"github.com/deppfellow/chinook/internal/database"
	"github.com/deppfellow/chinook/internal/logger"
	"github.com/deppfellow/chinook/internal/repository"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every command needs once the root has run.
type app struct {
	cfg *config.Config
	log *zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "chinook",
		Short:         "Query and edit the chinook database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Logging)
			return nil
		},
	}

	root.AddCommand(
		newCatalogCmd("driver", "Query the catalog with hand-written SQL through pgx", a.driverCatalog),
		newCatalogCmd("expression", "Query the catalog with SQL built from table definitions", a.expressionCatalog),
		newCatalogCmd("orm", "Query the catalog through gorm models", a.ormCatalog),
		newProgrammersCmd(a.programmerSession),
		newMigrateCmd(a),
	)

	return root
}

// closer releases a session. It never needs the command's context, so a
// cancelled command still closes cleanly.
type closer func() error

func (a *app) driverCatalog(ctx context.Context) (repository.Catalog, closer, error) {
	db, err := database.New(ctx, a.cfg, a.log)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewDriverCatalog(db.Conn), func() error { return db.Close(context.Background()) }, nil
}

func (a *app) expressionCatalog(ctx context.Context) (repository.Catalog, closer, error) {
	db, err := database.New(ctx, a.cfg, a.log)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewExpressionCatalog(db.Conn), func() error { return db.Close(context.Background()) }, nil
}

func (a *app) ormCatalog(ctx context.Context) (repository.Catalog, closer, error) {
	orm, err := database.NewORM(ctx, a.cfg, a.log)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRepositories(orm.DB).Catalog, orm.Close, nil
}

// programmerSession makes sure the Programmer table exists, then opens the
// ORM session. The migration connection is closed before the session opens.
func (a *app) programmerSession(ctx context.Context) (*session, error) {
	if err := database.Migrate(ctx, a.log, a.cfg); err != nil {
		return nil, err
	}

	orm, err := database.NewORM(ctx, a.cfg, a.log)
	if err != nil {
		return nil, err
	}

	return &session{
		repos: repository.NewRepositories(orm.DB),
		log:   a.log,
		close: orm.Close,
	}, nil
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Programmer table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return database.Migrate(cmd.Context(), a.log, a.cfg)
		},
	}
}
