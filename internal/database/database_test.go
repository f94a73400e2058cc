package database

import (
	"context"
	"io/fs"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/chinook/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnConfig(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name string
		edit func(cfg *config.Config)
		act  func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "default url targets chinook",
			act: func(t *testing.T, cfg *config.Config) {
				connCfg, err := connConfig(cfg, &log)
				require.NoError(t, err)
				assert.Equal(t, "chinook", connCfg.Database)
				assert.Nil(t, connCfg.Tracer)
			},
		},
		{
			name: "local env traces SQL",
			edit: func(cfg *config.Config) { cfg.Primary.Env = "local" },
			act: func(t *testing.T, cfg *config.Config) {
				connCfg, err := connConfig(cfg, &log)
				require.NoError(t, err)
				assert.NotNil(t, connCfg.Tracer)
			},
		},
		{
			name: "bad url",
			edit: func(cfg *config.Config) { cfg.Database.URL = "postgres://host:notaport/chinook" },
			act: func(t *testing.T, cfg *config.Config) {
				_, err := connConfig(cfg, &log)
				assert.ErrorContains(t, err, "failed to parse database url")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.edit != nil {
				tt.edit(cfg)
			}
			tt.act(t, cfg)
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	sql := string(body)
	assert.Contains(t, sql, `CREATE TABLE IF NOT EXISTS "Programmer"`)
	assert.Contains(t, sql, "---- create above / drop below ----")
	assert.True(t, strings.Index(sql, "CREATE") < strings.Index(sql, "DROP"))
}

// silentServer accepts connections and never answers, like a host that
// stalls during the startup handshake.
func silentServer(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var held []net.Conn
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			held = append(held, c)
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		<-done
		for _, c := range held {
			_ = c.Close()
		}
	})
	return "postgres://chinook@" + ln.Addr().String() + "/chinook?sslmode=disable"
}

func TestConnectTimeout(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name string
		act  func(ctx context.Context, cfg *config.Config) error
		want string
	}{
		{
			name: "migrate",
			act: func(ctx context.Context, cfg *config.Config) error {
				return Migrate(ctx, &log, cfg)
			},
			want: "failed to connect for migrations",
		},
		{
			name: "driver session",
			act: func(ctx context.Context, cfg *config.Config) error {
				_, err := New(ctx, cfg, &log)
				return err
			},
			want: "failed to connect to database",
		},
		{
			name: "orm session",
			act: func(ctx context.Context, cfg *config.Config) error {
				_, err := NewORM(ctx, cfg, &log)
				return err
			},
			want: "failed to ping database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Database.URL = silentServer(t)
			cfg.Database.ConnectTimeout = 100 * time.Millisecond

			start := time.Now()
			err := tt.act(context.Background(), cfg)
			assert.ErrorContains(t, err, tt.want)
			assert.Less(t, time.Since(start), 5*time.Second)
		})
	}
}
