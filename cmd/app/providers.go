package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/form"
	"github.com/yanqian/convertia/internal/infra/config"
	"github.com/yanqian/convertia/internal/infra/formstore"
	"github.com/yanqian/convertia/internal/infra/historyrepo"
)

func provideConversionConfig(cfg *config.Config) conversion.Config {
	return conversion.Config{
		DefaultLocale: cfg.Conversion.DefaultLocale,
		HistoryLimit:  cfg.Conversion.HistoryLimit,
	}
}

func provideFormConfig(cfg *config.Config) form.Config {
	return form.Config{
		SessionTTL:    cfg.Forms.SessionTTL,
		DefaultLocale: cfg.Conversion.DefaultLocale,
	}
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) (conversion.HistoryRepository, func()) {
	fallback := historyrepo.NewMemoryRepository(cfg.History.MemoryCapacity)
	noop := func() {}
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("history postgres repository enabled")
	return historyrepo.NewPostgresRepository(pool), pool.Close
}

func provideFormStore(cfg *config.Config, logger *slog.Logger) (form.Store, func()) {
	noop := func() {}
	if !cfg.Forms.Valkey.Enabled {
		return formstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Forms.Valkey)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return formstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return formstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return formstore.NewMemoryStore(), noop
	}
	logger.Info("form valkey store enabled", "addr", cfg.Forms.Valkey.Addr)
	return formstore.NewValkeyStore(client, cfg.Forms.Valkey.Prefix), client.Close
}

// buildValkeyOptions accepts either a bare host:port or a redis:// URL.
func buildValkeyOptions(cfg config.ValkeyConfig) (valkey.ClientOption, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
