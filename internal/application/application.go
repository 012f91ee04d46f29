package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"charity_token/internal/config"
	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/service/token"
	"charity_token/internal/domain/value"
	"charity_token/internal/infrastructure/notifier"
	"charity_token/internal/infrastructure/persistence"
	"charity_token/internal/server"
	"charity_token/pkg/application/connectors"
	"charity_token/pkg/application/modules"
	"charity_token/pkg/logx"
	"charity_token/pkg/middlewarex"
)

const notificationBufferSize = 100

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	// 2. Token service over a fresh in-memory ledger
	notifications := make(chan entity.Notification, notificationBufferSize)

	svc := token.NewService(value.Identity(cfg.Ledger.AdminAccount), cfg.Ledger.BasisRate).
		WithNotifications(notifications)

	// 3. Order archive (optional)
	if cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		db := pg.Client(ctx)
		defer pg.Close(context.WithoutCancel(ctx))

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db ping: %w", err)
		}
		log.Info("database connection OK")

		svc.WithArchive(persistence.NewOrderArchiveRepository(db))
	}

	// 4. Notification sink (optional)
	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}

		g.Go(func() error {
			log.Info("notifier bot started listening")

			if err := alertBot.Run(ctx, notifications); err != nil && ctx.Err() == nil {
				return fmt.Errorf("alertBot.Run: %w", err)
			}

			return nil
		})
	} else {
		// No sink configured: drain the channel so fire-and-forget
		// publishing never backs up.
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-notifications:
				}
			}
		})
	}

	// 5. HTTP API
	srv := server.NewServer(server.NewTokenServer(svc))

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.AccountID,
		middlewarex.Logger,
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	log.Info("application started",
		slog.String("admin", cfg.Ledger.AdminAccount),
		slog.Uint64("basis_rate", cfg.Ledger.BasisRate),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
