package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Jackpot_Go/internal/announcer"
	"github.com/osse101/Jackpot_Go/internal/bootstrap"
	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/eventlog"
	"github.com/osse101/Jackpot_Go/internal/server"
	"github.com/osse101/Jackpot_Go/internal/sse"
	"github.com/osse101/Jackpot_Go/internal/tracing"
	"github.com/osse101/Jackpot_Go/internal/worker"
)

// @title Jackpot API
// @version 1.0
// @description Pooled-wager jackpot rounds: deposits, weighted winner draw, payout and fee sweep.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	log := bootstrap.SetupLogger(cfg)
	for _, w := range warnings {
		log.Warn(w)
	}

	if err := run(cfg); err != nil {
		log.Error("Jackpot service failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		return err
	}

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = storage.Close()
		return err
	}

	jackpotService, err := bootstrap.NewJackpotService(cfg, storage.Repo, events.Publisher)
	if err != nil {
		_ = storage.Close()
		return err
	}

	tokens, err := bootstrap.NewTokens(cfg)
	if err != nil {
		_ = storage.Close()
		return err
	}

	roundWorker := worker.NewRoundWorker(jackpotService, cfg.AutoSettle)

	var (
		announcePool *worker.Pool
		announce     *announcer.Announcer
	)
	if cfg.AnnouncerEnabled() {
		session, err := announcer.NewSession(cfg.DiscordToken)
		if err != nil {
			_ = storage.Close()
			return err
		}
		announcePool = worker.NewPool(bootstrap.AnnouncerWorkers, bootstrap.AnnouncerQueueSize)
		announcePool.Start()
		announce = announcer.New(session, cfg.DiscordChannelID, cfg.AnnounceLocale, announcePool)
	}

	journal := eventlog.NewService(storage.EventLog)

	feed := sse.NewHub()
	feed.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    events.Bus,
		RoundWorker: roundWorker,
		Announcer:   announce,
		Feed:        feed,
		Journal:     journal,
	}); err != nil {
		feed.Stop()
		_ = storage.Close()
		return err
	}
	roundWorker.Start(ctx)
	maintenance, maintenancePool := bootstrap.StartMaintenance(cfg, journal)

	srv := server.NewServer(cfg.Port, server.Deps{
		Tokens:         tokens,
		TrustedProxies: cfg.TrustedProxies,
		Store:          storage.Repo,
		Jackpot:        jackpotService,
		Feed:           feed,
		Journal:        journal,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Feed:               feed,
		Server:             srv,
		JackpotService:     jackpotService,
		RoundWorker:        roundWorker,
		AnnouncerPool:      announcePool,
		Scheduler:          maintenance,
		MaintenancePool:    maintenancePool,
		ResilientPublisher: events.Publisher,
		Storage:            storage,
		Tracing:            shutdownTracing,
	})

	return err
}
