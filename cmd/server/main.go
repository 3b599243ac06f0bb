package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdvmercado/internal/config"
	"pdvmercado/internal/infra"
	"pdvmercado/internal/repository"
	"pdvmercado/internal/router"
	"pdvmercado/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: dev pretty, prod JSON
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.MigrationsAuto {
		if err := infra.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker handlers are wired here (composition root) so the pool has
	// every infrastructure dependency.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp"))
	dispatcher := worker.NewDispatcher(rdb)
	cupomRepo := repository.NewCupomRepository(db)

	// Without SMTP the documents are still rendered, just not mailed.
	var emailFila worker.EmailEnqueuer
	if mailer.Enabled() {
		emailFila = dispatcher
	}

	documentos := worker.NewDocumentoWorker(
		repository.NewVendaRepository(db),
		repository.NewDevolucaoRepository(db),
		repository.NewClienteRepository(db),
		cupomRepo,
		emailFila,
		cfg.LojaNome,
		cfg.PDFStoragePath,
	)
	emails := worker.NewEmailWorker(mailer, smtpCB, cupomRepo, rdb)

	pool := worker.NewPool(rdb, map[string]worker.Processor{
		worker.JobCupom:       worker.ProcessorFunc(documentos.ProcessCupom),
		worker.JobValeCredito: worker.ProcessorFunc(documentos.ProcessVale),
		worker.JobEmail:       emails,
	})
	pool.Start(ctx, cfg.WorkerPoolSize)

	if mailer.Enabled() {
		worker.StartRetryCron(ctx, worker.RetryCronConfig{
			CupomRepo: cupomRepo,
			Email:     emails,
			CB:        smtpCB,
			Loja:      cfg.LojaNome,
		})
	} else {
		log.Warn().Msg("SMTP_HOST not set, receipt e-mails disabled")
	}

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("%s backend listening on :%d", cfg.LojaNome, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
