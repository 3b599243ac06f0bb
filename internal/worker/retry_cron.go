package worker

// retry_cron.go
// Background goroutine that periodically re-attempts e-mail delivery for
// cupons stuck in estado='emitido' with a proxima_tentativa_em in the past.
// Uses the circuit breaker to avoid hammering a downed SMTP server.

import (
	"context"
	"time"

	"pdvmercado/internal/infra"
	"pdvmercado/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	CupomRepo repository.CupomRepository
	Email     *EmailWorker
	CB        *infra.CircuitBreaker
	Loja      string
	Interval  time.Duration // zero means retryTickInterval
}

// StartRetryCron launches the ticker goroutine. It stops with ctx.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = retryTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg, time.Now())
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig, agora time.Time) {
	if cfg.CB != nil && cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	cupons, err := cfg.CupomRepo.ListPendentesEnvio(ctx, agora, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending cupons")
		return
	}
	if len(cupons) == 0 {
		return
	}

	log.Info().Int("count", len(cupons)).Msg("retry_cron: processing pending cupons")

	for i := range cupons {
		c := &cupons[i]

		// The breaker may trip mid-batch.
		if cfg.CB != nil && cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}
		if c.EmailDestino == nil || c.PDFPath == nil {
			c.ProximaTentativaEm = nil
			_ = cfg.CupomRepo.Update(ctx, c)
			continue
		}

		vid := c.VendaID.String()
		cfg.Email.Entregar(ctx, c, EmailJobPayload{
			VendaID: &vid,
			ToEmail: *c.EmailDestino,
			Subject: cfg.Loja + ": cupom da sua compra",
			Body:    "Segue em anexo o cupom da sua compra.",
			PDFPath: *c.PDFPath,
		})
	}
}
