package worker

// email_worker.go
// Sends receipts and vouchers through SMTP behind a circuit breaker.
// Receipt deliveries are tracked on the cupom row; failures are rescheduled
// with exponential backoff and picked up again by the retry cron.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pdvmercado/internal/infra"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxEnvioTentativas is the number of failed deliveries after which a cupom
// is marked "erro" and parked in the DLQ.
const MaxEnvioTentativas = 5

// EmailJobPayload is the job envelope sent to QueueEmail. VendaID is set for
// receipts, so the outcome is recorded on the cupom.
type EmailJobPayload struct {
	VendaID *string `json:"venda_id,omitempty"`
	ToEmail string  `json:"to_email"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	PDFPath string  `json:"pdf_path"`
}

// Mailer is satisfied by *infra.Mailer.
type Mailer interface {
	Send(to, subject, body, anexo string) error
}

type EmailWorker struct {
	mailer    Mailer
	cb        *infra.CircuitBreaker
	cupomRepo repository.CupomRepository
	rdb       *redis.Client
	now       func() time.Time
}

func NewEmailWorker(mailer Mailer, cb *infra.CircuitBreaker, cupomRepo repository.CupomRepository, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb, cupomRepo: cupomRepo, rdb: rdb, now: time.Now}
}

// Process sends one e-mail job. Errors are only returned for mails that are
// not tied to a cupom; those are retried by the pool.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: payload inválido: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: to_email vazio, ignorado")
		return nil
	}

	if payload.VendaID == nil {
		return w.enviar(payload)
	}

	vendaID, err := uuid.Parse(*payload.VendaID)
	if err != nil {
		return fmt.Errorf("email_worker: venda_id inválido %q", *payload.VendaID)
	}
	cupom, err := w.cupomRepo.FindByVendaID(ctx, vendaID)
	if err != nil {
		return err
	}
	if cupom == nil {
		return fmt.Errorf("email_worker: cupom da venda %s não encontrado", vendaID)
	}
	w.Entregar(ctx, cupom, payload)
	return nil
}

// Entregar attempts delivery of a cupom and records the outcome on it.
func (w *EmailWorker) Entregar(ctx context.Context, cupom *model.Cupom, payload EmailJobPayload) {
	err := w.enviar(payload)
	if err == nil {
		cupom.Estado = "enviado"
		cupom.ProximaTentativaEm = nil
		cupom.UltimoErro = nil
		if uerr := w.cupomRepo.Update(ctx, cupom); uerr != nil {
			log.Error().Err(uerr).Str("venda_id", cupom.VendaID.String()).Msg("email_worker: falha ao atualizar cupom")
		}
		log.Info().Str("to", payload.ToEmail).Str("venda_id", cupom.VendaID.String()).Msg("email_worker: cupom enviado")
		return
	}

	cupom.Tentativas++
	msg := err.Error()
	cupom.UltimoErro = &msg
	if cupom.Tentativas >= MaxEnvioTentativas {
		cupom.Estado = "erro"
		cupom.ProximaTentativaEm = nil
		raw, _ := json.Marshal(payload)
		EnviarParaDLQ(ctx, w.rdb, Falha{
			Fila:       QueueEmail,
			Tipo:       JobEmail,
			Payload:    raw,
			Motivo:     fmt.Sprintf("max tentativas (%d) excedidas: %s", MaxEnvioTentativas, msg),
			Tentativas: cupom.Tentativas,
		})
	} else {
		next := w.now().Add(computeRetryBackoff(cupom.Tentativas))
		cupom.ProximaTentativaEm = &next
		log.Warn().
			Err(err).
			Str("venda_id", cupom.VendaID.String()).
			Int("tentativas", cupom.Tentativas).
			Time("proxima_tentativa_em", next).
			Msg("email_worker: envio falhou, nova tentativa agendada")
	}
	if uerr := w.cupomRepo.Update(ctx, cupom); uerr != nil {
		log.Error().Err(uerr).Str("venda_id", cupom.VendaID.String()).Msg("email_worker: falha ao atualizar cupom")
	}
}

func (w *EmailWorker) enviar(p EmailJobPayload) error {
	send := func() error { return w.mailer.Send(p.ToEmail, p.Subject, p.Body, p.PDFPath) }
	if w.cb == nil {
		return send()
	}
	err := w.cb.Execute(send)
	if errors.Is(err, infra.ErrCircuitOpen) {
		log.Debug().Str("to", p.ToEmail).Msg("email_worker: circuit breaker aberto")
	}
	return err
}

// computeRetryBackoff: 1m, 2m, 4m ... capped at 1h.
func computeRetryBackoff(tentativas int) time.Duration {
	if tentativas < 1 {
		tentativas = 1
	}
	if tentativas > 7 {
		return time.Hour
	}
	d := time.Duration(1<<uint(tentativas-1)) * time.Minute
	if d > time.Hour {
		return time.Hour
	}
	return d
}
