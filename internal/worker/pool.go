package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueDocumentos = "jobs:documentos"
	QueueEmail      = "jobs:email"
)

// Job types.
const (
	JobCupom       = "cupom"
	JobValeCredito = "vale_credito"
	JobEmail       = "email"
)

// maxJobAttempts bounds how often a failing job is pushed back before it
// lands in the dead letter queue.
const maxJobAttempts = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Processor handles the payload of one job type.
type Processor interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx context.Context, payload json.RawMessage) error

func (f ProcessorFunc) Process(ctx context.Context, payload json.RawMessage) error { return f(ctx, payload) }

// CupomJobPayload asks for the receipt of a committed sale.
type CupomJobPayload struct {
	VendaID string `json:"venda_id"`
}

// ValeJobPayload asks for the voucher document of a return.
type ValeJobPayload struct {
	CodigoVale string `json:"codigo_vale"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueCupom schedules receipt generation for a committed sale.
func (d *Dispatcher) EnqueueCupom(ctx context.Context, vendaID uuid.UUID) error {
	return d.enqueue(ctx, QueueDocumentos, JobCupom, CupomJobPayload{VendaID: vendaID.String()})
}

// EnqueueValeCredito schedules the voucher document of a return.
func (d *Dispatcher) EnqueueValeCredito(ctx context.Context, codigoVale string) error {
	return d.enqueue(ctx, QueueDocumentos, JobValeCredito, ValeJobPayload{CodigoVale: codigoVale})
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return d.enqueue(ctx, QueueEmail, JobEmail, payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return push(ctx, d.rdb, queue, Job{Type: jobType, Payload: data})
}

func push(ctx context.Context, rdb *redis.Client, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}

// Pool routes jobs from both queues to their processors.
type Pool struct {
	rdb        *redis.Client
	processors map[string]Processor
}

func NewPool(rdb *redis.Client, processors map[string]Processor) *Pool {
	return &Pool{rdb: rdb, processors: processors}
}

// Start launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP, so idle workers cost nothing.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	queues := []string{QueueDocumentos, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.handle(ctx, result[0], result[1])
		}
	}
}

// handle runs one job. A failed job goes back to its queue until
// maxJobAttempts, then to the DLQ.
func (p *Pool) handle(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		EnviarParaDLQ(ctx, p.rdb, Falha{Fila: queue, Tipo: "desconhecido", Payload: json.RawMessage(raw), Motivo: "payload inválido"})
		return
	}

	proc, ok := p.processors[job.Type]
	if !ok {
		EnviarParaDLQ(ctx, p.rdb, Falha{Fila: queue, Tipo: job.Type, Payload: job.Payload, Motivo: "tipo de job sem processador", Tentativas: job.Attempts})
		return
	}

	err := proc.Process(ctx, job.Payload)
	if err == nil {
		log.Debug().Str("type", job.Type).Str("queue", queue).Msg("job processed")
		return
	}

	job.Attempts++
	if job.Attempts >= maxJobAttempts {
		EnviarParaDLQ(ctx, p.rdb, Falha{
			Fila:       queue,
			Tipo:       job.Type,
			Payload:    job.Payload,
			Motivo:     fmt.Sprintf("max tentativas (%d) excedidas: %v", maxJobAttempts, err),
			Tentativas: job.Attempts,
		})
		return
	}
	log.Warn().Err(err).Str("type", job.Type).Int("attempts", job.Attempts).Msg("job failed, requeued")
	if perr := push(ctx, p.rdb, queue, job); perr != nil {
		log.Error().Err(perr).Str("queue", queue).Msg("failed to requeue job")
	}
}
