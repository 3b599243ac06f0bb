package worker

// dlq.go
// Documents and e-mails that keep failing are parked in a capped Redis list
// per source queue (dlq:{fila}) so an operator can reprocess them by hand.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DLQPrefix = "dlq:"
	// dlqMaxEntradas keeps only the newest failures per queue.
	dlqMaxEntradas = 1000
)

// Falha describes a job that will not be retried again.
type Falha struct {
	Fila       string          `json:"fila"`
	Tipo       string          `json:"tipo"`
	Payload    json.RawMessage `json:"payload"`
	Motivo     string          `json:"motivo"`
	Tentativas int             `json:"tentativas"`
	FalhouEm   time.Time       `json:"falhou_em"`
}

// EnviarParaDLQ records f at the head of its queue's DLQ. Errors are logged,
// never returned: the caller has already given up on the job.
func EnviarParaDLQ(ctx context.Context, rdb *redis.Client, f Falha) {
	ev := log.Warn().
		Str("fila", f.Fila).
		Str("tipo", f.Tipo).
		Str("motivo", f.Motivo).
		Int("tentativas", f.Tentativas)

	if rdb == nil {
		ev.Msg("dlq: sem redis, falha descartada")
		return
	}
	if f.FalhouEm.IsZero() {
		f.FalhouEm = time.Now().UTC()
	}
	data, err := json.Marshal(f)
	if err != nil {
		log.Error().Err(err).Str("fila", f.Fila).Msg("dlq: marshal")
		return
	}

	key := DLQPrefix + f.Fila
	_, err = rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, dlqMaxEntradas-1)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("dlq_key", key).Msg("dlq: push")
		return
	}
	ev.Msg("dlq: job movido para a fila de falhas")
}

// TamanhoDLQ is reported by the health endpoint.
func TamanhoDLQ(ctx context.Context, rdb *redis.Client, fila string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+fila).Result()
}
