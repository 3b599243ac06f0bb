package service

import (
	"context"
	"time"

	"pdvmercado/internal/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
// Any error returned by fn rolls the whole transaction back.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Enfileirador schedules document generation after a commit. It is
// implemented by worker.Dispatcher; a nil Enfileirador disables it.
type Enfileirador interface {
	EnqueueCupom(ctx context.Context, vendaID uuid.UUID) error
	EnqueueValeCredito(ctx context.Context, codigoVale string) error
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ValidationField(field, field+" inválido")
	}
	return id, nil
}

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtTime(*t)
	return &s
}
