package repository

import (
	"errors"

	"pdvmercado/internal/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

const (
	// ConstraintCaixaAberto is the partial unique index allowing one ABERTO
	// shift per employee.
	ConstraintCaixaAberto = "ux_fluxos_caixa_aberto"
	// ConstraintEstoqueNaoNegativo is CHECK (quantidade >= 0) on estoques.
	ConstraintEstoqueNaoNegativo = "estoques_quantidade_check"
)

// translate maps postgres constraint violations to typed domain errors.
// Anything else is returned untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgCheckViolation:
		if pgErr.ConstraintName == ConstraintEstoqueNaoNegativo {
			return &apperror.IntegrityError{
				Reason:     apperror.ReasonEstoqueNegativo,
				Constraint: pgErr.ConstraintName,
				Msg:        "estoque insuficiente",
				Err:        err,
			}
		}
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonValorInvalido,
			Constraint: pgErr.ConstraintName,
			Msg:        "valor rejeitado pelo banco",
			Err:        err,
		}
	case pgForeignKeyViolation:
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonReferenciaInvalida,
			Constraint: pgErr.ConstraintName,
			Msg:        "referência inexistente",
			Err:        err,
		}
	case pgUniqueViolation:
		if pgErr.ConstraintName == ConstraintCaixaAberto {
			return &apperror.ConflictError{Msg: "funcionário já possui um caixa aberto", Err: err}
		}
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonDuplicado,
			Constraint: pgErr.ConstraintName,
			Msg:        "registro duplicado",
			Err:        err,
		}
	case pgNotNullViolation:
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonReferenciaInvalida,
			Constraint: pgErr.ColumnName,
			Msg:        "campo obrigatório ausente",
			Err:        err,
		}
	}
	return err
}

// nilIfNotFound turns gorm.ErrRecordNotFound into a (nil, nil) result so
// callers can tell "absent" from a failure without importing gorm.
func nilIfNotFound[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
