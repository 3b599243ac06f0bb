// Package apperror defines the typed domain errors returned by services.
// Handlers classify them with errors.As; nothing here knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a domain error.
type Kind string

const (
	KindValidation   Kind = "validacao"
	KindNotFound     Kind = "nao_encontrado"
	KindConflict     Kind = "conflito"
	KindShiftNotOpen Kind = "caixa_fechado"
	KindIntegrity    Kind = "integridade"
	KindUnknown      Kind = ""
)

// Integrity reasons.
const (
	ReasonEstoqueNegativo    = "estoque_negativo"
	ReasonSemEstoque         = "sem_estoque"
	ReasonReferenciaInvalida = "referencia_invalida"
	ReasonDuplicado          = "duplicado"
	ReasonValorInvalido      = "valor_invalido"
)

// ── Validation ───────────────────────────────────────────────────────────────

// ValidationError reports bad input detected before any write.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationField attaches the offending field to the error.
func ValidationField(field, msg string) *ValidationError {
	return &ValidationError{Msg: msg, Fields: map[string]string{field: msg}}
}

// ── Not found ────────────────────────────────────────────────────────────────

type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s não encontrado", e.Entity)
	}
	return fmt.Sprintf("%s não encontrado: %s", e.Entity, e.Key)
}

func NotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ── Conflict ─────────────────────────────────────────────────────────────────

type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string { return e.Msg }
func (e *ConflictError) Unwrap() error { return e.Err }

func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// ── Shift not open ───────────────────────────────────────────────────────────

// ShiftNotOpenError is returned when a sale is attempted by an employee
// without an open cash shift.
type ShiftNotOpenError struct {
	FuncionarioID string
}

func (e *ShiftNotOpenError) Error() string {
	return fmt.Sprintf("nenhum caixa aberto para o funcionário %s", e.FuncionarioID)
}

func ShiftNotOpen(funcionarioID string) *ShiftNotOpenError {
	return &ShiftNotOpenError{FuncionarioID: funcionarioID}
}

// ── Integrity ────────────────────────────────────────────────────────────────

// IntegrityError wraps a storage constraint rejection: negative stock,
// dangling foreign key, duplicate unique value.
type IntegrityError struct {
	Reason     string
	Constraint string
	Msg        string
	Err        error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s (%s)", e.Msg, e.Constraint)
	}
	return e.Msg
}

func (e *IntegrityError) Unwrap() error { return e.Err }

func Integrity(reason, msg string) *IntegrityError {
	return &IntegrityError{Reason: reason, Msg: msg}
}

// KindOf classifies err. Wrapped errors are unwrapped.
func KindOf(err error) Kind {
	var (
		ve  *ValidationError
		nfe *NotFoundError
		ce  *ConflictError
		sne *ShiftNotOpenError
		ie  *IntegrityError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &nfe):
		return KindNotFound
	case errors.As(err, &ce):
		return KindConflict
	case errors.As(err, &sne):
		return KindShiftNotOpen
	case errors.As(err, &ie):
		return KindIntegrity
	}
	return KindUnknown
}
