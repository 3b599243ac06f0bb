package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CaixaAberto  = "ABERTO"
	CaixaFechado = "FECHADO"

	MovimentoEntrada = "ENTRADA"
)

// FluxoCaixa is one cash shift of one employee. A partial unique index
// (ux_fluxos_caixa_aberto) allows at most one ABERTO row per employee.
type FluxoCaixa struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FuncionarioID uuid.UUID       `gorm:"type:uuid;not null"`
	Status        string          `gorm:"type:varchar(10);not null;default:'ABERTO'"`
	SaldoInicial  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Filled on close.
	SaldoFinalInformado *decimal.Decimal `gorm:"type:decimal(12,2)"`
	SaldoTeorico        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Diferenca           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	AbertoEm            time.Time
	FechadoEm           *time.Time
}

func (FluxoCaixa) TableName() string { return "fluxos_caixa" }

// FluxoCaixaMovimento is append-only; one ENTRADA per committed sale.
type FluxoCaixaMovimento struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FluxoCaixaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendaID      *uuid.UUID      `gorm:"type:uuid"`
	Tipo         string          `gorm:"type:varchar(10);not null;default:'ENTRADA'"`
	Valor        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time
}
