package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	VendaAprovada  = "Aprovada"
	VendaCancelada = "Cancelada"
)

// Venda is immutable once committed. TipoPagamentoID keeps the primary
// payment method for the flat receipt; the full breakdown lives in Pagamentos.
type Venda struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero          int64           `gorm:"not null"`
	FuncionarioID   uuid.UUID       `gorm:"type:uuid;not null"`
	ClienteID       *uuid.UUID      `gorm:"type:uuid"`
	CPFCliente      *string         `gorm:"column:cpf_cliente"`
	TipoPagamentoID int             `gorm:"not null"`
	ValorTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Desconto        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ValorPago       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Troco           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Aprovada'"`
	CreatedAt       time.Time

	Itens      []VendaItem      `gorm:"foreignKey:VendaID"`
	Pagamentos []VendaPagamento `gorm:"foreignKey:VendaID"`
	Cliente    *Cliente         `gorm:"foreignKey:ClienteID"`
}

type VendaItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (VendaItem) TableName() string { return "venda_itens" }

// VendaPagamento records what was tendered (ValorPago) and what stayed in the
// sale after change (ValorAplicado). Σ ValorAplicado == Venda.ValorTotal.
type VendaPagamento struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	TipoPagamentoID int             `gorm:"not null"`
	ValorPago       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorAplicado   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	TipoPagamento *TipoPagamento `gorm:"foreignKey:TipoPagamentoID"`
}
