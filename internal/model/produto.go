package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Produto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string    `gorm:"not null"`
	Descricao    *string
	Preco        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CodigoBarras *string         `gorm:"column:codigo_barras"`
	Ativo        bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Estoque *Estoque `gorm:"foreignKey:ProdutoID"`
}

// Estoque holds the on-hand quantity of one product. The table carries
// CHECK (quantidade >= 0); every change goes through an atomic
// "quantidade = quantidade + delta" update.
type Estoque struct {
	ProdutoID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantidade int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// MovimentoEstoque is the append-only audit trail of inventory deltas.
// Tipo: "venda" | "compra" | "devolucao" | "ajuste" | "cadastro"
type MovimentoEstoque struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tipo            string     `gorm:"type:varchar(20);not null"`
	Quantidade      int        `gorm:"not null"` // positive = entrada, negative = saída
	EstoqueAnterior int        `gorm:"not null"`
	EstoqueNovo     int        `gorm:"not null"`
	ReferenciaID    *uuid.UUID `gorm:"type:uuid"`
	Motivo          *string
	CreatedAt       time.Time
}

func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }
