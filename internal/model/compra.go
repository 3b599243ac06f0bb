package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Compra struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FornecedorID uuid.UUID       `gorm:"type:uuid;not null"`
	DataCompra   time.Time       `gorm:"type:date;not null"`
	DataEntrega  *time.Time      `gorm:"type:date"`
	ValorTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time

	Itens []CompraItem `gorm:"foreignKey:CompraID"`
}

type CompraItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (CompraItem) TableName() string { return "compra_itens" }
