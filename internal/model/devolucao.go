package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CreditoAtivo = "ATIVO"

type Devolucao struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero        int64           `gorm:"not null"`
	VendaID       uuid.UUID       `gorm:"type:uuid;not null"`
	FuncionarioID uuid.UUID       `gorm:"type:uuid;not null"`
	CPFCliente    string          `gorm:"column:cpf_cliente;not null"`
	Motivo        *string
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Itens   []DevolucaoItem   `gorm:"foreignKey:DevolucaoID"`
	Credito *DevolucaoCredito `gorm:"foreignKey:DevolucaoID"`
}

func (Devolucao) TableName() string { return "devolucoes" }

type DevolucaoItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DevolucaoID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    int             `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (DevolucaoItem) TableName() string { return "devolucao_itens" }

// DevolucaoCredito is the store-credit voucher issued by a return. There is no
// redemption flow; Status stays ATIVO.
type DevolucaoCredito struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DevolucaoID  uuid.UUID       `gorm:"type:uuid;not null"`
	CodigoVale   string          `gorm:"not null"`
	CPFCliente   string          `gorm:"column:cpf_cliente;not null"`
	ValorCredito decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataValidade time.Time       `gorm:"type:date;not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'ATIVO'"`
	CreatedAt    time.Time
}
