package model

import (
	"time"

	"github.com/google/uuid"
)

// Cupom tracks the receipt document of a sale.
// Estado: "pendente" | "emitido" | "enviado" | "erro"
type Cupom struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID      uuid.UUID `gorm:"type:uuid;not null"`
	Estado       string    `gorm:"type:varchar(20);not null;default:'pendente'"`
	PDFPath      *string   `gorm:"column:pdf_path"`
	EmailDestino *string
	// Retry bookkeeping for email delivery, driven by the retry cron.
	Tentativas         int        `gorm:"not null;default:0"`
	ProximaTentativaEm *time.Time
	UltimoErro         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Cupom) TableName() string { return "cupons" }
