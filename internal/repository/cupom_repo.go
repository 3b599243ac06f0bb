package repository

import (
	"context"
	"time"

	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CupomRepository interface {
	// Upsert inserts the cupom or, when the sale already has one, refreshes
	// its state. Re-running the document job is therefore harmless.
	Upsert(ctx context.Context, c *model.Cupom) error
	FindByVendaID(ctx context.Context, vendaID uuid.UUID) (*model.Cupom, error)
	Update(ctx context.Context, c *model.Cupom) error
	// ListPendentesEnvio returns emitted cupons whose e-mail retry is due.
	ListPendentesEnvio(ctx context.Context, agora time.Time, limit int) ([]model.Cupom, error)
}

type cupomRepo struct{ db *gorm.DB }

func NewCupomRepository(db *gorm.DB) CupomRepository { return &cupomRepo{db: db} }

func (r *cupomRepo) Upsert(ctx context.Context, c *model.Cupom) error {
	return translate(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venda_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"estado", "pdf_path", "email_destino", "updated_at"}),
	}).Create(c).Error)
}

func (r *cupomRepo) FindByVendaID(ctx context.Context, vendaID uuid.UUID) (*model.Cupom, error) {
	var c model.Cupom
	err := r.db.WithContext(ctx).Where("venda_id = ?", vendaID).First(&c).Error
	return nilIfNotFound(&c, err)
}

func (r *cupomRepo) Update(ctx context.Context, c *model.Cupom) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cupomRepo) ListPendentesEnvio(ctx context.Context, agora time.Time, limit int) ([]model.Cupom, error) {
	var cupons []model.Cupom
	err := r.db.WithContext(ctx).
		Where("estado = ? AND proxima_tentativa_em IS NOT NULL AND proxima_tentativa_em <= ?", "emitido", agora).
		Order("proxima_tentativa_em ASC").
		Limit(limit).
		Find(&cupons).Error
	return cupons, err
}
