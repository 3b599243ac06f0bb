package repository

import (
	"context"

	"pdvmercado/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DevolucaoRepository interface {
	NextNumeroTx(tx *gorm.DB) (int64, error)
	CreateTx(tx *gorm.DB, d *model.Devolucao) error
	CreateItemTx(tx *gorm.DB, item *model.DevolucaoItem) error
	CreateCreditoTx(tx *gorm.DB, c *model.DevolucaoCredito) error
	FindCreditoByCodigo(ctx context.Context, codigo string) (*model.DevolucaoCredito, error)
	DB() *gorm.DB
}

type devolucaoRepo struct{ db *gorm.DB }

func NewDevolucaoRepository(db *gorm.DB) DevolucaoRepository { return &devolucaoRepo{db: db} }

func (r *devolucaoRepo) DB() *gorm.DB { return r.db }

func (r *devolucaoRepo) NextNumeroTx(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Raw("SELECT nextval('devolucoes_numero_seq')").Scan(&n).Error
	return n, err
}

func (r *devolucaoRepo) CreateTx(tx *gorm.DB, d *model.Devolucao) error {
	return translate(tx.Omit(clause.Associations).Create(d).Error)
}

func (r *devolucaoRepo) CreateItemTx(tx *gorm.DB, item *model.DevolucaoItem) error {
	return translate(tx.Create(item).Error)
}

func (r *devolucaoRepo) CreateCreditoTx(tx *gorm.DB, c *model.DevolucaoCredito) error {
	return translate(tx.Create(c).Error)
}

func (r *devolucaoRepo) FindCreditoByCodigo(ctx context.Context, codigo string) (*model.DevolucaoCredito, error) {
	var c model.DevolucaoCredito
	err := r.db.WithContext(ctx).Where("codigo_vale = ?", codigo).First(&c).Error
	return nilIfNotFound(&c, err)
}
