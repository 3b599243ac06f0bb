package repository

import (
	"context"

	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompraRepository interface {
	CreateTx(tx *gorm.DB, c *model.Compra) error
	CreateItemTx(tx *gorm.DB, item *model.CompraItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return translate(tx.Omit(clause.Associations).Create(c).Error)
}

func (r *compraRepo) CreateItemTx(tx *gorm.DB, item *model.CompraItem) error {
	return translate(tx.Create(item).Error)
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Itens").First(&c, "id = ?", id).Error
	return nilIfNotFound(&c, err)
}
