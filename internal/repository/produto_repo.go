package repository

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products.
type ProdutoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	// Update applies only the given columns. Returns rows affected.
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	Desativar(ctx context.Context, id uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return translate(tx.Omit("Estoque").Create(p).Error)
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Preload("Estoque").First(&p, "id = ?", id).Error
	return nilIfNotFound(&p, err)
}

func (r *produtoRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Preload("Estoque").
		Where("codigo_barras = ? AND ativo = true", barcode).First(&p).Error
	return nilIfNotFound(&p, err)
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})

	switch filter.Ativo {
	case "false":
		q = q.Where("ativo = false")
	case "all":
	default:
		q = q.Where("ativo = true")
	}
	if filter.CodigoBarras != "" {
		q = q.Where("codigo_barras = ?", filter.CodigoBarras)
	}
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Estoque").Order("nome ASC").
		Limit(filter.PageSize()).Offset(filter.Offset()).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, translate(res.Error)
}

func (r *produtoRepo) Desativar(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ? AND ativo = true", id).Update("ativo", false)
	return res.RowsAffected, res.Error
}
