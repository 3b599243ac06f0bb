package repository

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FornecedorRepository interface {
	Create(ctx context.Context, f *model.Fornecedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error)
	List(ctx context.Context, filter dto.FornecedorFilter) ([]model.Fornecedor, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
}

type fornecedorRepo struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository { return &fornecedorRepo{db: db} }

func (r *fornecedorRepo) Create(ctx context.Context, f *model.Fornecedor) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return nilIfNotFound(&f, err)
}

func (r *fornecedorRepo) List(ctx context.Context, filter dto.FornecedorFilter) ([]model.Fornecedor, int64, error) {
	var fornecedores []model.Fornecedor
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Fornecedor{})
	if filter.RazaoSocial != "" {
		q = q.Where("razao_social ILIKE ?", "%"+filter.RazaoSocial+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("razao_social ASC").Limit(filter.PageSize()).Offset(filter.Offset()).Find(&fornecedores).Error
	return fornecedores, total, err
}

func (r *fornecedorRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Fornecedor{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, translate(res.Error)
}
