package repository

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByCPFCNPJ(ctx context.Context, cpfCNPJ string) (*model.Cliente, error)
	// FindByCPFCNPJTx resolves a customer inside a sale transaction.
	FindByCPFCNPJTx(tx *gorm.DB, cpfCNPJ string) (*model.Cliente, error)
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return nilIfNotFound(&c, err)
}

func (r *clienteRepo) FindByCPFCNPJ(ctx context.Context, cpfCNPJ string) (*model.Cliente, error) {
	return r.FindByCPFCNPJTx(r.db.WithContext(ctx), cpfCNPJ)
}

func (r *clienteRepo) FindByCPFCNPJTx(tx *gorm.DB, cpfCNPJ string) (*model.Cliente, error) {
	var c model.Cliente
	err := tx.Where("cpf_cnpj = ?", cpfCNPJ).First(&c).Error
	return nilIfNotFound(&c, err)
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nome ASC").Limit(filter.PageSize()).Offset(filter.Offset()).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, translate(res.Error)
}
