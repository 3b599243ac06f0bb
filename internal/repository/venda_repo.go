package repository

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VendaRepository has no update path: a committed sale is immutable.
type VendaRepository interface {
	NextNumeroTx(tx *gorm.DB) (int64, error)
	CreateTx(tx *gorm.DB, v *model.Venda) error
	CreateItemTx(tx *gorm.DB, item *model.VendaItem) error
	CreatePagamentosTx(tx *gorm.DB, pagamentos []model.VendaPagamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) NextNumeroTx(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Raw("SELECT nextval('vendas_numero_seq')").Scan(&n).Error
	return n, err
}

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return translate(tx.Omit(clause.Associations).Create(v).Error)
}

func (r *vendaRepo) CreateItemTx(tx *gorm.DB, item *model.VendaItem) error {
	return translate(tx.Omit(clause.Associations).Create(item).Error)
}

func (r *vendaRepo) CreatePagamentosTx(tx *gorm.DB, pagamentos []model.VendaPagamento) error {
	if len(pagamentos) == 0 {
		return nil
	}
	return translate(tx.Omit(clause.Associations).Create(&pagamentos).Error)
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Preload("Pagamentos.TipoPagamento").
		Preload("Cliente").
		First(&v, "id = ?", id).Error
	return nilIfNotFound(&v, err)
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if filter.Data != "" {
		q = q.Where("created_at::date = ?", filter.Data)
	}
	if filter.CPFCliente != "" {
		q = q.Where("cpf_cliente = ?", filter.CPFCliente)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Itens").Preload("Pagamentos").
		Order("created_at DESC").Limit(filter.PageSize()).Offset(filter.Offset()).
		Find(&vendas).Error
	return vendas, total, err
}
