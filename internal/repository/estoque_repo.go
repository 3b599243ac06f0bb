package repository

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstoqueRepository owns the estoques table and its audit trail.
type EstoqueRepository interface {
	// AdjustTx applies quantidade += delta on the caller's transaction and
	// returns the rows affected plus the resulting quantity. Zero rows means
	// the product has no estoque row; a negative result is rejected by the
	// CHECK constraint and surfaces as apperror.IntegrityError.
	AdjustTx(tx *gorm.DB, produtoID uuid.UUID, delta int) (rows int64, novo int, err error)
	CreateTx(tx *gorm.DB, e *model.Estoque) error
	LockTx(tx *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error)
	FindByProdutoID(ctx context.Context, produtoID uuid.UUID) (*model.Estoque, error)

	CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	ListMovimentos(ctx context.Context, filter dto.MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error)

	DB() *gorm.DB
}

type estoqueRepo struct{ db *gorm.DB }

func NewEstoqueRepository(db *gorm.DB) EstoqueRepository { return &estoqueRepo{db: db} }

func (r *estoqueRepo) DB() *gorm.DB { return r.db }

func (r *estoqueRepo) AdjustTx(tx *gorm.DB, produtoID uuid.UUID, delta int) (int64, int, error) {
	var novos []int
	err := tx.Raw(
		`UPDATE estoques SET quantidade = quantidade + ?, updated_at = NOW()
		 WHERE produto_id = ? RETURNING quantidade`,
		delta, produtoID,
	).Scan(&novos).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	if len(novos) == 0 {
		return 0, 0, nil
	}
	return int64(len(novos)), novos[0], nil
}

func (r *estoqueRepo) CreateTx(tx *gorm.DB, e *model.Estoque) error {
	return translate(tx.Create(e).Error)
}

func (r *estoqueRepo) LockTx(tx *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error) {
	var e model.Estoque
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("produto_id = ?", produtoID).First(&e).Error
	return nilIfNotFound(&e, err)
}

func (r *estoqueRepo) FindByProdutoID(ctx context.Context, produtoID uuid.UUID) (*model.Estoque, error) {
	var e model.Estoque
	err := r.db.WithContext(ctx).Where("produto_id = ?", produtoID).First(&e).Error
	return nilIfNotFound(&e, err)
}

func (r *estoqueRepo) CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return translate(tx.Create(m).Error)
}

func (r *estoqueRepo) ListMovimentos(ctx context.Context, filter dto.MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error) {
	var movs []model.MovimentoEstoque
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MovimentoEstoque{})
	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Limit(filter.PageSize()).Offset(filter.Offset()).Find(&movs).Error
	return movs, total, err
}
