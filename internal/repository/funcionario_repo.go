package repository

import (
	"context"

	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	// FindByLogin matches an active employee by CPF or e-mail (case-insensitive).
	FindByLogin(ctx context.Context, login string) (*model.Funcionario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error)
	List(ctx context.Context) ([]model.Funcionario, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	Desativar(ctx context.Context, id uuid.UUID) (int64, error)
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository { return &funcionarioRepo{db: db} }

func (r *funcionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

func (r *funcionarioRepo) FindByLogin(ctx context.Context, login string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).
		Where("(cpf = ? OR LOWER(email) = LOWER(?)) AND ativo = true", login, login).
		First(&f).Error
	return nilIfNotFound(&f, err)
}

func (r *funcionarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return nilIfNotFound(&f, err)
}

func (r *funcionarioRepo) List(ctx context.Context) ([]model.Funcionario, error) {
	var fs []model.Funcionario
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&fs).Error
	return fs, err
}

func (r *funcionarioRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Funcionario{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, translate(res.Error)
}

func (r *funcionarioRepo) Desativar(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Funcionario{}).Where("id = ? AND ativo = true", id).Update("ativo", false)
	return res.RowsAffected, res.Error
}
