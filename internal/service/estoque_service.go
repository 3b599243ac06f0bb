package service

import (
	"context"
	"fmt"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Origem describes why inventory moved; it ends up in movimentos_estoque.
type Origem struct {
	Tipo         string // venda | compra | devolucao | ajuste | cadastro
	ReferenciaID *uuid.UUID
	Motivo       *string
}

type EstoqueService interface {
	// AjustarTx applies quantidade += delta inside the caller's transaction.
	// It fails with apperror.IntegrityError when the product has no stock row
	// (reason sem_estoque) or when the result would be negative (reason
	// estoque_negativo, raised by the storage CHECK constraint).
	AjustarTx(tx *gorm.DB, produtoID uuid.UUID, delta int, origem Origem) (int64, error)
	Consultar(ctx context.Context, produtoID uuid.UUID) (*dto.EstoqueResponse, error)
	// Definir sets an absolute quantity (inventory count).
	Definir(ctx context.Context, produtoID uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.EstoqueResponse, error)
	ListarMovimentos(ctx context.Context, filter dto.MovimentoEstoqueFilter) (*dto.ListResponse[dto.MovimentoEstoqueResponse], error)
}

type estoqueService struct {
	repo repository.EstoqueRepository
}

func NewEstoqueService(repo repository.EstoqueRepository) EstoqueService {
	return &estoqueService{repo: repo}
}

func (s *estoqueService) AjustarTx(tx *gorm.DB, produtoID uuid.UUID, delta int, origem Origem) (int64, error) {
	rows, novo, err := s.repo.AdjustTx(tx, produtoID, delta)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, &apperror.IntegrityError{
			Reason: apperror.ReasonSemEstoque,
			Msg:    fmt.Sprintf("produto %s sem registro de estoque", produtoID),
		}
	}

	mov := &model.MovimentoEstoque{
		ID:              uuid.New(),
		ProdutoID:       produtoID,
		Tipo:            origem.Tipo,
		Quantidade:      delta,
		EstoqueAnterior: novo - delta,
		EstoqueNovo:     novo,
		ReferenciaID:    origem.ReferenciaID,
		Motivo:          origem.Motivo,
	}
	if err := s.repo.CreateMovimentoTx(tx, mov); err != nil {
		return 0, err
	}
	return rows, nil
}

func (s *estoqueService) Consultar(ctx context.Context, produtoID uuid.UUID) (*dto.EstoqueResponse, error) {
	e, err := s.repo.FindByProdutoID(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NotFound("estoque", produtoID.String())
	}
	return estoqueToResponse(e), nil
}

func (s *estoqueService) Definir(ctx context.Context, produtoID uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.EstoqueResponse, error) {
	if req.Quantidade < 0 {
		return nil, apperror.ValidationField("quantidade", "quantidade não pode ser negativa")
	}

	var resp *dto.EstoqueResponse
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		atual, err := s.repo.LockTx(tx, produtoID)
		if err != nil {
			return err
		}
		if atual == nil {
			return apperror.NotFound("estoque", produtoID.String())
		}
		delta := req.Quantidade - atual.Quantidade
		if delta != 0 {
			if _, err := s.AjustarTx(tx, produtoID, delta, Origem{Tipo: "ajuste", Motivo: req.Motivo}); err != nil {
				return err
			}
		}
		atual.Quantidade = req.Quantidade
		resp = estoqueToResponse(atual)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *estoqueService) ListarMovimentos(ctx context.Context, filter dto.MovimentoEstoqueFilter) (*dto.ListResponse[dto.MovimentoEstoqueResponse], error) {
	movs, total, err := s.repo.ListMovimentos(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovimentoEstoqueResponse, 0, len(movs))
	for _, m := range movs {
		var ref *string
		if m.ReferenciaID != nil {
			r := m.ReferenciaID.String()
			ref = &r
		}
		data = append(data, dto.MovimentoEstoqueResponse{
			ID:              m.ID.String(),
			ProdutoID:       m.ProdutoID.String(),
			Tipo:            m.Tipo,
			Quantidade:      m.Quantidade,
			EstoqueAnterior: m.EstoqueAnterior,
			EstoqueNovo:     m.EstoqueNovo,
			ReferenciaID:    ref,
			Motivo:          m.Motivo,
			CreatedAt:       fmtTime(m.CreatedAt),
		})
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

func estoqueToResponse(e *model.Estoque) *dto.EstoqueResponse {
	return &dto.EstoqueResponse{
		ProdutoID:  e.ProdutoID.String(),
		Quantidade: e.Quantidade,
		UpdatedAt:  fmtTime(e.UpdatedAt),
	}
}
