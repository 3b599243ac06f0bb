package service

import (
	"context"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraRegistradaResponse, error)
	BuscarCompra(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
}

type compraService struct {
	repo    repository.CompraRepository
	estoque EstoqueService
	now     Clock
}

func NewCompraService(repo repository.CompraRepository, estoque EstoqueService) CompraService {
	return &compraService{repo: repo, estoque: estoque, now: time.Now}
}

const layoutData = "2006-01-02"

// RegistrarCompra records incoming stock. The header and every line with
// its stock increment commit together; an unknown supplier or product
// rolls all of it back as an IntegrityError.
func (s *compraService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraRegistradaResponse, error) {
	fornecedorID, err := parseID("fornecedor_id", req.FornecedorID)
	if err != nil {
		return nil, err
	}
	if len(req.Itens) == 0 {
		return nil, apperror.ValidationField("itens", "a compra precisa de ao menos um item")
	}

	dataCompra := s.now()
	if req.DataCompra != nil {
		if dataCompra, err = time.Parse(layoutData, *req.DataCompra); err != nil {
			return nil, apperror.ValidationField("data_compra", "data inválida, use AAAA-MM-DD")
		}
	}
	var dataEntrega *time.Time
	if req.DataEntrega != nil {
		d, err := time.Parse(layoutData, *req.DataEntrega)
		if err != nil {
			return nil, apperror.ValidationField("data_entrega", "data inválida, use AAAA-MM-DD")
		}
		dataEntrega = &d
	}

	compra := &model.Compra{
		ID:           uuid.New(),
		FornecedorID: fornecedorID,
		DataCompra:   dataCompra,
		DataEntrega:  dataEntrega,
	}
	itens := make([]model.CompraItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		produtoID, err := parseID("produto_id", it.ProdutoID)
		if err != nil {
			return nil, err
		}
		if it.Quantidade < 1 {
			return nil, apperror.ValidationField("quantidade", "quantidade deve ser ao menos 1")
		}
		if !it.PrecoUnitario.IsPositive() {
			return nil, apperror.ValidationField("preco_unitario", "custo unitário deve ser maior que zero")
		}
		sub := it.PrecoUnitario.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		compra.ValorTotal = compra.ValorTotal.Add(sub)
		itens = append(itens, model.CompraItem{
			ID:            uuid.New(),
			CompraID:      compra.ID,
			ProdutoID:     produtoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      sub,
		})
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}
		origem := Origem{Tipo: "compra", ReferenciaID: &compra.ID}
		for i := range itens {
			if _, err := s.estoque.AjustarTx(tx, itens[i].ProdutoID, itens[i].Quantidade, origem); err != nil {
				return err
			}
			if err := s.repo.CreateItemTx(tx, &itens[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("compra_id", compra.ID.String()).Str("total", compra.ValorTotal.StringFixed(2)).Msg("compra registrada")
	return &dto.CompraRegistradaResponse{CompraID: compra.ID.String(), Total: compra.ValorTotal}, nil
}

func (s *compraService) BuscarCompra(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("compra", id.String())
	}
	resp := &dto.CompraResponse{
		ID:           c.ID.String(),
		FornecedorID: c.FornecedorID.String(),
		DataCompra:   c.DataCompra.Format(layoutData),
		ValorTotal:   c.ValorTotal,
		Itens:        make([]dto.ItemCompraResponse, 0, len(c.Itens)),
	}
	if c.DataEntrega != nil {
		d := c.DataEntrega.Format(layoutData)
		resp.DataEntrega = &d
	}
	for _, it := range c.Itens {
		resp.Itens = append(resp.Itens, dto.ItemCompraResponse{
			ProdutoID:     it.ProdutoID.String(),
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		})
	}
	return resp, nil
}
