package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const precoCacheTTL = 4 * time.Hour

// ProdutoService defines the business logic contract for products.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ListResponse[dto.ProdutoResponse], error)
	Atualizar(ctx context.Context, id uuid.UUID, patch dto.ProdutoPatch) (*dto.ProdutoResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	// ConsultarPreco is the public price check. Results are cached in Redis
	// under "preco:<codigo>"; a nil client disables the cache.
	ConsultarPreco(ctx context.Context, codigoBarras string) (*dto.ConsultaPrecoResponse, error)
}

type produtoService struct {
	repo    repository.ProdutoRepository
	estoque repository.EstoqueRepository
	rdb     *redis.Client
}

func NewProdutoService(repo repository.ProdutoRepository, estoque repository.EstoqueRepository, rdb *redis.Client) ProdutoService {
	return &produtoService{repo: repo, estoque: estoque, rdb: rdb}
}

// ── Criar ────────────────────────────────────────────────────────────────────

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if !req.Preco.IsPositive() {
		return nil, apperror.ValidationField("preco", "preço deve ser maior que zero")
	}
	if req.QuantidadeInicial < 0 {
		return nil, apperror.ValidationField("quantidade_inicial", "quantidade inicial não pode ser negativa")
	}

	p := &model.Produto{
		ID:           uuid.New(),
		Nome:         strings.TrimSpace(req.Nome),
		Descricao:    req.Descricao,
		Preco:        req.Preco,
		CodigoBarras: req.CodigoBarras,
		Ativo:        true,
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		e := &model.Estoque{ProdutoID: p.ID, Quantidade: req.QuantidadeInicial}
		if err := s.estoque.CreateTx(tx, e); err != nil {
			return err
		}
		p.Estoque = e
		if req.QuantidadeInicial > 0 {
			return s.estoque.CreateMovimentoTx(tx, &model.MovimentoEstoque{
				ID:          uuid.New(),
				ProdutoID:   p.ID,
				Tipo:        "cadastro",
				Quantidade:  req.QuantidadeInicial,
				EstoqueNovo: req.QuantidadeInicial,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("produto_id", p.ID.String()).Str("nome", p.Nome).Msg("produto cadastrado")
	return produtoToResponse(p), nil
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *produtoService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("produto", id.String())
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ListResponse[dto.ProdutoResponse], error) {
	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		data = append(data, *produtoToResponse(&produtos[i]))
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

func (s *produtoService) ConsultarPreco(ctx context.Context, codigoBarras string) (*dto.ConsultaPrecoResponse, error) {
	key := precoCacheKey(codigoBarras)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var resp dto.ConsultaPrecoResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindByBarcode(ctx, codigoBarras)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("produto", codigoBarras)
	}

	resp := &dto.ConsultaPrecoResponse{Nome: p.Nome, Preco: p.Preco}
	if p.Estoque != nil {
		resp.Disponivel = p.Estoque.Quantidade
	}

	// Best effort; a cache failure never fails the lookup.
	if s.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, b, precoCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("codigo_barras", codigoBarras).Msg("falha ao gravar cache de preço")
			}
		}
	}
	return resp, nil
}

// ── Atualizar / Desativar ────────────────────────────────────────────────────

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, patch dto.ProdutoPatch) (*dto.ProdutoResponse, error) {
	if patch.Preco != nil && !patch.Preco.IsPositive() {
		return nil, apperror.ValidationField("preco", "preço deve ser maior que zero")
	}
	updates := patch.ToUpdates()
	if len(updates) == 0 {
		return nil, apperror.Validation("nenhum campo para atualizar")
	}

	antes, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, apperror.NotFound("produto", id.String())
	}

	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NotFound("produto", id.String())
	}
	s.invalidarPreco(ctx, antes.CodigoBarras)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("produto", id.String())
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Desativar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperror.NotFound("produto", id.String())
	}
	if _, err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.invalidarPreco(ctx, p.CodigoBarras)
	return nil
}

func (s *produtoService) invalidarPreco(ctx context.Context, codigo *string) {
	if s.rdb == nil || codigo == nil {
		return
	}
	if err := s.rdb.Del(ctx, precoCacheKey(*codigo)).Err(); err != nil {
		log.Warn().Err(err).Str("codigo_barras", *codigo).Msg("falha ao invalidar cache de preço")
	}
}

func precoCacheKey(codigo string) string { return "preco:" + codigo }

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	r := &dto.ProdutoResponse{
		ID:           p.ID.String(),
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		CodigoBarras: p.CodigoBarras,
		Ativo:        p.Ativo,
	}
	if p.Estoque != nil {
		r.Quantidade = p.Estoque.Quantidade
	}
	return r
}
