package service

import (
	"context"
	"strings"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
)

// ── Clientes ─────────────────────────────────────────────────────────────────

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	BuscarPorDocumento(ctx context.Context, cpfCNPJ string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ListResponse[dto.ClienteResponse], error)
	Atualizar(ctx context.Context, id uuid.UUID, patch dto.ClientePatch) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		ID:       uuid.New(),
		CPFCNPJ:  req.CPFCNPJ,
		Nome:     strings.TrimSpace(req.Nome),
		Email:    req.Email,
		Telefone: req.Telefone,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("cliente", id.String())
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) BuscarPorDocumento(ctx context.Context, cpfCNPJ string) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByCPFCNPJ(ctx, cpfCNPJ)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("cliente", cpfCNPJ)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ListResponse[dto.ClienteResponse], error) {
	cs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(cs))
	for i := range cs {
		data = append(data, *clienteToResponse(&cs[i]))
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, patch dto.ClientePatch) (*dto.ClienteResponse, error) {
	updates := patch.ToUpdates()
	if len(updates) == 0 {
		return nil, apperror.Validation("nenhum campo para atualizar")
	}
	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NotFound("cliente", id.String())
	}
	return s.BuscarPorID(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID.String(),
		CPFCNPJ:  c.CPFCNPJ,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
	}
}

// ── Fornecedores ─────────────────────────────────────────────────────────────

type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context, filter dto.FornecedorFilter) (*dto.ListResponse[dto.FornecedorResponse], error)
	Atualizar(ctx context.Context, id uuid.UUID, patch dto.FornecedorPatch) (*dto.FornecedorResponse, error)
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f := &model.Fornecedor{
		ID:          uuid.New(),
		CNPJ:        req.CNPJ,
		RazaoSocial: strings.TrimSpace(req.RazaoSocial),
		Email:       req.Email,
		Telefone:    req.Telefone,
		Ativo:       true,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("fornecedor", id.String())
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) Listar(ctx context.Context, filter dto.FornecedorFilter) (*dto.ListResponse[dto.FornecedorResponse], error) {
	fs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.FornecedorResponse, 0, len(fs))
	for i := range fs {
		data = append(data, *fornecedorToResponse(&fs[i]))
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uuid.UUID, patch dto.FornecedorPatch) (*dto.FornecedorResponse, error) {
	updates := patch.ToUpdates()
	if len(updates) == 0 {
		return nil, apperror.Validation("nenhum campo para atualizar")
	}
	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NotFound("fornecedor", id.String())
	}
	return s.BuscarPorID(ctx, id)
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:          f.ID.String(),
		CNPJ:        f.CNPJ,
		RazaoSocial: f.RazaoSocial,
		Email:       f.Email,
		Telefone:    f.Telefone,
		Ativo:       f.Ativo,
	}
}
