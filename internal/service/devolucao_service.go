package service

import (
	"context"
	"fmt"
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

type DevolucaoService interface {
	RegistrarDevolucao(ctx context.Context, funcionarioID uuid.UUID, req dto.RegistrarDevolucaoRequest) (*dto.DevolucaoRegistradaResponse, error)
	BuscarCredito(ctx context.Context, codigo string) (*dto.CreditoResponse, error)
}

type devolucaoService struct {
	repo         repository.DevolucaoRepository
	estoque      EstoqueService
	fila         Enfileirador
	validadeDias int
	now          Clock
}

// NewDevolucaoService builds the return processor. validadeDias is how long
// an issued credit voucher stays valid.
func NewDevolucaoService(repo repository.DevolucaoRepository, estoque EstoqueService, fila Enfileirador, validadeDias int) DevolucaoService {
	return &devolucaoService{
		repo:         repo,
		estoque:      estoque,
		fila:         fila,
		validadeDias: validadeDias,
		now:          time.Now,
	}
}

// CodigoVale is the voucher code of a return: deterministic from the return
// number and the year it was issued.
func CodigoVale(numero int64, emissao time.Time) string {
	return fmt.Sprintf("CREDITO-%d-%d", numero, emissao.Year())
}

// RegistrarDevolucao restores stock and issues a store credit in one
// transaction. No open cash shift is needed. An unknown sale is rejected by
// the foreign key and nothing is kept.
func (s *devolucaoService) RegistrarDevolucao(ctx context.Context, funcionarioID uuid.UUID, req dto.RegistrarDevolucaoRequest) (*dto.DevolucaoRegistradaResponse, error) {
	vendaID, err := parseID("venda_id", req.VendaID)
	if err != nil {
		return nil, err
	}
	if funcionarioID == uuid.Nil {
		return nil, apperror.ValidationField("funcionario_id", "funcionário obrigatório")
	}
	if req.CPFCliente == "" {
		return nil, apperror.ValidationField("cpf_cliente", "cliente obrigatório")
	}
	if len(req.Itens) == 0 {
		return nil, apperror.ValidationField("itens", "a devolução precisa de ao menos um item")
	}

	dev := &model.Devolucao{
		ID:            uuid.New(),
		VendaID:       vendaID,
		FuncionarioID: funcionarioID,
		CPFCliente:    req.CPFCliente,
		Motivo:        req.Motivo,
	}
	itens := make([]model.DevolucaoItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		produtoID, err := parseID("produto_id", it.ProdutoID)
		if err != nil {
			return nil, err
		}
		if it.Quantidade < 1 {
			return nil, apperror.ValidationField("quantidade", "quantidade deve ser ao menos 1")
		}
		if !it.ValorUnitario.IsPositive() {
			return nil, apperror.ValidationField("valor_unitario", "valor unitário deve ser maior que zero")
		}
		sub := it.ValorUnitario.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		dev.ValorTotal = dev.ValorTotal.Add(sub)
		itens = append(itens, model.DevolucaoItem{
			ID:            uuid.New(),
			DevolucaoID:   dev.ID,
			ProdutoID:     produtoID,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Subtotal:      sub,
		})
	}

	emissao := s.now()
	var credito *model.DevolucaoCredito

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.repo.NextNumeroTx(tx)
		if err != nil {
			return err
		}
		dev.Numero = numero
		if err := s.repo.CreateTx(tx, dev); err != nil {
			return err
		}

		origem := Origem{Tipo: "devolucao", ReferenciaID: &dev.ID}
		for i := range itens {
			if _, err := s.estoque.AjustarTx(tx, itens[i].ProdutoID, itens[i].Quantidade, origem); err != nil {
				return err
			}
			if err := s.repo.CreateItemTx(tx, &itens[i]); err != nil {
				return err
			}
		}

		credito = &model.DevolucaoCredito{
			ID:           uuid.New(),
			DevolucaoID:  dev.ID,
			CodigoVale:   CodigoVale(dev.Numero, emissao),
			CPFCliente:   dev.CPFCliente,
			ValorCredito: dev.ValorTotal,
			DataValidade: dataValidade(emissao, s.validadeDias),
			Status:       model.CreditoAtivo,
		}
		return s.repo.CreateCreditoTx(tx, credito)
	})
	if err != nil {
		return nil, err
	}

	if s.fila != nil {
		if err := s.fila.EnqueueValeCredito(ctx, credito.CodigoVale); err != nil {
			log.Warn().Err(err).Str("codigo_vale", credito.CodigoVale).Msg("devolucao: falha ao enfileirar vale")
		}
	}

	log.Info().Str("devolucao_id", dev.ID.String()).Str("codigo_vale", credito.CodigoVale).
		Str("credito", credito.ValorCredito.StringFixed(2)).Msg("devolução registrada")

	return &dto.DevolucaoRegistradaResponse{
		DevolucaoID: dev.ID.String(),
		Numero:      dev.Numero,
		Credito:     creditoToResponse(credito),
	}, nil
}

func (s *devolucaoService) BuscarCredito(ctx context.Context, codigo string) (*dto.CreditoResponse, error) {
	c, err := s.repo.FindCreditoByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("vale-crédito", codigo)
	}
	resp := creditoToResponse(c)
	return &resp, nil
}

// dataValidade truncates the issue time to its calendar day before adding
// the validity period.
func dataValidade(emissao time.Time, dias int) time.Time {
	y, m, d := emissao.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, emissao.Location()).AddDate(0, 0, dias)
}

func creditoToResponse(c *model.DevolucaoCredito) dto.CreditoResponse {
	return dto.CreditoResponse{
		CodigoVale:   c.CodigoVale,
		CPFCliente:   c.CPFCliente,
		ValorCredito: c.ValorCredito,
		DataValidade: c.DataValidade.Format(layoutData),
		Status:       c.Status,
	}
}
