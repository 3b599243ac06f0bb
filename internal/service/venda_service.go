package service

import (
	"context"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	RegistrarVenda(ctx context.Context, funcionarioID uuid.UUID, req dto.RegistrarVendaRequest) (*dto.VendaRegistradaResponse, error)
	BuscarVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error)
	ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.ListResponse[dto.VendaResponse], error)
}

type vendaService struct {
	repo        repository.VendaRepository
	clienteRepo repository.ClienteRepository
	caixaRepo   repository.CaixaRepository
	estoque     EstoqueService
	fila        Enfileirador
	dinheiroID  int
}

// NewVendaService builds the sale processor. dinheiroID is the payment type
// treated as cash (the only one allowed to produce change).
func NewVendaService(
	repo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	caixaRepo repository.CaixaRepository,
	estoque EstoqueService,
	fila Enfileirador,
	dinheiroID int,
) VendaService {
	return &vendaService{
		repo:        repo,
		clienteRepo: clienteRepo,
		caixaRepo:   caixaRepo,
		estoque:     estoque,
		fila:        fila,
		dinheiroID:  dinheiroID,
	}
}

// ── RegistrarVenda ────────────────────────────────────────────────────────────
// Validation runs first and touches nothing. Then, in one transaction:
//   1. resolve the customer by CPF (must exist)
//   2. insert the header
//   3. per line: decrement stock, insert the line
//   4. insert payments
//   5. resolve the employee's ABERTO shift (FOR SHARE)
//   6. post an ENTRADA movement of the sale total into it
// Any failure rolls everything back and is returned as is.

func (s *vendaService) RegistrarVenda(ctx context.Context, funcionarioID uuid.UUID, req dto.RegistrarVendaRequest) (*dto.VendaRegistradaResponse, error) {
	calc, err := calcularVenda(req, s.dinheiroID)
	if err != nil {
		return nil, err
	}

	// Fail fast before opening a transaction; step 5 re-checks under lock.
	aberto, err := s.caixaRepo.FindAberto(ctx, funcionarioID)
	if err != nil {
		return nil, err
	}
	if aberto == nil {
		return nil, apperror.ShiftNotOpen(funcionarioID.String())
	}

	venda := &model.Venda{
		ID:              uuid.New(),
		FuncionarioID:   funcionarioID,
		CPFCliente:      req.CPFCliente,
		TipoPagamentoID: calc.tipoPrincipal,
		ValorTotal:      calc.total,
		Desconto:        calc.desconto,
		ValorPago:       calc.valorPago,
		Troco:           calc.troco,
		Status:          model.VendaAprovada,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.CPFCliente != nil {
			cliente, err := s.clienteRepo.FindByCPFCNPJTx(tx, *req.CPFCliente)
			if err != nil {
				return err
			}
			if cliente == nil {
				return apperror.NotFound("cliente", *req.CPFCliente)
			}
			venda.ClienteID = &cliente.ID
		}

		numero, err := s.repo.NextNumeroTx(tx)
		if err != nil {
			return err
		}
		venda.Numero = numero
		if err := s.repo.CreateTx(tx, venda); err != nil {
			return err
		}

		origem := Origem{Tipo: "venda", ReferenciaID: &venda.ID}
		for i := range calc.itens {
			item := calc.itens[i]
			if _, err := s.estoque.AjustarTx(tx, item.ProdutoID, -item.Quantidade, origem); err != nil {
				return err
			}
			item.VendaID = venda.ID
			if err := s.repo.CreateItemTx(tx, &item); err != nil {
				return err
			}
		}

		for i := range calc.pagamentos {
			calc.pagamentos[i].VendaID = venda.ID
		}
		if err := s.repo.CreatePagamentosTx(tx, calc.pagamentos); err != nil {
			return err
		}

		caixa, err := s.caixaRepo.FindAbertoTx(tx, funcionarioID)
		if err != nil {
			return err
		}
		if caixa == nil {
			return apperror.ShiftNotOpen(funcionarioID.String())
		}

		return s.caixaRepo.CreateMovimentoTx(tx, &model.FluxoCaixaMovimento{
			FluxoCaixaID: caixa.ID,
			VendaID:      &venda.ID,
			Tipo:         model.MovimentoEntrada,
			Valor:        venda.ValorTotal,
		})
	})
	if err != nil {
		return nil, err
	}

	if s.fila != nil {
		if err := s.fila.EnqueueCupom(ctx, venda.ID); err != nil {
			log.Warn().Err(err).Str("venda_id", venda.ID.String()).Msg("venda: falha ao enfileirar cupom")
		}
	}

	log.Info().Str("venda_id", venda.ID.String()).Int64("numero", venda.Numero).
		Str("total", venda.ValorTotal.StringFixed(2)).Msg("venda registrada")

	return &dto.VendaRegistradaResponse{
		VendaID: venda.ID.String(),
		Numero:  venda.Numero,
		Total:   venda.ValorTotal,
		Troco:   venda.Troco,
	}, nil
}

// ── Cálculo ──────────────────────────────────────────────────────────────────

type calculoVenda struct {
	itens         []model.VendaItem
	pagamentos    []model.VendaPagamento
	subtotal      decimal.Decimal
	desconto      decimal.Decimal
	total         decimal.Decimal
	valorPago     decimal.Decimal
	troco         decimal.Decimal
	tipoPrincipal int
}

// calcularVenda validates a sale request and derives every amount that will
// be stored. It performs no I/O.
func calcularVenda(req dto.RegistrarVendaRequest, dinheiroID int) (*calculoVenda, error) {
	if len(req.Itens) == 0 {
		return nil, apperror.ValidationField("itens", "a venda precisa de ao menos um item")
	}
	if len(req.Pagamentos) == 0 {
		return nil, apperror.ValidationField("pagamentos", "a venda precisa de ao menos um pagamento")
	}

	calc := &calculoVenda{itens: make([]model.VendaItem, 0, len(req.Itens))}
	for _, it := range req.Itens {
		produtoID, err := parseID("produto_id", it.ProdutoID)
		if err != nil {
			return nil, err
		}
		if it.Quantidade < 1 {
			return nil, apperror.ValidationField("quantidade", "quantidade deve ser ao menos 1")
		}
		if !it.PrecoUnitario.IsPositive() {
			return nil, apperror.ValidationField("preco_unitario", "preço unitário deve ser maior que zero")
		}
		sub := it.PrecoUnitario.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		calc.subtotal = calc.subtotal.Add(sub)
		calc.itens = append(calc.itens, model.VendaItem{
			ID:            uuid.New(),
			ProdutoID:     produtoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      sub,
		})
	}

	if req.Desconto.IsNegative() {
		return nil, apperror.ValidationField("desconto", "desconto não pode ser negativo")
	}
	if req.Desconto.GreaterThan(calc.subtotal) {
		return nil, apperror.ValidationField("desconto", "desconto maior que o subtotal")
	}
	calc.desconto = req.Desconto
	calc.total = calc.subtotal.Sub(req.Desconto)

	// Declared amounts first; at most one non-cash payment may leave the
	// amount open and receives whatever is left of the total.
	valores := make([]decimal.Decimal, len(req.Pagamentos))
	aberto := -1
	declarado := decimal.Zero
	for i, p := range req.Pagamentos {
		if p.TipoPagamentoID < 1 {
			return nil, apperror.ValidationField("tipo_pagamento_id", "tipo de pagamento inválido")
		}
		if p.ValorPago == nil {
			if p.TipoPagamentoID == dinheiroID {
				return nil, apperror.ValidationField("valor_pago", "pagamento em dinheiro precisa informar o valor")
			}
			if aberto >= 0 {
				return nil, apperror.ValidationField("valor_pago", "apenas um pagamento pode ficar sem valor")
			}
			aberto = i
			continue
		}
		if p.ValorPago.IsNegative() {
			return nil, apperror.ValidationField("valor_pago", "valor pago não pode ser negativo")
		}
		valores[i] = *p.ValorPago
		declarado = declarado.Add(*p.ValorPago)
	}
	if aberto >= 0 {
		restante := calc.total.Sub(declarado)
		if restante.IsNegative() {
			return nil, apperror.ValidationField("valor_pago", "não há saldo restante para o pagamento sem valor")
		}
		valores[aberto] = restante
	}

	soma := decimal.Zero
	naoDinheiro := decimal.Zero
	temDinheiro := false
	for i, p := range req.Pagamentos {
		soma = soma.Add(valores[i])
		if p.TipoPagamentoID == dinheiroID {
			temDinheiro = true
		} else {
			naoDinheiro = naoDinheiro.Add(valores[i])
		}
	}

	if soma.LessThan(calc.total) {
		return nil, apperror.ValidationField("pagamentos", "pagamento insuficiente")
	}
	if naoDinheiro.GreaterThan(calc.total) {
		return nil, apperror.ValidationField("pagamentos", "pagamentos que não são em dinheiro excedem o total")
	}
	calc.troco = soma.Sub(calc.total)
	if calc.troco.IsPositive() && !temDinheiro {
		return nil, apperror.ValidationField("pagamentos", "troco só é permitido com pagamento em dinheiro")
	}
	calc.valorPago = soma

	// Change comes out of the cash payments, in order.
	trocoRestante := calc.troco
	calc.pagamentos = make([]model.VendaPagamento, 0, len(req.Pagamentos))
	for i, p := range req.Pagamentos {
		aplicado := valores[i]
		if p.TipoPagamentoID == dinheiroID && trocoRestante.IsPositive() {
			retirado := decimal.Min(aplicado, trocoRestante)
			aplicado = aplicado.Sub(retirado)
			trocoRestante = trocoRestante.Sub(retirado)
		}
		calc.pagamentos = append(calc.pagamentos, model.VendaPagamento{
			ID:              uuid.New(),
			TipoPagamentoID: p.TipoPagamentoID,
			ValorPago:       valores[i],
			ValorAplicado:   aplicado,
		})
	}
	calc.tipoPrincipal = req.Pagamentos[0].TipoPagamentoID

	return calc, nil
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *vendaService) BuscarVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperror.NotFound("venda", id.String())
	}
	resp := vendaToResponse(v)
	return &resp, nil
}

func (s *vendaService) ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.ListResponse[dto.VendaResponse], error) {
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		data = append(data, vendaToResponse(&vendas[i]))
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

func vendaToResponse(v *model.Venda) dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, it := range v.Itens {
		r := dto.ItemVendaResponse{
			ProdutoID:     it.ProdutoID.String(),
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		}
		if it.Produto != nil {
			r.Produto = it.Produto.Nome
		}
		itens = append(itens, r)
	}
	pagamentos := make([]dto.PagamentoResponse, 0, len(v.Pagamentos))
	for _, p := range v.Pagamentos {
		r := dto.PagamentoResponse{
			TipoPagamentoID: p.TipoPagamentoID,
			ValorPago:       p.ValorPago,
			ValorAplicado:   p.ValorAplicado,
		}
		if p.TipoPagamento != nil {
			r.Descricao = p.TipoPagamento.Descricao
		}
		pagamentos = append(pagamentos, r)
	}
	return dto.VendaResponse{
		ID:              v.ID.String(),
		Numero:          v.Numero,
		FuncionarioID:   v.FuncionarioID.String(),
		CPFCliente:      v.CPFCliente,
		TipoPagamentoID: v.TipoPagamentoID,
		ValorTotal:      v.ValorTotal,
		Desconto:        v.Desconto,
		ValorPago:       v.ValorPago,
		Troco:           v.Troco,
		Status:          v.Status,
		Itens:           itens,
		Pagamentos:      pagamentos,
		CreatedAt:       fmtTime(v.CreatedAt),
	}
}
