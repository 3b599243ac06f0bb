package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repositories. DB() returns nil so runTx calls the body directly
// with a nil *gorm.DB; nothing is rolled back on failure.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

const tipoDinheiro = 1

var descricaoTipos = map[int]string{
	1: "Dinheiro",
	2: "Cartão de Débito",
	3: "Cartão de Crédito",
	4: "PIX",
}

// ── Estoque ──────────────────────────────────────────────────────────────────

type stubEstoqueRepo struct {
	qtd        map[uuid.UUID]int
	movimentos []model.MovimentoEstoque
}

var _ repository.EstoqueRepository = (*stubEstoqueRepo)(nil)

func newStubEstoqueRepo() *stubEstoqueRepo {
	return &stubEstoqueRepo{qtd: map[uuid.UUID]int{}}
}

func (r *stubEstoqueRepo) AdjustTx(_ *gorm.DB, produtoID uuid.UUID, delta int) (int64, int, error) {
	atual, ok := r.qtd[produtoID]
	if !ok {
		return 0, 0, nil
	}
	novo := atual + delta
	if novo < 0 {
		return 0, 0, &apperror.IntegrityError{
			Reason:     apperror.ReasonEstoqueNegativo,
			Constraint: repository.ConstraintEstoqueNaoNegativo,
			Msg:        "estoque insuficiente",
		}
	}
	r.qtd[produtoID] = novo
	return 1, novo, nil
}

func (r *stubEstoqueRepo) CreateTx(_ *gorm.DB, e *model.Estoque) error {
	if _, ok := r.qtd[e.ProdutoID]; ok {
		return apperror.Integrity(apperror.ReasonDuplicado, "registro duplicado")
	}
	r.qtd[e.ProdutoID] = e.Quantidade
	return nil
}

func (r *stubEstoqueRepo) LockTx(_ *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error) {
	return r.FindByProdutoID(context.Background(), produtoID)
}

func (r *stubEstoqueRepo) FindByProdutoID(_ context.Context, produtoID uuid.UUID) (*model.Estoque, error) {
	q, ok := r.qtd[produtoID]
	if !ok {
		return nil, nil
	}
	return &model.Estoque{ProdutoID: produtoID, Quantidade: q, UpdatedAt: time.Now()}, nil
}

func (r *stubEstoqueRepo) CreateMovimentoTx(_ *gorm.DB, m *model.MovimentoEstoque) error {
	m.CreatedAt = time.Now()
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *stubEstoqueRepo) ListMovimentos(_ context.Context, filter dto.MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error) {
	var out []model.MovimentoEstoque
	for _, m := range r.movimentos {
		if filter.ProdutoID != "" && m.ProdutoID.String() != filter.ProdutoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubEstoqueRepo) DB() *gorm.DB { return nil }

// ── Vendas ───────────────────────────────────────────────────────────────────

type stubVendaRepo struct {
	seq        int64
	vendas     map[uuid.UUID]*model.Venda
	itens      []model.VendaItem
	pagamentos []model.VendaPagamento
}

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{vendas: map[uuid.UUID]*model.Venda{}}
}

func (r *stubVendaRepo) NextNumeroTx(_ *gorm.DB) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	v.CreatedAt = time.Now()
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) CreateItemTx(_ *gorm.DB, item *model.VendaItem) error {
	r.itens = append(r.itens, *item)
	return nil
}

func (r *stubVendaRepo) CreatePagamentosTx(_ *gorm.DB, pagamentos []model.VendaPagamento) error {
	r.pagamentos = append(r.pagamentos, pagamentos...)
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, nil
	}
	out := *v
	out.Itens = nil
	out.Pagamentos = nil
	for _, it := range r.itens {
		if it.VendaID == id {
			out.Itens = append(out.Itens, it)
		}
	}
	for _, p := range r.pagamentos {
		if p.VendaID == id {
			out.Pagamentos = append(out.Pagamentos, p)
		}
	}
	return &out, nil
}

func (r *stubVendaRepo) List(_ context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, int64(len(out)), nil
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

func (r *stubVendaRepo) pagamentosDe(vendaID uuid.UUID) []model.VendaPagamento {
	var out []model.VendaPagamento
	for _, p := range r.pagamentos {
		if p.VendaID == vendaID {
			out = append(out, p)
		}
	}
	return out
}

// ── Clientes / Fornecedores ──────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

func newStubClienteRepo(cs ...model.Cliente) *stubClienteRepo {
	r := &stubClienteRepo{clientes: map[uuid.UUID]*model.Cliente{}}
	for i := range cs {
		c := cs[i]
		r.clientes[c.ID] = &c
	}
	return r
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	for _, e := range r.clientes {
		if e.CPFCNPJ == c.CPFCNPJ {
			return apperror.Integrity(apperror.ReasonDuplicado, "registro duplicado")
		}
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubClienteRepo) FindByCPFCNPJ(_ context.Context, cpfCNPJ string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CPFCNPJ == cpfCNPJ {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubClienteRepo) FindByCPFCNPJTx(_ *gorm.DB, cpfCNPJ string) (*model.Cliente, error) {
	return r.FindByCPFCNPJ(context.Background(), cpfCNPJ)
}

func (r *stubClienteRepo) List(_ context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if filter.Nome != "" && !strings.Contains(strings.ToLower(c.Nome), strings.ToLower(filter.Nome)) {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	c, ok := r.clientes[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["nome"].(string); ok {
		c.Nome = v
	}
	if v, ok := updates["email"].(string); ok {
		c.Email = &v
	}
	if v, ok := updates["telefone"].(string); ok {
		c.Telefone = &v
	}
	return 1, nil
}

type stubFornecedorRepo struct {
	fornecedores map[uuid.UUID]*model.Fornecedor
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: map[uuid.UUID]*model.Fornecedor{}}
}

func (r *stubFornecedorRepo) Create(_ context.Context, f *model.Fornecedor) error {
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *stubFornecedorRepo) List(_ context.Context, _ dto.FornecedorFilter) ([]model.Fornecedor, int64, error) {
	var out []model.Fornecedor
	for _, f := range r.fornecedores {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubFornecedorRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["razao_social"].(string); ok {
		f.RazaoSocial = v
	}
	if v, ok := updates["ativo"].(bool); ok {
		f.Ativo = v
	}
	return 1, nil
}

// ── Caixa ────────────────────────────────────────────────────────────────────

// stubCaixaRepo aggregates over the sales stored in vendas, the same join the
// SQL implementation does.
type stubCaixaRepo struct {
	fluxos     map[uuid.UUID]*model.FluxoCaixa
	movimentos []model.FluxoCaixaMovimento
	vendas     *stubVendaRepo
	operador   string
}

var _ repository.CaixaRepository = (*stubCaixaRepo)(nil)

func newStubCaixaRepo(vendas *stubVendaRepo) *stubCaixaRepo {
	return &stubCaixaRepo{
		fluxos:   map[uuid.UUID]*model.FluxoCaixa{},
		vendas:   vendas,
		operador: "Maria Operadora",
	}
}

func (r *stubCaixaRepo) Create(_ context.Context, f *model.FluxoCaixa) error {
	for _, e := range r.fluxos {
		if e.FuncionarioID == f.FuncionarioID && e.Status == model.CaixaAberto {
			return &apperror.ConflictError{Msg: "funcionário já possui um caixa aberto"}
		}
	}
	r.fluxos[f.ID] = f
	return nil
}

func (r *stubCaixaRepo) FindAberto(_ context.Context, funcionarioID uuid.UUID) (*model.FluxoCaixa, error) {
	for _, f := range r.fluxos {
		if f.FuncionarioID == funcionarioID && f.Status == model.CaixaAberto {
			return f, nil
		}
	}
	return nil, nil
}

func (r *stubCaixaRepo) FindAbertoTx(_ *gorm.DB, funcionarioID uuid.UUID) (*model.FluxoCaixa, error) {
	return r.FindAberto(context.Background(), funcionarioID)
}

func (r *stubCaixaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FluxoCaixa, error) {
	f, ok := r.fluxos[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *stubCaixaRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*repository.FluxoCaixaComOperador, error) {
	f, ok := r.fluxos[id]
	if !ok {
		return nil, nil
	}
	return &repository.FluxoCaixaComOperador{FluxoCaixa: *f, Operador: r.operador}, nil
}

func (r *stubCaixaRepo) LockTx(tx *gorm.DB, id uuid.UUID) (*repository.FluxoCaixaComOperador, error) {
	return r.FindByIDTx(tx, id)
}

func (r *stubCaixaRepo) FecharTx(_ *gorm.DB, id uuid.UUID, fe repository.Fechamento) (int64, error) {
	f, ok := r.fluxos[id]
	if !ok || f.Status != model.CaixaAberto {
		return 0, nil
	}
	informado, teorico, dif, em := fe.SaldoInformado, fe.SaldoTeorico, fe.Diferenca, fe.FechadoEm
	f.Status = model.CaixaFechado
	f.SaldoFinalInformado = &informado
	f.SaldoTeorico = &teorico
	f.Diferenca = &dif
	f.FechadoEm = &em
	return 1, nil
}

func (r *stubCaixaRepo) CreateMovimentoTx(_ *gorm.DB, m *model.FluxoCaixaMovimento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *stubCaixaRepo) List(_ context.Context, filter dto.HistorialCaixaFilter) ([]model.FluxoCaixa, int64, error) {
	var out []model.FluxoCaixa
	for _, f := range r.fluxos {
		if filter.FuncionarioID != "" && f.FuncionarioID.String() != filter.FuncionarioID {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubCaixaRepo) ListFechados(_ context.Context, _ dto.Paginacao) ([]repository.FluxoCaixaComOperador, int64, error) {
	var out []repository.FluxoCaixaComOperador
	for _, f := range r.fluxos {
		if f.Status == model.CaixaFechado {
			out = append(out, repository.FluxoCaixaComOperador{FluxoCaixa: *f, Operador: r.operador})
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCaixaRepo) TotaisPorTipoTx(_ *gorm.DB, fluxoID uuid.UUID) ([]repository.TotalPorTipo, error) {
	soma := map[int]decimal.Decimal{}
	for _, m := range r.movimentos {
		if m.FluxoCaixaID != fluxoID || m.VendaID == nil {
			continue
		}
		v, ok := r.vendas.vendas[*m.VendaID]
		if !ok || v.Status != model.VendaAprovada {
			continue
		}
		for _, p := range r.vendas.pagamentosDe(v.ID) {
			soma[p.TipoPagamentoID] = soma[p.TipoPagamentoID].Add(p.ValorAplicado)
		}
	}
	tipos := make([]int, 0, len(soma))
	for t := range soma {
		tipos = append(tipos, t)
	}
	sort.Ints(tipos)
	out := make([]repository.TotalPorTipo, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, repository.TotalPorTipo{TipoPagamentoID: t, Descricao: descricaoTipos[t], Total: soma[t]})
	}
	return out, nil
}

func (r *stubCaixaRepo) TotaisPorStatusTx(_ *gorm.DB, fluxoID uuid.UUID) (repository.TotaisStatus, error) {
	var t repository.TotaisStatus
	for _, m := range r.movimentos {
		if m.FluxoCaixaID != fluxoID {
			continue
		}
		t.Movimento = t.Movimento.Add(m.Valor)
		if m.VendaID == nil {
			continue
		}
		v, ok := r.vendas.vendas[*m.VendaID]
		if !ok {
			continue
		}
		switch v.Status {
		case model.VendaAprovada:
			t.Aprovado = t.Aprovado.Add(v.ValorTotal)
		case model.VendaCancelada:
			t.Cancelado = t.Cancelado.Add(v.ValorTotal)
		}
	}
	return t, nil
}

func (r *stubCaixaRepo) DB() *gorm.DB { return nil }

// ── Compras ──────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	fornecedores map[uuid.UUID]bool
	compras      map[uuid.UUID]*model.Compra
	itens        []model.CompraItem
}

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

func newStubCompraRepo(fornecedores ...uuid.UUID) *stubCompraRepo {
	r := &stubCompraRepo{fornecedores: map[uuid.UUID]bool{}, compras: map[uuid.UUID]*model.Compra{}}
	for _, id := range fornecedores {
		r.fornecedores[id] = true
	}
	return r
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if !r.fornecedores[c.FornecedorID] {
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonReferenciaInvalida,
			Constraint: "compras_fornecedor_id_fkey",
			Msg:        "referência inexistente",
		}
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) CreateItemTx(_ *gorm.DB, item *model.CompraItem) error {
	r.itens = append(r.itens, *item)
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, nil
	}
	out := *c
	out.Itens = nil
	for _, it := range r.itens {
		if it.CompraID == id {
			out.Itens = append(out.Itens, it)
		}
	}
	return &out, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

// ── Devoluções ───────────────────────────────────────────────────────────────

type stubDevolucaoRepo struct {
	seq        int64
	vendas     map[uuid.UUID]bool
	devolucoes map[uuid.UUID]*model.Devolucao
	itens      []model.DevolucaoItem
	creditos   map[string]*model.DevolucaoCredito
}

var _ repository.DevolucaoRepository = (*stubDevolucaoRepo)(nil)

func newStubDevolucaoRepo(vendas ...uuid.UUID) *stubDevolucaoRepo {
	r := &stubDevolucaoRepo{
		vendas:     map[uuid.UUID]bool{},
		devolucoes: map[uuid.UUID]*model.Devolucao{},
		creditos:   map[string]*model.DevolucaoCredito{},
	}
	for _, id := range vendas {
		r.vendas[id] = true
	}
	return r
}

func (r *stubDevolucaoRepo) NextNumeroTx(_ *gorm.DB) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubDevolucaoRepo) CreateTx(_ *gorm.DB, d *model.Devolucao) error {
	if !r.vendas[d.VendaID] {
		return &apperror.IntegrityError{
			Reason:     apperror.ReasonReferenciaInvalida,
			Constraint: "devolucoes_venda_id_fkey",
			Msg:        "referência inexistente",
		}
	}
	r.devolucoes[d.ID] = d
	return nil
}

func (r *stubDevolucaoRepo) CreateItemTx(_ *gorm.DB, item *model.DevolucaoItem) error {
	r.itens = append(r.itens, *item)
	return nil
}

func (r *stubDevolucaoRepo) CreateCreditoTx(_ *gorm.DB, c *model.DevolucaoCredito) error {
	r.creditos[c.CodigoVale] = c
	return nil
}

func (r *stubDevolucaoRepo) FindCreditoByCodigo(_ context.Context, codigo string) (*model.DevolucaoCredito, error) {
	c, ok := r.creditos[codigo]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubDevolucaoRepo) DB() *gorm.DB { return nil }

// ── Funcionários ─────────────────────────────────────────────────────────────

type stubFuncionarioRepo struct {
	funcionarios map[uuid.UUID]*model.Funcionario
}

var _ repository.FuncionarioRepository = (*stubFuncionarioRepo)(nil)

func newStubFuncionarioRepo() *stubFuncionarioRepo {
	return &stubFuncionarioRepo{funcionarios: map[uuid.UUID]*model.Funcionario{}}
}

func (r *stubFuncionarioRepo) Create(_ context.Context, f *model.Funcionario) error {
	r.funcionarios[f.ID] = f
	return nil
}

func (r *stubFuncionarioRepo) FindByLogin(_ context.Context, login string) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if !f.Ativo {
			continue
		}
		if f.CPF == login || (f.Email != nil && strings.EqualFold(*f.Email, login)) {
			return f, nil
		}
	}
	return nil, nil
}

func (r *stubFuncionarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Funcionario, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *stubFuncionarioRepo) List(_ context.Context) ([]model.Funcionario, error) {
	out := make([]model.Funcionario, 0, len(r.funcionarios))
	for _, f := range r.funcionarios {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFuncionarioRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["nome"].(string); ok {
		f.Nome = v
	}
	if v, ok := updates["cargo"].(string); ok {
		f.Cargo = v
	}
	if v, ok := updates["senha_hash"].(string); ok {
		f.SenhaHash = v
	}
	return 1, nil
}

func (r *stubFuncionarioRepo) Desativar(_ context.Context, id uuid.UUID) (int64, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return 0, nil
	}
	f.Ativo = false
	return 1, nil
}

// ── Produtos ─────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
	estoque  *stubEstoqueRepo
	buscas   int
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

func newStubProdutoRepo(estoque *stubEstoqueRepo) *stubProdutoRepo {
	return &stubProdutoRepo{produtos: map[uuid.UUID]*model.Produto{}, estoque: estoque}
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) comEstoque(p *model.Produto) *model.Produto {
	out := *p
	if q, ok := r.estoque.qtd[p.ID]; ok {
		out.Estoque = &model.Estoque{ProdutoID: p.ID, Quantidade: q}
	}
	return &out
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	return r.comEstoque(p), nil
}

func (r *stubProdutoRepo) FindByBarcode(_ context.Context, barcode string) (*model.Produto, error) {
	r.buscas++
	for _, p := range r.produtos {
		if p.Ativo && p.CodigoBarras != nil && *p.CodigoBarras == barcode {
			return r.comEstoque(p), nil
		}
	}
	return nil, nil
}

func (r *stubProdutoRepo) List(_ context.Context, _ dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.Ativo {
			out = append(out, *r.comEstoque(p))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	p, ok := r.produtos[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["nome"].(string); ok {
		p.Nome = v
	}
	if v, ok := updates["preco"].(decimal.Decimal); ok {
		p.Preco = v
	}
	if v, ok := updates["codigo_barras"].(string); ok {
		p.CodigoBarras = &v
	}
	return 1, nil
}

func (r *stubProdutoRepo) Desativar(_ context.Context, id uuid.UUID) (int64, error) {
	p, ok := r.produtos[id]
	if !ok {
		return 0, nil
	}
	p.Ativo = false
	return 1, nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

// ── Fila ─────────────────────────────────────────────────────────────────────

type stubFila struct {
	cupons []uuid.UUID
	vales  []string
	err    error
}

func (f *stubFila) EnqueueCupom(_ context.Context, vendaID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.cupons = append(f.cupons, vendaID)
	return nil
}

func (f *stubFila) EnqueueValeCredito(_ context.Context, codigoVale string) error {
	if f.err != nil {
		return f.err
	}
	f.vales = append(f.vales, codigoVale)
	return nil
}
