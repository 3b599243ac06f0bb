package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VendaFilter is bound from the query string of GET /v1/vendas.
type VendaFilter struct {
	Data       string `form:"data"        validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	CPFCliente string `form:"cpf_cliente" validate:"omitempty,numeric,min=11,max=14"`
	Status     string `form:"status"      validate:"omitempty,oneof=Aprovada Cancelada"`
	Paginacao
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id"     validate:"required,uuid"`
	Quantidade    int             `json:"quantidade"     validate:"required,min=1"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" validate:"required"`
}

// PagamentoRequest: ValorPago nil on a non-cash payment means "the rest of
// the total".
type PagamentoRequest struct {
	TipoPagamentoID int              `json:"tipo_pagamento_id" validate:"required,min=1"`
	ValorPago       *decimal.Decimal `json:"valor_pago"`
}

type RegistrarVendaRequest struct {
	Itens      []ItemVendaRequest `json:"itens"       validate:"required,min=1,dive"`
	Pagamentos []PagamentoRequest `json:"pagamentos"  validate:"required,min=1,dive"`
	CPFCliente *string            `json:"cpf_cliente" validate:"omitempty,numeric,min=11,max=14"`
	Desconto   decimal.Decimal    `json:"desconto"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// VendaRegistradaResponse is returned by POST /v1/vendas.
type VendaRegistradaResponse struct {
	VendaID string          `json:"venda_id"`
	Numero  int64           `json:"numero"`
	Total   decimal.Decimal `json:"total"`
	Troco   decimal.Decimal `json:"troco"`
}

type ItemVendaResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Produto       string          `json:"produto,omitempty"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type PagamentoResponse struct {
	TipoPagamentoID int             `json:"tipo_pagamento_id"`
	Descricao       string          `json:"descricao,omitempty"`
	ValorPago       decimal.Decimal `json:"valor_pago"`
	ValorAplicado   decimal.Decimal `json:"valor_aplicado"`
}

type VendaResponse struct {
	ID              string              `json:"id"`
	Numero          int64               `json:"numero"`
	FuncionarioID   string              `json:"funcionario_id"`
	CPFCliente      *string             `json:"cpf_cliente"`
	TipoPagamentoID int                 `json:"tipo_pagamento_id"`
	ValorTotal      decimal.Decimal     `json:"valor_total"`
	Desconto        decimal.Decimal     `json:"desconto"`
	ValorPago       decimal.Decimal     `json:"valor_pago"`
	Troco           decimal.Decimal     `json:"troco"`
	Status          string              `json:"status"`
	Itens           []ItemVendaResponse `json:"itens"`
	Pagamentos      []PagamentoResponse `json:"pagamentos"`
	CreatedAt       string              `json:"created_at"`
}
