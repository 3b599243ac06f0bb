package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
}

// FecharCaixaRequest: when SaldoInformado is nil the theoretical balance is
// used as the declared count.
type FecharCaixaRequest struct {
	SaldoInformado *decimal.Decimal `json:"saldo_informado"`
}

type HistorialCaixaFilter struct {
	FuncionarioID string `form:"funcionario_id" validate:"omitempty,uuid"`
	Status        string `form:"status"         validate:"omitempty,oneof=ABERTO FECHADO"`
	Paginacao
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FluxoCaixaResponse struct {
	ID                  string           `json:"id"`
	FuncionarioID       string           `json:"funcionario_id"`
	Status              string           `json:"status"`
	SaldoInicial        decimal.Decimal  `json:"saldo_inicial"`
	SaldoFinalInformado *decimal.Decimal `json:"saldo_final_informado"`
	SaldoTeorico        *decimal.Decimal `json:"saldo_teorico"`
	Diferenca           *decimal.Decimal `json:"diferenca"`
	AbertoEm            string           `json:"aberto_em"`
	FechadoEm           *string          `json:"fechado_em"`
}

type TotalPorTipoPagamento struct {
	TipoPagamentoID int             `json:"tipo_pagamento_id"`
	Descricao       string          `json:"descricao"`
	Total           decimal.Decimal `json:"total"`
}

// ResumoFechamento is the reconciliation report of one shift.
// SaldoTeorico = SaldoInicial + MovimentoTeorico, and
// MovimentoTeorico = TotalAprovado - TotalCancelado.
type ResumoFechamento struct {
	FluxoCaixaID     string                  `json:"fluxo_caixa_id"`
	Operador         string                  `json:"operador"`
	Status           string                  `json:"status"`
	AbertoEm         string                  `json:"aberto_em"`
	FechadoEm        *string                 `json:"fechado_em"`
	SaldoInicial     decimal.Decimal         `json:"saldo_inicial"`
	TotalAprovado    decimal.Decimal         `json:"total_aprovado"`
	TotalCancelado   decimal.Decimal         `json:"total_cancelado"`
	MovimentoTotal   decimal.Decimal         `json:"movimento_total"`
	MovimentoTeorico decimal.Decimal         `json:"movimento_teorico"`
	SaldoTeorico     decimal.Decimal         `json:"saldo_teorico"`
	SaldoInformado   *decimal.Decimal        `json:"saldo_informado"`
	Diferenca        *decimal.Decimal        `json:"diferenca"`
	PorTipoPagamento []TotalPorTipoPagamento `json:"por_tipo_pagamento"`
}

type FecharCaixaResponse struct {
	FluxoCaixaID string           `json:"fluxo_caixa_id"`
	Resumo       ResumoFechamento `json:"resumo"`
}

// CaixaFechadoItem is one row of the closed-shift audit report.
type CaixaFechadoItem struct {
	FluxoCaixaID   string          `json:"fluxo_caixa_id"`
	FuncionarioID  string          `json:"funcionario_id"`
	Operador       string          `json:"operador"`
	AbertoEm       string          `json:"aberto_em"`
	FechadoEm      string          `json:"fechado_em"`
	SaldoInicial   decimal.Decimal `json:"saldo_inicial"`
	SaldoEsperado  decimal.Decimal `json:"saldo_esperado"`
	SaldoInformado decimal.Decimal `json:"saldo_informado"`
	Diferenca      decimal.Decimal `json:"diferenca"`
}
