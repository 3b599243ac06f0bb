package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome              string          `json:"nome"               validate:"required,min=2,max=120"`
	Descricao         *string         `json:"descricao"          validate:"omitempty,max=500"`
	Preco             decimal.Decimal `json:"preco"              validate:"required"`
	CodigoBarras      *string         `json:"codigo_barras"      validate:"omitempty,min=8,max=32"`
	QuantidadeInicial int             `json:"quantidade_inicial" validate:"min=0"`
}

// ProdutoPatch carries only the fields the client sent.
type ProdutoPatch struct {
	Nome         *string          `json:"nome"          validate:"omitempty,min=2,max=120"`
	Descricao    *string          `json:"descricao"     validate:"omitempty,max=500"`
	Preco        *decimal.Decimal `json:"preco"`
	CodigoBarras *string          `json:"codigo_barras" validate:"omitempty,min=8,max=32"`
}

// ToUpdates maps the present fields to column names.
func (p ProdutoPatch) ToUpdates() map[string]any {
	u := map[string]any{}
	if p.Nome != nil {
		u["nome"] = strings.TrimSpace(*p.Nome)
	}
	if p.Descricao != nil {
		u["descricao"] = *p.Descricao
	}
	if p.Preco != nil {
		u["preco"] = *p.Preco
	}
	if p.CodigoBarras != nil {
		u["codigo_barras"] = *p.CodigoBarras
	}
	return u
}

type AjustarEstoqueRequest struct {
	Quantidade int     `json:"quantidade" validate:"min=0"`
	Motivo     *string `json:"motivo"     validate:"omitempty,max=300"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProdutoFilter struct {
	Nome         string `form:"nome"`
	CodigoBarras string `form:"codigo_barras"`
	Ativo        string `form:"ativo"` // "false" = inativos, "all" = todos, default = ativos
	Paginacao
}

type MovimentoEstoqueFilter struct {
	ProdutoID string `form:"produto_id" validate:"omitempty,uuid"`
	Tipo      string `form:"tipo"       validate:"omitempty,oneof=venda compra devolucao ajuste cadastro"`
	Paginacao
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    *string         `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"`
	CodigoBarras *string         `json:"codigo_barras"`
	Quantidade   int             `json:"quantidade"`
	Ativo        bool            `json:"ativo"`
}

type EstoqueResponse struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
	UpdatedAt  string `json:"updated_at"`
}

type MovimentoEstoqueResponse struct {
	ID              string  `json:"id"`
	ProdutoID       string  `json:"produto_id"`
	Tipo            string  `json:"tipo"`
	Quantidade      int     `json:"quantidade"`
	EstoqueAnterior int     `json:"estoque_anterior"`
	EstoqueNovo     int     `json:"estoque_novo"`
	ReferenciaID    *string `json:"referencia_id"`
	Motivo          *string `json:"motivo"`
	CreatedAt       string  `json:"created_at"`
}

// ConsultaPrecoResponse is served by the public price check endpoint.
type ConsultaPrecoResponse struct {
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`
	Disponivel int             `json:"disponivel"`
}
