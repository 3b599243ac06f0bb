package dto

import "github.com/shopspring/decimal"

type ItemCompraRequest struct {
	ProdutoID     string          `json:"produto_id"     validate:"required,uuid"`
	Quantidade    int             `json:"quantidade"     validate:"required,min=1"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" validate:"required"`
}

type RegistrarCompraRequest struct {
	FornecedorID string              `json:"fornecedor_id" validate:"required,uuid"`
	DataCompra   *string             `json:"data_compra"   validate:"omitempty,datetime=2006-01-02"`
	DataEntrega  *string             `json:"data_entrega"  validate:"omitempty,datetime=2006-01-02"`
	Itens        []ItemCompraRequest `json:"itens"         validate:"required,min=1,dive"`
}

type CompraRegistradaResponse struct {
	CompraID string          `json:"compra_id"`
	Total    decimal.Decimal `json:"total"`
}

type ItemCompraResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID           string               `json:"id"`
	FornecedorID string               `json:"fornecedor_id"`
	DataCompra   string               `json:"data_compra"`
	DataEntrega  *string              `json:"data_entrega"`
	ValorTotal   decimal.Decimal      `json:"valor_total"`
	Itens        []ItemCompraResponse `json:"itens"`
}
