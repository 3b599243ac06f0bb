package dto

import "github.com/shopspring/decimal"

type ItemDevolucaoRequest struct {
	ProdutoID     string          `json:"produto_id"     validate:"required,uuid"`
	Quantidade    int             `json:"quantidade"     validate:"required,min=1"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
}

type RegistrarDevolucaoRequest struct {
	VendaID    string                 `json:"venda_id"    validate:"required,uuid"`
	CPFCliente string                 `json:"cpf_cliente" validate:"required,numeric,min=11,max=14"`
	Motivo     *string                `json:"motivo"      validate:"omitempty,max=500"`
	Itens      []ItemDevolucaoRequest `json:"itens"       validate:"required,min=1,dive"`
}

type CreditoResponse struct {
	CodigoVale   string          `json:"codigo_vale"`
	CPFCliente   string          `json:"cpf_cliente"`
	ValorCredito decimal.Decimal `json:"valor_credito"`
	DataValidade string          `json:"data_validade"` // YYYY-MM-DD
	Status       string          `json:"status"`
}

type DevolucaoRegistradaResponse struct {
	DevolucaoID string          `json:"devolucao_id"`
	Numero      int64           `json:"numero"`
	Credito     CreditoResponse `json:"credito"`
}
