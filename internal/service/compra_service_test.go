package service_test

import (
	"context"
	"testing"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompra_IncrementsStock(t *testing.T) {
	estoque := newStubEstoqueRepo()
	produto := uuid.New()
	estoque.qtd[produto] = 50
	fornecedor := uuid.New()
	repo := newStubCompraRepo(fornecedor)
	svc := service.NewCompraService(repo, service.NewEstoqueService(estoque))

	resp, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		FornecedorID: fornecedor.String(),
		DataCompra:   strPtr("2024-03-10"),
		Itens: []dto.ItemCompraRequest{
			{ProdutoID: produto.String(), Quantidade: 100, PrecoUnitario: dec("0.80")},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("80.00").Equal(resp.Total))
	assert.Equal(t, 150, estoque.qtd[produto])
	require.Len(t, estoque.movimentos, 1)
	assert.Equal(t, "compra", estoque.movimentos[0].Tipo)
	assert.Equal(t, 100, estoque.movimentos[0].Quantidade)

	c, err := svc.BuscarCompra(context.Background(), uuid.MustParse(resp.CompraID))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", c.DataCompra)
	assert.Nil(t, c.DataEntrega)
	require.Len(t, c.Itens, 1)
	assert.True(t, dec("80.00").Equal(c.Itens[0].Subtotal))
}

func TestCompra_UnknownSupplier(t *testing.T) {
	estoque := newStubEstoqueRepo()
	produto := uuid.New()
	estoque.qtd[produto] = 10
	svc := service.NewCompraService(newStubCompraRepo(), service.NewEstoqueService(estoque))

	_, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		FornecedorID: uuid.NewString(),
		Itens:        []dto.ItemCompraRequest{{ProdutoID: produto.String(), Quantidade: 1, PrecoUnitario: dec("1.00")}},
	})

	var ie *apperror.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, apperror.ReasonReferenciaInvalida, ie.Reason)
	assert.Equal(t, 10, estoque.qtd[produto])
}

func TestCompra_UnknownProduct(t *testing.T) {
	fornecedor := uuid.New()
	svc := service.NewCompraService(newStubCompraRepo(fornecedor), service.NewEstoqueService(newStubEstoqueRepo()))

	_, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		FornecedorID: fornecedor.String(),
		Itens:        []dto.ItemCompraRequest{{ProdutoID: uuid.NewString(), Quantidade: 1, PrecoUnitario: dec("1.00")}},
	})

	var ie *apperror.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, apperror.ReasonSemEstoque, ie.Reason)
}

func TestCompra_Validation(t *testing.T) {
	fornecedor := uuid.New()
	svc := service.NewCompraService(newStubCompraRepo(fornecedor), service.NewEstoqueService(newStubEstoqueRepo()))
	produto := uuid.NewString()

	cases := map[string]dto.RegistrarCompraRequest{
		"fornecedor inválido": {FornecedorID: "abc", Itens: []dto.ItemCompraRequest{{ProdutoID: produto, Quantidade: 1, PrecoUnitario: dec("1")}}},
		"sem itens":           {FornecedorID: fornecedor.String()},
		"quantidade zero":     {FornecedorID: fornecedor.String(), Itens: []dto.ItemCompraRequest{{ProdutoID: produto, Quantidade: 0, PrecoUnitario: dec("1")}}},
		"custo negativo":      {FornecedorID: fornecedor.String(), Itens: []dto.ItemCompraRequest{{ProdutoID: produto, Quantidade: 1, PrecoUnitario: dec("-1")}}},
		"data inválida":       {FornecedorID: fornecedor.String(), DataCompra: strPtr("10/03/2024"), Itens: []dto.ItemCompraRequest{{ProdutoID: produto, Quantidade: 1, PrecoUnitario: dec("1")}}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.RegistrarCompra(context.Background(), req)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestCompra_BuscarNotFound(t *testing.T) {
	svc := service.NewCompraService(newStubCompraRepo(), service.NewEstoqueService(newStubEstoqueRepo()))
	_, err := svc.BuscarCompra(context.Background(), uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
