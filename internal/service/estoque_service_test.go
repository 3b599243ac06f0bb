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

func TestEstoque_AjustarTx_RecordsMovement(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 50
	svc := service.NewEstoqueService(repo)

	ref := uuid.New()
	rows, err := svc.AjustarTx(nil, produto, -10, service.Origem{Tipo: "venda", ReferenciaID: &ref})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, 40, repo.qtd[produto])

	require.Len(t, repo.movimentos, 1)
	m := repo.movimentos[0]
	assert.Equal(t, "venda", m.Tipo)
	assert.Equal(t, -10, m.Quantidade)
	assert.Equal(t, 50, m.EstoqueAnterior)
	assert.Equal(t, 40, m.EstoqueNovo)
	assert.Equal(t, &ref, m.ReferenciaID)
	assert.NotEqual(t, uuid.Nil, m.ID)
}

func TestEstoque_AjustarTx_NegativeResultRejected(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 5
	svc := service.NewEstoqueService(repo)

	_, err := svc.AjustarTx(nil, produto, -6, service.Origem{Tipo: "venda"})
	require.Error(t, err)

	var ie *apperror.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, apperror.ReasonEstoqueNegativo, ie.Reason)
	assert.Equal(t, 5, repo.qtd[produto])
	assert.Empty(t, repo.movimentos)
}

func TestEstoque_AjustarTx_UnknownProduct(t *testing.T) {
	svc := service.NewEstoqueService(newStubEstoqueRepo())

	_, err := svc.AjustarTx(nil, uuid.New(), 3, service.Origem{Tipo: "compra"})

	var ie *apperror.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, apperror.ReasonSemEstoque, ie.Reason)
}

func TestEstoque_AjustarTx_DecrementToZero(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 3
	svc := service.NewEstoqueService(repo)

	_, err := svc.AjustarTx(nil, produto, -3, service.Origem{Tipo: "venda"})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.qtd[produto])
}

func TestEstoque_Definir(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 12
	svc := service.NewEstoqueService(repo)

	resp, err := svc.Definir(context.Background(), produto, dto.AjustarEstoqueRequest{Quantidade: 20, Motivo: strPtr("inventário")})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Quantidade)
	assert.Equal(t, 20, repo.qtd[produto])

	require.Len(t, repo.movimentos, 1)
	assert.Equal(t, "ajuste", repo.movimentos[0].Tipo)
	assert.Equal(t, 8, repo.movimentos[0].Quantidade)
	assert.Equal(t, "inventário", *repo.movimentos[0].Motivo)
}

func TestEstoque_Definir_SameQuantityNoMovement(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 7
	svc := service.NewEstoqueService(repo)

	_, err := svc.Definir(context.Background(), produto, dto.AjustarEstoqueRequest{Quantidade: 7})
	require.NoError(t, err)
	assert.Empty(t, repo.movimentos)
}

func TestEstoque_Definir_Errors(t *testing.T) {
	svc := service.NewEstoqueService(newStubEstoqueRepo())
	ctx := context.Background()

	_, err := svc.Definir(ctx, uuid.New(), dto.AjustarEstoqueRequest{Quantidade: -1})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Definir(ctx, uuid.New(), dto.AjustarEstoqueRequest{Quantidade: 1})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestEstoque_Consultar(t *testing.T) {
	repo := newStubEstoqueRepo()
	produto := uuid.New()
	repo.qtd[produto] = 9
	svc := service.NewEstoqueService(repo)

	resp, err := svc.Consultar(context.Background(), produto)
	require.NoError(t, err)
	assert.Equal(t, produto.String(), resp.ProdutoID)
	assert.Equal(t, 9, resp.Quantidade)

	_, err = svc.Consultar(context.Background(), uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
