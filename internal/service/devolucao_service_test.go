package service_test

import (
	"context"
	"testing"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodigoVale(t *testing.T) {
	emissao := time.Date(2025, time.July, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "CREDITO-42-2025", service.CodigoVale(42, emissao))
}

func TestDevolucao_AfterSaleRestoresStock(t *testing.T) {
	f := newVendaFixture(t)
	venda, err := f.svc.RegistrarVenda(context.Background(), f.funcionario, dto.RegistrarVendaRequest{
		Itens:      []dto.ItemVendaRequest{f.item(10, "10.00")},
		Pagamentos: []dto.PagamentoRequest{pagamento(tipoDinheiro, "100.00")},
	})
	require.NoError(t, err)
	require.Equal(t, 40, f.estoque.qtd[f.produto])

	repo := newStubDevolucaoRepo(uuid.MustParse(venda.VendaID))
	fila := &stubFila{}
	svc := service.NewDevolucaoService(repo, service.NewEstoqueService(f.estoque), fila, 365)

	hoje := time.Now()
	resp, err := svc.RegistrarDevolucao(context.Background(), f.funcionario, dto.RegistrarDevolucaoRequest{
		VendaID:    venda.VendaID,
		CPFCliente: "12345678901",
		Motivo:     strPtr("produto com defeito"),
		Itens: []dto.ItemDevolucaoRequest{
			{ProdutoID: f.produto.String(), Quantidade: 5, ValorUnitario: dec("10.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 45, f.estoque.qtd[f.produto])
	assert.Equal(t, int64(1), resp.Numero)
	assert.True(t, dec("50.00").Equal(resp.Credito.ValorCredito))
	assert.Equal(t, model.CreditoAtivo, resp.Credito.Status)
	assert.Equal(t, service.CodigoVale(1, hoje), resp.Credito.CodigoVale)

	validade := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location()).AddDate(0, 0, 365)
	assert.Equal(t, validade.Format("2006-01-02"), resp.Credito.DataValidade)

	assert.Equal(t, []string{resp.Credito.CodigoVale}, fila.vales)

	last := f.estoque.movimentos[len(f.estoque.movimentos)-1]
	assert.Equal(t, "devolucao", last.Tipo)
	assert.Equal(t, 5, last.Quantidade)

	c, err := svc.BuscarCredito(context.Background(), resp.Credito.CodigoVale)
	require.NoError(t, err)
	assert.Equal(t, "12345678901", c.CPFCliente)
}

func TestDevolucao_UnknownSale(t *testing.T) {
	estoque := newStubEstoqueRepo()
	produto := uuid.New()
	estoque.qtd[produto] = 40
	repo := newStubDevolucaoRepo()
	svc := service.NewDevolucaoService(repo, service.NewEstoqueService(estoque), nil, 365)

	_, err := svc.RegistrarDevolucao(context.Background(), uuid.New(), dto.RegistrarDevolucaoRequest{
		VendaID:    uuid.NewString(),
		CPFCliente: "12345678901",
		Itens:      []dto.ItemDevolucaoRequest{{ProdutoID: produto.String(), Quantidade: 1, ValorUnitario: dec("2.00")}},
	})

	var ie *apperror.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, apperror.ReasonReferenciaInvalida, ie.Reason)
	assert.Equal(t, 40, estoque.qtd[produto])
	assert.Empty(t, repo.creditos)
}

func TestDevolucao_Validation(t *testing.T) {
	svc := service.NewDevolucaoService(newStubDevolucaoRepo(), service.NewEstoqueService(newStubEstoqueRepo()), nil, 365)
	ctx := context.Background()
	item := []dto.ItemDevolucaoRequest{{ProdutoID: uuid.NewString(), Quantidade: 1, ValorUnitario: dec("1.00")}}

	_, err := svc.RegistrarDevolucao(ctx, uuid.New(), dto.RegistrarDevolucaoRequest{VendaID: "nope", CPFCliente: "12345678901", Itens: item})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.RegistrarDevolucao(ctx, uuid.Nil, dto.RegistrarDevolucaoRequest{VendaID: uuid.NewString(), CPFCliente: "12345678901", Itens: item})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.RegistrarDevolucao(ctx, uuid.New(), dto.RegistrarDevolucaoRequest{VendaID: uuid.NewString(), Itens: item})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.RegistrarDevolucao(ctx, uuid.New(), dto.RegistrarDevolucaoRequest{VendaID: uuid.NewString(), CPFCliente: "12345678901"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestDevolucao_CreditoNotFound(t *testing.T) {
	svc := service.NewDevolucaoService(newStubDevolucaoRepo(), service.NewEstoqueService(newStubEstoqueRepo()), nil, 365)
	_, err := svc.BuscarCredito(context.Background(), "CREDITO-999-2020")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
