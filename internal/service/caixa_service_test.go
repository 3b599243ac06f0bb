package service_test

import (
	"context"
	"testing"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaixaService(repo *stubCaixaRepo) service.CaixaService {
	return service.NewCaixaService(repo, service.NewConciliacaoService(repo))
}

func TestCaixa_OpenTwiceCloseTwice(t *testing.T) {
	repo := newStubCaixaRepo(newStubVendaRepo())
	svc := newCaixaService(repo)
	ctx := context.Background()
	funcionario := uuid.New()

	aberto, err := svc.Abrir(ctx, funcionario, dto.AbrirCaixaRequest{SaldoInicial: dec("100.00")})
	require.NoError(t, err)
	assert.Equal(t, model.CaixaAberto, aberto.Status)
	assert.True(t, dec("100.00").Equal(aberto.SaldoInicial))

	_, err = svc.Abrir(ctx, funcionario, dto.AbrirCaixaRequest{SaldoInicial: dec("100.00")})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	id := uuid.MustParse(aberto.ID)
	fechado, err := svc.Fechar(ctx, id, dto.FecharCaixaRequest{SaldoInformado: decPtr("150.00")})
	require.NoError(t, err)
	assert.Equal(t, model.CaixaFechado, fechado.Resumo.Status)
	assert.Equal(t, model.CaixaFechado, repo.fluxos[id].Status)
	assert.NotNil(t, repo.fluxos[id].FechadoEm)

	_, err = svc.Fechar(ctx, id, dto.FecharCaixaRequest{SaldoInformado: decPtr("150.00")})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCaixa_ReopenAfterClose(t *testing.T) {
	repo := newStubCaixaRepo(newStubVendaRepo())
	svc := newCaixaService(repo)
	ctx := context.Background()
	funcionario := uuid.New()

	a, err := svc.Abrir(ctx, funcionario, dto.AbrirCaixaRequest{SaldoInicial: dec("50")})
	require.NoError(t, err)
	_, err = svc.Fechar(ctx, uuid.MustParse(a.ID), dto.FecharCaixaRequest{})
	require.NoError(t, err)

	b, err := svc.Abrir(ctx, funcionario, dto.AbrirCaixaRequest{SaldoInicial: dec("50")})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCaixa_CloseReconcilesSales(t *testing.T) {
	f := newVendaFixture(t)
	ctx := context.Background()
	svc := newCaixaService(f.caixa)

	_, err := f.svc.RegistrarVenda(ctx, f.funcionario, dto.RegistrarVendaRequest{
		Itens:      []dto.ItemVendaRequest{f.item(3, "10.00")},
		Pagamentos: []dto.PagamentoRequest{pagamento(tipoDinheiro, "50.00")},
	})
	require.NoError(t, err)
	_, err = f.svc.RegistrarVenda(ctx, f.funcionario, dto.RegistrarVendaRequest{
		Itens:      []dto.ItemVendaRequest{f.item(2, "10.00")},
		Pagamentos: []dto.PagamentoRequest{pagamento(2, "20.00")},
	})
	require.NoError(t, err)

	resp, err := svc.Fechar(ctx, f.fluxo, dto.FecharCaixaRequest{SaldoInformado: decPtr("148.00")})
	require.NoError(t, err)

	r := resp.Resumo
	assert.Equal(t, "Maria Operadora", r.Operador)
	assert.True(t, dec("50.00").Equal(r.TotalAprovado))
	assert.True(t, decimal.Zero.Equal(r.TotalCancelado))
	assert.True(t, dec("150.00").Equal(r.SaldoTeorico))
	require.NotNil(t, r.SaldoInformado)
	assert.True(t, dec("148.00").Equal(*r.SaldoInformado))
	require.NotNil(t, r.Diferenca)
	assert.True(t, dec("-2.00").Equal(*r.Diferenca))

	// cash contributes what stayed after change, not what was tendered
	require.Len(t, r.PorTipoPagamento, 2)
	assert.Equal(t, tipoDinheiro, r.PorTipoPagamento[0].TipoPagamentoID)
	assert.True(t, dec("30.00").Equal(r.PorTipoPagamento[0].Total))
	assert.Equal(t, 2, r.PorTipoPagamento[1].TipoPagamentoID)
	assert.True(t, dec("20.00").Equal(r.PorTipoPagamento[1].Total))

	stored := f.caixa.fluxos[f.fluxo]
	assert.True(t, dec("150.00").Equal(*stored.SaldoTeorico))
	assert.True(t, dec("-2.00").Equal(*stored.Diferenca))

	// closed shift no longer accepts sales
	_, err = f.svc.RegistrarVenda(ctx, f.funcionario, dto.RegistrarVendaRequest{
		Itens:      []dto.ItemVendaRequest{f.item(1, "10.00")},
		Pagamentos: []dto.PagamentoRequest{pagamento(tipoDinheiro, "10.00")},
	})
	assert.Equal(t, apperror.KindShiftNotOpen, apperror.KindOf(err))
}

func TestCaixa_CloseWithoutCountUsesTheoretical(t *testing.T) {
	repo := newStubCaixaRepo(newStubVendaRepo())
	svc := newCaixaService(repo)
	ctx := context.Background()

	a, err := svc.Abrir(ctx, uuid.New(), dto.AbrirCaixaRequest{SaldoInicial: dec("80.00")})
	require.NoError(t, err)

	resp, err := svc.Fechar(ctx, uuid.MustParse(a.ID), dto.FecharCaixaRequest{})
	require.NoError(t, err)
	assert.True(t, dec("80.00").Equal(resp.Resumo.SaldoTeorico))
	assert.True(t, dec("80.00").Equal(*resp.Resumo.SaldoInformado))
	assert.True(t, decimal.Zero.Equal(*resp.Resumo.Diferenca))
}

func TestCaixa_Errors(t *testing.T) {
	svc := newCaixaService(newStubCaixaRepo(newStubVendaRepo()))
	ctx := context.Background()

	_, err := svc.Abrir(ctx, uuid.New(), dto.AbrirCaixaRequest{SaldoInicial: dec("-1")})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Fechar(ctx, uuid.New(), dto.FecharCaixaRequest{})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.Fechar(ctx, uuid.New(), dto.FecharCaixaRequest{SaldoInformado: decPtr("-5")})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.BuscarPorID(ctx, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	aberto, err := svc.BuscarAberto(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, aberto)
}

func TestCaixa_HistorialAndRelatorio(t *testing.T) {
	repo := newStubCaixaRepo(newStubVendaRepo())
	svc := newCaixaService(repo)
	ctx := context.Background()
	ana, bruno := uuid.New(), uuid.New()

	a, err := svc.Abrir(ctx, ana, dto.AbrirCaixaRequest{SaldoInicial: dec("10")})
	require.NoError(t, err)
	_, err = svc.Abrir(ctx, bruno, dto.AbrirCaixaRequest{SaldoInicial: dec("20")})
	require.NoError(t, err)
	_, err = svc.Fechar(ctx, uuid.MustParse(a.ID), dto.FecharCaixaRequest{SaldoInformado: decPtr("12")})
	require.NoError(t, err)

	hist, err := svc.Historial(ctx, dto.HistorialCaixaFilter{FuncionarioID: ana.String()})
	require.NoError(t, err)
	require.Len(t, hist.Data, 1)
	assert.Equal(t, a.ID, hist.Data[0].ID)

	rel, err := svc.RelatorioFechados(ctx, dto.Paginacao{})
	require.NoError(t, err)
	require.Len(t, rel.Data, 1)
	item := rel.Data[0]
	assert.True(t, dec("10").Equal(item.SaldoEsperado))
	assert.True(t, dec("12").Equal(item.SaldoInformado))
	assert.True(t, dec("2").Equal(item.Diferenca))
	assert.NotEmpty(t, item.FechadoEm)
}
