package service

import (
	"context"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConciliacaoService reconciles a cash shift against the sales posted into it.
type ConciliacaoService interface {
	// ResumoFechamento returns nil (and no error) when the shift does not exist.
	ResumoFechamento(ctx context.Context, id uuid.UUID) (*dto.ResumoFechamento, error)
	// ResumoTx builds the report inside an existing transaction.
	ResumoTx(tx *gorm.DB, f *repository.FluxoCaixaComOperador) (*dto.ResumoFechamento, error)
}

type conciliacaoService struct {
	repo repository.CaixaRepository
}

func NewConciliacaoService(repo repository.CaixaRepository) ConciliacaoService {
	return &conciliacaoService{repo: repo}
}

func (s *conciliacaoService) ResumoFechamento(ctx context.Context, id uuid.UUID) (*dto.ResumoFechamento, error) {
	var resumo *dto.ResumoFechamento
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		f, err := s.repo.FindByIDTx(tx, id)
		if err != nil || f == nil {
			return err
		}
		resumo, err = s.ResumoTx(tx, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resumo, nil
}

// ResumoTx: saldo teórico = saldo inicial + (aprovado − cancelado).
// A shift without movements yields zero totals.
func (s *conciliacaoService) ResumoTx(tx *gorm.DB, f *repository.FluxoCaixaComOperador) (*dto.ResumoFechamento, error) {
	porTipo, err := s.repo.TotaisPorTipoTx(tx, f.ID)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.TotaisPorStatusTx(tx, f.ID)
	if err != nil {
		return nil, err
	}

	movTeorico := st.Aprovado.Sub(st.Cancelado)
	resumo := &dto.ResumoFechamento{
		FluxoCaixaID:     f.ID.String(),
		Operador:         f.Operador,
		Status:           f.Status,
		AbertoEm:         fmtTime(f.AbertoEm),
		FechadoEm:        fmtTimePtr(f.FechadoEm),
		SaldoInicial:     f.SaldoInicial,
		TotalAprovado:    st.Aprovado,
		TotalCancelado:   st.Cancelado,
		MovimentoTotal:   st.Movimento,
		MovimentoTeorico: movTeorico,
		SaldoTeorico:     f.SaldoInicial.Add(movTeorico),
		PorTipoPagamento: make([]dto.TotalPorTipoPagamento, 0, len(porTipo)),
	}
	for _, t := range porTipo {
		resumo.PorTipoPagamento = append(resumo.PorTipoPagamento, dto.TotalPorTipoPagamento{
			TipoPagamentoID: t.TipoPagamentoID,
			Descricao:       t.Descricao,
			Total:           t.Total,
		})
	}
	if f.SaldoFinalInformado != nil {
		informado := *f.SaldoFinalInformado
		dif := informado.Sub(resumo.SaldoTeorico)
		resumo.SaldoInformado = &informado
		resumo.Diferenca = &dif
	}
	return resumo, nil
}
