package service

import (
	"context"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CaixaService interface {
	Abrir(ctx context.Context, funcionarioID uuid.UUID, req dto.AbrirCaixaRequest) (*dto.FluxoCaixaResponse, error)
	// BuscarAberto returns the employee's open shift, or nil when there is none.
	BuscarAberto(ctx context.Context, funcionarioID uuid.UUID) (*dto.FluxoCaixaResponse, error)
	Fechar(ctx context.Context, id uuid.UUID, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.FluxoCaixaResponse, error)
	Historial(ctx context.Context, filter dto.HistorialCaixaFilter) (*dto.ListResponse[dto.FluxoCaixaResponse], error)
	RelatorioFechados(ctx context.Context, p dto.Paginacao) (*dto.ListResponse[dto.CaixaFechadoItem], error)
}

type caixaService struct {
	repo        repository.CaixaRepository
	conciliacao ConciliacaoService
	now         Clock
}

func NewCaixaService(repo repository.CaixaRepository, conciliacao ConciliacaoService) CaixaService {
	return &caixaService{repo: repo, conciliacao: conciliacao, now: time.Now}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// The pre-check gives a clean answer in the common case; two concurrent
// opens still race to the partial unique index, which the repository
// reports as a ConflictError too.

func (s *caixaService) Abrir(ctx context.Context, funcionarioID uuid.UUID, req dto.AbrirCaixaRequest) (*dto.FluxoCaixaResponse, error) {
	if req.SaldoInicial.IsNegative() {
		return nil, apperror.ValidationField("saldo_inicial", "saldo inicial não pode ser negativo")
	}

	existente, err := s.repo.FindAberto(ctx, funcionarioID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperror.Conflict("funcionário já possui um caixa aberto (%s)", existente.ID)
	}

	f := &model.FluxoCaixa{
		ID:            uuid.New(),
		FuncionarioID: funcionarioID,
		Status:        model.CaixaAberto,
		SaldoInicial:  req.SaldoInicial,
		AbertoEm:      s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	log.Info().Str("fluxo_caixa_id", f.ID.String()).Str("funcionario_id", funcionarioID.String()).Msg("caixa aberto")
	return fluxoToResponse(f), nil
}

func (s *caixaService) BuscarAberto(ctx context.Context, funcionarioID uuid.UUID) (*dto.FluxoCaixaResponse, error) {
	f, err := s.repo.FindAberto(ctx, funcionarioID)
	if err != nil || f == nil {
		return nil, err
	}
	return fluxoToResponse(f), nil
}

// ── Fechar ───────────────────────────────────────────────────────────────────
// Without a declared count the theoretical balance is used, so the
// difference is zero. The final UPDATE only matches an ABERTO row: closing
// twice affects no rows and is reported as a ConflictError.

func (s *caixaService) Fechar(ctx context.Context, id uuid.UUID, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error) {
	if req.SaldoInformado != nil && req.SaldoInformado.IsNegative() {
		return nil, apperror.ValidationField("saldo_informado", "saldo informado não pode ser negativo")
	}

	var resumo *dto.ResumoFechamento
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		f, err := s.repo.LockTx(tx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return apperror.NotFound("caixa", id.String())
		}

		r, err := s.conciliacao.ResumoTx(tx, f)
		if err != nil {
			return err
		}

		informado := r.SaldoTeorico
		if req.SaldoInformado != nil {
			informado = *req.SaldoInformado
		}
		diferenca := informado.Sub(r.SaldoTeorico)
		fechadoEm := s.now()

		rows, err := s.repo.FecharTx(tx, id, repository.Fechamento{
			SaldoInformado: informado,
			SaldoTeorico:   r.SaldoTeorico,
			Diferenca:      diferenca,
			FechadoEm:      fechadoEm,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.Conflict("caixa %s já está fechado", id)
		}

		r.Status = model.CaixaFechado
		r.FechadoEm = fmtTimePtr(&fechadoEm)
		r.SaldoInformado = &informado
		r.Diferenca = &diferenca
		resumo = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("fluxo_caixa_id", id.String()).
		Str("saldo_teorico", resumo.SaldoTeorico.StringFixed(2)).
		Str("diferenca", resumo.Diferenca.StringFixed(2)).
		Msg("caixa fechado")

	return &dto.FecharCaixaResponse{FluxoCaixaID: id.String(), Resumo: *resumo}, nil
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *caixaService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.FluxoCaixaResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("caixa", id.String())
	}
	return fluxoToResponse(f), nil
}

func (s *caixaService) Historial(ctx context.Context, filter dto.HistorialCaixaFilter) (*dto.ListResponse[dto.FluxoCaixaResponse], error) {
	fluxos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.FluxoCaixaResponse, 0, len(fluxos))
	for i := range fluxos {
		data = append(data, *fluxoToResponse(&fluxos[i]))
	}
	resp := dto.NewListResponse(data, total, filter.Paginacao)
	return &resp, nil
}

// RelatorioFechados lists closed shifts with expected, declared and
// difference as recorded at close time.
func (s *caixaService) RelatorioFechados(ctx context.Context, p dto.Paginacao) (*dto.ListResponse[dto.CaixaFechadoItem], error) {
	rows, total, err := s.repo.ListFechados(ctx, p)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CaixaFechadoItem, 0, len(rows))
	for _, r := range rows {
		item := dto.CaixaFechadoItem{
			FluxoCaixaID:  r.ID.String(),
			FuncionarioID: r.FuncionarioID.String(),
			Operador:      r.Operador,
			AbertoEm:      fmtTime(r.AbertoEm),
			SaldoInicial:  r.SaldoInicial,
		}
		if r.FechadoEm != nil {
			item.FechadoEm = fmtTime(*r.FechadoEm)
		}
		if r.SaldoTeorico != nil {
			item.SaldoEsperado = *r.SaldoTeorico
		}
		if r.SaldoFinalInformado != nil {
			item.SaldoInformado = *r.SaldoFinalInformado
		}
		if r.Diferenca != nil {
			item.Diferenca = *r.Diferenca
		} else {
			item.Diferenca = item.SaldoInformado.Sub(item.SaldoEsperado)
		}
		data = append(data, item)
	}
	resp := dto.NewListResponse(data, total, p)
	return &resp, nil
}

func fluxoToResponse(f *model.FluxoCaixa) *dto.FluxoCaixaResponse {
	return &dto.FluxoCaixaResponse{
		ID:                  f.ID.String(),
		FuncionarioID:       f.FuncionarioID.String(),
		Status:              f.Status,
		SaldoInicial:        f.SaldoInicial,
		SaldoFinalInformado: f.SaldoFinalInformado,
		SaldoTeorico:        f.SaldoTeorico,
		Diferenca:           f.Diferenca,
		AbertoEm:            fmtTime(f.AbertoEm),
		FechadoEm:           fmtTimePtr(f.FechadoEm),
	}
}
