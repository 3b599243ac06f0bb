package repository

import (
	"context"
	"time"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fechamento is what a close writes onto the shift row.
type Fechamento struct {
	SaldoInformado decimal.Decimal
	SaldoTeorico   decimal.Decimal
	Diferenca      decimal.Decimal
	FechadoEm      time.Time
}

// TotalPorTipo is the approved amount collected with one payment type.
type TotalPorTipo struct {
	TipoPagamentoID int
	Descricao       string
	Total           decimal.Decimal
}

// TotaisStatus splits a shift's sales by status. Movimento is the plain sum
// of ledger entries, regardless of sale status.
type TotaisStatus struct {
	Aprovado  decimal.Decimal
	Cancelado decimal.Decimal
	Movimento decimal.Decimal
}

// FluxoCaixaComOperador carries the employee name for reports.
type FluxoCaixaComOperador struct {
	model.FluxoCaixa
	Operador string
}

type CaixaRepository interface {
	Create(ctx context.Context, f *model.FluxoCaixa) error
	// FindAberto returns the most recently opened ABERTO shift, or nil.
	FindAberto(ctx context.Context, funcionarioID uuid.UUID) (*model.FluxoCaixa, error)
	// FindAbertoTx is FindAberto under FOR SHARE, so a concurrent close
	// waits for the sale that posts into the shift.
	FindAbertoTx(tx *gorm.DB, funcionarioID uuid.UUID) (*model.FluxoCaixa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FluxoCaixa, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*FluxoCaixaComOperador, error)
	LockTx(tx *gorm.DB, id uuid.UUID) (*FluxoCaixaComOperador, error)
	// FecharTx closes the shift only while it is still ABERTO and returns the
	// rows affected; zero means it was already closed or does not exist.
	FecharTx(tx *gorm.DB, id uuid.UUID, f Fechamento) (int64, error)
	CreateMovimentoTx(tx *gorm.DB, m *model.FluxoCaixaMovimento) error
	List(ctx context.Context, filter dto.HistorialCaixaFilter) ([]model.FluxoCaixa, int64, error)
	ListFechados(ctx context.Context, p dto.Paginacao) ([]FluxoCaixaComOperador, int64, error)

	// Reconciliation aggregates over fluxo_caixa_movimentos ⋈ vendas.
	TotaisPorTipoTx(tx *gorm.DB, fluxoID uuid.UUID) ([]TotalPorTipo, error)
	TotaisPorStatusTx(tx *gorm.DB, fluxoID uuid.UUID) (TotaisStatus, error)

	DB() *gorm.DB
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) DB() *gorm.DB { return r.db }

func (r *caixaRepo) Create(ctx context.Context, f *model.FluxoCaixa) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

func (r *caixaRepo) FindAberto(ctx context.Context, funcionarioID uuid.UUID) (*model.FluxoCaixa, error) {
	var f model.FluxoCaixa
	err := r.db.WithContext(ctx).
		Where("funcionario_id = ? AND status = ?", funcionarioID, model.CaixaAberto).
		Order("aberto_em DESC").First(&f).Error
	return nilIfNotFound(&f, err)
}

func (r *caixaRepo) FindAbertoTx(tx *gorm.DB, funcionarioID uuid.UUID) (*model.FluxoCaixa, error) {
	var f model.FluxoCaixa
	err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
		Where("funcionario_id = ? AND status = ?", funcionarioID, model.CaixaAberto).
		Order("aberto_em DESC").First(&f).Error
	return nilIfNotFound(&f, err)
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FluxoCaixa, error) {
	var f model.FluxoCaixa
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return nilIfNotFound(&f, err)
}

func (r *caixaRepo) comOperador(tx *gorm.DB) *gorm.DB {
	return tx.Table("fluxos_caixa").
		Select("fluxos_caixa.*, funcionarios.nome AS operador").
		Joins("JOIN funcionarios ON funcionarios.id = fluxos_caixa.funcionario_id")
}

func (r *caixaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*FluxoCaixaComOperador, error) {
	var f FluxoCaixaComOperador
	err := r.comOperador(tx).Where("fluxos_caixa.id = ?", id).Take(&f).Error
	return nilIfNotFound(&f, err)
}

func (r *caixaRepo) LockTx(tx *gorm.DB, id uuid.UUID) (*FluxoCaixaComOperador, error) {
	var f FluxoCaixaComOperador
	err := r.comOperador(tx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "fluxos_caixa"}}).
		Where("fluxos_caixa.id = ?", id).Take(&f).Error
	return nilIfNotFound(&f, err)
}

func (r *caixaRepo) FecharTx(tx *gorm.DB, id uuid.UUID, f Fechamento) (int64, error) {
	res := tx.Model(&model.FluxoCaixa{}).
		Where("id = ? AND status = ?", id, model.CaixaAberto).
		Updates(map[string]any{
			"status":                model.CaixaFechado,
			"saldo_final_informado": f.SaldoInformado,
			"saldo_teorico":         f.SaldoTeorico,
			"diferenca":             f.Diferenca,
			"fechado_em":            f.FechadoEm,
		})
	return res.RowsAffected, translate(res.Error)
}

func (r *caixaRepo) CreateMovimentoTx(tx *gorm.DB, m *model.FluxoCaixaMovimento) error {
	return translate(tx.Create(m).Error)
}

func (r *caixaRepo) List(ctx context.Context, filter dto.HistorialCaixaFilter) ([]model.FluxoCaixa, int64, error) {
	var fluxos []model.FluxoCaixa
	var total int64

	q := r.db.WithContext(ctx).Model(&model.FluxoCaixa{})
	if filter.FuncionarioID != "" {
		q = q.Where("funcionario_id = ?", filter.FuncionarioID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("aberto_em DESC").Limit(filter.PageSize()).Offset(filter.Offset()).Find(&fluxos).Error
	return fluxos, total, err
}

func (r *caixaRepo) ListFechados(ctx context.Context, p dto.Paginacao) ([]FluxoCaixaComOperador, int64, error) {
	var rows []FluxoCaixaComOperador
	var total int64

	base := r.db.WithContext(ctx).Model(&model.FluxoCaixa{}).Where("status = ?", model.CaixaFechado)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.comOperador(r.db.WithContext(ctx)).
		Where("fluxos_caixa.status = ?", model.CaixaFechado).
		Order("fluxos_caixa.fechado_em DESC").
		Limit(p.PageSize()).Offset(p.Offset()).
		Scan(&rows).Error
	return rows, total, err
}

func (r *caixaRepo) TotaisPorTipoTx(tx *gorm.DB, fluxoID uuid.UUID) ([]TotalPorTipo, error) {
	var totais []TotalPorTipo
	err := tx.Raw(`
		SELECT vp.tipo_pagamento_id, tp.descricao, SUM(vp.valor_aplicado) AS total
		FROM fluxo_caixa_movimentos m
		JOIN vendas v            ON v.id = m.venda_id
		JOIN venda_pagamentos vp ON vp.venda_id = v.id
		JOIN tipos_pagamento tp  ON tp.id = vp.tipo_pagamento_id
		WHERE m.fluxo_caixa_id = ? AND v.status = ?
		GROUP BY vp.tipo_pagamento_id, tp.descricao
		ORDER BY vp.tipo_pagamento_id`,
		fluxoID, model.VendaAprovada,
	).Scan(&totais).Error
	return totais, err
}

func (r *caixaRepo) TotaisPorStatusTx(tx *gorm.DB, fluxoID uuid.UUID) (TotaisStatus, error) {
	var t TotaisStatus
	err := tx.Raw(`
		SELECT
			COALESCE(SUM(v.valor_total) FILTER (WHERE v.status = ?), 0) AS aprovado,
			COALESCE(SUM(v.valor_total) FILTER (WHERE v.status = ?), 0) AS cancelado,
			COALESCE(SUM(m.valor), 0)                                    AS movimento
		FROM fluxo_caixa_movimentos m
		LEFT JOIN vendas v ON v.id = m.venda_id
		WHERE m.fluxo_caixa_id = ?`,
		model.VendaAprovada, model.VendaCancelada, fluxoID,
	).Scan(&t).Error
	return t, err
}
