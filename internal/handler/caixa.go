package handler

import (
	"net/http"

	"pdvmercado/internal/apierror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/middleware"
	"pdvmercado/internal/model"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct {
	svc         service.CaixaService
	conciliacao service.ConciliacaoService
}

func NewCaixaHandler(svc service.CaixaService, conciliacao service.ConciliacaoService) *CaixaHandler {
	return &CaixaHandler{svc: svc, conciliacao: conciliacao}
}

// Abrir godoc
// @Summary Abre o caixa do operador autenticado
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirCaixaRequest true "Saldo inicial"
// @Success 201 {object} dto.FluxoCaixaResponse
// @Failure 409 {object} apierror.APIError "já existe caixa aberto"
// @Router /v1/caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), middleware.FuncionarioID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Aberto godoc
// @Summary Caixa aberto do operador autenticado
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FluxoCaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/aberto [get]
func (h *CaixaHandler) Aberto(c *gin.Context) {
	resp, err := h.svc.BuscarAberto(c.Request.Context(), middleware.FuncionarioID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.WithCode("nao_encontrado", "Nenhum caixa aberto"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar godoc
// @Summary Fecha o caixa e grava a conciliação
// @Description Sem saldo_informado, o saldo teórico é usado e a diferença fica zero.
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do caixa"
// @Param body body dto.FecharCaixaRequest false "Saldo contado"
// @Success 200 {object} dto.FecharCaixaResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError "caixa já fechado"
// @Router /v1/caixa/{id}/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.FecharCaixaRequest
	if c.Request.ContentLength != 0 && !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID godoc
// @Summary Detalhe do caixa
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do caixa"
// @Success 200 {object} dto.FluxoCaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/{id} [get]
func (h *CaixaHandler) BuscarPorID(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumo godoc
// @Summary Relatório de conciliação do caixa
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do caixa"
// @Success 200 {object} dto.ResumoFechamento
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/{id}/resumo [get]
func (h *CaixaHandler) Resumo(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.conciliacao.ResumoFechamento(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.WithCode("nao_encontrado", "caixa não encontrado: "+id.String()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial lists shifts. Operators with cargo "caixa" only see their own.
// @Summary Histórico de caixas
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Param funcionario_id query string false "UUID do funcionário"
// @Param status query string false "ABERTO | FECHADO"
// @Success 200 {object} dto.ListResponse[dto.FluxoCaixaResponse]
// @Router /v1/caixa/historial [get]
func (h *CaixaHandler) Historial(c *gin.Context) {
	var filter dto.HistorialCaixaFilter
	if !bindQuery(c, &filter) {
		return
	}
	if claims := middleware.GetClaims(c); claims != nil && claims.Cargo == model.CargoCaixa {
		filter.FuncionarioID = claims.FuncionarioID
	}
	resp, err := h.svc.Historial(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RelatorioFechados godoc
// @Summary Relatório de caixas fechados (esperado, informado, diferença)
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Registros por página"
// @Success 200 {object} dto.ListResponse[dto.CaixaFechadoItem]
// @Router /v1/caixa/relatorio/fechados [get]
func (h *CaixaHandler) RelatorioFechados(c *gin.Context) {
	var p dto.Paginacao
	if !bindQuery(c, &p) {
		return
	}
	resp, err := h.svc.RelatorioFechados(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
