package handler

import (
	"net/http"
	"time"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/middleware"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// RegistrarVenda godoc
// @Summary      Registrar uma venda
// @Description  Grava a venda de forma atômica: baixa o estoque, registra os pagamentos e lança a entrada no caixa aberto do operador.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVendaRequest true "Itens e pagamentos"
// @Success      201  {object} dto.VendaRegistradaResponse
// @Failure      409  {object} apierror.APIError "estoque insuficiente"
// @Failure      412  {object} apierror.APIError "caixa fechado"
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/vendas [post]
func (h *VendasHandler) RegistrarVenda(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenda(c.Request.Context(), middleware.FuncionarioID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarVendas godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        data        query string false "Data YYYY-MM-DD"
// @Param        cpf_cliente query string false "CPF/CNPJ do cliente"
// @Param        status      query string false "Aprovada | Cancelada"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.ListResponse[dto.VendaResponse]
// @Router       /v1/vendas [get]
func (h *VendasHandler) ListarVendas(c *gin.Context) {
	var filter dto.VendaFilter
	if !bindQuery(c, &filter) {
		return
	}
	h.listar(c, filter)
}

// VendasHoje lists today's sales (server local date).
// @Summary  Vendas do dia
// @Tags     vendas
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} dto.ListResponse[dto.VendaResponse]
// @Router   /v1/vendas/hoje [get]
func (h *VendasHandler) VendasHoje(c *gin.Context) {
	var filter dto.VendaFilter
	if !bindQuery(c, &filter) {
		return
	}
	filter.Data = time.Now().Format("2006-01-02")
	h.listar(c, filter)
}

func (h *VendasHandler) listar(c *gin.Context, filter dto.VendaFilter) {
	resp, err := h.svc.ListarVendas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarVenda godoc
// @Summary  Detalhe da venda
// @Tags     vendas
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "UUID da venda"
// @Success  200 {object} dto.VendaResponse
// @Failure  404 {object} apierror.APIError
// @Router   /v1/vendas/{id} [get]
func (h *VendasHandler) BuscarVenda(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarVenda(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
