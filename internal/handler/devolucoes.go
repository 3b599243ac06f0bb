package handler

import (
	"net/http"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/middleware"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type DevolucoesHandler struct{ svc service.DevolucaoService }

func NewDevolucoesHandler(svc service.DevolucaoService) *DevolucoesHandler {
	return &DevolucoesHandler{svc: svc}
}

// RegistrarDevolucao godoc
// @Summary      Registrar devolução
// @Description  Devolve os itens ao estoque e emite um vale-crédito para o cliente.
// @Tags         devolucoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarDevolucaoRequest true "Devolução"
// @Success      201  {object} dto.DevolucaoRegistradaResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/devolucoes [post]
func (h *DevolucoesHandler) RegistrarDevolucao(c *gin.Context) {
	var req dto.RegistrarDevolucaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarDevolucao(c.Request.Context(), middleware.FuncionarioID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// BuscarCredito godoc
// @Summary  Consultar vale-crédito
// @Tags     devolucoes
// @Produce  json
// @Security BearerAuth
// @Param    codigo path string true "Código do vale (CREDITO-...)"
// @Success  200 {object} dto.CreditoResponse
// @Failure  404 {object} apierror.APIError
// @Router   /v1/creditos/{codigo} [get]
func (h *DevolucoesHandler) BuscarCredito(c *gin.Context) {
	resp, err := h.svc.BuscarCredito(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
