package handler

import (
	"net/http"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler { return &ComprasHandler{svc: svc} }

// RegistrarCompra godoc
// @Summary      Registrar uma compra de fornecedor
// @Description  Grava a compra e soma as quantidades ao estoque na mesma transação.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCompraRequest true "Compra"
// @Success      201  {object} dto.CompraRegistradaResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras [post]
func (h *ComprasHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// BuscarCompra godoc
// @Summary  Detalhe da compra
// @Tags     compras
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "UUID da compra"
// @Success  200 {object} dto.CompraResponse
// @Failure  404 {object} apierror.APIError
// @Router   /v1/compras/{id} [get]
func (h *ComprasHandler) BuscarCompra(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarCompra(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
