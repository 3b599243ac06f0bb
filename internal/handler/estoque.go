package handler

import (
	"net/http"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler { return &EstoqueHandler{svc: svc} }

func (h *EstoqueHandler) Consultar(c *gin.Context) {
	id, ok := paramUUID(c, "produto_id")
	if !ok {
		return
	}
	resp, err := h.svc.Consultar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Definir godoc
// @Summary Ajuste de inventário (define a quantidade absoluta)
// @Tags estoque
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param produto_id path string true "UUID do produto"
// @Param body body dto.AjustarEstoqueRequest true "Nova quantidade"
// @Success 200 {object} dto.EstoqueResponse
// @Router /v1/estoque/{produto_id} [put]
func (h *EstoqueHandler) Definir(c *gin.Context) {
	id, ok := paramUUID(c, "produto_id")
	if !ok {
		return
	}
	var req dto.AjustarEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Definir(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimentos godoc
// @Summary Trilha de movimentos de estoque
// @Tags estoque
// @Produce json
// @Security BearerAuth
// @Param produto_id query string false "UUID do produto"
// @Param tipo query string false "venda | compra | devolucao | ajuste | cadastro"
// @Success 200 {object} dto.ListResponse[dto.MovimentoEstoqueResponse]
// @Router /v1/estoque/movimentos [get]
func (h *EstoqueHandler) ListarMovimentos(c *gin.Context) {
	var filter dto.MovimentoEstoqueFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarMovimentos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
