package handler

import (
	"net/http"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastrar produto com estoque inicial
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarProdutoRequest true "Produto"
// @Success 201 {object} dto.ProdutoResponse
// @Failure 409 {object} apierror.APIError "código de barras duplicado"
// @Router /v1/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param nome query string false "Parte do nome"
// @Param codigo_barras query string false "Código de barras"
// @Param ativo query string false "false | all"
// @Success 200 {object} dto.ListResponse[dto.ProdutoResponse]
// @Router /v1/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) BuscarPorID(c *gin.Context) {
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

// Atualizar godoc
// @Summary Atualização parcial de produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do produto"
// @Param body body dto.ProdutoPatch true "Campos a alterar"
// @Success 200 {object} dto.ProdutoResponse
// @Router /v1/produtos/{id} [patch]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var patch dto.ProdutoPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Desativar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConsultarPreco godoc
// @Summary Consulta de preço por código de barras (sem autenticação)
// @Tags precos
// @Produce json
// @Param codigo_barras path string true "Código de barras"
// @Success 200 {object} dto.ConsultaPrecoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/precos/{codigo_barras} [get]
func (h *ProdutosHandler) ConsultarPreco(c *gin.Context) {
	resp, err := h.svc.ConsultarPreco(c.Request.Context(), c.Param("codigo_barras"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
