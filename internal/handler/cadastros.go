package handler

import (
	"net/http"

	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Clientes ─────────────────────────────────────────────────────────────────

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastrar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarClienteRequest true "Cliente"
// @Success 201 {object} dto.ClienteResponse
// @Failure 409 {object} apierror.APIError "CPF/CNPJ duplicado"
// @Router /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
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

func (h *ClientesHandler) Listar(c *gin.Context) {
	var filter dto.ClienteFilter
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

func (h *ClientesHandler) BuscarPorID(c *gin.Context) {
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

// BuscarPorDocumento looks a customer up by CPF/CNPJ.
// @Summary Buscar cliente por CPF/CNPJ
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param cpf_cnpj path string true "Documento"
// @Success 200 {object} dto.ClienteResponse
// @Router /v1/clientes/documento/{cpf_cnpj} [get]
func (h *ClientesHandler) BuscarPorDocumento(c *gin.Context) {
	resp, err := h.svc.BuscarPorDocumento(c.Request.Context(), c.Param("cpf_cnpj"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var patch dto.ClientePatch
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

// ── Fornecedores ─────────────────────────────────────────────────────────────

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastrar fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarFornecedorRequest true "Fornecedor"
// @Success 201 {object} dto.FornecedorResponse
// @Router /v1/fornecedores [post]
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.CriarFornecedorRequest
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

func (h *FornecedoresHandler) Listar(c *gin.Context) {
	var filter dto.FornecedorFilter
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

func (h *FornecedoresHandler) BuscarPorID(c *gin.Context) {
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

func (h *FornecedoresHandler) Atualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var patch dto.FornecedorPatch
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
