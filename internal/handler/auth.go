package handler

import (
	"errors"
	"net/http"

	"pdvmercado/internal/apierror"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login do funcionário (CPF ou e-mail)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		h.authError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Renovar tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.authError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) authError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCredenciaisInvalidas) || errors.Is(err, service.ErrTokenInvalido) {
		c.JSON(http.StatusUnauthorized, apierror.WithCode("nao_autenticado", err.Error()))
		return
	}
	respondError(c, err)
}

// ── Funcionários (administrador) ─────────────────────────────────────────────

// CriarFuncionario godoc
// @Summary Cadastrar funcionário
// @Tags funcionarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarFuncionarioRequest true "Funcionário"
// @Success 201 {object} dto.FuncionarioResponse
// @Router /v1/funcionarios [post]
func (h *AuthHandler) CriarFuncionario(c *gin.Context) {
	var req dto.CriarFuncionarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarFuncionario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) ListarFuncionarios(c *gin.Context) {
	resp, err := h.svc.ListarFuncionarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AtualizarFuncionario(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var patch dto.FuncionarioPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	resp, err := h.svc.AtualizarFuncionario(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) DesativarFuncionario(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesativarFuncionario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
