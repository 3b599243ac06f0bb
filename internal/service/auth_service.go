package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/config"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Token kinds carried in the "tipo" claim. The middleware only accepts access tokens.
const (
	TokenAcesso  = "access"
	TokenRefresh = "refresh"
)

const bcryptCost = 12

var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrTokenInvalido        = errors.New("refresh token inválido ou expirado")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	CriarFuncionario(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	ListarFuncionarios(ctx context.Context) ([]dto.FuncionarioResponse, error)
	AtualizarFuncionario(ctx context.Context, id uuid.UUID, patch dto.FuncionarioPatch) (*dto.FuncionarioResponse, error)
	DesativarFuncionario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.FuncionarioRepository
	cfg  *config.Config
	now  Clock
}

func NewAuthService(repo repository.FuncionarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg, now: time.Now}
}

// ── Login / Refresh ──────────────────────────────────────────────────────────

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	f, err := s.repo.FindByLogin(ctx, strings.TrimSpace(req.Login))
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(f.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	log.Info().Str("funcionario_id", f.ID.String()).Str("cargo", f.Cargo).Msg("login")
	return s.emitirTokens(f)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["tipo"] != TokenRefresh {
		return nil, ErrTokenInvalido
	}
	raw, _ := claims["funcionario_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrTokenInvalido
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || !f.Ativo {
		return nil, ErrTokenInvalido
	}
	return s.emitirTokens(f)
}

func (s *authService) emitirTokens(f *model.Funcionario) (*dto.LoginResponse, error) {
	access, err := s.gerarToken(f, TokenAcesso, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.gerarToken(f, TokenRefresh, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Funcionario:  *funcionarioToResponse(f),
	}, nil
}

func (s *authService) gerarToken(f *model.Funcionario, tipo string, d time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"funcionario_id": f.ID.String(),
		"nome":           f.Nome,
		"cargo":          f.Cargo,
		"tipo":           tipo,
		"exp":            now.Add(d).Unix(),
		"iat":            now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// ── Funcionários ─────────────────────────────────────────────────────────────

func (s *authService) CriarFuncionario(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}
	f := &model.Funcionario{
		ID:        uuid.New(),
		CPF:       req.CPF,
		Nome:      strings.TrimSpace(req.Nome),
		Email:     req.Email,
		SenhaHash: string(hash),
		Cargo:     req.Cargo,
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

func (s *authService) ListarFuncionarios(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	fs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FuncionarioResponse, 0, len(fs))
	for i := range fs {
		resp = append(resp, *funcionarioToResponse(&fs[i]))
	}
	return resp, nil
}

func (s *authService) AtualizarFuncionario(ctx context.Context, id uuid.UUID, patch dto.FuncionarioPatch) (*dto.FuncionarioResponse, error) {
	updates := patch.ToUpdates()
	if patch.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Senha), bcryptCost)
		if err != nil {
			return nil, err
		}
		updates["senha_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil, apperror.Validation("nenhum campo para atualizar")
	}

	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NotFound("funcionário", id.String())
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("funcionário", id.String())
	}
	return funcionarioToResponse(f), nil
}

func (s *authService) DesativarFuncionario(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("funcionário", id.String())
	}
	return nil
}

func funcionarioToResponse(f *model.Funcionario) *dto.FuncionarioResponse {
	return &dto.FuncionarioResponse{
		ID:    f.ID.String(),
		CPF:   f.CPF,
		Nome:  f.Nome,
		Email: f.Email,
		Cargo: f.Cargo,
		Ativo: f.Ativo,
	}
}
