package service_test

import (
	"context"
	"testing"

	"pdvmercado/internal/apperror"
	"pdvmercado/internal/config"
	"pdvmercado/internal/dto"
	"pdvmercado/internal/model"
	"pdvmercado/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "segredo-de-teste-com-mais-de-32-caracteres",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func newAuthFixture(t *testing.T) (service.AuthService, *stubFuncionarioRepo, *dto.FuncionarioResponse) {
	t.Helper()
	repo := newStubFuncionarioRepo()
	svc := service.NewAuthService(repo, testConfig())
	f, err := svc.CriarFuncionario(context.Background(), dto.CriarFuncionarioRequest{
		CPF:   "11122233344",
		Nome:  " Ana Souza ",
		Email: strPtr("ana@mercado.com"),
		Senha: "senha-forte-1",
		Cargo: model.CargoCaixa,
	})
	require.NoError(t, err)
	return svc, repo, f
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testConfig().JWTSecret), nil
	})
	require.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func TestAuth_LoginByCPFAndEmail(t *testing.T) {
	svc, repo, f := newAuthFixture(t)
	assert.Equal(t, "Ana Souza", f.Nome)
	assert.NotEqual(t, "senha-forte-1", repo.funcionarios[uuid.MustParse(f.ID)].SenhaHash)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Login: "11122233344", Senha: "senha-forte-1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, f.ID, resp.Funcionario.ID)

	claims := parseClaims(t, resp.AccessToken)
	assert.Equal(t, service.TokenAcesso, claims["tipo"])
	assert.Equal(t, f.ID, claims["funcionario_id"])
	assert.Equal(t, model.CargoCaixa, claims["cargo"])

	_, err = svc.Login(context.Background(), dto.LoginRequest{Login: " ANA@mercado.com ", Senha: "senha-forte-1"})
	assert.NoError(t, err)
}

func TestAuth_LoginRejected(t *testing.T) {
	svc, _, f := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Login: "11122233344", Senha: "errada"})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)

	_, err = svc.Login(ctx, dto.LoginRequest{Login: "00000000000", Senha: "senha-forte-1"})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)

	require.NoError(t, svc.DesativarFuncionario(ctx, uuid.MustParse(f.ID)))
	_, err = svc.Login(ctx, dto.LoginRequest{Login: "11122233344", Senha: "senha-forte-1"})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestAuth_Refresh(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Login: "11122233344", Senha: "senha-forte-1"})
	require.NoError(t, err)

	novo, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenAcesso, parseClaims(t, novo.AccessToken)["tipo"])

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalido)

	_, err = svc.Refresh(ctx, "lixo")
	assert.ErrorIs(t, err, service.ErrTokenInvalido)
}

func TestAuth_RefreshForDeactivatedEmployee(t *testing.T) {
	svc, _, f := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Login: "11122233344", Senha: "senha-forte-1"})
	require.NoError(t, err)
	require.NoError(t, svc.DesativarFuncionario(ctx, uuid.MustParse(f.ID)))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalido)
}

func TestAuth_AtualizarFuncionario(t *testing.T) {
	svc, _, f := newAuthFixture(t)
	ctx := context.Background()
	id := uuid.MustParse(f.ID)

	_, err := svc.AtualizarFuncionario(ctx, id, dto.FuncionarioPatch{})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.AtualizarFuncionario(ctx, uuid.New(), dto.FuncionarioPatch{Nome: strPtr("X Y")})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	upd, err := svc.AtualizarFuncionario(ctx, id, dto.FuncionarioPatch{
		Cargo: strPtr(model.CargoGerente),
		Senha: strPtr("outra-senha-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.CargoGerente, upd.Cargo)

	_, err = svc.Login(ctx, dto.LoginRequest{Login: "11122233344", Senha: "outra-senha-2"})
	assert.NoError(t, err)

	lista, err := svc.ListarFuncionarios(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(svc.DesativarFuncionario(ctx, uuid.New())))
}
