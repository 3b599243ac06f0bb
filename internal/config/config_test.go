package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 1, cfg.TipoPagamentoDinheiroID)
	assert.Equal(t, 365, cfg.ValidadeCreditoDias)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PDV_TIPO_PAGAMENTO_DINHEIRO", "7")
	t.Setenv("CORS_ORIGINS", "https://a.exemplo, https://b.exemplo,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 7, cfg.TipoPagamentoDinheiroID)
	assert.Equal(t, []string{"https://a.exemplo", "https://b.exemplo"}, cfg.AllowedOrigins())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "curto")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFrom_FallsBackToUser(t *testing.T) {
	c := &Config{SMTPUser: "loja@exemplo.com"}
	assert.Equal(t, "loja@exemplo.com", c.From())
	c.SMTPFrom = "nao-responda@exemplo.com"
	assert.Equal(t, "nao-responda@exemplo.com", c.From())
}
