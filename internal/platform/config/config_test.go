package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "efectivo", cfg.CashPaymentMethod)
	assert.Empty(t, cfg.CreditNoteVoucherTypes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "another-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CREDIT_NOTE_VOUCHER_TYPES", "NC-A,NC-B")
	t.Setenv("CASH_PAYMENT_METHOD", "cash")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"NC-A", "NC-B"}, cfg.CreditNoteVoucherTypes)
	assert.Equal(t, "cash", cfg.CashPaymentMethod)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
