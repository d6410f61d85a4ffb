package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "simulador-rtc", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, DefaultCalculatorURL, cfg.Calculadora.URL)
	assert.Equal(t, DefaultLocalCalculatorURL, cfg.Calculadora.LocalURL)
	assert.Equal(t, 10*time.Second, cfg.Calculadora.Timeout())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CALCULADORA_URL", "http://calc.interna:8080")
	t.Setenv("CALCULADORA_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://calc.interna:8080", cfg.Calculadora.URL)
	assert.Equal(t, 3*time.Second, cfg.Calculadora.Timeout())
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")
	_, err := Load()
	assert.Error(t, err)
}
