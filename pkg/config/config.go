package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// URLs por defecto de la Calculadora RTC.
const (
	DefaultCalculatorURL      = "https://consumo.tributos.gov.br/servico/calcular-tributos-consumo"
	DefaultLocalCalculatorURL = "http://localhost:8080"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Calculadora CalculadoraConfig
	CORS        CORSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CalculadoraConfig endpoints de la Calculadora RTC.
// URL es la primaria; LocalURL se usa como respaldo si la primaria falla.
type CalculadoraConfig struct {
	URL            string
	LocalURL       string
	TimeoutSeconds int
}

// Timeout por intento.
func (c CalculadoraConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CORSConfig orígenes permitidos (lista separada por comas; "*" = todos).
type CORSConfig struct {
	Origins string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CALCULADORA_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "simulador-rtc"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Calculadora: CalculadoraConfig{
			URL:            getString(v, "CALCULADORA_URL", DefaultCalculatorURL),
			LocalURL:       getString(v, "CALCULADORA_LOCAL_URL", DefaultLocalCalculatorURL),
			TimeoutSeconds: getInt(v, "CALCULADORA_TIMEOUT_SECONDS", 10),
		},
		CORS: CORSConfig{
			Origins: getString(v, "CORS_ORIGINS", "*"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Calculadora.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("config: CALCULADORA_TIMEOUT_SECONDS debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return 0
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
