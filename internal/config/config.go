package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/infra/integration/camara"
	"github.com/xavierca1/parlamentares/internal/infra/integration/senado"
)

type Config struct {
	HTTPAddr        string
	CamaraBaseURL   string
	CamaraOrigin    string
	SenadoBaseURL   string
	UpstreamTimeout time.Duration
	LogLevel        logrus.Level
	LogFormat       string
	CORSOrigins     []string
	EnableDevProxy  bool
}

// Load lê o .env (se existir) e depois o ambiente.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("erro ao ler .env: %w", err)
	}
	return FromEnv()
}

// FromEnv monta a configuração só a partir das variáveis de ambiente.
func FromEnv() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		CamaraBaseURL:   strings.TrimRight(envOr("CAMARA_BASE_URL", camara.BaseURL), "/"),
		CamaraOrigin:    envOr("CAMARA_ORIGIN", camara.Origin),
		SenadoBaseURL:   strings.TrimRight(envOr("SENADO_BASE_URL", senado.BaseURL), "/"),
		UpstreamTimeout: 20 * time.Second,
		LogFormat:       strings.ToLower(envOr("LOG_FORMAT", "text")),
		CORSOrigins:     parseList(envOr("CORS_ORIGINS", "http://localhost:5173,*")),
		EnableDevProxy:  true,
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT inválido %q", v)
		}
		c.UpstreamTimeout = d
	}

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL inválido: %w", err)
	}
	c.LogLevel = level

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT inválido %q (use text ou json)", c.LogFormat)
	}

	if v := os.Getenv("ENABLE_DEV_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("ENABLE_DEV_PROXY inválido %q", v)
		}
		c.EnableDevProxy = b
	}

	return c, nil
}

// NewLogger devolve o logger já com nível e formato da configuração.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
