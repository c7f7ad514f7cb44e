package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	CORS    CORSConfig
	Share   ShareConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPFRONT_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	// URL must resolve over HTTP(S); the browser-equivalent fetch fails on
	// bare file paths and so does the loader.
	URL          string        `envconfig:"SHOPFRONT_CATALOG_URL" required:"true"`
	FetchTimeout time.Duration `envconfig:"SHOPFRONT_CATALOG_FETCH_TIMEOUT" default:"10s"`
	FallbackImg  string        `envconfig:"SHOPFRONT_CATALOG_FALLBACK_IMAGE" default:"/static/placeholder.svg"`
	Currency     string        `envconfig:"SHOPFRONT_CATALOG_CURRENCY" default:"R"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
}

type ShareConfig struct {
	Link    string `envconfig:"SHOPFRONT_SHARE_LINK" default:"https://shopfront.example.co.za/catalogue"`
	Message string `envconfig:"SHOPFRONT_SHARE_MESSAGE" default:"Browse our catalogue and build your quote online."`
}

const (
	EnvPrefix = "SHOPFRONT"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv     = "SHOPFRONT_APP_ENV"
	EnvPort       = "SHOPFRONT_APP_PORT"
	EnvCatalogURL = "SHOPFRONT_CATALOG_URL"
)
