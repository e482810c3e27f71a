package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "PORTAL"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "PORTAL_APP_ENV"
	EnvPort   = "PORTAL_APP_PORT"
	EnvDBPath = "PORTAL_DB_PATH"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Checkout CheckoutConfig
	Pricing  PricingConfig
	Upstream UpstreamConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PORTAL_APP_ENV" required:"true"`
	Port         string `envconfig:"PORTAL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PORTAL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PORTAL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Path        string        `envconfig:"PORTAL_DB_PATH" default:"portal.db"`
	BusyTimeout time.Duration `envconfig:"PORTAL_DB_BUSY_TIMEOUT" default:"5s"`
	AutoMigrate bool          `envconfig:"PORTAL_DB_AUTO_MIGRATE" default:"true"`
}

// DSN renders the sqlite datasource string for the configured path.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_fk=1", d.Path, d.BusyTimeout.Milliseconds())
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"PORTAL_CHECKOUT_PROCESSING_DELAY" default:"2s"`
}

// PricingConfig centralizes the fee/tax policy applied to cart quotes and
// checkout totals. The source views disagreed on these numbers (8% vs 10%
// tax, free vs flat shipping); a single policy is deliberately the only one.
type PricingConfig struct {
	TaxRate          decimal.Decimal `envconfig:"PORTAL_PRICING_TAX_RATE" default:"0.08"`
	ShippingFee      decimal.Decimal `envconfig:"PORTAL_PRICING_SHIPPING_FEE" default:"9.99"`
	FreeShippingOver decimal.Decimal `envconfig:"PORTAL_PRICING_FREE_SHIPPING_OVER" default:"100"`
}

// UpstreamConfig configures the stub network wrapper kept for future server
// integration. Nothing load-bearing calls it today.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"PORTAL_UPSTREAM_BASE_URL" default:"http://localhost:3001/api"`
	Timeout time.Duration `envconfig:"PORTAL_UPSTREAM_TIMEOUT" default:"10s"`
}
