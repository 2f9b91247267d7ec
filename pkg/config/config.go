package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Session  SessionConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DOODLEART_APP_ENV" default:"dev"`
	Port         string `envconfig:"DOODLEART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DOODLEART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DOODLEART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DOODLEART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type SessionConfig struct {
	CookieName   string        `envconfig:"DOODLEART_SESSION_COOKIE" default:"da_session"`
	CookieMaxAge time.Duration `envconfig:"DOODLEART_SESSION_MAX_AGE" default:"720h"`
}

// CheckoutConfig tunes the simulated payment confirmation.
type CheckoutConfig struct {
	ProcessingDelay   time.Duration `envconfig:"DOODLEART_CHECKOUT_PROCESSING_DELAY" default:"2s"`
	SuccessDisplayTTL time.Duration `envconfig:"DOODLEART_CHECKOUT_SUCCESS_TTL" default:"3s"`
}

func (c CheckoutConfig) validate() error {
	if c.ProcessingDelay <= 0 {
		return fmt.Errorf("%s must be positive", EnvCheckoutProcessingDelay)
	}
	if c.SuccessDisplayTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvCheckoutSuccessTTL)
	}
	return nil
}
