package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the service configuration. Every field can be set through the
// environment variable named in loader.go.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

type HTTPConfig struct {
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Catalog       string `mapstructure:"catalog"`
	Quotes        string `mapstructure:"quotes"`
	QuotePayments string `mapstructure:"quote_payments"`
}

const (
	CatalogSourceDynamoDB = "dynamodb"
	CatalogSourceFile     = "file"
)

type CatalogConfig struct {
	Source    string        `mapstructure:"source"`
	File      string        `mapstructure:"file"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	CacheSize int           `mapstructure:"cache_size"`
}

type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
}

// Enabled reports whether a live model can be called at all.
func (c LLMConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string  `mapstructure:"mercadopago_access_token"`
	GatewayMock            string  `mapstructure:"gateway_mock"`
	DepositRate            float64 `mapstructure:"deposit_rate"`
	TestPayerEmail         string  `mapstructure:"test_payer_email"`
}

// MockEnabled accepts the same truthy spellings as the deployment scripts.
func (c PaymentsConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.GatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// SandboxPayerEmail is the payer used for TEST- access tokens when the
// request carries none.
func (c PaymentsConfig) SandboxPayerEmail() string {
	if email := strings.TrimSpace(c.TestPayerEmail); email != "" {
		return email
	}
	if strings.HasPrefix(strings.TrimSpace(c.MercadoPagoAccessToken), "TEST-") {
		return "test_user_br@testuser.com"
	}
	return ""
}

// MaxTemperature keeps structured model output reproducible.
const MaxTemperature = 0.3

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}
	switch c.Catalog.Source {
	case CatalogSourceDynamoDB:
	case CatalogSourceFile:
		if strings.TrimSpace(c.Catalog.File) == "" {
			errs = append(errs, errors.New("catalog.file is required when catalog.source=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be %q or %q, got %q", CatalogSourceDynamoDB, CatalogSourceFile, c.Catalog.Source))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout must be positive"))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > MaxTemperature {
		errs = append(errs, fmt.Errorf("llm.temperature must be within [0, %.1f]", MaxTemperature))
	}
	if c.Payments.DepositRate <= 0 || c.Payments.DepositRate > 1 {
		errs = append(errs, fmt.Errorf("payments.deposit_rate must be within (0, 1], got %v", c.Payments.DepositRate))
	}
	return errors.Join(errs...)
}
