package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"http.port":                         "HTTP_PORT",
	"http.gin_mode":                     "GIN_MODE",
	"log.level":                         "LOG_LEVEL",
	"log.format":                        "LOG_FORMAT",
	"aws.region":                        "AWS_REGION",
	"aws.access_key_id":                 "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":             "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":             "DYNAMODB_ENDPOINT",
	"tables.catalog":                    "CATALOG_TABLE",
	"tables.quotes":                     "QUOTES_TABLE",
	"tables.quote_payments":             "QUOTE_PAYMENTS_TABLE",
	"catalog.source":                    "CATALOG_SOURCE",
	"catalog.file":                      "CATALOG_FILE",
	"catalog.cache_ttl":                 "CATALOG_CACHE_TTL",
	"catalog.cache_size":                "CATALOG_CACHE_SIZE",
	"llm.api_key":                       "GEMINI_API_KEY",
	"llm.model":                         "LLM_MODEL",
	"llm.timeout":                       "LLM_TIMEOUT",
	"llm.max_tokens":                    "LLM_MAX_TOKENS",
	"llm.temperature":                   "LLM_TEMPERATURE",
	"payments.mercadopago_access_token": "MERCADOPAGO_ACCESS_TOKEN",
	"payments.gateway_mock":             "PAYMENT_GATEWAY_MOCK",
	"payments.deposit_rate":             "DEPOSIT_RATE",
	"payments.test_payer_email":         "MERCADOPAGO_TEST_PAYER_EMAIL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
	v.SetDefault("tables.catalog", "catalog")
	v.SetDefault("tables.quotes", "quotes")
	v.SetDefault("tables.quote_payments", "quote_payments")
	v.SetDefault("catalog.source", CatalogSourceDynamoDB)
	v.SetDefault("catalog.file", "configs/catalog.yaml")
	v.SetDefault("catalog.cache_ttl", "5m")
	v.SetDefault("catalog.cache_size", 512)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.timeout", "20s")
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("payments.mercadopago_access_token", "")
	v.SetDefault("payments.gateway_mock", "")
	v.SetDefault("payments.deposit_rate", 0.5)
	v.SetDefault("payments.test_payer_email", "")
}

// Load reads defaults, then the optional YAML file named by CONFIG_FILE,
// then the environment. The .env file is loaded by the binaries through
// godotenv/autoload before Load runs.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	// The legacy flag name is still honoured by older compose files.
	if os.Getenv("PAYMENT_GATEWAY_MOCK") == "" {
		if legacy := os.Getenv("MERCADOPAGO_MOCK"); legacy != "" {
			v.Set("payments.gateway_mock", legacy)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
