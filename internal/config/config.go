package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Business    BusinessConfig
	Pricing     PricingConfig
	Catalog     CatalogConfig
	Database    DatabaseConfig
	LogLevel    string
}

type BusinessConfig struct {
	Name           string
	WhatsAppNumber string
}

type PricingConfig struct {
	CurrencySymbol       string
	Locale               string
	ExpressMarkupPercent int
}

// CatalogConfig selects where the item catalog is loaded from at startup.
// Source is one of "builtin", "file" or "postgres".
type CatalogConfig struct {
	Source    string
	FilePath  string
	RulesPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	markupPercent, err := getEnvOrViperInt("EXPRESS_MARKUP_PERCENT", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Business: BusinessConfig{
			Name:           getEnvOrViper("BUSINESS_NAME", "D'heighten"),
			WhatsAppNumber: getEnvOrViper("WHATSAPP_NUMBER", "2348050766253"),
		},
		Pricing: PricingConfig{
			CurrencySymbol:       getEnvOrViper("CURRENCY_SYMBOL", "₦"),
			Locale:               getEnvOrViper("CURRENCY_LOCALE", "en-NG"),
			ExpressMarkupPercent: markupPercent,
		},
		Catalog: CatalogConfig{
			Source:    getEnvOrViper("CATALOG_SOURCE", "builtin"),
			FilePath:  getEnvOrViper("CATALOG_FILE", "catalog.yaml"),
			RulesPath: getEnvOrViper("RULES_FILE", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "laundry"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Business.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER is required")
	}
	if strings.Trim(cfg.Business.WhatsAppNumber, "0123456789") != "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER must contain digits only, got %q", cfg.Business.WhatsAppNumber)
	}
	if cfg.Pricing.ExpressMarkupPercent < 0 {
		return nil, fmt.Errorf("EXPRESS_MARKUP_PERCENT must not be negative")
	}
	switch cfg.Catalog.Source {
	case "builtin", "file", "postgres":
	default:
		return nil, fmt.Errorf("CATALOG_SOURCE must be builtin, file or postgres, got %q", cfg.Catalog.Source)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getEnvOrViperInt(key string, defaultValue int) (int, error) {
	raw := getEnvOrViper(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return val, nil
}
