package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type CompanyConfig struct {
	Name    string
	Tagline string
	Email   string
	Phone   string
	Address string
	Website string
}

type QuotationConfig struct {
	NumberPrefix        string
	CurrencyPrefix      string
	ValidityDays        int
	DefaultPaymentTerms string
	Terms               []string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Company     CompanyConfig
	Quotation   QuotationConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("HTTP_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Company: CompanyConfig{
			Name:    v.GetString("COMPANY_NAME"),
			Tagline: v.GetString("COMPANY_TAGLINE"),
			Email:   v.GetString("COMPANY_EMAIL"),
			Phone:   v.GetString("COMPANY_PHONE"),
			Address: v.GetString("COMPANY_ADDRESS"),
			Website: v.GetString("COMPANY_WEBSITE"),
		},
		Quotation: QuotationConfig{
			NumberPrefix:        v.GetString("QUOTATION_NUMBER_PREFIX"),
			CurrencyPrefix:      v.GetString("QUOTATION_CURRENCY_PREFIX"),
			ValidityDays:        v.GetInt("QUOTATION_VALIDITY_DAYS"),
			DefaultPaymentTerms: v.GetString("QUOTATION_DEFAULT_PAYMENT_TERMS"),
			Terms:               parseTerms(v.GetString("QUOTATION_TERMS")),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"http://localhost:5173"}
	}
	if cfg.Company.Name == "" {
		cfg.Company.Name = "ZimScholar Projects"
	}
	if cfg.Quotation.NumberPrefix == "" {
		cfg.Quotation.NumberPrefix = "ZSP"
	}
	if cfg.Quotation.CurrencyPrefix == "" {
		cfg.Quotation.CurrencyPrefix = "$"
	}
	if cfg.Quotation.ValidityDays == 0 {
		cfg.Quotation.ValidityDays = 30
	}
	if cfg.Quotation.DefaultPaymentTerms == "" {
		cfg.Quotation.DefaultPaymentTerms = "50% deposit on acceptance, balance on delivery."
	}
	if len(cfg.Quotation.Terms) == 0 {
		cfg.Quotation.Terms = defaultTerms
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var defaultTerms = []string{
	"This quotation is valid until the date stated above.",
	"Work begins once the deposit has been received.",
	"Two rounds of revisions are included; further revisions are billed separately.",
	"All deliverables remain the property of the issuer until paid in full.",
	"Deadlines assume timely delivery of project requirements by the client.",
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.Quotation.ValidityDays < 0 {
		return fmt.Errorf("QUOTATION_VALIDITY_DAYS must not be negative")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// parseTerms splits a "|" separated list; terms boilerplate may contain commas.
func parseTerms(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, "|")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
