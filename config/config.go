package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SMTP account used for lead notifications.
type EmailConfig struct {
	Host     string `mapstructure:"EMAIL_HOST"`
	Port     int    `mapstructure:"EMAIL_PORT"`
	Username string `mapstructure:"EMAIL_USERNAME"`
	Password string `mapstructure:"EMAIL_PASSWORD"`
	// Address notifications are delivered to (the site owner).
	Recipient string `mapstructure:"PERSONAL_EMAIL"`
}

// CRM account; leads are posted to a templated URL carrying
// the account credentials as query parameters.
type CRMConfig struct {
	Account  string `mapstructure:"CRM_ACCOUNT"`
	Username string `mapstructure:"CRM_USERNAME"`
	Password string `mapstructure:"CRM_PASSWORD"`
}

// Event ticket pricing constants and the promo code.
type EventConfig struct {
	TicketPrice float64 `mapstructure:"EVENT_PRICE"`
	PromoCode   string  `mapstructure:"EVENT_PROMOCODE"`
	// Endpoint of the payment/registration service.
	PaymentURL string `mapstructure:"EVENT_PAYMENT_URL"`
}

type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Port        string `mapstructure:"API_PORT"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	Email EmailConfig `mapstructure:",squash"`
	CRM   CRMConfig   `mapstructure:",squash"`
	Event EventConfig `mapstructure:",squash"`
}

// AddURL builds the CRM lead-creation endpoint for the configured account.
func (c CRMConfig) AddURL() string {
	return fmt.Sprintf(
		"https://%s.senzey.com/extapi/pclient/add.php?username=%s&password=%s",
		c.Account, c.Username, c.Password,
	)
}

// Configured reports whether the CRM credentials are all present.
func (c CRMConfig) Configured() bool {
	return c.Account != "" && c.Username != "" && c.Password != ""
}

// Configured reports whether the email credentials are all present.
func (c EmailConfig) Configured() bool {
	return c.Username != "" && c.Password != "" && c.Recipient != ""
}

// Load reads the configuration from environment variables.
// Credentials never come from files so a missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("API_PORT", "8080")
	v.SetDefault("EMAIL_HOST", "smtp.gmail.com")
	v.SetDefault("EMAIL_PORT", 465)
	v.SetDefault("EVENT_PRICE", 300.0)
	v.SetDefault("EVENT_PROMOCODE", "")
	v.SetDefault("EVENT_PAYMENT_URL", "")

	// AutomaticEnv alone does not populate Unmarshal targets; bind each key
	// explicitly so the struct tags line up with the environment.
	for _, key := range []string{
		"DATABASE_URL", "API_PORT", "JWT_SECRET",
		"EMAIL_HOST", "EMAIL_PORT", "EMAIL_USERNAME", "EMAIL_PASSWORD", "PERSONAL_EMAIL",
		"CRM_ACCOUNT", "CRM_USERNAME", "CRM_PASSWORD",
		"EVENT_PRICE", "EVENT_PROMOCODE", "EVENT_PAYMENT_URL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return &cfg, nil
}
