// Package config loads gestorpro configuration from an optional YAML file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Store       StoreConfig       `koanf:"store"`
	AWS         AWSConfig         `koanf:"aws"`
	DynamoDB    DynamoDBConfig    `koanf:"dynamodb"`
	NATS        NATSConfig        `koanf:"nats"`
	Redis       RedisConfig       `koanf:"redis"`
	Minio       MinioConfig       `koanf:"minio"`
	Twilio      TwilioConfig      `koanf:"twilio"`
	Gemini      GeminiConfig      `koanf:"gemini"`
	DNI         DNIConfig         `koanf:"dni"`
	MercadoPago MercadoPagoConfig `koanf:"mercadopago"`
	Payment     PaymentConfig     `koanf:"payment"`
	Auth        AuthConfig        `koanf:"auth"`
	Reminders   RemindersConfig   `koanf:"reminders"`
	Audit       AuditConfig       `koanf:"audit"`
	Log         LogConfig         `koanf:"log"`
}

type ServerConfig struct {
	Port            int           `koanf:"http_port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	GinMode         string        `koanf:"gin_mode"`
}

// StoreConfig selects the record store: "dynamodb" or "memory".
type StoreConfig struct {
	Driver string `koanf:"driver"`
}

type AWSConfig struct {
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey Secret `koanf:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint           string `koanf:"endpoint"`
	RecordsTable       string `koanf:"records_table"`
	OrganizationsTable string `koanf:"organizations_table"`
	UsersTable         string `koanf:"users_table"`
	IdentitiesTable    string `koanf:"identities_table"`
}

// NATSConfig.URL empty starts an embedded loopback server, which only connects the
// sessions of a single instance.
type NATSConfig struct {
	URL  string `koanf:"url"`
	Name string `koanf:"name"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password Secret `koanf:"password"`
	DB       int    `koanf:"db"`
}

type MinioConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey Secret `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	UseSSL    bool   `koanf:"use_ssl"`
	PublicURL string `koanf:"public_url"`
}

type TwilioConfig struct {
	AccountSID  string `koanf:"account_sid"`
	AuthToken   Secret `koanf:"auth_token"`
	PhoneNumber string `koanf:"phone_number"`
}

type GeminiConfig struct {
	BaseURL       string        `koanf:"base_url"`
	Model         string        `koanf:"model"`
	Timeout       time.Duration `koanf:"timeout"`
	RatePerSecond float64       `koanf:"rate_per_second"`
}

type DNIConfig struct {
	BaseURL  string        `koanf:"base_url"`
	APIToken Secret        `koanf:"api_token"`
	Timeout  time.Duration `koanf:"timeout"`
}

// MercadoPagoConfig.TestPayer* only apply with a sandbox ("TEST-") access token.
type MercadoPagoConfig struct {
	AccessToken     Secret `koanf:"access_token"`
	Mock            string `koanf:"mock"`
	TestPayerEmail  string `koanf:"test_payer_email"`
	TestPayerUserID string `koanf:"test_payer_user_id"`
}

type PaymentConfig struct {
	GatewayMock string `koanf:"gateway_mock"`
}

type AuthConfig struct {
	JWTSecret Secret        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

type RemindersConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Schedule    string `koanf:"schedule"`
	Timezone    string `koanf:"timezone"`
	Concurrency int    `koanf:"concurrency"`
}

type AuditConfig struct {
	RetryInterval time.Duration `koanf:"retry_interval"`
	RetryBatch    int           `koanf:"retry_batch"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// GatewayMockEnabled reports whether the payment gateway should fake approvals.
// Either PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK turns it on.
func (c *Config) GatewayMockEnabled() bool {
	for _, v := range []string{c.Payment.GatewayMock, c.MercadoPago.Mock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Reminders.Timezone)
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "dynamodb"
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.AWS.AccessKeyID == "" {
		c.AWS.AccessKeyID = "local"
	}
	if c.AWS.SecretAccessKey == "" {
		c.AWS.SecretAccessKey = "local"
	}
	if c.DynamoDB.RecordsTable == "" {
		c.DynamoDB.RecordsTable = "records"
	}
	if c.DynamoDB.OrganizationsTable == "" {
		c.DynamoDB.OrganizationsTable = "organizations"
	}
	if c.DynamoDB.UsersTable == "" {
		c.DynamoDB.UsersTable = "users"
	}
	if c.DynamoDB.IdentitiesTable == "" {
		c.DynamoDB.IdentitiesTable = "identities"
	}
	if c.NATS.Name == "" {
		c.NATS.Name = "gestorpro"
	}
	if c.Minio.Bucket == "" {
		c.Minio.Bucket = "gestorpro"
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash-latest"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 60 * time.Second
	}
	if c.Gemini.RatePerSecond == 0 {
		c.Gemini.RatePerSecond = 2
	}
	if c.DNI.BaseURL == "" {
		c.DNI.BaseURL = "https://api.apis.net.pe/v1"
	}
	if c.DNI.Timeout == 0 {
		c.DNI.Timeout = 10 * time.Second
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 12 * time.Hour
	}
	if c.Reminders.Schedule == "" {
		c.Reminders.Schedule = "0 9 * * *"
	}
	if c.Reminders.Timezone == "" {
		c.Reminders.Timezone = "America/Lima"
	}
	if c.Reminders.Concurrency == 0 {
		c.Reminders.Concurrency = 8
	}
	if c.Audit.RetryInterval == 0 {
		c.Audit.RetryInterval = time.Minute
	}
	if c.Audit.RetryBatch == 0 {
		c.Audit.RetryBatch = 100
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.Port))
	}
	switch c.Store.Driver {
	case "dynamodb", "memory":
	default:
		errs = append(errs, fmt.Errorf("store.driver must be dynamodb or memory, got %q", c.Store.Driver))
	}
	if !c.Auth.JWTSecret.IsSet() {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Reminders.Concurrency < 1 {
		errs = append(errs, errors.New("reminders.concurrency must be positive"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("reminders.timezone: %w", err))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Secret wraps strings that should be redacted in logs and serialization.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return "Secret([REDACTED])"
}

// Value returns the actual secret value.
func (s Secret) Value() string {
	return string(s)
}

func (s Secret) IsSet() bool {
	return s != ""
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
