package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Wizard sessions (Redis).
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`
	SessionStore   string        `mapstructure:"SESSION_STORE"`
	SessionTTL     time.Duration `mapstructure:"WIZARD_SESSION_TTL"`

	// Results navigation after a successful submission.
	ResultsPath         string        `mapstructure:"RESULTS_PATH"`
	SearchRedirectDelay time.Duration `mapstructure:"SEARCH_REDIRECT_DELAY"`

	// Upstream REST collaborators.
	PricingAPIURL   string        `mapstructure:"PRICING_API_URL"`
	PricingAPIKey   string        `mapstructure:"PRICING_API_KEY"`
	BookingAPIURL   string        `mapstructure:"BOOKING_API_URL"`
	BookingAPIKey   string        `mapstructure:"BOOKING_API_KEY"`
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`

	// AWS (DynamoDB ledger + S3 videos).
	AWSRegion          string        `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string        `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string        `mapstructure:"DYNAMODB_ENDPOINT"`
	SubmissionsTable   string        `mapstructure:"SUBMISSIONS_TABLE"`
	PaymentsTable      string        `mapstructure:"PAYMENTS_TABLE"`
	S3Endpoint         string        `mapstructure:"S3_ENDPOINT"`
	VideoBucket        string        `mapstructure:"VIDEO_BUCKET"`
	VideoURLTTL        time.Duration `mapstructure:"VIDEO_URL_TTL"`

	// Creator payments.
	MercadoPagoAccessToken  string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayer    string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUID string `mapstructure:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock      bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
}

var defaults = map[string]any{
	"APP_PORT":                       "8080",
	"ENV":                            "development",
	"LOG_LEVEL":                      "info",
	"MAX_REQUESTS_PER_MIN":           200,
	"CORS_ALLOW_ORIGINS":             "*",
	"TRUSTED_PROXIES":                "",
	"REDIS_ADDR":                     "localhost:6379",
	"REDIS_PASSWORD":                 "",
	"REDIS_SESSION_DB":               0,
	"SESSION_STORE":                  "redis",
	"WIZARD_SESSION_TTL":             2 * time.Hour,
	"RESULTS_PATH":                   "/search-results",
	"SEARCH_REDIRECT_DELAY":          1500 * time.Millisecond,
	"PRICING_API_URL":                "http://localhost:9001",
	"PRICING_API_KEY":                "",
	"BOOKING_API_URL":                "http://localhost:9002",
	"BOOKING_API_KEY":                "",
	"UPSTREAM_TIMEOUT":               15 * time.Second,
	"AWS_REGION":                     "us-east-1",
	"AWS_ACCESS_KEY_ID":              "",
	"AWS_SECRET_ACCESS_KEY":          "",
	"DYNAMODB_ENDPOINT":              "",
	"SUBMISSIONS_TABLE":              "booking_submissions",
	"PAYMENTS_TABLE":                 "creator_payments",
	"S3_ENDPOINT":                    "",
	"VIDEO_BUCKET":                   "shootbook-videos",
	"VIDEO_URL_TTL":                  15 * time.Minute,
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"MERCADOPAGO_TEST_PAYER_EMAIL":   "",
	"MERCADOPAGO_TEST_PAYER_USER_ID": "",
	"PAYMENT_GATEWAY_MOCK":           false,
}

// Load reads configuration from environment variables, an optional
// config.yaml in the working directory (or ./config) and the defaults above.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// TrustedProxyList splits TRUSTED_PROXIES on commas. Empty means no proxy is
// trusted and forwarding headers are ignored.
func (c Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	out := splitList(c.CORSAllowOrigins)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
