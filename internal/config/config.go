// Package config loads the service configuration from an optional env file
// and the process environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the server and the admin CLI need.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	HuggingFace HuggingFaceConfig `mapstructure:"hugging_face"`
	Sentiment   SentimentConfig   `mapstructure:"sentiment"`
	IntaSend    IntaSendConfig    `mapstructure:"intasend"`
	Premium     PremiumConfig     `mapstructure:"premium"`
	S3          S3Config          `mapstructure:"s3"`
	CORS        CORSConfig        `mapstructure:"cors"`
}

type AppConfig struct {
	Host               string `mapstructure:"host"`
	Port               string `mapstructure:"port"`
	LogLevel           string `mapstructure:"log_level"`
	PublicURL          string `mapstructure:"public_url"`
	ReadTimeoutSecond  int    `mapstructure:"read_timeout_second"`
	WriteTimeoutSecond int    `mapstructure:"write_timeout_second"`
	RunMigrations      bool   `mapstructure:"run_migrations"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DB           string `mapstructure:"db"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// RedisConfig configures the sentiment score cache. An empty Addr disables it.
type RedisConfig struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
	ExpSecond    int    `mapstructure:"exp_second"`
}

// KafkaConfig configures event publishing. Empty Brokers disables it.
type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// BrokerList splits the comma separated broker addresses.
func (c KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	ExpSecond int    `mapstructure:"exp_second"`
}

type HuggingFaceConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type SentimentConfig struct {
	TimeoutSecond int `mapstructure:"timeout_second"`
	MemoSize      int `mapstructure:"memo_size"`
}

type IntaSendConfig struct {
	PublicKey     string `mapstructure:"public_key"`
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	BaseURL       string `mapstructure:"base_url"`
	TestMode      bool   `mapstructure:"test_mode"`
}

// SigningSecret is the webhook HMAC key: WebhookSecret, or the API secret key
// when no dedicated secret is set.
func (c IntaSendConfig) SigningSecret() string {
	if s := strings.TrimSpace(c.WebhookSecret); s != "" {
		return s
	}
	return c.SecretKey
}

// CheckoutURL returns the checkout endpoint, switching to the sandbox host in
// test mode unless BaseURL was set explicitly.
func (c IntaSendConfig) CheckoutURL() string {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = "https://payment.intasend.com"
		if c.TestMode {
			base = "https://sandbox.intasend.com"
		}
	}
	return strings.TrimRight(base, "/") + "/api/v1/checkout/"
}

type PremiumConfig struct {
	Amount   string `mapstructure:"amount"`
	Currency string `mapstructure:"currency"`
}

// S3Config configures meditation audio storage. An empty Bucket disables audio links.
type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	KeyPrefix string `mapstructure:"key_prefix"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	URLExpSec int    `mapstructure:"url_exp_second"`
}

type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Origins splits the comma separated origin list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// Seconds converts an integer setting into a duration.
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// Load reads the env file at path (missing files are fine), then the process
// environment, on top of the defaults below.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.host", "localhost")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.public_url", "http://localhost:8080")
	v.SetDefault("app.read_timeout_second", 15)
	v.SetDefault("app.write_timeout_second", 120)
	v.SetDefault("app.run_migrations", true)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "user")
	v.SetDefault("postgres.password", "password")
	v.SetDefault("postgres.db", "database")
	v.SetDefault("postgres.max_open_conns", 16)
	v.SetDefault("postgres.max_idle_conns", 8)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.exp_second", 86400)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "mood-journal.events")

	v.SetDefault("jwt.secret_key", "my_super_secret_key")
	v.SetDefault("jwt.exp_second", 3600)

	v.SetDefault("hugging_face.api_key", "")
	v.SetDefault("hugging_face.base_url", "https://api-inference.huggingface.co/models")

	v.SetDefault("sentiment.timeout_second", 90)
	v.SetDefault("sentiment.memo_size", 1024)

	v.SetDefault("intasend.public_key", "")
	v.SetDefault("intasend.secret_key", "")
	v.SetDefault("intasend.webhook_secret", "")
	v.SetDefault("intasend.base_url", "")
	v.SetDefault("intasend.test_mode", true)

	v.SetDefault("premium.amount", "5.00")
	v.SetDefault("premium.currency", "KES")

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.key_prefix", "audio")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.url_exp_second", 900)

	v.SetDefault("cors.allowed_origins", "*")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
