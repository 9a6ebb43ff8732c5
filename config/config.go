package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Gateway       GatewayConfig       `envconfig:"GATEWAY"`
	Jwt           JwtConfig           `envconfig:"JWT"`
	Webhook       WebhookConfig       `envconfig:"WEBHOOK"`
	AiScorer      AiScorerConfig      `envconfig:"AI_SCORER"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	Username     string `envconfig:"USERNAME" default:"postgres"`
	Password     string `envconfig:"PASSWORD" default:"postgres"`
	Name         string `envconfig:"NAME" default:"travel"`
	SslMode      string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string        `envconfig:"TYPE" default:"threshold"`
	Timeout             time.Duration `envconfig:"TIMEOUT" default:"10s"`
	FailureThreshold    int64         `envconfig:"FAILURE_THRESHOLD" default:"5"`
	ConsecutiveFailures int64         `envconfig:"CONSECUTIVE_FAILURES" default:"3"`
	ErrorRate           float64       `envconfig:"ERROR_RATE" default:"0.65"`
	MinSamples          int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type GatewayConfig struct {
	BaseUrl   string `envconfig:"BASE_URL" default:"https://api.razorpay.com"`
	KeyID     string `envconfig:"KEY_ID"`
	KeySecret string `envconfig:"KEY_SECRET"`
}

type JwtConfig struct {
	Secret string `envconfig:"SECRET"`
}

type WebhookConfig struct {
	Secret string `envconfig:"SECRET"`
}

type AiScorerConfig struct {
	BaseUrl string `envconfig:"BASE_URL"`
	ApiKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL" default:"gemini-2.0-flash"`
}

type BookingConfig struct {
	PaymentWindow time.Duration `envconfig:"PAYMENT_WINDOW" default:"30m"`
}

func InitConfig() *Config {
	// .env is optional, real deployments configure through the environment
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process config: %v", err)
	}

	return &cfg
}
