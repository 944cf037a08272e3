package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig       `envPrefix:"OTPKIT_APP_"`
	Server    ServerConfig    `envPrefix:"OTPKIT_SERVER_"`
	Log       LogConfig       `envPrefix:"OTPKIT_LOG_"`
	Database  DatabaseConfig  `envPrefix:"OTPKIT_DB_"`
	Redis     RedisConfig     `envPrefix:"OTPKIT_REDIS_"`
	OTP       OTPConfig       `envPrefix:"OTPKIT_OTP_"`
	Mail      MailConfig      `envPrefix:"OTPKIT_MAIL_"`
	SMS       SMSConfig       `envPrefix:"OTPKIT_SMS_"`
	RateLimit RateLimitConfig `envPrefix:"OTPKIT_RATELIMIT_"`
}

type AppConfig struct {
	Name string `env:"NAME" envDefault:"otpkit"`
	Env  string `env:"ENV" envDefault:"development"`
}

type ServerConfig struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port string `env:"PORT" envDefault:"8080"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

type DatabaseConfig struct {
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	DSN         string `env:"DSN" envDefault:"otpkit.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// OTPConfig controls code issuance and verification behavior.
// Store selects the backing store: "memory", "database" or "redis".
type OTPConfig struct {
	CodeLength      int           `env:"CODE_LENGTH" envDefault:"6"`
	TTL             time.Duration `env:"TTL" envDefault:"5m"`
	Store           string        `env:"STORE" envDefault:"memory"`
	DevMode         bool          `env:"DEV_MODE" envDefault:"false"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`
	MessageTemplate string        `env:"MESSAGE_TEMPLATE" envDefault:"Your verification code is %s"`
}

type MailConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        int    `env:"PORT" envDefault:"587"`
	Username    string `env:"USERNAME" envDefault:""`
	Password    string `env:"PASSWORD" envDefault:""`
	Encryption  string `env:"ENCRYPTION" envDefault:"starttls"`
	FromAddress string `env:"FROM_ADDRESS" envDefault:""`
	FromName    string `env:"FROM_NAME" envDefault:""`
	Subject     string `env:"SUBJECT" envDefault:"Your verification code"`
}

type SMSConfig struct {
	Region   string `env:"REGION" envDefault:"us-east-1"`
	SenderID string `env:"SENDER_ID" envDefault:""`
	// Static credentials for environments without an ambient AWS identity.
	AccessKeyID     string `env:"ACCESS_KEY_ID" envDefault:""`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" envDefault:""`
}

type RateLimitConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Rate    int           `env:"RATE" envDefault:"10"`
	Period  time.Duration `env:"PERIOD" envDefault:"1m"`
}

func LoadConfig(cfg any) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	return env.Parse(cfg)
}
