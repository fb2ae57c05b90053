package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Algorithm string `yaml:"algorithm"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

type StorageConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Storage  StorageConfig  `yaml:"storage"`
}

// Config is the immutable runtime configuration, built once at startup.
type Config struct {
	Port          string
	GinMode       string
	DSN           string
	JWTSecret     string
	JWTAlgorithm  string
	JWTIssuer     string
	AccessTTL     time.Duration
	OTPTTL        time.Duration
	OTPLength     int
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFromEmail string
	SMTPFromName  string
	S3Region      string
	S3Bucket      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load builds the runtime configuration. A config file is optional;
// environment variables always win over file values so deployments can
// override individual settings without editing the file.
func Load() (*Config, error) {
	file := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))

	accessTTL, err := duration(env("ACCESS_TOKEN_TTL", file.JWT.AccessTTL), 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid access token TTL: %w", err)
	}

	otpTTL, err := duration(env("OTP_TTL", file.OTP.TTL), 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	otpLength := envInt("OTP_LENGTH", file.OTP.Length)
	if otpLength == 0 {
		otpLength = 6
	}

	port := envInt("PORT", file.App.Port)
	if port == 0 {
		port = 8000
	}

	smtpPort := envInt("SMTP_PORT", file.SMTP.Port)
	if smtpPort == 0 {
		smtpPort = 587
	}

	cfg := &Config{
		Port:          strconv.Itoa(port),
		GinMode:       env("GIN_MODE", file.App.GinMode),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		JWTSecret:     env("JWT_SECRET", file.JWT.Secret),
		JWTAlgorithm:  env("JWT_ALGORITHM", orDefault(file.JWT.Algorithm, "HS256")),
		JWTIssuer:     env("JWT_ISSUER", orDefault(file.JWT.Issuer, "skynetsvc")),
		AccessTTL:     accessTTL,
		OTPTTL:        otpTTL,
		OTPLength:     otpLength,
		SMTPHost:      env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:      smtpPort,
		SMTPUser:      env("SMTP_USER", file.SMTP.Username),
		SMTPPassword:  env("SMTP_PASSWORD", file.SMTP.Password),
		SMTPFromEmail: env("SMTP_FROM_EMAIL", file.SMTP.FromEmail),
		SMTPFromName:  env("SMTP_FROM_NAME", file.SMTP.FromName),
		S3Region:      env("S3_REGION", orDefault(file.Storage.Region, "us-east-1")),
		S3Bucket:      env("S3_BUCKET", file.Storage.Bucket),
		S3Endpoint:    env("S3_ENDPOINT", file.Storage.Endpoint),
		S3AccessKey:   env("S3_ACCESS_KEY", file.Storage.AccessKey),
		S3SecretKey:   env("S3_SECRET_KEY", file.Storage.SecretKey),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) *ConfigFile {
	var config ConfigFile

	bytes, err := os.ReadFile(path)
	if err != nil {
		return &config
	}
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return &ConfigFile{}
	}
	return &config
}

func duration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
