// Package config はアプリケーション設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RecommendationDuplicates は同一推薦の重複作成に対するポリシーです。
type RecommendationDuplicates string

const (
	// DuplicatesAllow は同じファンド・推薦者・被推薦者の組み合わせを何度でも作成できます。
	DuplicatesAllow RecommendationDuplicates = "allow"
	// DuplicatesReject は既存の組み合わせがある場合に作成を拒否します。
	DuplicatesReject RecommendationDuplicates = "reject"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Recommendation RecommendationConfig
	Log            LogConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// RateLimitRPS が0の場合はレート制限を無効にします。
	RateLimitRPS   float64
	RateLimitBurst int
}

type DatabaseConfig struct {
	Driver         string // "postgres" or "sqlite"
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	InstanceName   string // Cloud SQL instance connection name
	SQLitePath     string
	RunMigrations  bool
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	FundTTL  time.Duration
}

// Enabled はRedisのホストが設定されているかどうかを返します。
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr はhost:port形式のアドレスを返します。
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type RecommendationConfig struct {
	Duplicates RecommendationDuplicates
}

type LogConfig struct {
	Level  string
	Format string
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	return FromEnv()
}

// FromEnv は現在の環境変数だけから設定を組み立てます。
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvWithDefault("SERVER_PORT", "8080"),
			AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
			RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Driver:         getEnvWithDefault("DB_DRIVER", "postgres"),
			Host:           getEnvWithDefault("DB_HOST", "localhost"),
			Port:           getEnvWithDefault("DB_PORT", "5432"),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           getEnvWithDefault("DB_NAME", "investiguide"),
			SSLMode:        getEnvWithDefault("DB_SSLMODE", "disable"),
			InstanceName:   os.Getenv("INSTANCE_CONNECTION_NAME"),
			SQLitePath:     getEnvWithDefault("DB_SQLITE_PATH", "./investiguide.db"),
			RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
			ConnectTimeout: getDuration("DB_CONNECT_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvWithDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			FundTTL:  getDuration("FUND_CACHE_TTL", 10*time.Minute),
		},
		JWT: JWTConfig{
			Secret:     os.Getenv("JWT_SECRET"),
			Expiration: getDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Recommendation: RecommendationConfig{
			Duplicates: parseDuplicates(os.Getenv("RECOMMENDATION_DUPLICATES")),
		},
		Log: LogConfig{
			Level:  getEnvWithDefault("LOG_LEVEL", "info"),
			Format: getEnvWithDefault("LOG_FORMAT", "json"),
		},
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuplicates(s string) RecommendationDuplicates {
	if RecommendationDuplicates(strings.ToLower(strings.TrimSpace(s))) == DuplicatesReject {
		return DuplicatesReject
	}
	return DuplicatesAllow
}
